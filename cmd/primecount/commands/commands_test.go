package commands_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"primecount/cmd/primecount/commands"
	"primecount/internal/domain"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := commands.NewRootCmd(&stdout, &stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestNoArgsPrintsUsage(t *testing.T) {
	out, _, err := run(t)
	if err != nil {
		t.Fatalf("no args: %v", err)
	}
	if !strings.Contains(out, "Usage:") || !strings.Contains(out, "primecount <input-file> [thread-count]") {
		t.Fatalf("usage not on stdout: %q", out)
	}
}

func TestCompareTextReport(t *testing.T) {
	path := writeFile(t, "numbers.txt", "3, 5, -7 10 abc 999999999999999999999\n17 91")
	out, _, err := run(t, path, "2")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{
		"Input file: " + path + "\n",
		"Total numbers parsed: 6\n",
		"\nSingle-thread:\n  Prime count: 3\n",
		"\nMulti-thread (2 threads):\n  Prime count: 3\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Warning") {
		t.Fatalf("unexpected mismatch warning:\n%s", out)
	}
}

func TestCompareThreadArguments(t *testing.T) {
	path := writeFile(t, "numbers.txt", "2 3 4 5 6 7 8 9 10 11")
	cases := map[string]string{
		"0":  "Multi-thread (1 threads)",
		"-5": "Multi-thread (1 threads)",
		"3":  "Multi-thread (3 threads)",
		"50": "Multi-thread (10 threads)",
	}
	for arg, want := range cases {
		out, _, err := run(t, path, arg)
		if err != nil {
			t.Fatalf("threads %q: %v", arg, err)
		}
		if !strings.Contains(out, want) {
			t.Fatalf("threads %q: missing %q in\n%s", arg, want, out)
		}
		if strings.Count(out, "Prime count: 5") != 2 {
			t.Fatalf("threads %q: counts differ\n%s", arg, out)
		}
	}

	out, _, err := run(t, path, "abc")
	if err != nil {
		t.Fatalf("threads abc: %v", err)
	}
	if strings.Count(out, "Prime count: 5") != 2 {
		t.Fatalf("threads abc: counts differ\n%s", out)
	}
}

func TestThreadsFlagIsFallback(t *testing.T) {
	path := writeFile(t, "numbers.txt", "2 3 4 5 6 7 8 9 10 11")
	out, _, err := run(t, "--threads", "4", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Multi-thread (4 threads)") {
		t.Fatalf("--threads ignored:\n%s", out)
	}
	out, _, err = run(t, "--threads", "4", path, "2")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Multi-thread (2 threads)") {
		t.Fatalf("positional thread count did not win:\n%s", out)
	}
}

func TestEmptyInput(t *testing.T) {
	path := writeFile(t, "empty.txt", "no digits here")
	out, _, err := run(t, path)
	if err != nil {
		t.Fatalf("empty input should not fail: %v", err)
	}
	if out != "No numbers found in file: "+path+"\n" {
		t.Fatalf("stdout = %q", out)
	}
}

func TestMissingInput(t *testing.T) {
	out, _, err := run(t, filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil || !strings.Contains(err.Error(), "failed to read file") {
		t.Fatalf("err = %v", err)
	}
	if out != "" {
		t.Fatalf("stdout not empty on read failure: %q", out)
	}
}

func TestJSONFormatAndHistory(t *testing.T) {
	path := writeFile(t, "numbers.txt", "2 3 4 5 97")
	hist := filepath.Join(t.TempDir(), "history.json")

	out, _, err := run(t, "--format", "json", "--history", hist, path, "2")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var cmp domain.Comparison
	if err := json.Unmarshal([]byte(out), &cmp); err != nil {
		t.Fatalf("stdout is not a comparison: %v\n%s", err, out)
	}
	if !cmp.Match || cmp.Sequential.Count != 4 || cmp.Parallel.Workers != 2 {
		t.Fatalf("unexpected comparison: %+v", cmp)
	}

	out, _, err = run(t, "--history", hist, "history")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if lines := strings.Split(strings.TrimSpace(out), "\n"); len(lines) != 1 || !strings.Contains(lines[0], path) {
		t.Fatalf("history output:\n%s", out)
	}
}

func TestHistoryWithoutStore(t *testing.T) {
	if _, _, err := run(t, "history"); err == nil {
		t.Fatal("expected error without --history")
	}
}

func TestHostCommand(t *testing.T) {
	out, _, err := run(t, "host")
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	if !strings.Contains(out, "CPU: ") || !strings.Contains(out, "Default threads: ") {
		t.Fatalf("host output:\n%s", out)
	}
}

func TestUnknownFormat(t *testing.T) {
	path := writeFile(t, "numbers.txt", "2 3")
	if _, _, err := run(t, "--format", "xml", path); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
