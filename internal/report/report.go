package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"primecount/internal/domain"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnknownFormat is returned by ParseFormat for unsupported names.
	ErrUnknownFormat = errors.New("unknown report format")
)

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Render writes a complete comparison in the given format.
func Render(w io.Writer, f Format, cmp domain.Comparison) error {
	switch f {
	case FormatText:
		t := NewText(w)
		t.InputLoaded(cmp.Input, cmp.Numbers)
		t.RunFinished(cmp.Sequential)
		t.RunFinished(cmp.Parallel)
		t.Finish(cmp)
		return t.Err()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cmp)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cmp); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// RenderList writes several comparisons, one summary line each for text.
func RenderList(w io.Writer, f Format, runs []domain.Comparison) error {
	switch f {
	case FormatText:
		for _, r := range runs {
			status := "ok"
			if !r.Match {
				status = "MISMATCH"
			}
			if _, err := fmt.Fprintf(w, "%s  %-8s %s  n=%d  seq=%d (%.3f ms)  par=%d x%d (%.3f ms)  %s\n",
				r.StartedAt.Format("2006-01-02 15:04:05"),
				status,
				r.Digest,
				r.Numbers,
				r.Sequential.Count, r.Sequential.Milliseconds(),
				r.Parallel.Count, r.Parallel.Workers, r.Parallel.Milliseconds(),
				r.Input,
			); err != nil {
				return err
			}
		}
		return nil
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(runs); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}
