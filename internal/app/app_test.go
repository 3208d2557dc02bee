package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"primecount/internal/app"
	"primecount/internal/store"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig(app.NewViper(), "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Threads != 0 || cfg.Format != "text" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.History.Driver != "json" || cfg.Publish.Timeout != 5*time.Second {
		t.Fatalf("unexpected nested defaults: %+v", cfg)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primecount.yaml")
	yaml := "threads: 3\nformat: json\nhistory:\n  path: /tmp/h.db\n  driver: sqlite\npublish:\n  timeout: 2s\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("PRIMECOUNT_FORMAT", "yaml")

	cfg, err := app.LoadConfig(app.NewViper(), path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Threads != 3 || cfg.History.Driver != "sqlite" || cfg.Publish.Timeout != 2*time.Second {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Format != "yaml" {
		t.Fatalf("env override not applied: format=%q", cfg.Format)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := app.LoadConfig(app.NewViper(), filepath.Join(t.TempDir(), "none.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := app.NewLogger(&buf, "info")
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %s", log.GetLevel())
	}
	log.Debug("hidden")
	log.Info("shown")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected log output %q", out)
	}
	if _, err := app.NewLogger(&buf, "loud"); err == nil {
		t.Fatal("expected error for bad level")
	}
}

func TestNewWire(t *testing.T) {
	log, _ := app.NewLogger(&bytes.Buffer{}, "warn")

	w, err := app.NewWire(app.Config{Publish: app.PublishConfig{Timeout: time.Second}}, log)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Bench == nil || w.History != nil || w.Publisher != nil {
		t.Fatalf("unexpected wire: %+v", w)
	}

	cfg := app.Config{
		History: app.HistoryConfig{Path: filepath.Join(t.TempDir(), "h.json"), Driver: "json"},
		Publish: app.PublishConfig{URL: "http://127.0.0.1:1", Timeout: time.Second},
	}
	w, err = app.NewWire(cfg, log)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	defer w.Close()
	if _, ok := w.History.(*store.FileStore); !ok || w.Publisher == nil {
		t.Fatalf("history/publisher not wired: %+v", w)
	}

	cfg.History.Driver = "bolt"
	if _, err := app.NewWire(cfg, log); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
