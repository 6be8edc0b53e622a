package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/robalobadob/wordgrid/internal/game"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "5175" || cfg.LogLevel != "info" || !cfg.JournalEnabled {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Adjacency != game.AdjacencyOffset {
		t.Fatalf("expected offset adjacency, got %v", cfg.Adjacency)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %v", cfg.RequestTimeout)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ADJACENCY", "grid")
	t.Setenv("JOURNAL_ENABLED", "false")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9000" || cfg.Adjacency != game.AdjacencyGrid || cfg.JournalEnabled || cfg.RequestTimeout != 2*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("CLIENT_ORIGIN=https://play.example\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	t.Setenv("CLIENT_ORIGIN", "")
	os.Unsetenv("CLIENT_ORIGIN")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ClientOrigin != "https://play.example" {
		t.Fatalf("expected origin from dotenv, got %q", cfg.ClientOrigin)
	}
}

func TestLoadBadAdjacency(t *testing.T) {
	t.Setenv("ADJACENCY", "hex")
	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestJournalSwitch(t *testing.T) {
	t.Setenv("DB_PATH", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.JournalEnabled || cfg.DBPath != "./data/wordgrid.db" {
		t.Fatalf("empty DB_PATH should keep the journal on the default path, got %+v", cfg)
	}

	t.Setenv("JOURNAL_ENABLED", "false")
	t.Setenv("DB_PATH", "/tmp/elsewhere.db")
	cfg, err = Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JournalEnabled || cfg.DBPath != "/tmp/elsewhere.db" {
		t.Fatalf("expected journal disabled with path kept, got %+v", cfg)
	}
}
