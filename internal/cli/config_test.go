package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/evcraddock/visitor-register/internal/config"
)

func TestConfigSetAndShow(t *testing.T) {
	home := isolate(t)

	if _, err := executeCommand("config", "set", "driver", "sqlite"); err != nil {
		t.Fatalf("set: %v", err)
	}

	cfg, err := config.Load(filepath.Join(home, ".config", "vr", "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Driver != config.DriverSQLite {
		t.Errorf("driver = %q, want sqlite", cfg.Driver)
	}

	out, err := executeCommand("config", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "driver: sqlite") {
		t.Errorf("show output = %q", out)
	}
}

func TestConfigSetUnknownKey(t *testing.T) {
	isolate(t)

	if _, err := executeCommand("config", "set", "colour", "blue"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestConfigSetUnknownDriver(t *testing.T) {
	isolate(t)

	if _, err := executeCommand("config", "set", "driver", "csv"); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}

func TestConfigPathFlag(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")

	out, err := executeCommand("config", "path", "--config", path)
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if strings.TrimSpace(out) != path {
		t.Errorf("path = %q, want %q", out, path)
	}
}

func TestConfigShowJSON(t *testing.T) {
	isolate(t)

	out, err := executeCommand("config", "show", "--format", "json")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, `"driver": "json"`) {
		t.Errorf("show output = %q", out)
	}
}
