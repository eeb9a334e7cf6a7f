package cli

import (
	"bytes"
	"testing"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// isolate points HOME at a temp dir and clears VR_* overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"VR_DATA_FILE", "VR_LOG_FILE", "VR_DRIVER", "VR_SQLITE_PATH", "VR_SERVER_URL", "VR_DEV_MODE", "VR_BACKUP"} {
		t.Setenv(k, "")
	}
	return home
}

func TestRootHelp(t *testing.T) {
	_, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()

	formatFlag := root.PersistentFlags().Lookup("format")
	if formatFlag == nil {
		t.Fatal("expected --format flag to exist")
	}
	if formatFlag.DefValue != "text" {
		t.Errorf("expected --format default 'text', got %q", formatFlag.DefValue)
	}

	for _, name := range []string{"config", "data", "log", "driver", "server"} {
		if root.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := executeCommand("version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != Version+"\n" {
		t.Errorf("output = %q, want %q", out, Version+"\n")
	}
}

func TestUnknownDriverRejected(t *testing.T) {
	isolate(t)

	_, err := executeCommand("signout", "jane", "doe", "--driver", "csv")
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
