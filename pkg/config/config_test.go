package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
)

func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "players:\n  first: Alice\n  second: Bob\nlog-level: debug\ncolor: false\n")

	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if diff := cmp.Diff(Players{First: "Alice", Second: "Bob"}, config.Players); diff != "" {
		t.Errorf("Players mismatch (-want +got):\n%s", diff)
	}

	if level, err := config.Level(); err != nil || level != logrus.DebugLevel {
		t.Errorf("Level() = %v, %v; want debug", level, err)
	}

	if config.Colored() {
		t.Error("Colored() = true, want false")
	}
}

func TestLoadMissing(t *testing.T) {
	config, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if diff := cmp.Diff(&Config{}, config); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}

	if level, _ := config.Level(); level != logrus.InfoLevel {
		t.Errorf("Level() = %v, want info", level)
	}

	if !config.Colored() {
		t.Error("Colored() = false, want true")
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad yaml", "players: [\n"},
		{"bad log level", "log-level: loud\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.text)); err == nil {
				t.Error("Load() returned no error")
			}
		})
	}
}

func TestPath(t *testing.T) {
	t.Setenv(EnvVariable, "")
	if got := Path(""); got != File {
		t.Errorf("Path(\"\") = %q, want %q", got, File)
	}

	t.Setenv(EnvVariable, "/tmp/env.yaml")
	if got := Path(""); got != "/tmp/env.yaml" {
		t.Errorf("Path(\"\") = %q, want the environment value", got)
	}

	if got := Path("/tmp/flag.yaml"); got != "/tmp/flag.yaml" {
		t.Errorf("Path(flag) = %q, want the flag value", got)
	}
}
