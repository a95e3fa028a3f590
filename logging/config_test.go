package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != "INFO" {
		t.Errorf("Level = %q, want %q", cfg.Level, "INFO")
	}
	if cfg.Color != "always" {
		t.Errorf("Color = %q, want %q", cfg.Color, "always")
	}
	if cfg.Dir != DefaultDir {
		t.Errorf("Dir = %q, want %q", cfg.Dir, DefaultDir)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logging.toml")
	content := `
level = "DEBUG"
color = "never"

[levels]
"school.db" = "WARNING"

[silence]
urllib3 = "ERROR"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Level != "DEBUG" {
		t.Errorf("Level = %q, want %q", cfg.Level, "DEBUG")
	}
	if cfg.Color != "never" {
		t.Errorf("Color = %q, want %q", cfg.Color, "never")
	}
	// Keys absent from the file keep their defaults.
	if cfg.Dir != DefaultDir {
		t.Errorf("Dir = %q, want default %q", cfg.Dir, DefaultDir)
	}
	if cfg.Levels["school.db"] != "WARNING" {
		t.Errorf("Levels[school.db] = %q, want %q", cfg.Levels["school.db"], "WARNING")
	}
	if cfg.Silence["urllib3"] != "ERROR" {
		t.Errorf("Silence[urllib3] = %q, want %q", cfg.Silence["urllib3"], "ERROR")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
	if !strings.Contains(err.Error(), "no config file found") {
		t.Errorf("error = %q, want mention of the missing file", err)
	}
}

func TestLoadConfigParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte("level = [unclosed"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected parse error for malformed TOML")
	}
}

func TestConfigSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "logging.toml")
	cfg := &Config{
		Level:   "WARNING",
		Color:   "auto",
		Dir:     "later",
		Levels:  map[string]string{"a": "ERROR"},
		Silence: map[string]string{"b": "WARNING"},
	}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got.Level != "WARNING" || got.Color != "auto" || got.Dir != "later" {
		t.Errorf("reloaded config mismatch: %+v", got)
	}
	if got.Levels["a"] != "ERROR" || got.Silence["b"] != "WARNING" {
		t.Errorf("tables lost on reload: %+v", got)
	}
}

func TestConfigOptions(t *testing.T) {
	cfg := &Config{Color: "never", Dir: "elsewhere"}
	r := NewRegistry(cfg.Options()...)
	if r.color != ColorNever {
		t.Errorf("color = %v, want %v", r.color, ColorNever)
	}
	if r.dir != "elsewhere" {
		t.Errorf("dir = %q, want %q", r.dir, "elsewhere")
	}
}

func TestConfigApply(t *testing.T) {
	r, buf, cleanup := testRegistry(t)
	defer cleanup()

	cfg := &Config{
		Levels:  map[string]string{"school.db": "ERROR"},
		Silence: map[string]string{"urllib3": "WARNING"},
	}
	if err := cfg.Apply(r); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	db, err := r.GetLogger("school.db", "DEBUG")
	if err != nil {
		t.Fatalf("GetLogger db: %v", err)
	}
	lib, err := r.GetLogger("urllib3", "DEBUG")
	if err != nil {
		t.Fatalf("GetLogger urllib3: %v", err)
	}

	db.Warning("hidden on console")
	db.Error("shown")
	lib.Info("gone entirely")

	lines := consoleLines(buf)
	if len(lines) != 1 || !strings.Contains(lines[0], "[ERROR] - shown") {
		t.Errorf("console lines = %q, want only the ERROR record", lines)
	}

	// [levels] entries only move the console threshold, [silence] entries
	// cut the record before every sink.
	content := readLogFile(t, r)
	if !strings.Contains(content, "hidden on console") {
		t.Error("console-filtered record should still reach the file")
	}
	if strings.Contains(content, "gone entirely") {
		t.Error("silenced record should not reach the file")
	}
}
