package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/keyedit/internal/config/loader"
)

func noEnv() loader.Loader {
	return loader.NewEnvLoaderFrom(loader.DefaultEnvPrefix, nil)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadConfigTOML(t *testing.T) {
	reg, _ := newRegistry()
	path := writeFile(t, "keyedit.toml", "target = \"#textarea\"\nindent_width = 4\n")

	cfg, err := LoadConfig(Source{Path: path, Env: noEnv()}, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IndentWidth() != 4 {
		t.Errorf("expected width 4, got %d", cfg.IndentWidth())
	}
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	reg, _ := newRegistry()
	path := writeFile(t, "keyedit.yaml", "target: \"#textarea\"\nindent_width: 4\n")
	env := loader.NewEnvLoaderFrom(loader.DefaultEnvPrefix, []string{"KEYEDIT_INDENT_WIDTH=8"})

	cfg, err := LoadConfig(Source{Path: path, Env: env}, reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IndentWidth() != 8 {
		t.Errorf("expected env override 8, got %d", cfg.IndentWidth())
	}
}

func TestLoadConfigMissingFileMissingTarget(t *testing.T) {
	reg, _ := newRegistry()
	_, err := LoadConfig(Source{Path: filepath.Join(t.TempDir(), "none.toml"), Env: noEnv()}, reg)
	if !errors.Is(err, ErrMissingRequiredOption) {
		t.Errorf("expected ErrMissingRequiredOption, got %v", err)
	}
}

func TestLoadSettings(t *testing.T) {
	cfg, err := LoadSettings(Source{Env: noEnv()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IndentWidth() != DefaultIndentWidth {
		t.Errorf("expected defaults, got width %d", cfg.IndentWidth())
	}

	path := writeFile(t, "keyedit.toml", "indent_width = 3\npairs = [\"()\"]\n")
	cfg, err = LoadSettings(Source{Path: path, Env: noEnv()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.IndentWidth() != 3 || cfg.Pairs().Len() != 1 {
		t.Errorf("unexpected settings: width %d, %d pairs", cfg.IndentWidth(), cfg.Pairs().Len())
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	path := writeFile(t, "keyedit.toml", "indent_width = -2\n")
	_, err := LoadSettings(Source{Path: path, Env: noEnv()})
	if !errors.Is(err, ErrInvalidIndentWidth) {
		t.Errorf("expected ErrInvalidIndentWidth, got %v", err)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := LoadSettings(Source{Path: "settings.json", Env: noEnv()})
	if !errors.Is(err, loader.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}
