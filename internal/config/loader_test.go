package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".ccc.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigReadsExplicitFile(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, `roots:
  - `+root+`
dep_depth_max: 2
sig_tokens: 1024
sig_detailed: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if len(cfg.Roots) != 1 || cfg.Roots[0] != root {
		t.Fatalf("unexpected roots: %#v", cfg.Roots)
	}
	if cfg.DepDepthMax != 2 {
		t.Fatalf("expected dep_depth_max=2, got %d", cfg.DepDepthMax)
	}
	if cfg.SigTokens != 1024 {
		t.Fatalf("expected sig_tokens=1024, got %d", cfg.SigTokens)
	}
	if !cfg.SigDetailed {
		t.Fatal("expected sig_detailed=true")
	}
}

func TestLoadConfigAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "verbose: true\n")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.DepDepthMax != NoDepthLimit {
		t.Fatalf("expected unlimited depth default, got %d", cfg.DepDepthMax)
	}
	if cfg.SigTokens != 0 {
		t.Fatalf("expected sig_tokens default 0, got %d", cfg.SigTokens)
	}
	if !cfg.Verbose {
		t.Fatal("expected verbose from file")
	}
}

func TestLoadConfigExplicitMissingFileErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadConfigRejectsMissingRoot(t *testing.T) {
	path := writeConfig(t, `roots:
  - /does/not/exist
`)

	_, err := LoadConfig(path)
	if !errors.Is(err, ErrRootNotFound) {
		t.Fatalf("expected ErrRootNotFound, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"depth below sentinel", Config{DepDepthMax: -2}, ErrInvalidDepDepthMax},
		{"negative sig tokens", Config{DepDepthMax: NoDepthLimit, SigTokens: -1}, ErrInvalidSigTokens},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
