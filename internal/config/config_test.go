package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/config"
)

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	if cfg.Receita.BaseURL != "https://publica.cnpj.ws" {
		t.Fatalf("unexpected default base url: %q", cfg.Receita.BaseURL)
	}
	if cfg.Timeout() != 10*time.Second {
		t.Fatalf("unexpected default timeout: %v", cfg.Timeout())
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[receita]
base_url = "https://registry.example.com/"
timeout_seconds = 3

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing file at %s, got %s (exists=%v)", path, resolved, exists)
	}
	if cfg.Receita.BaseURL != "https://registry.example.com" {
		t.Fatalf("base url not normalized: %q", cfg.Receita.BaseURL)
	}
	if cfg.Timeout() != 3*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Timeout())
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected level: %q", cfg.Logging.Level)
	}
	// Untouched sections keep defaults.
	if cfg.Output.CSVPath != "resultado_validacao_cnpj.csv" {
		t.Fatalf("unexpected csv path: %q", cfg.Output.CSVPath)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	if _, _, _, err := config.Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"zero timeout": "[receita]\ntimeout_seconds = 0\n",
		"empty url":    "[receita]\nbase_url = \" \"\n",
		"bad format":   "[logging]\nformat = \"xml\"\n",
		"bad level":    "[logging]\nlevel = \"loud\"\n",
	}
	for name, content := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, _, err := config.Load(path); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestSampleConfigMatchesDefaults(t *testing.T) {
	sample := config.SampleConfig()
	for _, want := range []string{
		`base_url = "https://publica.cnpj.ws"`,
		"timeout_seconds = 10",
		`csv_path = "resultado_validacao_cnpj.csv"`,
	} {
		if !strings.Contains(sample, want) {
			t.Errorf("sample config missing %q", want)
		}
	}
}
