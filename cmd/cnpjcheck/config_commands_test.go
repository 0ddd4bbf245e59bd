package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesSample(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := runCommand(t, "config", "init")
	if err != nil {
		t.Fatalf("config init returned error: %v\n%s", err, out)
	}

	path := filepath.Join(home, ".config", "cnpjcheck", "config.toml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("sample config not written: %v", err)
	}
	if !strings.Contains(string(data), "publica.cnpj.ws") {
		t.Fatalf("sample config missing registry endpoint:\n%s", data)
	}

	if _, err := runCommand(t, "config", "init"); err == nil {
		t.Fatal("expected refusal to overwrite existing config without --force")
	}
	if _, err := runCommand(t, "config", "init", "--force"); err != nil {
		t.Fatalf("--force should allow overwrite: %v", err)
	}
}

func TestConfigShowPrintsResolvedValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("config show returned error: %v\n%s", err, out)
	}
	for _, want := range []string{"base_url", "publica.cnpj.ws", "timeout_seconds = 10"} {
		if !strings.Contains(out, want) {
			t.Errorf("config show output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigShowHonorsConfigFlag(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[receita]\nbase_url = \"https://registry.example.com\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCommand(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show returned error: %v\n%s", err, out)
	}
	if !strings.Contains(out, "registry.example.com") {
		t.Fatalf("custom config not honored:\n%s", out)
	}
}
