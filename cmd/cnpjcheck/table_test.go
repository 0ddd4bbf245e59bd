package main

import (
	"strings"
	"testing"
)

func TestRenderTableWithHeader(t *testing.T) {
	out := renderTable([]string{"Informação", "Confere"}, [][]string{
		{"CNPJ: 12.345.678/0001-95", "Sim"},
		{"Município: -", "Não"},
	})
	for _, want := range []string{"Informação", "Confere", "CNPJ: 12.345.678/0001-95", "Sim", "Não"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTableWithoutHeader(t *testing.T) {
	out := renderTable(nil, [][]string{{"a", "b"}, {"c"}})
	if !strings.Contains(out, "a") || !strings.Contains(out, "c") {
		t.Fatalf("rendered table missing cells:\n%s", out)
	}
}

func TestRenderTableEmpty(t *testing.T) {
	if out := renderTable(nil, nil); out != "" {
		t.Fatalf("expected empty render, got %q", out)
	}
}
