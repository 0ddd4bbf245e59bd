package reconcile

import (
	"strings"

	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/receita"
)

// Row labels, fixed by the report contract of the original tool.
const (
	LabelCNPJ        = "CNPJ"
	LabelRazaoSocial = "Razão Social"
	LabelMunicipio   = "Município"
	LabelSituacao    = "Situação Cadastral"
)

// FieldVerdict is the outcome of checking one registry field against the
// sheet. Informational fields carry no verdict; they are displayed as-is.
type FieldVerdict struct {
	Label         string
	Value         string
	Matched       bool
	Informational bool
}

// Reconcile checks a registry record against every cell of the loaded table
// and returns exactly four verdicts, in fixed order: CNPJ, legal name,
// municipality, cadastral status. The status row is display-only. An empty
// registry value never matches, since there is no needle to search for.
func Reconcile(rec receita.Record, cells []string) []FieldVerdict {
	return []FieldVerdict{
		{
			Label:   LabelCNPJ,
			Value:   rec.CNPJ,
			Matched: containsExact(cells, rec.CNPJ),
		},
		{
			Label:   LabelRazaoSocial,
			Value:   rec.RazaoSocial,
			Matched: containsFold(cells, rec.RazaoSocial),
		},
		{
			Label:   LabelMunicipio,
			Value:   rec.Municipio,
			Matched: containsFold(cells, rec.Municipio),
		},
		{
			Label:         LabelSituacao,
			Value:         rec.Situacao,
			Informational: true,
		},
	}
}

// containsExact reports whether needle occurs verbatim in any cell. CNPJs are
// digits and punctuation, so case handling is irrelevant for them.
func containsExact(cells []string, needle string) bool {
	if needle == "" {
		return false
	}
	for _, cell := range cells {
		if strings.Contains(cell, needle) {
			return true
		}
	}
	return false
}

// containsFold reports whether needle occurs in any cell ignoring case.
func containsFold(cells []string, needle string) bool {
	if needle == "" {
		return false
	}
	needle = strings.ToLower(needle)
	for _, cell := range cells {
		if strings.Contains(strings.ToLower(cell), needle) {
			return true
		}
	}
	return false
}
