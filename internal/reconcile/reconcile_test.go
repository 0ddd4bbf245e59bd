package reconcile_test

import (
	"testing"

	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/receita"
	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/reconcile"
)

func TestReconcileFixedOrder(t *testing.T) {
	verdicts := reconcile.Reconcile(receita.Record{CNPJ: "12.345.678/0001-95"}, nil)
	if len(verdicts) != 4 {
		t.Fatalf("expected 4 verdicts, got %d", len(verdicts))
	}
	wantLabels := []string{
		reconcile.LabelCNPJ,
		reconcile.LabelRazaoSocial,
		reconcile.LabelMunicipio,
		reconcile.LabelSituacao,
	}
	for i, want := range wantLabels {
		if verdicts[i].Label != want {
			t.Errorf("verdict %d label = %q, want %q", i, verdicts[i].Label, want)
		}
	}
	if !verdicts[3].Informational {
		t.Error("status verdict must be informational")
	}
}

func TestReconcileCaseInsensitiveName(t *testing.T) {
	rec := receita.Record{
		CNPJ:        "12.345.678/0001-95",
		Outcome:     receita.OutcomeFound,
		RazaoSocial: "ACME LTDA",
	}
	cells := []string{"pedido 42", "Acme Ltda", "12.345.678/0001-95"}

	verdicts := reconcile.Reconcile(rec, cells)
	if !verdicts[0].Matched {
		t.Error("CNPJ present in a cell should match")
	}
	if !verdicts[1].Matched {
		t.Error("legal name should match case-insensitively")
	}
}

func TestReconcileNameAbsentFromTable(t *testing.T) {
	rec := receita.Record{
		CNPJ:        "12.345.678/0001-95",
		Outcome:     receita.OutcomeFound,
		RazaoSocial: "ACME LTDA",
	}
	verdicts := reconcile.Reconcile(rec, []string{"Beta SA", "algo"})
	if verdicts[1].Matched {
		t.Error("name appearing nowhere in the table must not match")
	}
}

func TestReconcileEmptyRegistryFieldNeverMatches(t *testing.T) {
	rec := receita.Record{
		CNPJ:    "12.345.678/0001-95",
		Outcome: receita.OutcomeFound,
	}
	// Cells include empty strings; an empty needle still must not match.
	verdicts := reconcile.Reconcile(rec, []string{"", "anything"})
	if verdicts[1].Matched || verdicts[2].Matched {
		t.Errorf("empty registry fields must report no match: %+v", verdicts)
	}
}

func TestReconcileScansWholeTableNotJustOneRow(t *testing.T) {
	rec := receita.Record{
		CNPJ:      "12.345.678/0001-95",
		Outcome:   receita.OutcomeFound,
		Municipio: "Campinas",
	}
	// Municipality lives in a different row than the identifier.
	cells := []string{"12.345.678/0001-95", "x", "nota", "filial campinas"}
	verdicts := reconcile.Reconcile(rec, cells)
	if !verdicts[2].Matched {
		t.Error("municipality should match against any cell in the table")
	}
}

func TestReportScenarioFoundWithEmptyMunicipio(t *testing.T) {
	rec := receita.Record{
		CNPJ:        "12.345.678/0001-95",
		Outcome:     receita.OutcomeFound,
		RazaoSocial: "ACME LTDA",
		Situacao:    "Ativa",
	}
	cells := []string{"12.345.678/0001-95", "Acme Ltda"}

	report := reconcile.NewReport()
	report.Append(reconcile.Reconcile(rec, cells))

	want := []reconcile.Row{
		{Informacao: "CNPJ: 12.345.678/0001-95", Confere: "Sim"},
		{Informacao: "Razão Social: ACME LTDA", Confere: "Sim"},
		{Informacao: "Município: -", Confere: "Não"},
		{Informacao: "Situação Cadastral: Ativa", Confere: ""},
	}
	rows := report.Rows()
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestReportLookupErrorRow(t *testing.T) {
	rec := receita.Record{
		CNPJ:     "12.345.678/0001-95",
		Outcome:  receita.OutcomeError,
		Situacao: "Erro: context deadline exceeded",
	}

	report := reconcile.NewReport()
	report.Append(reconcile.Reconcile(rec, []string{"12.345.678/0001-95"}))

	rows := report.Rows()
	status := rows[3]
	if status.Informacao != "Situação Cadastral: Erro: context deadline exceeded" {
		t.Fatalf("unexpected status row: %+v", status)
	}
	if status.Confere != "" {
		t.Fatalf("status row must carry no verdict, got %q", status.Confere)
	}
}
