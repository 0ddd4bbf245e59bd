package validator

import (
	"context"
	"errors"
	"log/slog"

	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/cnpj"
	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/logging"
	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/receita"
	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/reconcile"
	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/sheet"
)

// ErrNoCNPJs indicates the sheet contained nothing shaped like a CNPJ. The
// caller surfaces it as a warning; no report exists in that case.
var ErrNoCNPJs = errors.New("no CNPJs found in the spreadsheet")

// Progress is invoked after each completed lookup with the number of
// identifiers processed so far and the total to process.
type Progress func(done, total int)

// UniqueCNPJs extracts every CNPJ from the table and collapses duplicates,
// preserving first-appearance order.
func UniqueCNPJs(tbl *sheet.Table) []string {
	var found []string
	for _, cell := range tbl.Cells() {
		found = append(found, cnpj.Extract(cell)...)
	}
	return cnpj.Unique(found)
}

// Runner drives the sequential validation loop.
type Runner struct {
	client receita.Looker
	logger *slog.Logger
}

// NewRunner creates a runner around a registry client. A nil logger disables
// logging.
func NewRunner(client receita.Looker, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{client: client, logger: logger}
}

// Run validates the table and returns the aggregated report. Each unique CNPJ
// gets exactly one lookup; lookup failures become report content rather than
// aborting the run. Returns ErrNoCNPJs when extraction finds nothing.
func (r *Runner) Run(ctx context.Context, tbl *sheet.Table, progress Progress) (*reconcile.Report, error) {
	cells := tbl.Cells()
	unique := UniqueCNPJs(tbl)
	if len(unique) == 0 {
		return nil, ErrNoCNPJs
	}

	report := reconcile.NewReport()
	logger := r.logger.With(logging.String("run_id", report.RunID))
	logger.Info("starting validation",
		logging.Int("cells", len(cells)),
		logging.Int("unique_cnpjs", len(unique)),
	)

	for i, formatted := range unique {
		rec := r.client.Lookup(ctx, formatted)
		switch rec.Outcome {
		case receita.OutcomeFound:
			logger.Debug("registry lookup succeeded",
				logging.String("cnpj", formatted),
				logging.String("razao_social", rec.RazaoSocial),
			)
		case receita.OutcomeNotFound:
			logger.Warn("cnpj not found in registry", logging.String("cnpj", formatted))
		case receita.OutcomeError:
			logger.Warn("registry lookup failed",
				logging.String("cnpj", formatted),
				logging.Error(rec.Err),
			)
		}

		report.Append(reconcile.Reconcile(rec, cells))
		if progress != nil {
			progress(i+1, len(unique))
		}
	}

	logger.Info("validation finished", logging.Int("rows", len(report.Rows())))
	return report, nil
}
