package reconcile

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/google/uuid"
)

// Verdict display values.
const (
	ConfereSim = "Sim"
	ConfereNao = "Não"
)

// placeholder stands in for registry fields that came back empty.
const placeholder = "-"

// CSVHeader is the fixed two-column header of the exported report.
var CSVHeader = []string{"Informação", "Confere"}

// Row is one line of the final report.
type Row struct {
	Informacao string
	Confere    string
}

// Report is the ordered result table of a validation run. Four rows are
// appended per identifier, in the order identifiers were processed.
type Report struct {
	RunID string
	rows  []Row
}

// NewReport creates an empty report tagged with a fresh run ID.
func NewReport() *Report {
	return &Report{RunID: uuid.NewString()}
}

// Append converts field verdicts into report rows. Informational verdicts get
// an empty Confere column; everything else reads "Sim" or "Não".
func (r *Report) Append(verdicts []FieldVerdict) {
	for _, v := range verdicts {
		value := v.Value
		if value == "" {
			value = placeholder
		}
		confere := ""
		if !v.Informational {
			confere = ConfereNao
			if v.Matched {
				confere = ConfereSim
			}
		}
		r.rows = append(r.rows, Row{
			Informacao: fmt.Sprintf("%s: %s", v.Label, value),
			Confere:    confere,
		})
	}
}

// Rows returns the report lines in processing order.
func (r *Report) Rows() []Row {
	return r.rows
}

// Empty reports whether no rows have been appended.
func (r *Report) Empty() bool { return len(r.rows) == 0 }

// CSV serializes the report as UTF-8 comma-separated values with the fixed
// header.
func (r *Report) CSV() ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range r.rows {
		if err := writer.Write([]string{row.Informacao, row.Confere}); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
