package receita

// Outcome tags the three possible results of a registry lookup.
type Outcome int

const (
	// OutcomeFound means the registry returned company data.
	OutcomeFound Outcome = iota
	// OutcomeNotFound means the registry answered with a non-200 status.
	OutcomeNotFound
	// OutcomeError means the request or response handling failed.
	OutcomeError
)

// Record is the canonical result of one registry lookup. CNPJ always carries
// the formatted identifier the lookup was issued for; the remaining fields are
// populated only for OutcomeFound. Situacao is a display string in every
// variant ("Não encontrado na Receita" for not-found, "Erro: <message>" for
// failures).
type Record struct {
	CNPJ        string
	Outcome     Outcome
	RazaoSocial string
	Municipio   string
	Situacao    string
	Err         error
}
