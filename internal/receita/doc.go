// Package receita queries the public Receita Federal registry
// (publica.cnpj.ws) for company data keyed by CNPJ.
//
// Lookup failures are folded into the returned Record rather than surfaced as
// Go errors: a lookup has exactly three outcomes (found, not found, error) and
// downstream code switches over the Outcome tag so every case is handled. One
// sheet entry failing must never abort validation of the rest.
package receita
