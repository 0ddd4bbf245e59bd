package receita

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/cnpj"
)

// StatusNotFound is the display status for CNPJs the registry does not know.
const StatusNotFound = "Não encontrado na Receita"

// statusDefault is assumed when the registry omits the cadastral status.
// Treating an absent status as active is a simplifying assumption inherited
// from the original tool; the public schema does not document whether the
// field can legitimately be missing.
const statusDefault = "Ativo"

// Looker defines the registry lookup operation used by the validator.
type Looker interface {
	Lookup(ctx context.Context, formattedCNPJ string) Record
}

// Client provides access to the Receita Federal public registry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ Looker = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout overrides the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// New creates a registry client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("receita base url required")
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// payload models the subset of the publica.cnpj.ws response the validator
// consumes. The municipality lives either on the nested establishment or, in
// older payloads, at the top level.
type payload struct {
	RazaoSocial     string `json:"razao_social"`
	Municipio       string `json:"municipio"`
	Situacao        string `json:"descricao_situacao_cadastral"`
	Estabelecimento struct {
		Cidade struct {
			Nome string `json:"nome"`
		} `json:"cidade"`
	} `json:"estabelecimento"`
}

func (p payload) municipio() string {
	if nome := p.Estabelecimento.Cidade.Nome; nome != "" {
		return nome
	}
	return p.Municipio
}

func (p payload) situacao() string {
	if p.Situacao == "" {
		return statusDefault
	}
	return p.Situacao
}

// Lookup fetches the registry record for a formatted CNPJ. The identifier is
// reduced to its digits for the request; the formatted form is echoed back on
// the record. Failures never propagate as errors; they become the record's
// outcome, so one bad identifier cannot abort a validation run.
func (c *Client) Lookup(ctx context.Context, formattedCNPJ string) Record {
	endpoint := fmt.Sprintf("%s/cnpj/%s", c.baseURL, cnpj.Digits(formattedCNPJ))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errorRecord(formattedCNPJ, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errorRecord(formattedCNPJ, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Record{
			CNPJ:     formattedCNPJ,
			Outcome:  OutcomeNotFound,
			Situacao: StatusNotFound,
		}
	}

	var body payload
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return errorRecord(formattedCNPJ, err)
	}

	return Record{
		CNPJ:        formattedCNPJ,
		Outcome:     OutcomeFound,
		RazaoSocial: body.RazaoSocial,
		Municipio:   body.municipio(),
		Situacao:    body.situacao(),
	}
}

func errorRecord(formattedCNPJ string, err error) Record {
	return Record{
		CNPJ:     formattedCNPJ,
		Outcome:  OutcomeError,
		Situacao: "Erro: " + err.Error(),
		Err:      err,
	}
}
