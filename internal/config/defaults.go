package config

const (
	defaultReceitaBaseURL = "https://publica.cnpj.ws"
	defaultTimeoutSeconds = 10
	defaultCSVPath        = "resultado_validacao_cnpj.csv"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Receita: Receita{
			BaseURL:        defaultReceitaBaseURL,
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Output: Output{
			CSVPath: defaultCSVPath,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
