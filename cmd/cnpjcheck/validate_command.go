package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/logging"
	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/receita"
	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/reconcile"
	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/sheet"
	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/validator"
)

func newValidateCommand(ctx *commandContext) *cobra.Command {
	var outputPath string
	var save bool
	var force bool
	var noProgress bool
	var baseURL string
	var timeoutSeconds int

	cmd := &cobra.Command{
		Use:   "validate <arquivo>",
		Short: "Validate spreadsheet CNPJs against the Receita Federal registry",
		Long: `Load an xlsx or csv file, extract every CNPJ, look each unique one up
against the public registry, and report whether the legal name, municipality,
and registration status appear anywhere in the file.

Examples:
  cnpjcheck validate ordens.xlsx
  cnpjcheck validate ordens.csv -o resultado.csv
  cnpjcheck validate ordens.xlsx --base-url http://localhost:8080`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			tbl, err := sheet.Load(args[0])
			if err != nil {
				return fmt.Errorf("load spreadsheet: %w", err)
			}

			registryURL := cfg.Receita.BaseURL
			if baseURL != "" {
				registryURL = baseURL
			}
			timeout := cfg.Timeout()
			if timeoutSeconds > 0 {
				timeout = time.Duration(timeoutSeconds) * time.Second
			}
			client, err := receita.New(registryURL, receita.WithTimeout(timeout))
			if err != nil {
				return fmt.Errorf("create registry client: %w", err)
			}

			unique := validator.UniqueCNPJs(tbl)
			if len(unique) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "⚠️  Nenhum CNPJ encontrado no arquivo.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✅ %d CNPJ(s) encontrados. Iniciando validação...\n", len(unique))

			progress := validator.Progress(nil)
			if !noProgress && isatty.IsTerminal(os.Stdout.Fd()) {
				bar := progressbar.NewOptions(len(unique),
					progressbar.OptionSetDescription("Consultando Receita"),
					progressbar.OptionSetWriter(cmd.ErrOrStderr()),
					progressbar.OptionShowCount(),
					progressbar.OptionClearOnFinish(),
				)
				progress = func(done, total int) {
					_ = bar.Set(done)
				}
			}

			runner := validator.NewRunner(client, logger)
			report, err := runner.Run(cmd.Context(), tbl, progress)
			if errors.Is(err, validator.ErrNoCNPJs) {
				fmt.Fprintln(cmd.OutOrStdout(), "⚠️  Nenhum CNPJ encontrado no arquivo.")
				return nil
			}
			if err != nil {
				return fmt.Errorf("run validation: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "📊 Informações da Receita Federal")
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(report))

			destination := outputPath
			if destination == "" && save {
				destination = cfg.Output.CSVPath
			}
			if destination != "" {
				if err := writeCSV(report, destination, force || cfg.Output.OverwriteExisting); err != nil {
					return err
				}
				logger.Info("report exported",
					logging.String("path", destination),
					logging.String("run_id", report.RunID),
				)
				fmt.Fprintf(cmd.OutOrStdout(), "💾 Resultado salvo em %s\n", destination)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report as CSV to this path")
	cmd.Flags().BoolVar(&save, "save", false, "Write the report CSV to the configured output.csv_path")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite the CSV file if it already exists")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Disable the progress bar")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "Registry endpoint override (default: configured receita.base_url)")
	cmd.Flags().IntVar(&timeoutSeconds, "timeout", 0, "Registry request timeout in seconds (default: configured receita.timeout_seconds)")

	return cmd
}

func renderReport(report *reconcile.Report) string {
	rows := make([][]string, 0, len(report.Rows()))
	for _, row := range report.Rows() {
		rows = append(rows, []string{row.Informacao, row.Confere})
	}
	return renderTable(reconcile.CSVHeader, rows)
}

func writeCSV(report *reconcile.Report, path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	data, err := report.CSV()
	if err != nil {
		return fmt.Errorf("serialize report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
