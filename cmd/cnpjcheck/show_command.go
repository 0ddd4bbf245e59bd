package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DaniRochaC/ordem-de-venda-CNPJ/internal/sheet"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <arquivo>",
		Short: "Preview the loaded spreadsheet table",
		Long: `Render the file exactly as the validator will see it: first column
dropped, rows blank-padded. Useful for checking what the matching step scans.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl, err := sheet.Load(args[0])
			if err != nil {
				return fmt.Errorf("load spreadsheet: %w", err)
			}
			if tbl.Empty() {
				fmt.Fprintln(cmd.OutOrStdout(), "⚠️  Arquivo vazio.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "📋 Prévia dos dados do arquivo")
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(nil, tbl.Rows()))
			return nil
		},
	}
	return cmd
}
