package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"lunadocs/internal/models"
	"lunadocs/internal/services"

	"github.com/spf13/cobra"
)

func NewExportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every section to a JSON export file",
		Long:  `Writes all sections in the same format as the admin export download. Use -o - for stdout.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := loadApp(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			doc, err := a.Transfer.Export(commandContext(cmd))
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			body, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}

			if output == "-" {
				_, err = cmd.OutOrStdout().Write(append(body, '\n'))
				return err
			}
			if output == "" {
				output = services.ExportFileName(time.Now())
			}
			if err := os.WriteFile(output, body, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d sections to %s\n", len(doc.Sections), output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default lunaby-docs-export-<ms>.json)")
	return cmd
}

func NewImportCommand() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import sections from an export file",
		Long:  `Creates one section per record. Records that fail are skipped and counted. --replace deletes existing sections first.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var req models.ImportRequest
			if err := json.Unmarshal(raw, &req); err != nil {
				return fmt.Errorf("invalid data format: %w", err)
			}
			req.ReplaceAll = replace

			_, a, err := loadApp(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.Transfer.Import(commandContext(cmd), req)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			if res.Failed > 0 || res.Deleted > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "failed: %d, deleted: %d\n", res.Failed, res.Deleted)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "delete all existing sections before importing")
	return cmd
}
