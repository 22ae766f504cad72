package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func NewSeedCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "seed-check",
		Aliases: []string{"status"},
		Short:   "Show the storage mode and what it holds",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, a, err := loadApp(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := commandContext(cmd)
			status := a.Sections.Status(ctx)
			all, err := a.Sections.List(ctx)
			if err != nil {
				return err
			}
			published, err := a.Sections.ListPublished(ctx)
			if err != nil {
				return err
			}
			list, err := a.Sections.Models(ctx)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "storage\t%s\n", status.Mode)
			fmt.Fprintf(w, "read-only\t%t\n", status.ReadOnly)
			fmt.Fprintf(w, "database\t%s\n", cfg.GetDSNSafe())
			fmt.Fprintf(w, "sections\t%d (%d published)\n", len(all), len(published))
			fmt.Fprintf(w, "models\t%d\n", len(list))
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout())
			w = tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ORDER\tSLUG\tGROUP\tPUBLISHED")
			for _, s := range all {
				fmt.Fprintf(w, "%d\t%s\t%s\t%t\n", s.OrderIndex, s.Slug, s.GroupName, s.IsPublished)
			}
			return w.Flush()
		},
	}
}
