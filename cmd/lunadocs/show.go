package main

import (
	"fmt"

	"lunadocs/internal/render"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func NewShowCommand() *cobra.Command {
	var raw bool
	var width int

	cmd := &cobra.Command{
		Use:   "show <id-or-slug>",
		Short: "Print a section rendered for the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, a, err := loadApp(cmd, false)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := commandContext(cmd)
			sec, err := a.Sections.Get(ctx, args[0])
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprintln(cmd.OutOrStdout(), sec.Body())
				return nil
			}

			doc := a.Render.Blocks(ctx, sec)
			for _, e := range doc.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), "skipped:", e)
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return err
			}
			out, err := renderer.Render(render.Markdown(doc))
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the stored content without rendering")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "word wrap width")
	return cmd
}
