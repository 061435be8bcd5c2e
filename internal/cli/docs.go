package cli

import (
	"fmt"

	"calpick/internal/docs"
	"calpick/internal/format"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newDocsCmd(app *App) *cobra.Command {
	var (
		raw    bool
		render bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "docs [topic]",
		Short: "Show built-in documentation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return writeOut(cmd, app, format.Envelope{Data: map[string]any{"topics": docs.Topics()}})
			}

			topic := args[0]
			body, ok := docs.Get(topic)
			if !ok {
				return writeErr(cmd, fmt.Errorf("unknown docs topic: %q (run `calpick docs` to list topics)", topic))
			}

			switch {
			case render:
				out, err := docs.Render(body, width, lipgloss.HasDarkBackground())
				if err != nil {
					return writeErr(cmd, err)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			case raw:
				_, err := fmt.Fprint(cmd.OutOrStdout(), body)
				return err
			}
			return writeOut(cmd, app, format.Envelope{Data: map[string]any{"topic": topic, "markdown": body}})
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown (no envelope)")
	cmd.Flags().BoolVar(&render, "render", false, "Render markdown for the terminal")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for --render")

	return cmd
}
