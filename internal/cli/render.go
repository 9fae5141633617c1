package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/render"
)

func newRenderCommand(o *options) *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Pretty-print a board with region separators",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readBoard(inPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprint(o.outW, render.Text(g))
			return nil
		},
	}
	cmd.Flags().StringVarP(&inPath, "in", "i", "", "board file to render (default stdin)")
	return cmd
}
