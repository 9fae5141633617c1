package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/ctxlog"
)

func newClassifyCommand(o *options) *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Grade a board by the weakest tier that solves it",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxlog.WithLogger(cmd.Context(), o.logger)

			g, err := readBoard(inPath, cmd.InOrStdin())
			if err != nil {
				return err
			}
			d, known, st, err := o.service("").Classify(ctx, g)
			if err != nil {
				return err
			}
			o.logger.Info("board graded",
				"known", known,
				"changes", st.Changes,
				"dur", st.Duration.Round(time.Millisecond),
			)

			if !known {
				fmt.Fprintln(o.outW, "unknown")
				return nil
			}
			fmt.Fprintln(o.outW, d.String())
			return nil
		},
	}
	cmd.Flags().StringVarP(&inPath, "in", "i", "", "board file to grade (default stdin)")
	return cmd
}
