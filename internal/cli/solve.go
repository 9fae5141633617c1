package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/ctxlog"
	"svw.info/sudokukit/internal/domain"
)

func newSolveCommand(o *options) *cobra.Command {
	var (
		difficulty string
		inPath     string
		outPath    string
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a board with the techniques of a difficulty tier",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxlog.WithLogger(cmd.Context(), o.logger)

			d, err := domain.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}
			g, err := readBoard(inPath, cmd.InOrStdin())
			if err != nil {
				return err
			}

			out, solved, st, err := o.service("").Solve(ctx, g, d)
			if err != nil {
				return err
			}
			o.logger.Info("solve finished",
				"solved", solved,
				"difficulty", d.String(),
				"changes", st.Changes,
				"dur", st.Duration.Round(time.Millisecond),
			)

			if err := writeBoard(outPath, out, o.outW); err != nil {
				return err
			}
			if !solved {
				return &ExitError{Code: 1, Message: fmt.Sprintf("board not solvable with %s techniques", d)}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "hard", "strongest tier the solve may use")
	cmd.Flags().StringVarP(&inPath, "in", "i", "", "board file to solve (default stdin)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the result here instead of stdout")
	return cmd
}
