package cli

import (
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/ctxlog"
)

func newGenerateCommand(o *options) *cobra.Command {
	var (
		cellSpec    string
		difficulty  string
		handicap    int
		seed        int64
		outPath     string
		solutionOut string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a puzzle and write it as board text",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := ctxlog.WithLogger(cmd.Context(), o.logger)

			cell := o.cfg.Cell()
			if cellSpec != "" {
				var err error
				if cell, err = parseCellSpec(cellSpec); err != nil {
					return err
				}
			}
			d, err := o.difficulty(difficulty)
			if err != nil {
				return err
			}
			h := o.cfg.Generator.Handicap
			if cmd.Flags().Changed("handicap") {
				h = handicap
			}

			p, st, err := o.service("").Generate(ctx, seed, cell, d, h)
			if err != nil {
				return err
			}
			givens, err := p.GivensGrid()
			if err != nil {
				return err
			}
			o.logger.Info("puzzle generated",
				"id", p.ID,
				"difficulty", p.Difficulty.String(),
				"givens", givens.FilledCount(),
				"restarts", st.Restarts,
				"dur", st.Duration.Round(time.Millisecond),
			)

			if err := writeBoard(outPath, givens, o.outW); err != nil {
				return err
			}
			if solutionOut != "" {
				solution, err := p.SolutionGrid()
				if err != nil {
					return err
				}
				if err := writeBoard(solutionOut, solution, o.outW); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cellSpec, "cell", "", "region shape as WxH (default from config)")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "easy, normal, or hard (default from config)")
	cmd.Flags().IntVar(&handicap, "handicap", 0, "extra givens pinned back onto the board")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed; 0 draws one from the clock")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the puzzle here instead of stdout")
	cmd.Flags().StringVar(&solutionOut, "solution-out", "", "also write the full solution here")
	return cmd
}
