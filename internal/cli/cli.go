// Package cli implements the sudokukit command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudokukit/internal/classifier"
	"svw.info/sudokukit/internal/config"
	"svw.info/sudokukit/internal/domain"
	"svw.info/sudokukit/internal/generator"
	"svw.info/sudokukit/internal/infrastructure/storage"
	"svw.info/sudokukit/internal/ports"
	"svw.info/sudokukit/internal/solver"
	"svw.info/sudokukit/internal/usecase"
	"svw.info/sudokukit/internal/validator"
)

// ExitError carries a process exit code alongside the message.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// options holds the global flags and the state the subcommands share
// once the root command has run its setup.
type options struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.Config
	logger *slog.Logger
	outW   io.Writer
	errW   io.Writer
}

// NewRootCommand builds the sudokukit command tree. Board output goes
// to outW, logs to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	opts := &options{outW: outW, errW: errW}
	root := &cobra.Command{
		Use:           "sudokukit",
		Short:         "Generate, solve, and grade sudoku-style logic puzzles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to an HCL config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, or error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log output format: text or json")
	root.AddCommand(
		newGenerateCommand(opts),
		newSolveCommand(opts),
		newClassifyCommand(opts),
		newRenderCommand(opts),
		newServeCommand(opts),
	)
	return root
}

// setup loads the config file and builds the logger. Flags win over the
// file, the file over the defaults.
func (o *options) setup() error {
	o.cfg = config.Default()
	if o.configPath != "" {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return err
		}
		o.cfg = cfg
	}
	level := o.cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	format := o.cfg.Log.Format
	if o.logFormat != "" {
		format = o.logFormat
	}
	o.logger = newLogger(level, format, o.errW)
	return nil
}

// newLogger creates an isolated slog.Logger. Unknown levels fall back
// to info, unknown formats to text.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(formatStr) == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}

// service wires the engine components. persist may be empty for
// commands that never touch storage; Save/Load/List then report an
// unconfigured dependency.
func (o *options) service(persist string) *usecase.Service {
	rs := solver.NewRuleSolver()
	gen := generator.NewRandom(rs)
	if o.cfg.Generator.MaxRestarts > 0 {
		gen.MaxRestarts = o.cfg.Generator.MaxRestarts
	}
	var store ports.Storage
	if persist != "" {
		store = storage.NewFS(persist)
	}
	return usecase.NewService(rs, gen, classifier.New(rs), validator.New(), store)
}

// difficulty resolves the tier for a command: the flag when set,
// otherwise the configured default.
func (o *options) difficulty(flag string) (domain.Difficulty, error) {
	if flag != "" {
		return domain.ParseDifficulty(flag)
	}
	return o.cfg.Difficulty()
}

// parseCellSpec reads a region shape like "3x3" or "4X3".
func parseCellSpec(s string) (domain.CellSize, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return domain.CellSize{}, fmt.Errorf("%w: cell shape %q, want WxH", domain.ErrConfig, s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return domain.CellSize{}, fmt.Errorf("%w: cell width %q", domain.ErrConfig, parts[0])
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.CellSize{}, fmt.Errorf("%w: cell height %q", domain.ErrConfig, parts[1])
	}
	return domain.CellSize{Width: w, Height: h}, nil
}

// readBoard loads a board from path, or from in when path is empty or
// "-".
func readBoard(path string, in io.Reader) (*domain.Grid, error) {
	if path == "" || path == "-" {
		return domain.ReadGrid(in)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return domain.ReadGrid(f)
}

// writeBoard stores a board at path, or streams it to out when path is
// empty or "-".
func writeBoard(path string, g *domain.Grid, out io.Writer) error {
	if path == "" || path == "-" {
		return g.Write(out)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := g.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
