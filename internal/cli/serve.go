package cli

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudokukit/internal/adapters/http"
	"svw.info/sudokukit/internal/ctxlog"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger logs method, path, status, bytes, and duration, and
// attaches the logger to the request context for the engine's debug
// logging.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r.WithContext(ctxlog.WithLogger(r.Context(), logger)))
		dur := time.Since(start)
		logger.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", dur.Round(time.Millisecond),
		)
	})
}

func newServeCommand(o *options) *cobra.Command {
	var (
		addr    string
		persist string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = o.cfg.Server.Addr
			}
			if persist == "" {
				persist = o.cfg.Server.Persist
			}
			if err := os.MkdirAll(persist, 0o755); err != nil {
				return err
			}

			mux := http.NewServeMux()
			httpadapter.New(o.service(persist)).Register(mux)

			srv := &http.Server{
				Addr:              addr,
				Handler:           requestLogger(o.logger, mux),
				ReadHeaderTimeout: 5 * time.Second,
			}
			o.logger.Info("listening", "addr", addr, "persist", persist)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&persist, "persist", "", "save directory (default from config)")
	return cmd
}
