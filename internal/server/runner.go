package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/chatarr/internal/session"
)

// Runner owns the HTTP listener and the periodic session sweep. It blocks
// until the context is canceled, then shuts the listener down gracefully.
type Runner struct {
	addr          string
	handler       http.Handler
	memory        *session.MemoryStore // nil when sessions live in Redis
	sweepInterval time.Duration
	logger        *slog.Logger
}

// NewRunner creates a runner for the given handler. memory may be nil when
// the session store does its own expiry.
func NewRunner(addr string, handler http.Handler, memory *session.MemoryStore, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		addr:          addr,
		handler:       handler,
		memory:        memory,
		sweepInterval: time.Minute,
		logger:        logger,
	}
}

// Run starts the server components and blocks until ctx is canceled or a
// component fails.
func (r *Runner) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              r.addr,
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("listening", "addr", r.addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if r.memory != nil {
		g.Go(func() error {
			ticker := time.NewTicker(r.sweepInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return nil
				case <-ticker.C:
					if purged := r.memory.PurgeExpired(); purged > 0 {
						r.logger.Debug("purged expired sessions", "count", purged)
					}
				}
			}
		})
	}

	return g.Wait()
}
