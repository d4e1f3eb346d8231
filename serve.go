package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/blogem/dues-ledger/controllers"
	ledgermiddleware "github.com/blogem/dues-ledger/middleware"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ctrl := controllers.NewControllers(a.services, a.logger)
			server := &http.Server{
				Addr:              ":" + a.cfg.Port,
				Handler:           setupRouter(ctrl, a.db, a.cfg.RequestTimeout, a.logger),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return runServer(ctx, server, a.logger)
		},
	}
}

// runServer serves until ctx is cancelled, then shuts down gracefully
func runServer(ctx context.Context, server *http.Server, logger *zap.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("dues ledger starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, db *sql.DB, timeout time.Duration, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(ledgermiddleware.Actor)
	r.Use(ledgermiddleware.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(middleware.Compress(5))

	r.Get("/", ctrl.Dashboard.Index)
	r.Post("/", ctrl.Dashboard.Query)
	r.Post("/ask", ctrl.Ledger.Ask)
	r.Get("/health", healthHandler(db))

	r.Route("/api", func(r chi.Router) {
		r.Post("/commands", ctrl.Ledger.Execute)
		r.Get("/summary", ctrl.Ledger.Summary)
		r.Get("/audit", ctrl.Ledger.Audit)
	})

	return r
}

// healthHandler reports healthy while the database answers a ping
func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"status": "unhealthy", "service": "dues-ledger"}`)
			return
		}
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, `{"status": "healthy", "service": "dues-ledger"}`)
	}
}
