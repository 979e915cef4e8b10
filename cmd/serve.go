package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/yumyai/cgcfinder/config"
	"github.com/yumyai/cgcfinder/internal/util"
	"github.com/yumyai/cgcfinder/logger"
	"github.com/yumyai/cgcfinder/pkg/db"
	"github.com/yumyai/cgcfinder/pkg/handler"
	"github.com/yumyai/cgcfinder/pkg/middle"
	"go.uber.org/zap"
)

func newServeCmd(shared *pflag.FlagSet) *cobra.Command {
	v := config.NewViper()

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Browse runs stored with --db over HTTP",
		Long: `Browse runs stored with --db over HTTP

Routes:
  GET /api/v1/health
  GET /api/v1/runs
  GET /api/v1/runs/{run_id}/clusters[?filtered=true]
  GET /runs/{run_id}[?filtered=true]`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := setup(v); err != nil {
				return err
			}

			c, err := config.NewServeConfig(v)
			if err != nil {
				return err
			}
			if c.DB == "" {
				return fmt.Errorf("%w: serve needs --db", config.ErrInvalidConfig)
			}
			if !util.FileExists(c.DB) {
				return fmt.Errorf("%w: database %q does not exist", config.ErrInvalidConfig, c.DB)
			}
			return serve(cmd.Context(), c)
		},
	}

	serveCmd.Flags().String("db", "", "sqlite database written by cgcfinder --db")
	serveCmd.Flags().String("addr", "0.0.0.0:8080", "address to listen on")

	bindFlags(v, shared, sharedKeys)
	bindFlags(v, serveCmd.Flags(), map[string]string{
		"db":   "db",
		"addr": "addr",
	})

	return serveCmd
}

// newServer wires the store into the router and middleware.
func newServer(addr string, store *db.ClusterDB) *http.Server {
	httpLog := logger.Named("http")

	mux := handler.NewRouter(&handler.DBContext{Store: store})
	return &http.Server{
		Addr: addr,
		Handler: middle.Chain(mux,
			middle.RequestIDMiddleware(httpLog),
			middle.LoggingMiddleware(httpLog)),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// serve runs the browser until ctx is done or an interrupt arrives.
func serve(ctx context.Context, c config.ServeConfig) error {
	store, err := db.OpenClusterDB(c.DB)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := newServer(c.Addr, store)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", zap.String("addr", c.Addr), zap.String("db", c.DB))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", c.Addr, err)
	case <-ctx.Done():
	}

	logger.Info("Server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
