package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/fivetwenty-io/repuestos/internal/fakeapi"
	"github.com/fivetwenty-io/repuestos/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewDevServerCommand creates the dev-server command.
func NewDevServerCommand() *cobra.Command {
	var (
		addr  string
		empty bool
	)

	cmd := &cobra.Command{
		Use:   "dev-server",
		Short: "Run an in-memory API for local development",
		Long: `Serve the full REST API from memory. Data is lost on exit.

Point the CLI at it with --api http://ADDR or 'repuestos config set api http://ADDR'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger()
			if err != nil {
				return err
			}

			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			listener, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", addr, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Serving fake API on http://%s\n", listener.Addr())

			return serveDevAPI(ctx, listener, !empty, logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", constants.DefaultDevServerAddr, "listen address")
	cmd.Flags().BoolVar(&empty, "empty", false, "start without demo data")

	return cmd
}

// serveDevAPI serves the fake API on listener until ctx is done, then shuts
// down gracefully.
func serveDevAPI(ctx context.Context, listener net.Listener, seed bool, logger *zap.Logger) error {
	api := fakeapi.New(fakeapi.WithLogger(logging.NewZapLogger(logger)))

	if seed {
		if err := api.SeedDemo(); err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	server := &http.Server{
		Handler:           api,
		ReadHeaderTimeout: constants.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("fake API starting",
			zap.String("addr", listener.Addr().String()),
			zap.Strings("resources", fakeapi.Resources()),
		)

		err := server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("fake API stopped: %w", err)
		}

		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down fake API")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down fake API: %w", err)
	}

	return nil
}
