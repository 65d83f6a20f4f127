package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/repuestos/internal/constants"
	"github.com/fivetwenty-io/repuestos/internal/logging"
	"github.com/fivetwenty-io/repuestos/pkg/repuestos"
	"github.com/fivetwenty-io/repuestos/pkg/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// session bundles what a command needs to talk to the API.
type session struct {
	client   repuestos.Client
	logger   *logging.ZapLogger
	notifier repuestos.Notifier
}

// storeOptions returns the options every store of this session is built with.
func (s *session) storeOptions() []store.Option {
	return []store.Option{
		store.WithoutInitialLoad(),
		store.WithLogger(s.logger),
		store.WithNotifier(s.notifier),
	}
}

// withSession builds a client, logger and notifier from the effective
// configuration, runs fn under the CLI timeout and releases them.
func withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	zapLogger, err := newLogger()
	if err != nil {
		return err
	}

	defer func() { _ = zapLogger.Sync() }()

	client, err := newClient(zapLogger)
	if err != nil {
		return err
	}

	notifier, err := newNotifier()
	if err != nil {
		return err
	}

	defer func() {
		if err := notifier.Close(); err != nil {
			zapLogger.Warn("failed to close notifier", zap.Error(err))
		}
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), constants.DefaultHTTPTimeout)
	defer cancel()

	return fn(ctx, &session{
		client:   client,
		logger:   logging.NewZapLogger(zapLogger),
		notifier: notifier,
	})
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidID, arg)
	}

	return id, nil
}

// confirmDelete asks for confirmation on an interactive terminal. Without a
// terminal the caller must pass --force.
func confirmDelete(cmd *cobra.Command, what string) error {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return constants.ErrConfirmationRequired
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Really delete %s? (y/N): ", what)

	line, _ := bufio.NewReader(in).ReadString('\n')

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", constants.ConfirmationYes:
		return nil
	default:
		return constants.ErrDeleteCancelled
	}
}
