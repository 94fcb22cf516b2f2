// Command fleetcheck manages the local check history from the shell: list,
// show and delete checks, list vehicles, export and import files. It opens
// the same store as the server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/databases"
	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/logging"
	"github.com/linesmerrill/fleetcheck/workspace"
)

// session bundles an opened workspace with its store
type session struct {
	ws    *workspace.Workspace
	store *databases.Store
	close func() error
}

// saved reports a write that did not reach the store since the session was
// opened. The process exits right after a command, so a dropped write is lost.
func (s *session) saved() error {
	if s.store == nil {
		return nil
	}
	if err := s.store.TakeWriteError(); err != nil {
		return fmt.Errorf("change not saved: %w", err)
	}
	return nil
}

type opener func(ctx context.Context) (*session, error)

// openStore loads the config and opens the configured backend
func openStore(ctx context.Context) (*session, error) {
	conf, warnings := config.Load()
	for _, w := range warnings {
		zap.S().Warnw("ignoring config value", "error", w)
	}
	backend, err := databases.NewBackend(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	store := databases.NewStore(backend)
	ws := workspace.New(ctx,
		databases.NewAppDatabase(store, inspection.AppID, inspection.AppVersion),
		databases.NewProfileDatabase(store),
	)
	return &session{ws: ws, store: store, close: store.Close}, nil
}

func newRootCmd(open opener) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "fleetcheck",
		Short:         "Manage local vehicle checks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zap.ReplaceGlobals(logging.New(verbose).Desugar())
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	root.AddCommand(newChecksCmd(open))
	root.AddCommand(newVehiclesCmd(open))
	root.AddCommand(newExportCmd(open))
	root.AddCommand(newImportCmd(open))
	return root
}

// withSession opens the store around fn. Writes made while opening, such as
// a template upgrade, do not count against fn.
func withSession(cmd *cobra.Command, open opener, fn func(ctx context.Context, s *session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.close(); err != nil {
			zap.S().Warnw("failed to close store", "error", err)
		}
	}()
	if s.store != nil {
		if err := s.store.TakeWriteError(); err != nil {
			zap.S().Warnw("store write failed while opening", "error", err)
		}
	}
	return fn(ctx, s)
}

func main() {
	if err := newRootCmd(openStore).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
