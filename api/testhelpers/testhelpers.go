// Package testhelpers builds workspaces over an in-memory store for tests of
// the HTTP and CLI layers
package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/linesmerrill/fleetcheck/databases"
	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/workspace"
)

// Now is the fixed clock of test workspaces
var Now = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

// NewStore returns a store over a fresh memory backend stamped with Now
func NewStore() *databases.Store {
	store := databases.NewStore(databases.NewMemoryBackend())
	store.Now = func() time.Time { return Now }
	return store
}

// NewWorkspace opens a workspace over store with a fixed clock, sequential
// check ids (check-1, check-2, ...) and a constant vehicle id suffix
func NewWorkspace(store *databases.Store) *workspace.Workspace {
	n := 0
	return workspace.New(context.Background(),
		databases.NewAppDatabase(store, inspection.AppID, inspection.AppVersion),
		databases.NewProfileDatabase(store),
		workspace.WithClock(func() time.Time { return Now }),
		workspace.WithIDs(func() string { n++; return fmt.Sprintf("check-%d", n) }),
		workspace.WithSuffix(func() string { return "0000" }),
	)
}
