package databases

import (
	"context"
	"fmt"

	"github.com/linesmerrill/fleetcheck/models"
)

// AppKey is the store key of the app record for the given app id and version
func AppKey(appID, version string) string {
	return fmt.Sprintf("fleetcheck:%s:v%s", appID, version)
}

// AppDatabase contains the methods to use with the app record
type AppDatabase interface {
	Load(ctx context.Context) *models.AppState
	Save(ctx context.Context, state models.AppState) models.AppState
}

type appDatabase struct {
	store *Store
	key   string
}

// NewAppDatabase initializes the app record accessor stored under AppKey(appID, version)
func NewAppDatabase(store *Store, appID, version string) AppDatabase {
	return &appDatabase{store: store, key: AppKey(appID, version)}
}

// Load returns the stored app record, nil when there is none or it is unreadable
func (a *appDatabase) Load(ctx context.Context) *models.AppState {
	state, ok := Get[*models.AppState](ctx, a.store, a.key, nil)
	if !ok {
		return nil
	}
	return state
}

// Save persists the app record with a refreshed updatedAt and returns it
func (a *appDatabase) Save(ctx context.Context, state models.AppState) models.AppState {
	return Set(ctx, a.store, a.key, state)
}
