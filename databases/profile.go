package databases

import (
	"context"

	"github.com/linesmerrill/fleetcheck/models"
)

// ProfileKey is the store key of the shared profile record
const ProfileKey = "fleetcheck:profile"

// ProfileDatabase contains the methods to use with the profile record
type ProfileDatabase interface {
	Load(ctx context.Context) models.Profile
	Save(ctx context.Context, p models.Profile) models.Profile
}

type profileDatabase struct {
	store *Store
}

// NewProfileDatabase initializes the profile record accessor
func NewProfileDatabase(store *Store) ProfileDatabase {
	return &profileDatabase{store: store}
}

// Load returns the stored profile or the default profile
func (p *profileDatabase) Load(ctx context.Context) models.Profile {
	profile, _ := Get(ctx, p.store, ProfileKey, models.DefaultProfile())
	if profile.Vehicles == nil {
		profile.Vehicles = []models.Vehicle{}
	}
	if profile.Language == "" {
		profile.Language = models.LanguageEN
	}
	return profile
}

// Save persists the profile
func (p *profileDatabase) Save(ctx context.Context, profile models.Profile) models.Profile {
	return Set(ctx, p.store, ProfileKey, profile)
}
