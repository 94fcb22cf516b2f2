package transfer

import (
	"github.com/linesmerrill/fleetcheck/inspection"
	"github.com/linesmerrill/fleetcheck/models"
)

// ApplyFull replaces every check in state with the imported ones. When
// replaceProfile is set and the file carried a profile, that profile is
// returned in place of p.
func ApplyFull(state models.AppState, p models.Profile, env *Full, replaceProfile bool) (models.AppState, models.Profile) {
	out := state
	out.Checks = append([]models.Check{}, env.Data.Checks...)
	if replaceProfile && env.Profile != nil {
		p = env.Profile.Clone()
	}
	return out, p
}

// ApplySingle upserts the imported check: any check with the same id is
// removed, then the import is put at the front.
func ApplySingle(state models.AppState, env *Single) models.AppState {
	out := state
	out.Checks = inspection.Append(inspection.Remove(state.Checks, env.Check.ID), env.Check)
	return out
}
