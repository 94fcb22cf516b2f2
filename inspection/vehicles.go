package inspection

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/linesmerrill/fleetcheck/models"
)

// SuffixFunc returns the tiebreaker appended to a colliding vehicle id
type SuffixFunc func() string

// RandomSuffix returns four random hex characters
func RandomSuffix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:4]
}

// Slug lowercases s, folds diacritics and collapses everything that is not a
// letter or digit into single dashes.
func Slug(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// suffixAttempts bounds how often VehicleID asks the SuffixFunc before it
// falls back to a counter
const suffixAttempts = 8

// VehicleID derives the id for v: a slug of the plate, else of make and model,
// else "vehicle". On collision with taken a suffix is appended until unique,
// then a numeric counter once the suffixes keep colliding.
func VehicleID(v models.Vehicle, taken map[string]bool, suffix SuffixFunc) string {
	base := Slug(v.Plate)
	if base == "" {
		base = Slug(strings.TrimSpace(v.Make + " " + v.Model))
	}
	if base == "" {
		base = "vehicle"
	}
	if !taken[base] {
		return base
	}
	if suffix == nil {
		suffix = RandomSuffix
	}
	for i := 0; i < suffixAttempts; i++ {
		id := base + "-" + suffix()
		if !taken[id] {
			return id
		}
	}
	for n := 2; ; n++ {
		id := fmt.Sprintf("%s-%d", base, n)
		if !taken[id] {
			return id
		}
	}
}

func normalizeVehicle(v models.Vehicle) (models.Vehicle, error) {
	v.Label = strings.TrimSpace(v.Label)
	v.Plate = strings.TrimSpace(v.Plate)
	v.Make = strings.TrimSpace(v.Make)
	v.Model = strings.TrimSpace(v.Model)
	v.FuelType = strings.TrimSpace(v.FuelType)
	v.Vin = strings.ToUpper(strings.TrimSpace(v.Vin))
	if !models.ValidFuelType(v.FuelType) {
		return v, fmt.Errorf("%w: %q", models.ErrInvalidFuelType, v.FuelType)
	}
	return v, nil
}

// AddVehicle appends v with a freshly derived id and returns the new list and
// the stored vehicle.
func AddVehicle(vehicles []models.Vehicle, v models.Vehicle, suffix SuffixFunc) ([]models.Vehicle, models.Vehicle, error) {
	v, err := normalizeVehicle(v)
	if err != nil {
		return vehicles, models.Vehicle{}, err
	}
	taken := make(map[string]bool, len(vehicles))
	for _, existing := range vehicles {
		taken[existing.ID] = true
	}
	v.ID = VehicleID(v, taken, suffix)

	out := make([]models.Vehicle, 0, len(vehicles)+1)
	out = append(out, vehicles...)
	return append(out, v), v, nil
}

// UpdateVehicle replaces the fields of the vehicle with the given id, keeping
// its id. An unknown id returns the list unchanged.
func UpdateVehicle(vehicles []models.Vehicle, id string, v models.Vehicle) ([]models.Vehicle, error) {
	v, err := normalizeVehicle(v)
	if err != nil {
		return vehicles, err
	}
	out := append([]models.Vehicle(nil), vehicles...)
	for i := range out {
		if out[i].ID == id {
			v.ID = id
			out[i] = v
			return out, nil
		}
	}
	return vehicles, nil
}

// DeleteVehicle removes the vehicle with the given id. When it was the active
// one the active id falls back to the first remaining vehicle, or "".
func DeleteVehicle(vehicles []models.Vehicle, id, activeID string) ([]models.Vehicle, string) {
	out := make([]models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.ID != id {
			out = append(out, v)
		}
	}
	if activeID != id || len(out) == len(vehicles) {
		return out, activeID
	}
	if len(out) > 0 {
		return out, out[0].ID
	}
	return out, ""
}
