package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/models"
)

var today = time.Date(2026, 10, 19, 15, 30, 0, 0, time.UTC)

type staticProfile models.Profile

func (s staticProfile) Profile() models.Profile { return models.Profile(s) }

type recordingMailer struct {
	to     []string
	emails []models.Email
}

func (r *recordingMailer) Send(_ context.Context, to string, email models.Email) error {
	r.to = append(r.to, to)
	r.emails = append(r.emails, email)
	return nil
}

func fleet() models.Profile {
	return models.Profile{Vehicles: []models.Vehicle{
		{ID: "van-1", Label: "Van 1", TuvUntil: "2026-10-25", ServiceDue: "2027-03-01"},
		{ID: "van-2", Plate: "B-XY 9", TuvUntil: "2026-09", ServiceDue: "2026-10-19"},
		{ID: "van-3", Label: "Van 3", TuvUntil: "next spring", ServiceDue: ""},
		{ID: "van-4", Label: "Van 4", TuvUntil: "2026-11"},
	}}
}

func TestDueVehicles(t *testing.T) {
	due := DueVehicles(fleet(), today, 14)
	require.Len(t, due, 3)

	assert.Equal(t, "van-2", due[0].Vehicle.ID)
	assert.Equal(t, DueInspection, due[0].Kind)
	assert.Equal(t, time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC), due[0].Date)
	assert.Equal(t, -19, due[0].DaysLeft)

	assert.Equal(t, "van-2", due[1].Vehicle.ID)
	assert.Equal(t, DueService, due[1].Kind)
	assert.Equal(t, 0, due[1].DaysLeft)

	assert.Equal(t, "van-1", due[2].Vehicle.ID)
	assert.Equal(t, 6, due[2].DaysLeft)
}

func TestDueVehicles_WiderWindow(t *testing.T) {
	due := DueVehicles(fleet(), today, 45)
	require.Len(t, due, 4)
	assert.Equal(t, "van-4", due[3].Vehicle.ID)
	assert.Equal(t, 42, due[3].DaysLeft)
}

func TestRunReminders(t *testing.T) {
	m := &recordingMailer{}
	conf := config.Default()
	conf.ReminderEmail = "fleet@example.com"

	s := NewScheduler(staticProfile(fleet()), m, conf)
	s.Now = func() time.Time { return today }

	due := s.RunReminders(context.Background())
	assert.Len(t, due, 3)
	require.Len(t, m.emails, 1)
	assert.Equal(t, []string{"fleet@example.com"}, m.to)
	assert.Equal(t, "Vehicle reminders 2026-10-19", m.emails[0].Subject)
	assert.Contains(t, m.emails[0].Body, "• B-XY 9: inspection 2026-09-30 (overdue by 19 day(s))")
	assert.Contains(t, m.emails[0].Body, "• B-XY 9: service 2026-10-19 (due today)")
	assert.Contains(t, m.emails[0].Body, "• Van 1: inspection 2026-10-25 (in 6 day(s))")
	assert.NotEmpty(t, m.emails[0].HTML)
}

func TestRunReminders_NoMailer(t *testing.T) {
	conf := config.Default()
	conf.ReminderEmail = "fleet@example.com"
	s := NewScheduler(staticProfile(fleet()), nil, conf)
	s.Now = func() time.Time { return today }

	assert.Len(t, s.RunReminders(context.Background()), 3)
}

func TestStartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewScheduler(staticProfile(models.Profile{}), nil, config.Default())
	require.NoError(t, s.Start())
	s.Stop()
}

func TestStart_InvalidSchedule(t *testing.T) {
	conf := config.Default()
	conf.ReminderSchedule = "every tuesday"
	s := NewScheduler(staticProfile(models.Profile{}), nil, conf)
	assert.Error(t, s.Start())
}
