package scheduler

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/linesmerrill/fleetcheck/config"
	"github.com/linesmerrill/fleetcheck/mailer"
	"github.com/linesmerrill/fleetcheck/models"
	templates "github.com/linesmerrill/fleetcheck/templates/html"
)

// DueKind names the date a reminder is about
type DueKind string

const (
	// DueInspection is the periodic technical inspection (tuvUntil)
	DueInspection DueKind = "inspection"
	// DueService is the next workshop service (serviceDue)
	DueService DueKind = "service"
)

// Due is one upcoming or overdue date of a vehicle
type Due struct {
	Vehicle models.Vehicle
	Kind    DueKind
	Date    time.Time
	// DaysLeft is negative when the date has passed
	DaysLeft int
}

// ProfileSource provides the current profile
type ProfileSource interface {
	Profile() models.Profile
}

// Scheduler handles the periodic due date reminders
type Scheduler struct {
	cron     *cron.Cron
	Profiles ProfileSource
	Mailer   mailer.Mailer
	Schedule string
	Days     int
	To       string
	Now      func() time.Time
}

// NewScheduler creates a new scheduler instance. m may be nil, reminders are
// then only logged.
func NewScheduler(profiles ProfileSource, m mailer.Mailer, conf *config.Config) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		Profiles: profiles,
		Mailer:   m,
		Schedule: conf.ReminderSchedule,
		Days:     conf.ReminderDays,
		To:       conf.ReminderEmail,
		Now:      time.Now,
	}
}

// Start registers the reminder job and starts the cron loop
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		s.RunReminders(ctx)
	})
	if err != nil {
		return fmt.Errorf("register reminder job %q: %w", s.Schedule, err)
	}
	s.cron.Start()
	zap.S().Infow("reminder scheduler started", "schedule", s.Schedule, "days", s.Days)
	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("reminder scheduler stopped")
}

// RunReminders logs every due date and mails the list when a mailer and a
// recipient are configured
func (s *Scheduler) RunReminders(ctx context.Context) []Due {
	now := s.Now()
	due := DueVehicles(s.Profiles.Profile(), now, s.Days)
	for _, d := range due {
		zap.S().Infow("vehicle date due",
			"vehicleId", d.Vehicle.ID,
			"kind", d.Kind,
			"date", d.Date.Format("2006-01-02"),
			"daysLeft", d.DaysLeft,
		)
	}
	if len(due) == 0 || s.Mailer == nil || s.To == "" {
		return due
	}

	email := ReminderEmail(due, now)
	if err := s.Mailer.Send(ctx, s.To, email); err != nil {
		zap.S().Errorw("failed to send reminder email", "error", err, "to", s.To)
	}
	return due
}

// DueVehicles lists the inspection and service dates of the profile's vehicles
// that fall within days of today or have passed, soonest first. Dates are
// YYYY-MM-DD or YYYY-MM, the latter meaning the last day of that month.
// Unreadable dates are skipped.
func DueVehicles(p models.Profile, today time.Time, days int) []Due {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	out := []Due{}
	for _, v := range p.Vehicles {
		for _, c := range []struct {
			kind  DueKind
			value string
		}{
			{DueInspection, v.TuvUntil},
			{DueService, v.ServiceDue},
		} {
			date, ok := parseDueDate(c.value)
			if !ok {
				continue
			}
			left := int(date.Sub(start).Hours() / 24)
			if left <= days {
				out = append(out, Due{Vehicle: v, Kind: c.kind, Date: date, DaysLeft: left})
			}
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysLeft < out[j].DaysLeft })
	return out
}

func parseDueDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01", s); err == nil {
		return t.AddDate(0, 1, -1), true
	}
	return time.Time{}, false
}

// ReminderEmail builds the reminder message for the given due dates
func ReminderEmail(due []Due, now time.Time) models.Email {
	subject := fmt.Sprintf("Vehicle reminders %s", now.Format("2006-01-02"))
	lines := []string{"The following vehicle dates are due:", ""}
	for _, d := range due {
		lines = append(lines, fmt.Sprintf("• %s: %s %s (%s)",
			d.Vehicle.DisplayLabel(), d.Kind, d.Date.Format("2006-01-02"), describe(d.DaysLeft)))
	}
	body := strings.Join(lines, "\n")
	return models.Email{
		Subject: subject,
		Body:    body,
		HTML:    templates.RenderReminderEmail(subject, body),
	}
}

func describe(daysLeft int) string {
	switch {
	case daysLeft < 0:
		return fmt.Sprintf("overdue by %d day(s)", -daysLeft)
	case daysLeft == 0:
		return "due today"
	}
	return fmt.Sprintf("in %d day(s)", daysLeft)
}
