package board

import (
	"time"

	"hirepath-engine/internal/domain"
)

type Reminder string

const (
	ReminderNone     Reminder = ""
	ReminderOverdue  Reminder = "overdue"
	ReminderToday    Reminder = "today"
	ReminderUpcoming Reminder = "upcoming"
)

const dateLayout = "2006-01-02"

// upcomingWindow is how far ahead a follow-up still earns a badge.
const upcomingWindow = 3 * 24 * time.Hour

// ReminderFor classifies an application's follow-up date against today.
// Unset or unparseable dates carry no reminder.
func ReminderFor(app domain.Application, today time.Time) Reminder {
	if app.FollowUpDate == "" {
		return ReminderNone
	}
	due, err := time.Parse(dateLayout, app.FollowUpDate)
	if err != nil {
		return ReminderNone
	}

	// Compare calendar days in today's zone, not UTC instants.
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	due = time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, today.Location())

	switch {
	case due.Before(day):
		return ReminderOverdue
	case due.Equal(day):
		return ReminderToday
	case due.Sub(day) <= upcomingWindow:
		return ReminderUpcoming
	default:
		return ReminderNone
	}
}

// Reminders maps application id to its badge, skipping the empty ones.
func Reminders(list []domain.Application, today time.Time) map[string]Reminder {
	out := make(map[string]Reminder)
	for _, app := range list {
		if r := ReminderFor(app, today); r != ReminderNone {
			out[app.ID] = r
		}
	}
	return out
}
