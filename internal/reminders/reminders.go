// ABOUTME: Daily reminder message pool and deterministic selection.
// ABOUTME: Message delivery is out of scope; this only picks the content.
package reminders

import "time"

// Reminder is one entry in the daily message pool.
type Reminder struct {
	ID      string
	Title   string
	Message string
}

var pool = []Reminder{
	{
		ID:      "workout_reminder_1",
		Title:   "Time to train!",
		Message: "Your body is ready for activity. Calculate today's heart-rate zone.",
	},
	{
		ID:      "health_tip_1",
		Title:   "Heart health",
		Message: "Regular training in the right heart-rate zone strengthens the cardiovascular system.",
	},
}

// All returns a copy of the full message pool.
func All() []Reminder {
	return append([]Reminder(nil), pool...)
}

// ForDay picks the reminder for a calendar day. The choice rotates through
// the pool by day of year, so consecutive days see different messages.
func ForDay(t time.Time) Reminder {
	return pool[t.YearDay()%len(pool)]
}
