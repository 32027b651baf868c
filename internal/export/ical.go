package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
)

const defaultEventTime = "09:00"

// Calendar renders the tracked items as an iCalendar document with one
// VEVENT per item. Events carry DTSTART, SUMMARY, and UID only: no
// recurrence rules and no time zone definition. Timestamps are local wall
// times emitted with a UTC marker, a known fidelity gap kept for
// compatibility with the original export format.
func Calendar(data models.AppData, now time.Time) string {
	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	b.WriteString("PRODID:-//habitflow//habitflow//EN\r\n")

	for _, h := range data.Habits {
		writeEvent(&b, h.ID, h.Name, eventStart(now, h.ReminderTime, ""))
	}
	for _, s := range data.Supplements {
		writeEvent(&b, s.ID, s.Name, eventStart(now, s.ReminderTime, ""))
	}
	for _, t := range data.Tasks {
		writeEvent(&b, t.ID, t.Title, eventStart(now, "", t.DueDate))
	}

	b.WriteString("END:VCALENDAR\r\n")
	return b.String()
}

func writeEvent(b *strings.Builder, uid, summary string, start time.Time) {
	b.WriteString("BEGIN:VEVENT\r\n")
	fmt.Fprintf(b, "UID:%s\r\n", uid)
	fmt.Fprintf(b, "DTSTART:%s\r\n", start.Format("20060102T150405Z"))
	fmt.Fprintf(b, "SUMMARY:%s\r\n", escapeText(summary))
	b.WriteString("END:VEVENT\r\n")
}

// eventStart derives the event instant: the item's date (or today) at its
// reminder time (or the default morning slot).
func eventStart(now time.Time, reminderTime, date string) time.Time {
	day := now
	if date != "" {
		if d, err := time.Parse(constants.DateFormat, date); err == nil {
			day = d
		}
	}

	timeStr := reminderTime
	if timeStr == "" {
		timeStr = defaultEventTime
	}
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		t, _ = time.Parse(constants.TimeFormat, defaultEventTime)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// escapeText escapes the characters iCalendar requires escaped in text values
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
