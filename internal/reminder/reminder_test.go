package reminder

import (
	"testing"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(text string) error {
	n.messages = append(n.messages, text)
	return nil
}

func TestNextOccurrence(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)

	t.Run("time later today", func(t *testing.T) {
		target, err := NextOccurrence(now, "14:30")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 3, 14, 14, 30, 0, 0, time.Local)
		if !target.Equal(want) {
			t.Errorf("target = %v, want %v", target, want)
		}
	})

	t.Run("time already passed rolls to tomorrow", func(t *testing.T) {
		target, err := NextOccurrence(now, "08:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 3, 15, 8, 0, 0, 0, time.Local)
		if !target.Equal(want) {
			t.Errorf("target = %v, want %v", target, want)
		}
	})

	t.Run("exactly now rolls to tomorrow", func(t *testing.T) {
		target, err := NextOccurrence(now, "10:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, 3, 15, 10, 0, 0, 0, time.Local)
		if !target.Equal(want) {
			t.Errorf("target = %v, want %v", target, want)
		}
	})

	t.Run("delay is always within a day", func(t *testing.T) {
		for _, timeStr := range []string{"00:00", "09:59", "10:01", "23:59"} {
			target, err := NextOccurrence(now, timeStr)
			if err != nil {
				t.Fatalf("unexpected error for %s: %v", timeStr, err)
			}
			delay := target.Sub(now)
			if delay <= 0 || delay > 24*time.Hour {
				t.Errorf("delay for %s = %v, want within (0, 24h]", timeStr, delay)
			}
		}
	})

	t.Run("invalid format errors", func(t *testing.T) {
		if _, err := NextOccurrence(now, "25:00"); err == nil {
			t.Error("expected error for invalid hour")
		}
		if _, err := NextOccurrence(now, "noon"); err == nil {
			t.Error("expected error for non-time string")
		}
	})
}

func TestScheduleAll(t *testing.T) {
	notifier := &recordingNotifier{}
	s := NewScheduler(notifier)
	defer s.Stop()

	habits := []models.Habit{
		{Name: "Read", ReminderTime: "21:00"},
		{Name: "No reminder"},
	}
	supplements := []models.Supplement{
		{Name: "Vitamin D", ReminderTime: "08:00"},
		{Name: "Bad time", ReminderTime: "nope"},
	}

	armed := s.ScheduleAll(habits, supplements)
	if armed != 2 {
		t.Errorf("armed = %d, want 2 (empty and malformed times are skipped)", armed)
	}
}

func TestStopCancelsTimers(t *testing.T) {
	notifier := &recordingNotifier{}
	s := NewScheduler(notifier)

	if err := s.Schedule("Vitamin D", "08:00"); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if err := s.Schedule("Read", "21:00"); err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	s.Stop()
	if len(s.timers) != 0 {
		t.Errorf("timers remaining = %d, want 0 after Stop", len(s.timers))
	}
	if len(notifier.messages) != 0 {
		t.Errorf("notifications sent = %d, want 0 for cancelled timers", len(notifier.messages))
	}
}

func TestWaterReminderDue(t *testing.T) {
	day := func(hour, min int) time.Time {
		return time.Date(2026, 3, 14, hour, min, 0, 0, time.Local)
	}

	t.Run("nil last intake is due inside the window", func(t *testing.T) {
		if !WaterReminderDue(day(12, 0), nil) {
			t.Error("expected due with no recorded intake")
		}
	})

	t.Run("outside the day window is never due", func(t *testing.T) {
		if WaterReminderDue(day(8, 59), nil) {
			t.Error("expected not due before 09:00")
		}
		if WaterReminderDue(day(21, 1), nil) {
			t.Error("expected not due after 21:00")
		}
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		if !WaterReminderDue(day(9, 0), nil) {
			t.Error("expected due at 09:00")
		}
		if !WaterReminderDue(day(21, 0), nil) {
			t.Error("expected due at 21:00")
		}
	})

	t.Run("recent intake suppresses the reminder", func(t *testing.T) {
		now := day(12, 0)
		recent := now.Add(-30 * time.Minute)
		if WaterReminderDue(now, &recent) {
			t.Error("expected not due 30 minutes after a drink")
		}

		stale := now.Add(-2 * time.Hour)
		if !WaterReminderDue(now, &stale) {
			t.Error("expected due 2 hours after a drink")
		}
	})

	t.Run("threshold boundary is due", func(t *testing.T) {
		now := day(12, 0)
		exact := now.Add(-constants.WaterReminderThreshold)
		if !WaterReminderDue(now, &exact) {
			t.Error("expected due exactly at the threshold")
		}
	})
}
