package reminder

import (
	"fmt"
	"sync"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
)

// Notifier delivers a desktop notification. Delivery is best effort; a
// failed send is logged and dropped, never retried.
type Notifier interface {
	Notify(text string) error
}

// NextOccurrence returns the next instant the wall-clock time (HH:MM) comes
// around: today at that time, or tomorrow when it has already passed.
func NextOccurrence(now time.Time, timeStr string) (time.Time, error) {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
	}

	target := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	if !target.After(now) {
		target = target.AddDate(0, 0, 1)
	}
	return target, nil
}

// Scheduler arms one-shot timers for entity reminders. Timers live only for
// the current session; nothing is persisted, and re-arming after a restart
// happens from the loaded collections. There is no de-duplication beyond
// one timer per entity per call to ScheduleAll.
type Scheduler struct {
	mu       sync.Mutex
	notifier Notifier
	timers   []*time.Timer
	now      func() time.Time
}

func NewScheduler(notifier Notifier) *Scheduler {
	return &Scheduler{
		notifier: notifier,
		now:      time.Now,
	}
}

// Schedule arms a one-shot notification for the entity at the next
// occurrence of its reminder time. The notification text names the entity.
func (s *Scheduler) Schedule(name, timeStr string) error {
	target, err := NextOccurrence(s.now(), timeStr)
	if err != nil {
		return err
	}

	delay := target.Sub(s.now())
	timer := time.AfterFunc(delay, func() {
		if err := s.notifier.Notify(fmt.Sprintf("Time for: %s", name)); err != nil {
			logger.Debug("Reminder notification skipped", "name", name, "error", err)
		}
	})

	s.mu.Lock()
	s.timers = append(s.timers, timer)
	s.mu.Unlock()

	logger.Debug("Reminder armed", "name", name, "at", target.Format(time.RFC3339))
	return nil
}

// ScheduleAll arms a timer for every habit and supplement carrying a
// reminder time. Returns the number of timers armed.
func (s *Scheduler) ScheduleAll(habits []models.Habit, supplements []models.Supplement) int {
	armed := 0
	for _, h := range habits {
		if h.ReminderTime == "" {
			continue
		}
		if err := s.Schedule(h.Name, h.ReminderTime); err != nil {
			logger.Warn("Skipping habit reminder", "name", h.Name, "error", err)
			continue
		}
		armed++
	}
	for _, sup := range supplements {
		if sup.ReminderTime == "" {
			continue
		}
		if err := s.Schedule(sup.Name, sup.ReminderTime); err != nil {
			logger.Warn("Skipping supplement reminder", "name", sup.Name, "error", err)
			continue
		}
		armed++
	}
	return armed
}

// Stop cancels all armed timers. Used on daemon shutdown; a fired timer is
// unaffected.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, timer := range s.timers {
		timer.Stop()
	}
	s.timers = nil
}
