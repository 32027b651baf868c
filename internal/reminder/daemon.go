package reminder

import (
	"context"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/storage"
	"github.com/habitflow/habitflow/internal/utils"
)

// Daemon is the background half of the app: it arms entity reminders for
// the session and periodically checks whether a water reminder is due. It
// is the long-running analogue of a platform background worker; it owns no
// state beyond a throttle timestamp and reads everything else from the
// store on each tick.
type Daemon struct {
	store     *storage.Store
	scheduler *Scheduler
	notifier  Notifier
	now       func() time.Time

	tick           time.Duration
	lastWaterNudge time.Time
}

func NewDaemon(store *storage.Store, notifier Notifier) *Daemon {
	return &Daemon{
		store:     store,
		scheduler: NewScheduler(notifier),
		notifier:  notifier,
		now:       time.Now,
		tick:      constants.WatchTickInterval,
	}
}

// Run arms all entity reminders and then loops on the tick interval until
// the context is cancelled.
func (d *Daemon) Run(ctx context.Context) error {
	habits, err := d.store.Habits()
	if err != nil {
		return err
	}
	supplements, err := d.store.Supplements()
	if err != nil {
		return err
	}

	armed := d.scheduler.ScheduleAll(habits, supplements)
	logger.Info("Reminder daemon started", "reminders", armed)

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()
	defer d.scheduler.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Reminder daemon stopped")
			return ctx.Err()
		case <-ticker.C:
			d.checkWaterReminder()
		}
	}
}

// Scheduler exposes the daemon's scheduler so mutations can re-arm
// reminders fire-and-forget while the daemon runs.
func (d *Daemon) Scheduler() *Scheduler {
	return d.scheduler
}

func (d *Daemon) checkWaterReminder() {
	settings, err := d.store.Settings()
	if err != nil {
		logger.Warn("Water reminder check failed", "error", err)
		return
	}
	if !settings.NotificationsEnabled {
		return
	}

	now := d.now()
	water, err := d.store.Water()
	if err != nil {
		logger.Warn("Water reminder check failed", "error", err)
		return
	}

	if !WaterReminderDue(now, water.LastIntakeAt) {
		return
	}

	// Throttle so a due reminder fires once per threshold interval, not on
	// every tick.
	if !d.lastWaterNudge.IsZero() && now.Sub(d.lastWaterNudge) < constants.WaterReminderThreshold {
		return
	}

	if err := d.notifier.Notify("Time to drink some water"); err != nil {
		logger.Debug("Water reminder skipped", "error", err)
		return
	}
	d.lastWaterNudge = now
}

// WaterReminderDue reports whether a water reminder should fire: the last
// intake (or forever, when none is recorded) is older than the threshold,
// and the current time falls inside the daytime window.
func WaterReminderDue(now time.Time, lastIntake *time.Time) bool {
	minutes := now.Hour()*60 + now.Minute()
	dayStart, _ := utils.ParseTimeToMinutes(constants.WaterReminderDayStart)
	dayEnd, _ := utils.ParseTimeToMinutes(constants.WaterReminderDayEnd)
	if minutes < dayStart || minutes > dayEnd {
		return false
	}

	if lastIntake == nil {
		return true
	}
	return now.Sub(*lastIntake) >= constants.WaterReminderThreshold
}
