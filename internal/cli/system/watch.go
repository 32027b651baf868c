package system

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/notifier"
	"github.com/habitflow/habitflow/internal/reminder"
)

// WatchCmd runs the reminder daemon in the foreground until interrupted.
type WatchCmd struct{}

func (c *WatchCmd) Run(ctx *cli.Context) error {
	daemon := reminder.NewDaemon(ctx.Store, notifier.New())

	// Re-arm a reminder whenever a mutation in this process changes one.
	ctx.Tracker.SetReminderHook(func(name, reminderTime string) {
		daemon.Scheduler().Schedule(name, reminderTime)
	})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Watching for reminders. Press Ctrl+C to stop.")
	if err := daemon.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
