package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/tracker"
	"github.com/habitflow/habitflow/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits."`
	Edit   HabitEditCmd   `cmd:"" help:"Edit an existing habit."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle today's completion for a habit."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit."`
}

type HabitAddCmd struct {
	Name     string `arg:"" help:"Habit name."`
	Icon     string `help:"Icon for the habit." default:"✨"`
	Rhythm   string `short:"r" help:"Rhythm (daily|weekly)." default:"daily"`
	Reminder string `help:"Reminder time (HH:MM)."`
	Weekdays string `short:"w" help:"Comma-separated weekdays for weekly rhythm."`
}

func (c *HabitAddCmd) Validate() error {
	if c.Rhythm != string(constants.FrequencyDaily) && c.Rhythm != string(constants.FrequencyWeekly) {
		return fmt.Errorf("rhythm must be daily or weekly")
	}
	if c.Rhythm == string(constants.FrequencyWeekly) && c.Weekdays == "" {
		return fmt.Errorf("weekdays must be specified for weekly rhythm")
	}
	if c.Reminder != "" {
		if _, err := utils.ParseTime(c.Reminder); err != nil {
			return fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
		}
	}
	return nil
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	var weekdays []time.Weekday
	if c.Weekdays != "" {
		var err error
		weekdays, err = utils.ParseWeekdays(c.Weekdays)
		if err != nil {
			return err
		}
	}

	habit, err := ctx.Tracker.AddHabit(models.Habit{
		Name:         c.Name,
		Icon:         c.Icon,
		Rhythm:       constants.Frequency(c.Rhythm),
		ReminderTime: c.Reminder,
		WeekDays:     weekdays,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s\n", habit.Icon, habit.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.Habits()
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	for _, habit := range habits {
		mark := " "
		if habit.CompletedToday {
			mark = "x"
		}
		var details []string
		details = append(details, string(habit.Rhythm))
		if len(habit.WeekDays) > 0 {
			details = append(details, utils.FormatWeekdays(habit.WeekDays))
		}
		if habit.ReminderTime != "" {
			details = append(details, "reminder "+habit.ReminderTime)
		}
		fmt.Printf("[%s] %s %s (%s)\n", mark, habit.Icon, habit.Name, strings.Join(details, ", "))
	}

	return nil
}

type HabitEditCmd struct {
	Ref      string  `arg:"" help:"Habit name or id."`
	Name     *string `help:"New name."`
	Icon     *string `help:"New icon."`
	Rhythm   *string `help:"New rhythm (daily|weekly)."`
	Reminder *string `help:"New reminder time (HH:MM), empty string to clear."`
	Weekdays *string `help:"New comma-separated weekdays."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	habit, err := ResolveHabit(ctx.Store, c.Ref)
	if err != nil {
		return err
	}

	patch := tracker.HabitPatch{
		Name:         c.Name,
		Icon:         c.Icon,
		ReminderTime: c.Reminder,
	}
	if c.Rhythm != nil {
		rhythm := constants.Frequency(*c.Rhythm)
		patch.Rhythm = &rhythm
	}
	if c.Weekdays != nil {
		weekdays, err := utils.ParseWeekdays(*c.Weekdays)
		if err != nil {
			return err
		}
		patch.WeekDays = &weekdays
	}

	if err := ctx.Tracker.UpdateHabit(habit.ID, patch); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type HabitToggleCmd struct {
	Ref string `arg:"" help:"Habit name or id."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	habit, err := ResolveHabit(ctx.Store, c.Ref)
	if err != nil {
		return err
	}

	updated, err := ctx.Tracker.ToggleHabit(habit.ID)
	if err != nil {
		return err
	}

	if updated.CompletedToday {
		fmt.Printf("Completed: %s %s\n", updated.Icon, updated.Name)
	} else {
		fmt.Printf("Uncompleted: %s %s\n", updated.Icon, updated.Name)
	}
	return nil
}

type HabitDeleteCmd struct {
	Ref string `arg:"" help:"Habit name or id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ResolveHabit(ctx.Store, c.Ref)
	if err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}
