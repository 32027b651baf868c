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

type SupplementCmd struct {
	Add    SupplementAddCmd    `cmd:"" help:"Add a new supplement."`
	List   SupplementListCmd   `cmd:"" help:"List supplements."`
	Edit   SupplementEditCmd   `cmd:"" help:"Edit an existing supplement."`
	Take   SupplementTakeCmd   `cmd:"" help:"Mark a supplement taken today."`
	Untake SupplementUntakeCmd `cmd:"" help:"Revert today's take."`
	Delete SupplementDeleteCmd `cmd:"" help:"Delete a supplement."`
}

type SupplementAddCmd struct {
	Name      string `arg:"" help:"Supplement name."`
	Icon      string `help:"Icon for the supplement." default:"💊"`
	Frequency string `short:"f" help:"Frequency (daily|weekly)." default:"daily"`
	Reminder  string `help:"Reminder time (HH:MM)."`
	Weekdays  string `short:"w" help:"Comma-separated weekdays for weekly frequency."`
}

func (c *SupplementAddCmd) Validate() error {
	if c.Frequency != string(constants.FrequencyDaily) && c.Frequency != string(constants.FrequencyWeekly) {
		return fmt.Errorf("frequency must be daily or weekly")
	}
	if c.Frequency == string(constants.FrequencyWeekly) && c.Weekdays == "" {
		return fmt.Errorf("weekdays must be specified for weekly frequency")
	}
	if c.Reminder != "" {
		if _, err := utils.ParseTime(c.Reminder); err != nil {
			return fmt.Errorf("invalid reminder time format (expected HH:MM): %w", err)
		}
	}
	return nil
}

func (c *SupplementAddCmd) Run(ctx *Context) error {
	var weekdays []time.Weekday
	if c.Weekdays != "" {
		var err error
		weekdays, err = utils.ParseWeekdays(c.Weekdays)
		if err != nil {
			return err
		}
	}

	supplement, err := ctx.Tracker.AddSupplement(models.Supplement{
		Name:         c.Name,
		Icon:         c.Icon,
		Frequency:    constants.Frequency(c.Frequency),
		ReminderTime: c.Reminder,
		WeekDays:     weekdays,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added supplement: %s %s\n", supplement.Icon, supplement.Name)
	return nil
}

type SupplementListCmd struct{}

func (c *SupplementListCmd) Run(ctx *Context) error {
	supplements, err := ctx.Store.Supplements()
	if err != nil {
		return err
	}

	if len(supplements) == 0 {
		fmt.Println("No supplements found.")
		return nil
	}

	for _, s := range supplements {
		mark := " "
		if s.TakenToday {
			mark = "x"
		}
		var details []string
		details = append(details, fmt.Sprintf("streak %d", s.Streak))
		if s.ReminderTime != "" {
			details = append(details, "reminder "+s.ReminderTime)
		}
		fmt.Printf("[%s] %s %s (%s)\n", mark, s.Icon, s.Name, strings.Join(details, ", "))
	}

	return nil
}

type SupplementEditCmd struct {
	Ref       string  `arg:"" help:"Supplement name or id."`
	Name      *string `help:"New name."`
	Icon      *string `help:"New icon."`
	Frequency *string `help:"New frequency (daily|weekly)."`
	Reminder  *string `help:"New reminder time (HH:MM), empty string to clear."`
	Weekdays  *string `help:"New comma-separated weekdays."`
}

func (c *SupplementEditCmd) Run(ctx *Context) error {
	supplement, err := ResolveSupplement(ctx.Store, c.Ref)
	if err != nil {
		return err
	}

	patch := tracker.SupplementPatch{
		Name:         c.Name,
		Icon:         c.Icon,
		ReminderTime: c.Reminder,
	}
	if c.Frequency != nil {
		frequency := constants.Frequency(*c.Frequency)
		patch.Frequency = &frequency
	}
	if c.Weekdays != nil {
		weekdays, err := utils.ParseWeekdays(*c.Weekdays)
		if err != nil {
			return err
		}
		patch.WeekDays = &weekdays
	}

	if err := ctx.Tracker.UpdateSupplement(supplement.ID, patch); err != nil {
		return err
	}

	fmt.Printf("Updated supplement: %s\n", supplement.Name)
	return nil
}

type SupplementTakeCmd struct {
	Ref string `arg:"" help:"Supplement name or id."`
}

func (c *SupplementTakeCmd) Run(ctx *Context) error {
	supplement, err := ResolveSupplement(ctx.Store, c.Ref)
	if err != nil {
		return err
	}

	updated, err := ctx.Tracker.TakeSupplement(supplement.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Taken: %s %s (streak %d)\n", updated.Icon, updated.Name, updated.Streak)
	return nil
}

type SupplementUntakeCmd struct {
	Ref string `arg:"" help:"Supplement name or id."`
}

func (c *SupplementUntakeCmd) Run(ctx *Context) error {
	supplement, err := ResolveSupplement(ctx.Store, c.Ref)
	if err != nil {
		return err
	}

	updated, err := ctx.Tracker.UntakeSupplement(supplement.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Untaken: %s %s (streak %d)\n", updated.Icon, updated.Name, updated.Streak)
	return nil
}

type SupplementDeleteCmd struct {
	Ref string `arg:"" help:"Supplement name or id."`
}

func (c *SupplementDeleteCmd) Run(ctx *Context) error {
	supplement, err := ResolveSupplement(ctx.Store, c.Ref)
	if err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteSupplement(supplement.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted supplement: %s\n", supplement.Name)
	return nil
}
