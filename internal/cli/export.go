package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/habitflow/habitflow/internal/export"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write to a file instead of stdout."`
}

func (c *ExportCmd) Run(ctx *Context) error {
	exporter := export.New(ctx.Store)

	if c.Output == "" {
		return exporter.WriteJSON(os.Stdout)
	}

	if err := exporter.ExportFile(c.Output); err != nil {
		// Export failure is surfaced but never fatal to the session
		fmt.Printf("Export failed: %v\n", err)
		return nil
	}

	fmt.Printf("Exported data to %s\n", c.Output)
	return nil
}

type ImportCmd struct {
	Input string `arg:"" help:"Path to a previously exported document."`
}

func (c *ImportCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()

	exporter := export.New(ctx.Store)
	if err := exporter.ImportFile(c.Input); err != nil {
		return err
	}

	fmt.Printf("Imported data from %s\n", c.Input)
	return nil
}

type CalendarCmd struct {
	Output string `short:"o" help:"Write to a file instead of stdout."`
}

func (c *CalendarCmd) Run(ctx *Context) error {
	exporter := export.New(ctx.Store)
	data, err := exporter.Snapshot()
	if err != nil {
		return err
	}

	// Event times are local wall times stamped as UTC; importing calendars
	// will shift them by the local offset.
	ics := export.Calendar(data, time.Now())

	if c.Output == "" {
		fmt.Print(ics)
		return nil
	}

	if err := os.WriteFile(c.Output, []byte(ics), 0600); err != nil {
		return fmt.Errorf("failed to write calendar file: %w", err)
	}
	fmt.Printf("Exported calendar to %s\n", c.Output)
	return nil
}
