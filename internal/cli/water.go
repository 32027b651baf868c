package cli

import (
	"fmt"
	"strings"
)

type WaterCmd struct {
	Drink  WaterDrinkCmd  `cmd:"" help:"Log a drink of the selected size." default:"1"`
	Add    WaterAddCmd    `cmd:"" help:"Log an explicit amount in ml."`
	Status WaterStatusCmd `cmd:"" help:"Show today's intake against the target."`
	Target WaterTargetCmd `cmd:"" help:"Set the daily target in ml."`
	Size   WaterSizeCmd   `cmd:"" help:"Select the drink size used by 'drink'."`
	Sizes  WaterSizesCmd  `cmd:"" help:"Replace the configured drink sizes."`
}

type WaterDrinkCmd struct{}

func (c *WaterDrinkCmd) Run(ctx *Context) error {
	water, err := ctx.Tracker.DrinkWater()
	if err != nil {
		return err
	}

	fmt.Printf("Logged %dml. Today: %dml of %dml\n", water.SelectedSize, water.IntakeMl, water.TargetMl)
	return nil
}

type WaterAddCmd struct {
	Amount int `arg:"" help:"Amount in ml."`
}

func (c *WaterAddCmd) Run(ctx *Context) error {
	water, err := ctx.Tracker.AddWater(c.Amount)
	if err != nil {
		return err
	}

	fmt.Printf("Logged %dml. Today: %dml of %dml\n", c.Amount, water.IntakeMl, water.TargetMl)
	return nil
}

type WaterStatusCmd struct{}

func (c *WaterStatusCmd) Run(ctx *Context) error {
	water, err := ctx.Tracker.Water()
	if err != nil {
		return err
	}

	fmt.Printf("Intake:   %dml of %dml (%.0f%%)\n", water.IntakeMl, water.TargetMl, water.Progress()*100)
	fmt.Printf("Size:     %dml\n", water.SelectedSize)

	sizes := make([]string, len(water.Sizes))
	for i, size := range water.Sizes {
		sizes[i] = fmt.Sprintf("%dml", size)
	}
	fmt.Printf("Sizes:    %s\n", strings.Join(sizes, ", "))

	if water.LastIntakeAt != nil {
		fmt.Printf("Last:     %s\n", water.LastIntakeAt.Format("15:04"))
	}
	return nil
}

type WaterTargetCmd struct {
	Target int `arg:"" help:"Daily target in ml."`
}

func (c *WaterTargetCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.SetWaterTarget(c.Target); err != nil {
		return err
	}
	fmt.Printf("Water target set to %dml\n", c.Target)
	return nil
}

type WaterSizeCmd struct {
	Size int `arg:"" help:"Drink size in ml (must be one of the configured sizes)."`
}

func (c *WaterSizeCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.SetWaterSize(c.Size); err != nil {
		return err
	}
	fmt.Printf("Drink size set to %dml\n", c.Size)
	return nil
}

type WaterSizesCmd struct {
	Sizes []int `arg:"" help:"Drink sizes in ml."`
}

func (c *WaterSizesCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.SetWaterSizes(c.Sizes); err != nil {
		return err
	}
	fmt.Println("Drink sizes updated")
	return nil
}
