package system

import (
	"fmt"

	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// Seed settings and water configuration so first-run reads see
	// concrete values instead of implicit defaults.
	settings := models.Settings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		DarkMode:             constants.DefaultDarkMode,
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return err
	}

	water := models.WaterLog{
		TargetMl:     constants.DefaultWaterTargetMl,
		SelectedSize: constants.DefaultWaterSizeMl,
		Sizes:        append([]int(nil), constants.DefaultWaterSizes...),
	}
	if err := ctx.Store.SaveWater(water); err != nil {
		return err
	}

	fmt.Printf("Initialized habitflow storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
