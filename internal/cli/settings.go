package cli

import "fmt"

type SettingsCmd struct {
	List          bool  `help:"List current settings."`
	Notifications *bool `help:"Enable or disable reminder notifications."`
	DarkMode      *bool `help:"Enable or disable the dark TUI palette."`
}

func (c *SettingsCmd) Run(ctx *Context) error {
	settings, err := ctx.Store.Settings()
	if err != nil {
		return err
	}

	changed := false
	if c.Notifications != nil {
		settings.NotificationsEnabled = *c.Notifications
		changed = true
	}
	if c.DarkMode != nil {
		settings.DarkMode = *c.DarkMode
		changed = true
	}

	if changed {
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return err
		}
		fmt.Println("Settings updated")
	}

	if c.List || !changed {
		fmt.Printf("notifications_enabled: %v\n", settings.NotificationsEnabled)
		fmt.Printf("dark_mode:             %v\n", settings.DarkMode)

		water, err := ctx.Store.Water()
		if err != nil {
			return err
		}
		fmt.Printf("water_target:          %dml\n", water.TargetMl)
		fmt.Printf("water_size:            %dml\n", water.SelectedSize)
	}

	return nil
}
