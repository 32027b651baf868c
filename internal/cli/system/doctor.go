package system

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/habitflow/habitflow/internal/backup"
	"github.com/habitflow/habitflow/internal/cli"
	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/keyring"
	"github.com/habitflow/habitflow/internal/notifier"
	"github.com/habitflow/habitflow/internal/storage/sqlite"
	"github.com/habitflow/habitflow/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	// Check 2: data validation (only if storage is reachable)
	if storageReachable {
		if err := checkValidation(ctx); err != nil {
			fmt.Printf("❌ Data validation: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Data validation: OK\n")
		}
	} else {
		fmt.Printf("⊘ Data validation: SKIPPED (storage not reachable)\n")
	}

	// Check 3: backups present (warning only, sqlite backend only)
	if ctx.SQLitePath == "" {
		fmt.Printf("⊘ Backups present: SKIPPED (not using the sqlite backend)\n")
	} else if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	// Check 4: tray notifier reachable (warning only, reminders degrade
	// to silent skips without it)
	if err := checkNotifier(); err != nil {
		fmt.Printf("⚠ Tray notifier: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Tray notifier: OK\n")
	}

	// Check 5: OS keyring available (warning only, needed for postgres)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   keyring unavailable; postgres credentials must come from %s\n", constants.EnvDBConnection)
	}

	// Check 6: clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStorageReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// For SQLite, also try a simple query
	if sqliteStore, ok := ctx.Store.Backend().(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkValidation(ctx *cli.Context) error {
	habits, err := ctx.Store.Habits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	supplements, err := ctx.Store.Supplements()
	if err != nil {
		return fmt.Errorf("failed to get supplements: %w", err)
	}
	tasks, err := ctx.Store.Tasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	v := validation.New()
	if result := v.ValidateHabits(habits); result.HasConflicts() {
		return fmt.Errorf("habit conflicts found:\n%s", result.FormatReport())
	}
	if result := v.ValidateSupplements(supplements); result.HasConflicts() {
		return fmt.Errorf("supplement conflicts found:\n%s", result.FormatReport())
	}

	seen := make(map[string]bool)
	for _, task := range tasks {
		if seen[task.ID] {
			return fmt.Errorf("duplicate task ID found: %s", task.ID)
		}
		seen[task.ID] = true
	}

	return nil
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.SQLitePath)
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'habitflow backup create'")
	}

	return nil
}

func checkNotifier() error {
	trayConfigDir, err := notifier.GetTrayAppConfigDir()
	if err != nil {
		return fmt.Errorf("failed to locate tray config dir: %w", err)
	}

	lockfilePath := filepath.Join(trayConfigDir, constants.NotifierLockfileName)
	if _, err := os.Stat(lockfilePath); err != nil {
		return fmt.Errorf("habitflow-tray is not running; reminders will be skipped")
	}

	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		// This might be intentional, so just note it
		fmt.Printf("   Note: timezone is UTC\n")
	}

	return nil
}
