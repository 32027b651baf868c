package backups

import (
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/habitflow/habitflow/internal/backup"
	"github.com/habitflow/habitflow/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	if ctx.SQLitePath == "" {
		return fmt.Errorf("snapshot backups require the sqlite backend")
	}

	mgr := backup.NewManager(ctx.SQLitePath)
	path, err := mgr.CreateBackup()
	if err != nil {
		return err
	}

	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	if ctx.SQLitePath == "" {
		return fmt.Errorf("snapshot backups require the sqlite backend")
	}

	mgr := backup.NewManager(ctx.SQLitePath)
	backups, err := mgr.ListBackups()
	if err != nil {
		return err
	}

	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	for _, b := range backups {
		fmt.Printf("%s  %s  %s\n",
			b.Timestamp.Format("2006-01-02 15:04"),
			humanize.Bytes(uint64(b.Size)),
			filepath.Base(b.Path))
	}
	return nil
}

type BackupRestoreCmd struct {
	Name string `arg:"" help:"Backup file name to restore."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	if ctx.SQLitePath == "" {
		return fmt.Errorf("snapshot backups require the sqlite backend")
	}

	mgr := backup.NewManager(ctx.SQLitePath)
	backupPath := filepath.Join(mgr.GetBackupDir(), c.Name)

	if err := mgr.RestoreBackup(backupPath); err != nil {
		return err
	}

	fmt.Printf("Restored backup: %s\n", c.Name)
	return nil
}
