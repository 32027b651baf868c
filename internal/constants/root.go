package constants

import "time"

// Frequency represents how often a habit or supplement recurs
type Frequency string

// Priority represents the priority of a task
type Priority string

const (
	AppName            = "habitflow"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/habitflow/habitflow.db"
	EnvDBConnection    = "HABITFLOW_DB_CONNECTION"
	Version            = "v1.0.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitflow-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "habitflow-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.habitflow.app"

	// UndoWindow is how long a supplement take can be reverted via the undo control
	UndoWindow = 5 * time.Second

	// Water reminder constants for the watch daemon
	WaterReminderThreshold = 90 * time.Minute
	WaterReminderDayStart  = "09:00"
	WaterReminderDayEnd    = "21:00"
	WatchTickInterval      = time.Minute

	// Frequency constants
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"

	// Priority constants
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)
