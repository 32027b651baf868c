package constants

// Record store keys. Each collection or scalar is serialized to its own key
// and written independently; there is no multi-key transaction.
const (
	KeyHabits         = "habits"
	KeySupplements    = "supplements"
	KeyTasks          = "tasks"
	KeyWaterIntake    = "water-intake"
	KeyWaterTarget    = "water-target"
	KeyWaterSize      = "water-size"
	KeyWaterSizes     = "water-sizes"
	KeyLastOpenedDate = "lastOpenedDate"
	KeyLastWaterTime  = "last-water-time"
	KeyDarkMode       = "dark-mode"
	KeySettings       = "settings"
)

// Default settings values
const (
	DefaultWaterTargetMl        = 2500
	DefaultWaterSizeMl          = 250
	DefaultNotificationsEnabled = true
	DefaultDarkMode             = false
)

// DefaultWaterSizes are the selectable intake increments in milliliters
var DefaultWaterSizes = []int{150, 250, 330, 500}
