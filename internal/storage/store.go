package storage

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/logger"
	"github.com/habitflow/habitflow/internal/models"
)

// Store reads and writes typed collections on top of a Backend. Every
// collection lives under its own key; malformed or absent values fall back
// to built-in defaults rather than surfacing an error to the caller.
type Store struct {
	backend Backend
}

func New(backend Backend) *Store {
	return &Store{backend: backend}
}

func (s *Store) Init() error  { return s.backend.Init() }
func (s *Store) Load() error  { return s.backend.Load() }
func (s *Store) Close() error { return s.backend.Close() }

func (s *Store) Backend() Backend { return s.backend }

func (s *Store) GetConfigPath() string { return s.backend.GetConfigPath() }

func (s *Store) Habits() ([]models.Habit, error) {
	var habits []models.Habit
	if err := s.readJSON(constants.KeyHabits, &habits); err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *Store) SaveHabits(habits []models.Habit) error {
	return s.writeJSON(constants.KeyHabits, habits)
}

func (s *Store) Supplements() ([]models.Supplement, error) {
	var supplements []models.Supplement
	if err := s.readJSON(constants.KeySupplements, &supplements); err != nil {
		return nil, err
	}
	return supplements, nil
}

func (s *Store) SaveSupplements(supplements []models.Supplement) error {
	return s.writeJSON(constants.KeySupplements, supplements)
}

func (s *Store) Tasks() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.readJSON(constants.KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *Store) SaveTasks(tasks []models.Task) error {
	return s.writeJSON(constants.KeyTasks, tasks)
}

// Water assembles the water log from its individual scalar keys.
func (s *Store) Water() (models.WaterLog, error) {
	water := models.WaterLog{
		TargetMl:     constants.DefaultWaterTargetMl,
		SelectedSize: constants.DefaultWaterSizeMl,
		Sizes:        append([]int(nil), constants.DefaultWaterSizes...),
	}

	intake, found, err := s.readInt(constants.KeyWaterIntake)
	if err != nil {
		return models.WaterLog{}, err
	}
	if found && intake >= 0 {
		water.IntakeMl = intake
	}

	if target, found, err := s.readInt(constants.KeyWaterTarget); err != nil {
		return models.WaterLog{}, err
	} else if found && target > 0 {
		water.TargetMl = target
	}

	if size, found, err := s.readInt(constants.KeyWaterSize); err != nil {
		return models.WaterLog{}, err
	} else if found && size > 0 {
		water.SelectedSize = size
	}

	var sizes []int
	if err := s.readJSON(constants.KeyWaterSizes, &sizes); err != nil {
		return models.WaterLog{}, err
	}
	if len(sizes) > 0 {
		water.Sizes = sizes
	}

	raw, found, err := s.backend.Read(constants.KeyLastWaterTime)
	if err != nil {
		return models.WaterLog{}, err
	}
	if found {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			water.LastIntakeAt = &t
		} else {
			logger.Warn("Discarding malformed last water timestamp", "value", raw)
		}
	}

	return water, nil
}

// SaveWater persists each water field to its own key. The writes are
// independent, matching the rest of the store.
func (s *Store) SaveWater(water models.WaterLog) error {
	if err := s.backend.Write(constants.KeyWaterIntake, strconv.Itoa(water.IntakeMl)); err != nil {
		return err
	}
	if err := s.backend.Write(constants.KeyWaterTarget, strconv.Itoa(water.TargetMl)); err != nil {
		return err
	}
	if err := s.backend.Write(constants.KeyWaterSize, strconv.Itoa(water.SelectedSize)); err != nil {
		return err
	}
	if err := s.writeJSON(constants.KeyWaterSizes, water.Sizes); err != nil {
		return err
	}
	if water.LastIntakeAt != nil {
		if err := s.backend.Write(constants.KeyLastWaterTime, water.LastIntakeAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return nil
}

// LastOpenedDate returns the persisted rollover date (YYYY-MM-DD), or the
// empty string when the app has never been opened.
func (s *Store) LastOpenedDate() (string, error) {
	value, found, err := s.backend.Read(constants.KeyLastOpenedDate)
	if err != nil {
		return "", err
	}
	if !found {
		return "", nil
	}
	if _, err := time.Parse(constants.DateFormat, value); err != nil {
		logger.Warn("Discarding malformed last opened date", "value", value)
		return "", nil
	}
	return value, nil
}

func (s *Store) SetLastOpenedDate(date string) error {
	return s.backend.Write(constants.KeyLastOpenedDate, date)
}

func (s *Store) Settings() (models.Settings, error) {
	settings := models.Settings{
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		DarkMode:             constants.DefaultDarkMode,
	}
	if err := s.readJSON(constants.KeySettings, &settings); err != nil {
		return models.Settings{}, err
	}

	// Dark mode lives under its own scalar key so other surfaces can read
	// it without parsing the settings document.
	raw, found, err := s.backend.Read(constants.KeyDarkMode)
	if err != nil {
		return models.Settings{}, err
	}
	if found {
		settings.DarkMode = raw == "true"
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	if err := s.writeJSON(constants.KeySettings, settings); err != nil {
		return err
	}
	return s.backend.Write(constants.KeyDarkMode, strconv.FormatBool(settings.DarkMode))
}

// readJSON unmarshals the value under key into dest. Absent keys leave dest
// untouched; malformed payloads are logged and treated as absent.
func (s *Store) readJSON(key string, dest interface{}) error {
	value, found, err := s.backend.Read(key)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal([]byte(value), dest); err != nil {
		logger.Warn("Discarding malformed record", "key", key, "error", err)
	}
	return nil
}

func (s *Store) writeJSON(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.backend.Write(key, string(data))
}

func (s *Store) readInt(key string) (int, bool, error) {
	value, found, err := s.backend.Read(key)
	if err != nil || !found {
		return 0, false, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		logger.Warn("Discarding malformed numeric record", "key", key, "value", value)
		return 0, false, nil
	}
	return n, true, nil
}
