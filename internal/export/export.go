package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/storage"
)

// Exporter produces and consumes the canonical backup document. The
// document always reflects storage at call time; entities are not copied
// through any in-memory UI state.
type Exporter struct {
	store *storage.Store
	now   func() time.Time
}

func New(store *storage.Store) *Exporter {
	return &Exporter{
		store: store,
		now:   time.Now,
	}
}

// Snapshot assembles the interchange document from the store.
func (e *Exporter) Snapshot() (models.AppData, error) {
	habits, err := e.store.Habits()
	if err != nil {
		return models.AppData{}, err
	}
	tasks, err := e.store.Tasks()
	if err != nil {
		return models.AppData{}, err
	}
	supplements, err := e.store.Supplements()
	if err != nil {
		return models.AppData{}, err
	}
	water, err := e.store.Water()
	if err != nil {
		return models.AppData{}, err
	}

	// The empty collections marshal as [] rather than null
	if habits == nil {
		habits = []models.Habit{}
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	if supplements == nil {
		supplements = []models.Supplement{}
	}

	return models.AppData{
		Habits:      habits,
		Tasks:       tasks,
		Supplements: supplements,
		WaterIntake: water.IntakeMl,
		LastUpdated: e.now().Format(time.RFC3339),
	}, nil
}

// WriteJSON writes the interchange document to w.
func (e *Exporter) WriteJSON(w io.Writer) error {
	data, err := e.Snapshot()
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("failed to serialize export: %w", err)
	}
	return nil
}

// ExportFile writes the interchange document to the given path.
func (e *Exporter) ExportFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	return e.WriteJSON(f)
}

// Import restores collections and water intake from an interchange
// document. Existing collections are replaced wholesale.
func (e *Exporter) Import(r io.Reader) error {
	var data models.AppData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return fmt.Errorf("failed to parse import document: %w", err)
	}

	if err := e.store.SaveHabits(data.Habits); err != nil {
		return err
	}
	if err := e.store.SaveTasks(data.Tasks); err != nil {
		return err
	}
	if err := e.store.SaveSupplements(data.Supplements); err != nil {
		return err
	}

	water, err := e.store.Water()
	if err != nil {
		return err
	}
	if data.WaterIntake >= 0 {
		water.IntakeMl = data.WaterIntake
	}
	return e.store.SaveWater(water)
}

// ImportFile restores from an interchange document at the given path.
func (e *Exporter) ImportFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	return e.Import(f)
}
