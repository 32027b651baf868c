package tracker

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
)

// TaskPatch carries the fields of a task update. Nil fields are left
// unchanged on the stored record.
type TaskPatch struct {
	Title    *string
	DueDate  *string
	Priority *constants.Priority
}

// AddTask assigns an id and creation timestamp, appends the task, and
// persists the collection.
func (t *Tracker) AddTask(task models.Task) (models.Task, error) {
	task.ID = uuid.NewString()
	task.Completed = false
	task.CreatedAt = t.now()

	if err := task.Validate(); err != nil {
		return models.Task{}, err
	}

	tasks, err := t.store.Tasks()
	if err != nil {
		return models.Task{}, err
	}
	tasks = append(tasks, task)
	if err := t.store.SaveTasks(tasks); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask merges the patch into the task with the given id. Unknown ids
// are a silent no-op.
func (t *Tracker) UpdateTask(id string, patch TaskPatch) error {
	tasks, err := t.store.Tasks()
	if err != nil {
		return err
	}

	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		if patch.Title != nil {
			tasks[i].Title = *patch.Title
		}
		if patch.DueDate != nil {
			tasks[i].DueDate = *patch.DueDate
		}
		if patch.Priority != nil {
			tasks[i].Priority = *patch.Priority
		}
		if err := tasks[i].Validate(); err != nil {
			return err
		}
		return t.store.SaveTasks(tasks)
	}

	return nil
}

// DeleteTask filters the task out of the collection. Deleting an id that
// does not exist is not an error.
func (t *Tracker) DeleteTask(id string) error {
	tasks, err := t.store.Tasks()
	if err != nil {
		return err
	}

	kept := tasks[:0]
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	return t.store.SaveTasks(kept)
}

// ToggleTask flips the task's completed flag. Tasks are not subject to the
// daily rollover.
func (t *Tracker) ToggleTask(id string) (models.Task, error) {
	tasks, err := t.store.Tasks()
	if err != nil {
		return models.Task{}, err
	}

	for i := range tasks {
		if tasks[i].ID == id {
			tasks[i].Completed = !tasks[i].Completed
			if err := t.store.SaveTasks(tasks); err != nil {
				return models.Task{}, err
			}
			return tasks[i], nil
		}
	}

	return models.Task{}, fmt.Errorf("task not found: %s", id)
}
