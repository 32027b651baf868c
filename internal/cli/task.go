package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/habitflow/habitflow/internal/constants"
	"github.com/habitflow/habitflow/internal/models"
	"github.com/habitflow/habitflow/internal/tracker"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Edit   TaskEditCmd   `cmd:"" help:"Edit an existing task."`
	Toggle TaskToggleCmd `cmd:"" help:"Toggle a task's completion."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Due      string `short:"d" help:"Due date (YYYY-MM-DD)."`
	Priority string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
}

func (c *TaskAddCmd) Validate() error {
	if c.Due != "" {
		if _, err := time.Parse(constants.DateFormat, c.Due); err != nil {
			return fmt.Errorf("invalid due date format (expected YYYY-MM-DD): %w", err)
		}
	}
	switch constants.Priority(c.Priority) {
	case constants.PriorityLow, constants.PriorityMedium, constants.PriorityHigh:
		return nil
	default:
		return fmt.Errorf("priority must be low, medium, or high")
	}
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	task, err := ctx.Tracker.AddTask(models.Task{
		Title:    c.Title,
		DueDate:  c.Due,
		Priority: constants.Priority(c.Priority),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added task: %s\n", task.Title)
	return nil
}

type TaskListCmd struct {
	All bool `help:"Include completed tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.Tasks()
	if err != nil {
		return err
	}

	// Due-date order, undated tasks last
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].DueDate == "" {
			return false
		}
		if tasks[j].DueDate == "" {
			return true
		}
		return tasks[i].DueDate < tasks[j].DueDate
	})

	shown := 0
	for _, task := range tasks {
		if task.Completed && !c.All {
			continue
		}
		mark := " "
		if task.Completed {
			mark = "x"
		}
		due := ""
		if task.DueDate != "" {
			due = " due " + task.DueDate
		}
		fmt.Printf("[%s] %s (%s)%s\n", mark, task.Title, task.Priority, due)
		shown++
	}

	if shown == 0 {
		fmt.Println("No tasks found.")
	}
	return nil
}

type TaskEditCmd struct {
	Ref      string  `arg:"" help:"Task title or id."`
	Title    *string `help:"New title."`
	Due      *string `help:"New due date (YYYY-MM-DD), empty string to clear."`
	Priority *string `help:"New priority (low|medium|high)."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	task, err := ResolveTask(ctx.Store, c.Ref)
	if err != nil {
		return err
	}

	patch := tracker.TaskPatch{
		Title:   c.Title,
		DueDate: c.Due,
	}
	if c.Priority != nil {
		priority := constants.Priority(*c.Priority)
		patch.Priority = &priority
	}

	if err := ctx.Tracker.UpdateTask(task.ID, patch); err != nil {
		return err
	}

	fmt.Printf("Updated task: %s\n", task.Title)
	return nil
}

type TaskToggleCmd struct {
	Ref string `arg:"" help:"Task title or id."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	task, err := ResolveTask(ctx.Store, c.Ref)
	if err != nil {
		return err
	}

	updated, err := ctx.Tracker.ToggleTask(task.ID)
	if err != nil {
		return err
	}

	if updated.Completed {
		fmt.Printf("Completed: %s\n", updated.Title)
	} else {
		fmt.Printf("Reopened: %s\n", updated.Title)
	}
	return nil
}

type TaskDeleteCmd struct {
	Ref string `arg:"" help:"Task title or id."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	task, err := ResolveTask(ctx.Store, c.Ref)
	if err != nil {
		return err
	}

	if err := ctx.Tracker.DeleteTask(task.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted task: %s\n", task.Title)
	return nil
}
