package domain

import (
	"errors"
	"time"
)

// DueDateLayout is the layout used by task forms for due dates. It matches
// the value format of an HTML datetime-local input.
const DueDateLayout = "2006-01-02T15:04"

// Common validation errors for Task
var (
	ErrEmptyTaskName      = errors.New("task name cannot be empty")
	ErrEmptyTaskHouseID   = errors.New("task house ID cannot be empty")
	ErrEmptyTaskAssignee  = errors.New("task assignee cannot be empty")
	ErrZeroTaskDueDate    = errors.New("task due date cannot be zero")
	ErrInvalidTaskDueDate = errors.New("task due date is not in 2006-01-02T15:04 form")
)

// Task is a chore assigned to a house member with a due date.
type Task struct {
	ID         int64     `json:"task_id"`
	HouseID    int64     `json:"house_id"`
	Name       string    `json:"task_name"`
	AssigneeID int64     `json:"assignee_id"`
	DueDate    time.Time `json:"due_date"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewTask creates a Task for the given house and assignee, parsing the due
// date from its form representation. The ID is assigned by the store.
// Returns an error if validation fails.
func NewTask(houseID int64, name string, assigneeID int64, dueDate string) (*Task, error) {
	due, err := ParseDueDate(dueDate)
	if err != nil {
		return nil, err
	}

	task := &Task{
		HouseID:    houseID,
		Name:       name,
		AssigneeID: assigneeID,
		DueDate:    due,
		CreatedAt:  time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.HouseID == 0 {
		return ErrEmptyTaskHouseID
	}
	if t.Name == "" {
		return ErrEmptyTaskName
	}
	if t.AssigneeID == 0 {
		return ErrEmptyTaskAssignee
	}
	if t.DueDate.IsZero() {
		return ErrZeroTaskDueDate
	}
	return nil
}

// ParseDueDate parses a due date from its form representation.
func ParseDueDate(value string) (time.Time, error) {
	due, err := time.Parse(DueDateLayout, value)
	if err != nil {
		return time.Time{}, ErrInvalidTaskDueDate
	}
	return due, nil
}
