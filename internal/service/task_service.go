package service

import (
	"context"
	"time"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/platform/logger"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
)

// CalendarEvent is the house calendar's view of a task.
type CalendarEvent struct {
	Title    string    `json:"title"`
	Assignee string    `json:"assignee"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	EndDay   time.Time `json:"end_day"`
}

// TaskService provides task assignment and calendar operations.
type TaskService interface {
	// AssignTask creates a task for the house, with the due date in its
	// 2006-01-02T15:04 form representation. Returns ErrAssigneeNotMember
	// if the assignee does not belong to the house.
	AssignTask(ctx context.Context, houseID int64, name string, assigneeID int64, dueDate string) (*domain.Task, error)

	// ListTasks returns the tasks of a house, ordered by due date.
	ListTasks(ctx context.Context, houseID int64) ([]domain.Task, error)

	// CalendarEvents returns the house's tasks shaped for its calendar:
	// each event ends an hour after it starts and carries the due date
	// rounded to the nearest midnight.
	CalendarEvents(ctx context.Context, houseID int64) ([]CalendarEvent, error)

	// EditTask updates a task's name, assignee, and due date. The task must
	// belong to the given house.
	EditTask(ctx context.Context, houseID, taskID int64, name string, assigneeID int64, dueDate string) error

	// DeleteTask removes a task. The task must belong to the given house.
	DeleteTask(ctx context.Context, houseID, taskID int64) error
}

// taskService is the store-backed implementation of TaskService.
type taskService struct {
	tasks  store.TaskStore
	houses store.HouseStore
	users  store.UserStore
}

// Ensure taskService implements TaskService
var _ TaskService = (*taskService)(nil)

// NewTaskService creates a TaskService backed by the given stores.
func NewTaskService(tasks store.TaskStore, houses store.HouseStore, users store.UserStore) TaskService {
	return &taskService{
		tasks:  tasks,
		houses: houses,
		users:  users,
	}
}

// AssignTask implements TaskService.AssignTask
func (s *taskService) AssignTask(
	ctx context.Context,
	houseID int64,
	name string,
	assigneeID int64,
	dueDate string,
) (*domain.Task, error) {
	log := logger.FromContext(ctx)

	task, err := domain.NewTask(houseID, name, assigneeID, dueDate)
	if err != nil {
		return nil, err
	}

	isMember, err := s.houses.IsMember(ctx, houseID, assigneeID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrAssigneeNotMember
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	log.Info("task assigned",
		"task_id", task.ID,
		"house_id", houseID,
		"assignee_id", assigneeID,
		"due_date", task.DueDate)
	return task, nil
}

// ListTasks implements TaskService.ListTasks
func (s *taskService) ListTasks(ctx context.Context, houseID int64) ([]domain.Task, error) {
	return s.tasks.ListByHouse(ctx, houseID)
}

// CalendarEvents implements TaskService.CalendarEvents
func (s *taskService) CalendarEvents(ctx context.Context, houseID int64) ([]CalendarEvent, error) {
	tasks, err := s.tasks.ListByHouse(ctx, houseID)
	if err != nil {
		return nil, err
	}

	// Resolve assignee names once per user rather than per task.
	names := make(map[int64]string)
	events := make([]CalendarEvent, 0, len(tasks))
	for _, task := range tasks {
		name, ok := names[task.AssigneeID]
		if !ok {
			user, err := s.users.GetByID(ctx, task.AssigneeID)
			if err != nil {
				return nil, err
			}
			name = user.Username
			names[task.AssigneeID] = name
		}

		events = append(events, CalendarEvent{
			Title:    task.Name,
			Assignee: name,
			Start:    task.DueDate,
			End:      task.DueDate.Add(time.Hour),
			EndDay:   roundToDay(task.DueDate),
		})
	}

	return events, nil
}

// EditTask implements TaskService.EditTask
func (s *taskService) EditTask(
	ctx context.Context,
	houseID, taskID int64,
	name string,
	assigneeID int64,
	dueDate string,
) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.HouseID != houseID {
		return store.ErrTaskNotFound
	}

	due, err := domain.ParseDueDate(dueDate)
	if err != nil {
		return err
	}

	isMember, err := s.houses.IsMember(ctx, houseID, assigneeID)
	if err != nil {
		return err
	}
	if !isMember {
		return ErrAssigneeNotMember
	}

	task.Name = name
	task.AssigneeID = assigneeID
	task.DueDate = due

	return s.tasks.Update(ctx, task)
}

// DeleteTask implements TaskService.DeleteTask
func (s *taskService) DeleteTask(ctx context.Context, houseID, taskID int64) error {
	task, err := s.tasks.GetByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task.HouseID != houseID {
		return store.ErrTaskNotFound
	}
	return s.tasks.Delete(ctx, taskID)
}

// roundToDay rounds a time to the nearest midnight: times at or before noon
// round down, later times round up to the next day.
func roundToDay(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	if t.Hour() < 12 || t.Equal(midnight.Add(12*time.Hour)) {
		return midnight
	}
	return midnight.AddDate(0, 0, 1)
}
