package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/platform/logger"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
)

// TaskStore implements the store.TaskStore interface using PostgreSQL.
type TaskStore struct {
	db store.DBTX
}

// Ensure TaskStore implements store.TaskStore
var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a new PostgreSQL implementation of store.TaskStore.
func NewTaskStore(db store.DBTX) *TaskStore {
	return &TaskStore{db: db}
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContext(ctx)

	if err := task.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO tasks (house_id, task_name, assignee_id, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING task_id
	`

	err := s.db.QueryRowContext(ctx, query,
		task.HouseID,
		task.Name,
		task.AssigneeID,
		task.DueDate,
		task.CreatedAt,
	).Scan(&task.ID)
	if err != nil {
		log.Error("failed to create task",
			"house_id", task.HouseID,
			"task_name", task.Name,
			"error", err)
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `
		SELECT task_id, house_id, task_name, assignee_id, due_date, created_at
		FROM tasks
		WHERE task_id = $1
	`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&task.ID,
		&task.HouseID,
		&task.Name,
		&task.AssigneeID,
		&task.DueDate,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to query task: %w", err)
	}

	return &task, nil
}

// ListByHouse implements store.TaskStore.ListByHouse
func (s *TaskStore) ListByHouse(ctx context.Context, houseID int64) ([]domain.Task, error) {
	query := `
		SELECT task_id, house_id, task_name, assignee_id, due_date, created_at
		FROM tasks
		WHERE house_id = $1
		ORDER BY due_date
	`

	rows, err := s.db.QueryContext(ctx, query, houseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []domain.Task
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID,
			&task.HouseID,
			&task.Name,
			&task.AssigneeID,
			&task.DueDate,
			&task.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE tasks
		SET task_name = $1, assignee_id = $2, due_date = $3
		WHERE task_id = $4
	`

	result, err := s.db.ExecContext(ctx, query,
		task.Name,
		task.AssigneeID,
		task.DueDate,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE task_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrTaskNotFound
	}

	return nil
}

// DeleteByHouse implements store.TaskStore.DeleteByHouse
func (s *TaskStore) DeleteByHouse(ctx context.Context, houseID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE house_id = $1`, houseID); err != nil {
		return fmt.Errorf("failed to delete house tasks: %w", err)
	}
	return nil
}

// WithTx implements store.TaskStore.WithTx
func (s *TaskStore) WithTx(tx *sql.Tx) store.TaskStore {
	return &TaskStore{db: tx}
}
