package store

import (
	"context"
	"database/sql"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
)

// TaskStore defines the interface for task persistence.
type TaskStore interface {
	// Create saves a new task, assigning the generated ID to the task.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// ListByHouse returns the tasks of a house, ordered by due date.
	ListByHouse(ctx context.Context, houseID int64) ([]domain.Task, error)

	// Update modifies an existing task's name, assignee, and due date.
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error

	// DeleteByHouse removes all tasks of a house. Deleting zero tasks is
	// not an error.
	DeleteByHouse(ctx context.Context, houseID int64) error

	// WithTx returns a new TaskStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) TaskStore
}

// RestrictionStore defines the interface for member restriction persistence.
type RestrictionStore interface {
	// Upsert saves a member's restrictions for a house, replacing any
	// previous entry for the same house and user.
	Upsert(ctx context.Context, restriction *domain.Restriction) error

	// ListByHouse returns the restrictions recorded for a house.
	ListByHouse(ctx context.Context, houseID int64) ([]domain.Restriction, error)

	// DeleteByHouse removes all restrictions of a house. Deleting zero
	// restrictions is not an error.
	DeleteByHouse(ctx context.Context, houseID int64) error

	// WithTx returns a new RestrictionStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) RestrictionStore
}
