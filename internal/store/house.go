package store

import (
	"context"
	"database/sql"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
)

// HouseStore defines the interface for house and membership persistence.
type HouseStore interface {
	// Create saves a new house, assigning the generated ID to the house.
	// Returns ErrHouseNameExists if a house with the same name exists.
	Create(ctx context.Context, house *domain.House) error

	// GetByID retrieves a house by its unique ID.
	// Returns ErrHouseNotFound if the house does not exist.
	GetByID(ctx context.Context, id int64) (*domain.House, error)

	// GetByName retrieves a house by its normalized name.
	// Returns ErrHouseNotFound if the house does not exist.
	GetByName(ctx context.Context, name string) (*domain.House, error)

	// List returns all houses, ordered by name.
	List(ctx context.Context) ([]domain.House, error)

	// ListForUser returns the houses the given user belongs to.
	ListForUser(ctx context.Context, userID int64) ([]domain.House, error)

	// ListToJoin returns the houses the given user does not yet belong to.
	ListToJoin(ctx context.Context, userID int64) ([]domain.House, error)

	// Delete removes a house. Memberships referencing it must be removed
	// first. Returns ErrHouseNotFound if the house does not exist.
	Delete(ctx context.Context, id int64) error

	// AddMember records that a user belongs to a house.
	// Returns ErrAlreadyMember if the membership already exists.
	AddMember(ctx context.Context, houseID, userID int64) error

	// RemoveMember removes a user from a house.
	// Returns ErrMembershipNotFound if the membership does not exist.
	RemoveMember(ctx context.Context, houseID, userID int64) error

	// ListMembers returns the users belonging to a house, ordered by username.
	ListMembers(ctx context.Context, houseID int64) ([]domain.User, error)

	// MemberCount returns the number of users belonging to a house.
	MemberCount(ctx context.Context, houseID int64) (int, error)

	// IsMember reports whether the user belongs to the house.
	IsMember(ctx context.Context, houseID, userID int64) (bool, error)

	// WithTx returns a new HouseStore instance that uses the provided
	// transaction.
	WithTx(tx *sql.Tx) HouseStore
}
