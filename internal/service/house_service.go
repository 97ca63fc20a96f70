package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/platform/logger"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
)

// HouseService provides house and membership operations.
type HouseService interface {
	// CreateHouse creates a house with a normalized name and makes the
	// creator its first member. Returns store.ErrHouseNameExists if the
	// name is taken.
	CreateHouse(ctx context.Context, name string, creatorID int64) (*domain.House, error)

	// GetHouse retrieves a house by ID.
	GetHouse(ctx context.Context, houseID int64) (*domain.House, error)

	// ListHouses returns all houses (the browse page).
	ListHouses(ctx context.Context) ([]domain.House, error)

	// ListHousesToJoin returns houses the user does not yet belong to.
	ListHousesToJoin(ctx context.Context, userID int64) ([]domain.House, error)

	// ListUserHouses returns the houses the user belongs to.
	ListUserHouses(ctx context.Context, userID int64) ([]domain.House, error)

	// ListMembers returns the members of a house.
	ListMembers(ctx context.Context, houseID int64) ([]domain.User, error)

	// JoinHouse adds the user to the house.
	JoinHouse(ctx context.Context, houseID, userID int64) error

	// LeaveHouse removes the user from the house. When the leaving user is
	// the last member, the house and everything attached to it (tasks,
	// restrictions) are removed in the same transaction.
	LeaveHouse(ctx context.Context, houseID, userID int64) error

	// IsLastMember reports whether the house has exactly one member left.
	IsLastMember(ctx context.Context, houseID int64) (bool, error)
}

// houseService is the store-backed implementation of HouseService.
type houseService struct {
	db           *sql.DB
	houses       store.HouseStore
	tasks        store.TaskStore
	restrictions store.RestrictionStore
}

// Ensure houseService implements HouseService
var _ HouseService = (*houseService)(nil)

// NewHouseService creates a HouseService backed by the given stores. The
// *sql.DB is used to run multi-store operations in a single transaction.
func NewHouseService(
	db *sql.DB,
	houses store.HouseStore,
	tasks store.TaskStore,
	restrictions store.RestrictionStore,
) HouseService {
	return &houseService{
		db:           db,
		houses:       houses,
		tasks:        tasks,
		restrictions: restrictions,
	}
}

// CreateHouse implements HouseService.CreateHouse
func (s *houseService) CreateHouse(ctx context.Context, name string, creatorID int64) (*domain.House, error) {
	log := logger.FromContext(ctx)

	house, err := domain.NewHouse(name)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		houses := s.houses.WithTx(tx)
		if err := houses.Create(ctx, house); err != nil {
			return err
		}
		return houses.AddMember(ctx, house.ID, creatorID)
	})
	if err != nil {
		return nil, err
	}

	log.Info("house created",
		"house_id", house.ID,
		"house_name", house.Name,
		"creator_id", creatorID)
	return house, nil
}

// GetHouse implements HouseService.GetHouse
func (s *houseService) GetHouse(ctx context.Context, houseID int64) (*domain.House, error) {
	return s.houses.GetByID(ctx, houseID)
}

// ListHouses implements HouseService.ListHouses
func (s *houseService) ListHouses(ctx context.Context) ([]domain.House, error) {
	return s.houses.List(ctx)
}

// ListHousesToJoin implements HouseService.ListHousesToJoin
func (s *houseService) ListHousesToJoin(ctx context.Context, userID int64) ([]domain.House, error) {
	return s.houses.ListToJoin(ctx, userID)
}

// ListUserHouses implements HouseService.ListUserHouses
func (s *houseService) ListUserHouses(ctx context.Context, userID int64) ([]domain.House, error) {
	return s.houses.ListForUser(ctx, userID)
}

// ListMembers implements HouseService.ListMembers
func (s *houseService) ListMembers(ctx context.Context, houseID int64) ([]domain.User, error) {
	return s.houses.ListMembers(ctx, houseID)
}

// JoinHouse implements HouseService.JoinHouse
func (s *houseService) JoinHouse(ctx context.Context, houseID, userID int64) error {
	if _, err := s.houses.GetByID(ctx, houseID); err != nil {
		return err
	}
	return s.houses.AddMember(ctx, houseID, userID)
}

// LeaveHouse implements HouseService.LeaveHouse
func (s *houseService) LeaveHouse(ctx context.Context, houseID, userID int64) error {
	log := logger.FromContext(ctx)

	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		houses := s.houses.WithTx(tx)

		if err := houses.RemoveMember(ctx, houseID, userID); err != nil {
			return err
		}

		remaining, err := houses.MemberCount(ctx, houseID)
		if err != nil {
			return err
		}
		if remaining > 0 {
			return nil
		}

		// Last member left; tear down everything attached to the house.
		if err := s.tasks.WithTx(tx).DeleteByHouse(ctx, houseID); err != nil {
			return fmt.Errorf("failed to remove tasks of emptied house: %w", err)
		}
		if err := s.restrictions.WithTx(tx).DeleteByHouse(ctx, houseID); err != nil {
			return fmt.Errorf("failed to remove restrictions of emptied house: %w", err)
		}
		if err := houses.Delete(ctx, houseID); err != nil {
			return fmt.Errorf("failed to delete emptied house: %w", err)
		}

		log.Info("house deleted after last member left",
			"house_id", houseID,
			"user_id", userID)
		return nil
	})
}

// IsLastMember implements HouseService.IsLastMember
func (s *houseService) IsLastMember(ctx context.Context, houseID int64) (bool, error) {
	count, err := s.houses.MemberCount(ctx, houseID)
	if err != nil {
		return false, err
	}
	return count == 1, nil
}
