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

// HouseStore implements the store.HouseStore interface using PostgreSQL.
// Memberships live in the user_houses join table.
type HouseStore struct {
	db store.DBTX
}

// Ensure HouseStore implements store.HouseStore
var _ store.HouseStore = (*HouseStore)(nil)

// NewHouseStore creates a new PostgreSQL implementation of store.HouseStore.
func NewHouseStore(db store.DBTX) *HouseStore {
	return &HouseStore{db: db}
}

// Create implements store.HouseStore.Create
func (s *HouseStore) Create(ctx context.Context, house *domain.House) error {
	log := logger.FromContext(ctx)

	if err := house.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO houses (house_name, created_at)
		VALUES ($1, $2)
		RETURNING house_id
	`

	err := s.db.QueryRowContext(ctx, query, house.Name, house.CreatedAt).Scan(&house.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			return store.ErrHouseNameExists
		}
		log.Error("failed to create house",
			"house_name", house.Name,
			"error", err)
		return fmt.Errorf("failed to create house: %w", err)
	}

	return nil
}

// GetByID implements store.HouseStore.GetByID
func (s *HouseStore) GetByID(ctx context.Context, id int64) (*domain.House, error) {
	query := `
		SELECT house_id, house_name, created_at
		FROM houses
		WHERE house_id = $1
	`
	return s.scanHouse(s.db.QueryRowContext(ctx, query, id))
}

// GetByName implements store.HouseStore.GetByName
func (s *HouseStore) GetByName(ctx context.Context, name string) (*domain.House, error) {
	query := `
		SELECT house_id, house_name, created_at
		FROM houses
		WHERE house_name = $1
	`
	return s.scanHouse(s.db.QueryRowContext(ctx, query, name))
}

// List implements store.HouseStore.List
func (s *HouseStore) List(ctx context.Context) ([]domain.House, error) {
	query := `
		SELECT house_id, house_name, created_at
		FROM houses
		ORDER BY house_name
	`
	return s.queryHouses(ctx, query)
}

// ListForUser implements store.HouseStore.ListForUser
func (s *HouseStore) ListForUser(ctx context.Context, userID int64) ([]domain.House, error) {
	query := `
		SELECT h.house_id, h.house_name, h.created_at
		FROM houses h
		JOIN user_houses uh USING (house_id)
		WHERE uh.user_id = $1
		ORDER BY h.house_name
	`
	return s.queryHouses(ctx, query, userID)
}

// ListToJoin implements store.HouseStore.ListToJoin
func (s *HouseStore) ListToJoin(ctx context.Context, userID int64) ([]domain.House, error) {
	query := `
		SELECT house_id, house_name, created_at
		FROM houses
		WHERE house_id NOT IN (
			SELECT house_id FROM user_houses WHERE user_id = $1
		)
		ORDER BY house_name
	`
	return s.queryHouses(ctx, query, userID)
}

// Delete implements store.HouseStore.Delete
func (s *HouseStore) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM houses WHERE house_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete house: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrHouseNotFound
	}
	return nil
}

// AddMember implements store.HouseStore.AddMember
func (s *HouseStore) AddMember(ctx context.Context, houseID, userID int64) error {
	query := `
		INSERT INTO user_houses (user_id, house_id)
		VALUES ($1, $2)
	`
	if _, err := s.db.ExecContext(ctx, query, userID, houseID); err != nil {
		if IsUniqueViolation(err) {
			return store.ErrAlreadyMember
		}
		if IsForeignKeyViolation(err) {
			return store.ErrHouseNotFound
		}
		return fmt.Errorf("failed to add house member: %w", err)
	}
	return nil
}

// RemoveMember implements store.HouseStore.RemoveMember
func (s *HouseStore) RemoveMember(ctx context.Context, houseID, userID int64) error {
	query := `
		DELETE FROM user_houses
		WHERE user_id = $1 AND house_id = $2
	`
	result, err := s.db.ExecContext(ctx, query, userID, houseID)
	if err != nil {
		return fmt.Errorf("failed to remove house member: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrMembershipNotFound
	}
	return nil
}

// ListMembers implements store.HouseStore.ListMembers
func (s *HouseStore) ListMembers(ctx context.Context, houseID int64) ([]domain.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.hashed_password, u.created_at
		FROM users u
		JOIN user_houses uh ON uh.user_id = u.id
		WHERE uh.house_id = $1
		ORDER BY u.username
	`

	rows, err := s.db.QueryContext(ctx, query, houseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query house members: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var members []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.HashedPassword,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan house member: %w", err)
		}
		members = append(members, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate house members: %w", err)
	}

	return members, nil
}

// MemberCount implements store.HouseStore.MemberCount
func (s *HouseStore) MemberCount(ctx context.Context, houseID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM user_houses WHERE house_id = $1`
	if err := s.db.QueryRowContext(ctx, query, houseID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count house members: %w", err)
	}
	return count, nil
}

// IsMember implements store.HouseStore.IsMember
func (s *HouseStore) IsMember(ctx context.Context, houseID, userID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM user_houses WHERE house_id = $1 AND user_id = $2
		)
	`
	if err := s.db.QueryRowContext(ctx, query, houseID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check house membership: %w", err)
	}
	return exists, nil
}

// WithTx implements store.HouseStore.WithTx
func (s *HouseStore) WithTx(tx *sql.Tx) store.HouseStore {
	return &HouseStore{db: tx}
}

func (s *HouseStore) scanHouse(row *sql.Row) (*domain.House, error) {
	var house domain.House
	err := row.Scan(&house.ID, &house.Name, &house.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrHouseNotFound
		}
		return nil, fmt.Errorf("failed to query house: %w", err)
	}
	return &house, nil
}

func (s *HouseStore) queryHouses(ctx context.Context, query string, args ...any) ([]domain.House, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query houses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var houses []domain.House
	for rows.Next() {
		var house domain.House
		if err := rows.Scan(&house.ID, &house.Name, &house.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan house: %w", err)
		}
		houses = append(houses, house)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate houses: %w", err)
	}

	return houses, nil
}
