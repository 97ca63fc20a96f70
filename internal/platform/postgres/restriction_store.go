package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
)

// RestrictionStore implements the store.RestrictionStore interface using
// PostgreSQL.
type RestrictionStore struct {
	db store.DBTX
}

// Ensure RestrictionStore implements store.RestrictionStore
var _ store.RestrictionStore = (*RestrictionStore)(nil)

// NewRestrictionStore creates a new PostgreSQL implementation of
// store.RestrictionStore.
func NewRestrictionStore(db store.DBTX) *RestrictionStore {
	return &RestrictionStore{db: db}
}

// Upsert implements store.RestrictionStore.Upsert
func (s *RestrictionStore) Upsert(ctx context.Context, restriction *domain.Restriction) error {
	if err := restriction.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO restrictions (house_id, user_id, dietary_restrictions, schedule_restrictions, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (house_id, user_id) DO UPDATE
		SET dietary_restrictions = EXCLUDED.dietary_restrictions,
		    schedule_restrictions = EXCLUDED.schedule_restrictions
	`

	_, err := s.db.ExecContext(ctx, query,
		restriction.HouseID,
		restriction.UserID,
		restriction.Dietary,
		restriction.Schedule,
		restriction.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert restriction: %w", err)
	}

	return nil
}

// ListByHouse implements store.RestrictionStore.ListByHouse
func (s *RestrictionStore) ListByHouse(ctx context.Context, houseID int64) ([]domain.Restriction, error) {
	query := `
		SELECT house_id, user_id, dietary_restrictions, schedule_restrictions, created_at
		FROM restrictions
		WHERE house_id = $1
	`

	rows, err := s.db.QueryContext(ctx, query, houseID)
	if err != nil {
		return nil, fmt.Errorf("failed to query restrictions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var restrictions []domain.Restriction
	for rows.Next() {
		var r domain.Restriction
		if err := rows.Scan(
			&r.HouseID,
			&r.UserID,
			&r.Dietary,
			&r.Schedule,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan restriction: %w", err)
		}
		restrictions = append(restrictions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate restrictions: %w", err)
	}

	return restrictions, nil
}

// DeleteByHouse implements store.RestrictionStore.DeleteByHouse
func (s *RestrictionStore) DeleteByHouse(ctx context.Context, houseID int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM restrictions WHERE house_id = $1`, houseID); err != nil {
		return fmt.Errorf("failed to delete house restrictions: %w", err)
	}
	return nil
}

// WithTx implements store.RestrictionStore.WithTx
func (s *RestrictionStore) WithTx(tx *sql.Tx) store.RestrictionStore {
	return &RestrictionStore{db: tx}
}
