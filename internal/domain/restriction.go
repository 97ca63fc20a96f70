package domain

import (
	"errors"
	"time"
)

// Common validation errors for Restriction
var (
	ErrEmptyRestrictionHouseID = errors.New("restriction house ID cannot be empty")
	ErrEmptyRestrictionUserID  = errors.New("restriction user ID cannot be empty")
	ErrEmptyRestriction        = errors.New("at least one restriction must be provided")
)

// Restriction records a member's dietary and scheduling constraints within a
// house. Both fields are free text; either may be empty, but not both. The
// menu planner folds these into its weekly plan.
type Restriction struct {
	HouseID   int64     `json:"house_id"`
	UserID    int64     `json:"user_id"`
	Dietary   string    `json:"dietary_restrictions"`
	Schedule  string    `json:"schedule_restrictions"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRestriction creates a Restriction for the given house member.
// Returns an error if validation fails.
func NewRestriction(houseID, userID int64, dietary, schedule string) (*Restriction, error) {
	r := &Restriction{
		HouseID:   houseID,
		UserID:    userID,
		Dietary:   dietary,
		Schedule:  schedule,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the Restriction has valid data.
func (r *Restriction) Validate() error {
	if r.HouseID == 0 {
		return ErrEmptyRestrictionHouseID
	}
	if r.UserID == 0 {
		return ErrEmptyRestrictionUserID
	}
	if r.Dietary == "" && r.Schedule == "" {
		return ErrEmptyRestriction
	}
	return nil
}
