package domain

import (
	"errors"
	"strings"
	"time"
)

// MaxHouseNameLength caps house names after normalization.
const MaxHouseNameLength = 20

// Common validation errors for House
var (
	ErrEmptyHouseName   = errors.New("house name cannot be empty")
	ErrHouseNameTooLong = errors.New("house name cannot exceed 20 characters")
)

// House is a shared household that members join and assign tasks within.
type House struct {
	ID        int64     `json:"house_id"`
	Name      string    `json:"house_name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewHouse creates a House with a normalized name. The ID is assigned by the
// store on creation.
// Returns an error if the normalized name is empty or too long.
func NewHouse(name string) (*House, error) {
	house := &House{
		Name:      NormalizeHouseName(name),
		CreatedAt: time.Now().UTC(),
	}

	if err := house.Validate(); err != nil {
		return nil, err
	}

	return house, nil
}

// Validate checks if the House has valid data.
func (h *House) Validate() error {
	if h.Name == "" {
		return ErrEmptyHouseName
	}
	if len(h.Name) > MaxHouseNameLength {
		return ErrHouseNameTooLong
	}
	return nil
}

// NormalizeHouseName trims surrounding whitespace and collapses interior
// runs of spaces down to a single space, so "  game   night " becomes
// "game night".
func NormalizeHouseName(name string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range strings.TrimSpace(name) {
		if r == ' ' {
			inSpace = true
			continue
		}
		if inSpace {
			b.WriteByte(' ')
			inSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
