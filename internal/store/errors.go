package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it so callers can match
	// either way.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g. a house with an existing name).
	ErrDuplicate = errors.New("entity already exists")

	// Entity-specific "not found" errors

	ErrUserNotFound        = fmt.Errorf("%w: user", ErrNotFound)
	ErrHouseNotFound       = fmt.Errorf("%w: house", ErrNotFound)
	ErrTaskNotFound        = fmt.Errorf("%w: task", ErrNotFound)
	ErrMembershipNotFound  = fmt.Errorf("%w: house membership", ErrNotFound)
	ErrRestrictionNotFound = fmt.Errorf("%w: restriction", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrHouseNameExists indicates that a house with the given name already exists.
	ErrHouseNameExists = fmt.Errorf("%w: house name", ErrDuplicate)

	// ErrAlreadyMember indicates that the user already belongs to the house.
	ErrAlreadyMember = fmt.Errorf("%w: house membership", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
