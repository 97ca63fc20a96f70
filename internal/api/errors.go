package api

import (
	"errors"
	"net/http"

	"github.com/BenjaminLindeen/RoomHub/internal/api/shared"
	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/service"
	"github.com/BenjaminLindeen/RoomHub/internal/service/auth"
	"github.com/BenjaminLindeen/RoomHub/internal/service/menu"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error types
// or messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotAMember):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrHouseNotFound),
		errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrMembershipNotFound),
		errors.Is(err, store.ErrRestrictionNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrEmailExists),
		errors.Is(err, store.ErrHouseNameExists),
		errors.Is(err, store.ErrAlreadyMember):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, service.ErrAssigneeNotMember),
		errors.Is(err, domain.ErrEmptyHouseName),
		errors.Is(err, domain.ErrHouseNameTooLong),
		errors.Is(err, domain.ErrEmptyTaskName),
		errors.Is(err, domain.ErrInvalidTaskDueDate):
		return http.StatusBadRequest

	// Dependent services
	case errors.Is(err, menu.ErrPlannerUnavailable):
		return http.StatusServiceUnavailable

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, service.ErrNotAMember):
		return "You are not a member of this house"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrHouseNotFound):
		return "House not found"
	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"
	case errors.Is(err, store.ErrMembershipNotFound):
		return "You are not a member of this house"
	case errors.Is(err, store.ErrRestrictionNotFound):
		return "Restrictions not found"

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"
	case errors.Is(err, store.ErrHouseNameExists):
		return "A house with that name already exists"
	case errors.Is(err, store.ErrAlreadyMember):
		return "You are already a member of this house"

	case errors.Is(err, service.ErrAssigneeNotMember):
		return "Assignee is not a member of this house"
	case errors.Is(err, domain.ErrEmptyHouseName),
		errors.Is(err, domain.ErrHouseNameTooLong):
		return "Invalid house name"
	case errors.Is(err, domain.ErrEmptyTaskName):
		return "Task name is required"
	case errors.Is(err, domain.ErrInvalidTaskDueDate):
		return "Due date must be in YYYY-MM-DDTHH:MM format"

	case errors.Is(err, menu.ErrPlannerUnavailable):
		return "Menu planning is not available"

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError maps a service or store error to a status code and
// sanitized message, logs the underlying error, and writes the response.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}
