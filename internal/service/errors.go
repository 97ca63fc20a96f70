// Package service provides application-level services for managing houses,
// tasks, and member restrictions.
package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrAssigneeNotMember indicates a task was assigned to a user who does
	// not belong to the house. API layer should map this to 400 Bad Request.
	ErrAssigneeNotMember = errors.New("assignee is not a member of the house")

	// ErrNotAMember indicates the acting user does not belong to the house
	// they are operating on. API layer should map this to 403 Forbidden.
	ErrNotAMember = errors.New("user is not a member of the house")
)
