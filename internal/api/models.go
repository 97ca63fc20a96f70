package api

import (
	"time"

	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/service"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=64"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse defines the successful response for the token
// refresh endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// CreateHouseRequest defines the payload for creating a house.
type CreateHouseRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// HouseResponse is the JSON shape of a house.
type HouseResponse struct {
	ID        int64     `json:"house_id"`
	Name      string    `json:"house_name"`
	CreatedAt time.Time `json:"created_at"`
}

// MemberResponse is the JSON shape of a house member.
type MemberResponse struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
}

// HousePageResponse carries everything the house page shows: the house,
// its members, and its tasks.
type HousePageResponse struct {
	House   HouseResponse    `json:"house"`
	Members []MemberResponse `json:"members"`
	Tasks   []TaskResponse   `json:"tasks"`
}

// LastMemberResponse reports whether the caller is the last member of a
// house, so the client can warn before a leave that deletes the house.
type LastMemberResponse struct {
	LastMember bool `json:"last_member"`
}

// TaskResponse is the JSON shape of a task.
type TaskResponse struct {
	ID         int64     `json:"task_id"`
	HouseID    int64     `json:"house_id"`
	Name       string    `json:"task_name"`
	AssigneeID int64     `json:"assignee_id"`
	DueDate    time.Time `json:"due_date"`
}

// EditTaskRequest defines the payload for editing a task.
type EditTaskRequest struct {
	Name       string `json:"task_name"     validate:"required,max=200"`
	AssigneeID int64  `json:"assignee_id"   validate:"required,gt=0"`
	DueDate    string `json:"task_due_date" validate:"required"`
}

// RestrictionRequest defines the payload for recording a member's dietary
// and schedule restrictions.
type RestrictionRequest struct {
	Dietary  string `json:"dietary"  validate:"max=500"`
	Schedule string `json:"schedule" validate:"max=500"`
}

// RestrictionResponse is the JSON shape of one member's restrictions.
type RestrictionResponse struct {
	UserID   int64  `json:"user_id"`
	Dietary  string `json:"dietary"`
	Schedule string `json:"schedule"`
}

// MenuResponse carries the generated weekly menu plan.
type MenuResponse struct {
	Plan string `json:"plan"`
}

func houseResponse(h *domain.House) HouseResponse {
	return HouseResponse{
		ID:        h.ID,
		Name:      h.Name,
		CreatedAt: h.CreatedAt,
	}
}

func houseResponses(houses []domain.House) []HouseResponse {
	out := make([]HouseResponse, 0, len(houses))
	for i := range houses {
		out = append(out, houseResponse(&houses[i]))
	}
	return out
}

func memberResponses(members []domain.User) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, MemberResponse{ID: m.ID, Username: m.Username})
	}
	return out
}

func taskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:         t.ID,
		HouseID:    t.HouseID,
		Name:       t.Name,
		AssigneeID: t.AssigneeID,
		DueDate:    t.DueDate,
	}
}

func taskResponses(tasks []domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskResponse(&tasks[i]))
	}
	return out
}

func calendarEventResponses(events []service.CalendarEvent) []service.CalendarEvent {
	if events == nil {
		return []service.CalendarEvent{}
	}
	return events
}
