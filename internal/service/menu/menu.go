// Package menu generates weekly menus for a house, folding member dietary
// and schedule restrictions into the plan. The actual plan text comes from
// an LLM behind the Planner interface.
package menu

import (
	"context"
	"errors"

	"github.com/BenjaminLindeen/RoomHub/internal/platform/logger"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
)

// ErrPlannerUnavailable is returned when menu generation is requested but no
// planner is configured (for example, no Gemini API key was provided).
var ErrPlannerUnavailable = errors.New("menu planner is not configured")

// MemberRestrictions pairs a member's display name with their recorded
// restrictions, as handed to the planner.
type MemberRestrictions struct {
	Member   string
	Dietary  string
	Schedule string
}

// Planner produces a weekly menu for the given house members and their
// restrictions. Implementations live in the platform layer.
type Planner interface {
	PlanWeeklyMenu(ctx context.Context, members []string, restrictions []MemberRestrictions) (string, error)
}

// Service builds planner input from the house's stored members and
// restrictions.
type Service struct {
	planner      Planner
	houses       store.HouseStore
	restrictions store.RestrictionStore
}

// NewService creates a menu Service. planner may be nil, in which case
// WeeklyMenu returns ErrPlannerUnavailable.
func NewService(planner Planner, houses store.HouseStore, restrictions store.RestrictionStore) *Service {
	return &Service{
		planner:      planner,
		houses:       houses,
		restrictions: restrictions,
	}
}

// WeeklyMenu generates a weekly menu for the house.
func (s *Service) WeeklyMenu(ctx context.Context, houseID int64) (string, error) {
	if s.planner == nil {
		return "", ErrPlannerUnavailable
	}

	log := logger.FromContext(ctx)

	members, err := s.houses.ListMembers(ctx, houseID)
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(members))
	nameByID := make(map[int64]string, len(members))
	for _, m := range members {
		names = append(names, m.Username)
		nameByID[m.ID] = m.Username
	}

	stored, err := s.restrictions.ListByHouse(ctx, houseID)
	if err != nil {
		return "", err
	}

	restrictions := make([]MemberRestrictions, 0, len(stored))
	for _, r := range stored {
		restrictions = append(restrictions, MemberRestrictions{
			Member:   nameByID[r.UserID],
			Dietary:  r.Dietary,
			Schedule: r.Schedule,
		})
	}

	log.Debug("generating weekly menu",
		"house_id", houseID,
		"member_count", len(names),
		"restriction_count", len(restrictions))

	return s.planner.PlanWeeklyMenu(ctx, names, restrictions)
}
