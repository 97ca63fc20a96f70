package api

import (
	"context"
	"net/http"

	"github.com/BenjaminLindeen/RoomHub/internal/api/shared"
)

// WeeklyMenuService generates a weekly menu plan for a house.
type WeeklyMenuService interface {
	WeeklyMenu(ctx context.Context, houseID int64) (string, error)
}

// MenuHandler handles the AI menu planning endpoint.
type MenuHandler struct {
	menuService WeeklyMenuService
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menuService WeeklyMenuService) *MenuHandler {
	return &MenuHandler{menuService: menuService}
}

// WeeklyMenu handles GET /ai-schedule/{houseID}: a weekly menu plan built
// around the members' dietary and schedule restrictions.
func (h *MenuHandler) WeeklyMenu(w http.ResponseWriter, r *http.Request) {
	_, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	plan, err := h.menuService.WeeklyMenu(r.Context(), houseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MenuResponse{Plan: plan})
}
