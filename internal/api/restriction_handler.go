package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/BenjaminLindeen/RoomHub/internal/api/shared"
	"github.com/BenjaminLindeen/RoomHub/internal/domain"
	"github.com/BenjaminLindeen/RoomHub/internal/store"
)

// RestrictionHandler handles dietary and schedule restriction API requests.
type RestrictionHandler struct {
	restrictions store.RestrictionStore
	validator    *validator.Validate
}

// NewRestrictionHandler creates a new RestrictionHandler.
func NewRestrictionHandler(restrictions store.RestrictionStore) *RestrictionHandler {
	return &RestrictionHandler{
		restrictions: restrictions,
		validator:    validator.New(),
	}
}

// UpsertRestrictions handles POST /restrictions/{houseID}. Each member gets
// at most one restriction row per house; posting again replaces it.
func (h *RestrictionHandler) UpsertRestrictions(w http.ResponseWriter, r *http.Request) {
	userID, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	var req RestrictionRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	restriction := &domain.Restriction{
		HouseID:  houseID,
		UserID:   userID,
		Dietary:  req.Dietary,
		Schedule: req.Schedule,
	}
	if err := restriction.Validate(); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.restrictions.Upsert(r.Context(), restriction); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListRestrictions handles GET /restrictions/{houseID}.
func (h *RestrictionHandler) ListRestrictions(w http.ResponseWriter, r *http.Request) {
	_, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	restrictions, err := h.restrictions.ListByHouse(r.Context(), houseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	out := make([]RestrictionResponse, 0, len(restrictions))
	for _, restriction := range restrictions {
		out = append(out, RestrictionResponse{
			UserID:   restriction.UserID,
			Dietary:  restriction.Dietary,
			Schedule: restriction.Schedule,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, out)
}
