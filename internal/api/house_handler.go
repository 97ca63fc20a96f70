package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/BenjaminLindeen/RoomHub/internal/api/shared"
	"github.com/BenjaminLindeen/RoomHub/internal/service"
)

// HouseHandler handles house browsing and membership API requests.
type HouseHandler struct {
	houseService service.HouseService
	taskService  service.TaskService
	validator    *validator.Validate
}

// NewHouseHandler creates a new HouseHandler with the given dependencies.
func NewHouseHandler(houseService service.HouseService, taskService service.TaskService) *HouseHandler {
	return &HouseHandler{
		houseService: houseService,
		taskService:  taskService,
		validator:    validator.New(),
	}
}

// ListHouses handles GET /houses. Without a filter it returns every house;
// with ?filter=joinable it returns only houses the caller has not joined,
// and with ?filter=mine only the caller's houses. The filtered forms
// require authentication.
func (h *HouseHandler) ListHouses(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")

	switch filter {
	case "":
		houses, err := h.houseService.ListHouses(r.Context())
		if err != nil {
			HandleServiceError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, houseResponses(houses))

	case "joinable", "mine":
		userID, ok := getUserIDFromContext(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		list := h.houseService.ListUserHouses
		if filter == "joinable" {
			list = h.houseService.ListHousesToJoin
		}

		houses, err := list(r.Context(), userID)
		if err != nil {
			HandleServiceError(w, r, err)
			return
		}
		shared.RespondWithJSON(w, r, http.StatusOK, houseResponses(houses))

	default:
		shared.RespondWithError(w, r, http.StatusBadRequest, "Unknown filter")
	}
}

// CreateHouse handles POST /houses. The caller becomes the first member of
// the created house.
func (h *HouseHandler) CreateHouse(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateHouseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	house, err := h.houseService.CreateHouse(r.Context(), req.Name, userID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, houseResponse(house))
}

// GetHousePage handles GET /house/{houseID}: the house, its members, and
// its tasks in one response.
func (h *HouseHandler) GetHousePage(w http.ResponseWriter, r *http.Request) {
	_, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	house, err := h.houseService.GetHouse(r.Context(), houseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	members, err := h.houseService.ListMembers(r.Context(), houseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	tasks, err := h.taskService.ListTasks(r.Context(), houseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, HousePageResponse{
		House:   houseResponse(house),
		Members: memberResponses(members),
		Tasks:   taskResponses(tasks),
	})
}

// ListMembers handles GET /houses/{houseID}/members.
func (h *HouseHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	houseID, err := getPathID(r, "houseID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	members, err := h.houseService.ListMembers(r.Context(), houseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, memberResponses(members))
}

// JoinHouse handles POST /join-house/{houseID}.
func (h *HouseHandler) JoinHouse(w http.ResponseWriter, r *http.Request) {
	userID, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	if err := h.houseService.JoinHouse(r.Context(), houseID, userID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// LeaveHouse handles POST /leave-house/{houseID}. Leaving as the last
// member deletes the house along with its tasks and restrictions.
func (h *HouseHandler) LeaveHouse(w http.ResponseWriter, r *http.Request) {
	userID, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	if err := h.houseService.LeaveHouse(r.Context(), houseID, userID); err != nil {
		HandleServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CheckLastMember handles GET /check-last-member/{houseID}, letting the
// client warn the user before a leave that would delete the house.
func (h *HouseHandler) CheckLastMember(w http.ResponseWriter, r *http.Request) {
	_, houseID, ok := requireUserAndHouse(w, r)
	if !ok {
		return
	}

	last, err := h.houseService.IsLastMember(r.Context(), houseID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, LastMemberResponse{LastMember: last})
}
