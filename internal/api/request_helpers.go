package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/BenjaminLindeen/RoomHub/internal/api/shared"
)

// getUserIDFromContext extracts the authenticated user's ID from the request
// context. The ID is placed there by the authentication middleware.
func getUserIDFromContext(r *http.Request) (int64, bool) {
	userID, ok := shared.UserID(r.Context())
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// getPathID extracts a numeric identifier from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%s is required", paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s has invalid format", paramName)
	}
	return id, nil
}

// requireUserAndHouse extracts the authenticated user ID and the houseID
// path parameter, writing an error response and returning false if either
// is missing.
func requireUserAndHouse(w http.ResponseWriter, r *http.Request) (userID, houseID int64, ok bool) {
	userID, found := getUserIDFromContext(r)
	if !found {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return 0, 0, false
	}

	houseID, err := getPathID(r, "houseID")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return 0, 0, false
	}

	return userID, houseID, true
}
