package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BenjaminLindeen/RoomHub/internal/api/shared"
)

// newTestRouter builds a chi router for handler tests. When authUserID is
// non-zero every request is treated as authenticated as that user.
func newTestRouter(authUserID int64, configure func(r chi.Router)) *chi.Mux {
	r := chi.NewRouter()
	if authUserID != 0 {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				ctx := context.WithValue(req.Context(), shared.UserIDContextKey, authUserID)
				next.ServeHTTP(w, req.WithContext(ctx))
			})
		})
	}
	configure(r)
	return r
}
