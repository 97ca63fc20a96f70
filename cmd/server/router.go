package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/BenjaminLindeen/RoomHub/internal/api"
	apiMiddleware "github.com/BenjaminLindeen/RoomHub/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordVerifier)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	houseHandler := api.NewHouseHandler(app.houseService, app.taskService)
	taskHandler := api.NewTaskHandler(app.taskService, app.houseService)
	restrictionHandler := api.NewRestrictionHandler(app.restrictionStore)
	menuHandler := api.NewMenuHandler(app.menuService)
	bannerHandler := api.NewBannerHandler(nil)

	// Authentication endpoints (public)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/refresh", authHandler.RefreshToken)

	// Public browsing
	r.Get("/houses", houseHandler.ListHouses)
	r.Get("/houses/{houseID}/members", houseHandler.ListMembers)

	// Start page banner animation
	r.Get("/start/banner", bannerHandler.Stream)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/houses", houseHandler.CreateHouse)
		r.Get("/house/{houseID}", houseHandler.GetHousePage)
		r.Post("/join-house/{houseID}", houseHandler.JoinHouse)
		r.Post("/leave-house/{houseID}", houseHandler.LeaveHouse)
		r.Get("/check-last-member/{houseID}", houseHandler.CheckLastMember)

		r.Get("/assign-task/{houseID}", taskHandler.AssignTaskForm)
		r.Post("/assign-task/{houseID}", taskHandler.AssignTask)
		r.Get("/get-tasks/{houseID}", taskHandler.GetTasks)
		r.Post("/edit-task/{houseID}/{taskID}", taskHandler.EditTask)
		r.Post("/delete-task/{houseID}/{taskID}", taskHandler.DeleteTask)

		r.Get("/restrictions/{houseID}", restrictionHandler.ListRestrictions)
		r.Post("/restrictions/{houseID}", restrictionHandler.UpsertRestrictions)

		r.Get("/ai-schedule/{houseID}", menuHandler.WeeklyMenu)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
