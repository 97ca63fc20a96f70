// Package api contains the HTTP handlers for the RoomHub server: account
// registration and login, house browsing and membership, task assignment
// and the house calendar, dietary and schedule restrictions, the weekly
// menu planner, and the animated start-page banner.
//
// Handlers depend on the service and store interfaces rather than concrete
// implementations, keeping them testable with in-memory fakes. Responses
// and error shaping are shared through the api/shared package.
package api
