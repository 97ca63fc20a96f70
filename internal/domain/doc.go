// Package domain contains the core business entities and domain logic of
// RoomHub: users, houses, tasks, and member restrictions. It is independent
// of any specific infrastructure or delivery mechanism.
package domain
