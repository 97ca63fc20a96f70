// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles query
// execution, data mapping between domain entities and database records, and
// translation of driver errors to store errors.
package postgres
