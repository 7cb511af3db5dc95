// Package repository implements the data access layer for the EventMate API.
//
// The repository package contains all database operations using SurrealDB.
// Each repository struct handles CRUD operations for a specific domain entity.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database connection
//   - Methods implement specific data operations (Create, Get, Update, Delete, etc.)
//   - SurrealQL queries are used for all database interactions
//   - Results are parsed and mapped to model structs
//
// # Counter Maintenance
//
// Events cache the number of guests and vendors that reference them
// (guestCount, vendorCount). Every guest or vendor mutation runs as an
// atomic batch that pairs the mutation with a recount of the cache, so
// the cached value can never drift from the live tables:
//
//	CREATE guest SET ...;
//	UPDATE event SET guestCount = array::len((SELECT VALUE id FROM guest WHERE eventId = $event_id)) ...;
//
// Deleting an event cascades to its guests and vendors inside a single
// batch for the same reason.
//
// # Query Patterns
//
// Common query patterns used:
//
//   - Parameterized queries with $variable syntax for security
//   - type::record() for safe ID handling
//   - time::now() for automatic timestamps
//   - RETURN NONE on bookkeeping statements so batches return only the
//     records the caller asked for
//
// # Example Usage
//
//	repo := NewEventRepository(db)
//	event, err := repo.Get(ctx, "event:abc123")
//	if err != nil {
//	    return err
//	}
//	if event == nil {
//	    // Handle not found
//	}
package repository
