// Package model defines domain entities and data structures for the EventMate API.
//
// The model package contains all struct definitions for domain objects,
// request types with validation, derived statistics, and API error types.
// Models are used across all layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Event: The ownership root. Carries denormalized guestCount and
//     vendorCount caches maintained by the repositories.
//   - Guest: An invitee belonging to exactly one event, with RSVP state.
//   - Vendor: A supplier belonging to exactly one event, with booking and
//     pricing state.
//
// # JSON Serialization
//
// All models use camelCase json struct tags matching the public API:
//
//	type Guest struct {
//	    ID         string `json:"id"`
//	    EventID    string `json:"eventId"`
//	    RSVPStatus string `json:"rsvpStatus"`
//	}
//
// # Validation
//
// Request types expose a Validate() []FieldError method returning one entry
// per violated constraint. Validation is pure and independent of the storage
// engine; repositories never persist an invalid document.
//
// # Statistics
//
// stats.go holds the single computation path for all derived summaries
// (RSVP breakdowns, vendor pricing totals, category breakdowns). All stats
// are computed by scanning fetched documents in memory.
package model
