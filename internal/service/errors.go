package service

import (
	"errors"
	"strings"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Event Errors =====
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrStatusRequired     = errors.New("status is required")
	ErrInvalidEventStatus = errors.New("invalid event status")
)

// ===== Guest Errors =====
var (
	ErrGuestNotFound      = errors.New("guest not found")
	ErrRSVPStatusRequired = errors.New("rsvpStatus is required")
	ErrInvalidRSVPStatus  = errors.New("invalid RSVP status")
	ErrGuestListRequired  = errors.New("guests must be a non-empty array")
)

// ===== Vendor Errors =====
var (
	ErrVendorNotFound      = errors.New("vendor not found")
	ErrInvalidVendorStatus = errors.New("invalid vendor status")
	ErrVendorListRequired  = errors.New("vendors must be a non-empty array")
)

// ===== Shared Errors =====
var (
	ErrEventIDRequired = errors.New("eventId is required")
)

// recordID qualifies a bare ID with its table name so callers may send
// either "event:abc" or just "abc".
func recordID(table, id string) string {
	if strings.Contains(id, ":") {
		return id
	}
	return table + ":" + id
}
