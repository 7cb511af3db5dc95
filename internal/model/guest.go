package model

import (
	"regexp"
	"strings"
	"time"
)

// Guest represents an invitee belonging to exactly one event.
type Guest struct {
	ID                  string    `json:"id"`
	EventID             string    `json:"eventId"`
	Name                string    `json:"name"`
	Email               *string   `json:"email,omitempty"`
	Phone               *string   `json:"phone,omitempty"`
	RSVPStatus          string    `json:"rsvpStatus"`
	PlusOne             bool      `json:"plusOne"`
	DietaryRestrictions *string   `json:"dietaryRestrictions,omitempty"`
	Notes               *string   `json:"notes,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// RSVPStatus constants
const (
	RSVPStatusPending   = "pending"
	RSVPStatusConfirmed = "confirmed"
	RSVPStatusDeclined  = "declined"
)

// Constraints
const (
	MaxGuestNameLength  = 100
	MaxDietaryLength    = 200
	MaxGuestNotesLength = 300
)

// ValidRSVPStatuses maps each recognized RSVP status to true.
var ValidRSVPStatuses = map[string]bool{
	RSVPStatusPending:   true,
	RSVPStatusConfirmed: true,
	RSVPStatusDeclined:  true,
}

// emailPattern is deliberately simple; it rejects obvious garbage without
// attempting full RFC 5322 conformance.
var emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)

// IsValidEmail reports whether s matches the accepted email shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// TotalAttendees returns the seats this guest accounts for: two with a
// plus-one, otherwise one. Derived, never stored.
func (g *Guest) TotalAttendees() int {
	if g.PlusOne {
		return 2
	}
	return 1
}

// GuestRequest represents a request to create or fully replace a guest.
type GuestRequest struct {
	EventID             string  `json:"eventId"`
	Name                string  `json:"name"`
	Email               *string `json:"email,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	RSVPStatus          *string `json:"rsvpStatus,omitempty"`
	PlusOne             *bool   `json:"plusOne,omitempty"`
	DietaryRestrictions *string `json:"dietaryRestrictions,omitempty"`
	Notes               *string `json:"notes,omitempty"`
}

// Validate checks the request against the guest constraints. The eventId
// requirement is checked separately for bulk inserts, where it is stamped
// onto every element by the service.
func (r *GuestRequest) Validate() []FieldError {
	errors := r.validateFields()
	if strings.TrimSpace(r.EventID) == "" {
		errors = append(errors, FieldError{Field: "eventId", Message: "Event ID is required"})
	}
	return errors
}

// ValidateForBulk checks everything except eventId.
func (r *GuestRequest) ValidateForBulk() []FieldError {
	return r.validateFields()
}

func (r *GuestRequest) validateFields() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "Guest name is required"})
	} else if len(r.Name) > MaxGuestNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "Name cannot exceed 100 characters"})
	}
	if r.Email != nil && *r.Email != "" && !IsValidEmail(*r.Email) {
		errors = append(errors, FieldError{Field: "email", Message: "Please provide a valid email address"})
	}
	if r.RSVPStatus != nil && !ValidRSVPStatuses[*r.RSVPStatus] {
		errors = append(errors, FieldError{Field: "rsvpStatus", Message: "RSVP status must be pending, confirmed, or declined"})
	}
	if r.DietaryRestrictions != nil && len(*r.DietaryRestrictions) > MaxDietaryLength {
		errors = append(errors, FieldError{Field: "dietaryRestrictions", Message: "Dietary restrictions cannot exceed 200 characters"})
	}
	if r.Notes != nil && len(*r.Notes) > MaxGuestNotesLength {
		errors = append(errors, FieldError{Field: "notes", Message: "Notes cannot exceed 300 characters"})
	}

	return errors
}

// BulkGuestRequest adds several guests to one event in a single call.
type BulkGuestRequest struct {
	EventID string          `json:"eventId"`
	Guests  []*GuestRequest `json:"guests"`
}

// UpdateRSVPRequest represents a targeted RSVP status change.
type UpdateRSVPRequest struct {
	RSVPStatus string `json:"rsvpStatus"`
}

// GuestFilters narrows guest list queries.
type GuestFilters struct {
	RSVPStatus *string
}
