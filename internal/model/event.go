package model

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Event represents a planned event. It is the ownership root: guests and
// vendors reference it by EventID and are removed when it is removed.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	Budget      float64   `json:"budget"`
	// Denormalized caches. Must equal the live count of guest/vendor
	// records referencing this event; maintained by the repositories in
	// the same transaction as each guest/vendor mutation.
	GuestCount  int       `json:"guestCount"`
	VendorCount int       `json:"vendorCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventStatus constants
const (
	EventStatusPlanning  = "planning"
	EventStatusConfirmed = "confirmed"
	EventStatusCompleted = "completed"
	EventStatusCancelled = "cancelled"
)

// Constraints
const (
	MaxEventNameLength        = 100
	MaxEventLocationLength    = 200
	MaxEventDescriptionLength = 500
)

// ValidEventStatuses maps each recognized event status to true.
var ValidEventStatuses = map[string]bool{
	EventStatusPlanning:  true,
	EventStatusConfirmed: true,
	EventStatusCompleted: true,
	EventStatusCancelled: true,
}

// IsUpcoming reports whether the event date is in the future.
func (e *Event) IsUpcoming() bool {
	return e.Date.After(time.Now())
}

// DaysUntil returns the number of days until the event date, rounded up.
// Negative for past events.
func (e *Event) DaysUntil(now time.Time) int {
	diff := e.Date.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// EventDateLayout is the accepted calendar-date input format.
const EventDateLayout = "2006-01-02"

// ParseEventDate parses a date value accepted on event requests: a bare
// calendar date or a full RFC 3339 timestamp.
func ParseEventDate(s string) (time.Time, error) {
	if t, err := time.Parse(EventDateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}

// EventRequest represents a request to create or fully replace an event.
type EventRequest struct {
	Name        string   `json:"name"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Description *string  `json:"description,omitempty"`
	Status      *string  `json:"status,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
}

// Validate checks the request against the event constraints.
func (r *EventRequest) Validate() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "Event name is required"})
	} else if len(r.Name) > MaxEventNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "Event name cannot exceed 100 characters"})
	}
	if r.Date == "" {
		errors = append(errors, FieldError{Field: "date", Message: "Event date is required"})
	} else if _, err := ParseEventDate(r.Date); err != nil {
		errors = append(errors, FieldError{Field: "date", Message: "Event date must be a valid date"})
	}
	if strings.TrimSpace(r.Time) == "" {
		errors = append(errors, FieldError{Field: "time", Message: "Event time is required"})
	}
	if strings.TrimSpace(r.Location) == "" {
		errors = append(errors, FieldError{Field: "location", Message: "Event location is required"})
	} else if len(r.Location) > MaxEventLocationLength {
		errors = append(errors, FieldError{Field: "location", Message: "Location cannot exceed 200 characters"})
	}
	if r.Description != nil && len(*r.Description) > MaxEventDescriptionLength {
		errors = append(errors, FieldError{Field: "description", Message: "Description cannot exceed 500 characters"})
	}
	if r.Status != nil && !ValidEventStatuses[*r.Status] {
		errors = append(errors, FieldError{Field: "status", Message: "Status must be planning, confirmed, completed, or cancelled"})
	}
	if r.Budget != nil && *r.Budget < 0 {
		errors = append(errors, FieldError{Field: "budget", Message: "Budget cannot be negative"})
	}

	return errors
}

// UpdateEventStatusRequest represents a targeted status change.
type UpdateEventStatusRequest struct {
	Status string `json:"status"`
}

// EventFilters narrows event list queries.
type EventFilters struct {
	Status       *string
	UpcomingOnly bool
}

// EventDeleteResult reports what a cascading event delete removed.
type EventDeleteResult struct {
	DeletedEvent   string `json:"deletedEvent"`
	DeletedGuests  int    `json:"deletedGuests"`
	DeletedVendors int    `json:"deletedVendors"`
}

// EventWithDetails bundles an event with its dependents and their summaries.
type EventWithDetails struct {
	Event       *Event      `json:"event"`
	Guests      []*Guest    `json:"guests"`
	GuestStats  GuestStats  `json:"guestStats"`
	Vendors     []*Vendor   `json:"vendors"`
	VendorStats VendorStats `json:"vendorStats"`
}
