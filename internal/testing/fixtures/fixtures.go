// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Factories insert through the
// repository layer so the denormalized event counters stay consistent.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	event := f.CreateEvent(t)
//	guest := f.CreateGuest(t, event)
//	vendor := f.CreateVendor(t, event)
package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/eventmate/api/internal/database"
	"github.com/eventmate/api/internal/model"
	"github.com/eventmate/api/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	db      database.Database
	events  *repository.EventRepository
	guests  *repository.GuestRepository
	vendors *repository.VendorRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{
		db:      db,
		events:  repository.NewEventRepository(db),
		guests:  repository.NewGuestRepository(db),
		vendors: repository.NewVendorRepository(db),
	}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// ctx returns a context with timeout
func ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	// Store cancel to prevent leak warning
	_ = cancel
	return c
}

// ============================================================================
// Event Fixtures
// ============================================================================

// EventOpts customizes event creation
type EventOpts struct {
	Name     string
	Date     time.Time
	Time     string
	Location string
	Status   string
	Budget   float64
}

// CreateEvent creates an event with optional customizations
func (f *Factory) CreateEvent(t *testing.T, opts ...func(*EventOpts)) *model.Event {
	t.Helper()

	o := &EventOpts{
		Name:     fmt.Sprintf("Event %s", randomID()),
		Date:     time.Now().AddDate(0, 1, 0).UTC().Truncate(time.Second),
		Time:     "18:00",
		Location: "Test Venue",
		Status:   model.EventStatusPlanning,
		Budget:   5000,
	}
	for _, fn := range opts {
		fn(o)
	}

	event := &model.Event{
		Name:     o.Name,
		Date:     o.Date,
		Time:     o.Time,
		Location: o.Location,
		Status:   o.Status,
		Budget:   o.Budget,
	}

	if err := f.events.Create(ctx(), event); err != nil {
		t.Fatalf("fixtures: failed to create event: %v", err)
	}
	return event
}

// CreatePastEvent creates an event dated in the past
func (f *Factory) CreatePastEvent(t *testing.T) *model.Event {
	return f.CreateEvent(t, func(o *EventOpts) {
		o.Date = time.Now().AddDate(0, -1, 0).UTC().Truncate(time.Second)
	})
}

// ============================================================================
// Guest Fixtures
// ============================================================================

// GuestOpts customizes guest creation
type GuestOpts struct {
	Name       string
	Email      *string
	RSVPStatus string
	PlusOne    bool
}

// CreateGuest creates a guest for the given event. The event counter is
// maintained as part of the insert.
func (f *Factory) CreateGuest(t *testing.T, event *model.Event, opts ...func(*GuestOpts)) *model.Guest {
	t.Helper()

	o := &GuestOpts{
		Name:       fmt.Sprintf("Guest %s", randomID()),
		RSVPStatus: model.RSVPStatusPending,
		PlusOne:    false,
	}
	for _, fn := range opts {
		fn(o)
	}

	guest := &model.Guest{
		EventID:    event.ID,
		Name:       o.Name,
		Email:      o.Email,
		RSVPStatus: o.RSVPStatus,
		PlusOne:    o.PlusOne,
	}

	if err := f.guests.Create(ctx(), guest); err != nil {
		t.Fatalf("fixtures: failed to create guest: %v", err)
	}
	return guest
}

// CreateConfirmedGuest creates a guest with a confirmed RSVP
func (f *Factory) CreateConfirmedGuest(t *testing.T, event *model.Event, plusOne bool) *model.Guest {
	return f.CreateGuest(t, event, func(o *GuestOpts) {
		o.RSVPStatus = model.RSVPStatusConfirmed
		o.PlusOne = plusOne
	})
}

// ============================================================================
// Vendor Fixtures
// ============================================================================

// VendorOpts customizes vendor creation
type VendorOpts struct {
	Name           string
	Category       string
	Phone          string
	Status         string
	PriceRange     string
	QuotedPrice    float64
	FinalPrice     float64
	ContractSigned bool
	DepositPaid    bool
	DepositAmount  float64
}

// CreateVendor creates a vendor for the given event. The event counter is
// maintained as part of the insert.
func (f *Factory) CreateVendor(t *testing.T, event *model.Event, opts ...func(*VendorOpts)) *model.Vendor {
	t.Helper()

	o := &VendorOpts{
		Name:       fmt.Sprintf("Vendor %s", randomID()),
		Category:   model.VendorCategoryCatering,
		Phone:      "555-0100",
		Status:     model.VendorStatusResearching,
		PriceRange: model.PriceRangeModerate,
	}
	for _, fn := range opts {
		fn(o)
	}

	vendor := &model.Vendor{
		EventID:        event.ID,
		Name:           o.Name,
		Category:       o.Category,
		Phone:          o.Phone,
		Status:         o.Status,
		PriceRange:     o.PriceRange,
		Services:       []string{},
		QuotedPrice:    o.QuotedPrice,
		FinalPrice:     o.FinalPrice,
		ContractSigned: o.ContractSigned,
		DepositPaid:    o.DepositPaid,
		DepositAmount:  o.DepositAmount,
	}

	if err := f.vendors.Create(ctx(), vendor); err != nil {
		t.Fatalf("fixtures: failed to create vendor: %v", err)
	}
	return vendor
}

// CreateBookedVendor creates a vendor in booked status with a signed contract
func (f *Factory) CreateBookedVendor(t *testing.T, event *model.Event, finalPrice float64) *model.Vendor {
	return f.CreateVendor(t, event, func(o *VendorOpts) {
		o.Status = model.VendorStatusBooked
		o.ContractSigned = true
		o.FinalPrice = finalPrice
	})
}
