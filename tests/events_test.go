package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/eventmate/api/internal/model"
	"github.com/eventmate/api/internal/repository"
	"github.com/eventmate/api/internal/service"
	"github.com/eventmate/api/internal/testing/fixtures"
	"github.com/eventmate/api/internal/testing/helpers"
	"github.com/eventmate/api/internal/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Events
DOMAIN: Planning

ACCEPTANCE CRITERIA:
===================

AC-EVENT-001: Create Event
  GIVEN a valid event request
  WHEN the event is created
  THEN it is persisted with status planning, zero budget default
  AND guestCount and vendorCount start at 0

AC-EVENT-002: Create Event - Validation
  GIVEN an event request with missing or oversized fields
  WHEN the event is created
  THEN the request fails with one message per violated constraint

AC-EVENT-003: Get Event
  GIVEN an existing event
  WHEN fetched by ID (bare or fully qualified)
  THEN the full document is returned

AC-EVENT-004: List Events
  GIVEN several events
  WHEN listed with a status filter
  THEN only matching events are returned, ordered by date ascending

AC-EVENT-005: Update Event
  GIVEN an existing event
  WHEN updated with a full replacement request
  THEN all provided fields change and updatedAt moves forward

AC-EVENT-006: Set Event Status
  GIVEN an existing event
  WHEN the status is patched
  THEN only the status changes; invalid statuses are rejected

AC-EVENT-007: Delete Event Cascades
  GIVEN an event with guests and vendors
  WHEN the event is deleted
  THEN its guests and vendors are deleted in the same transaction
  AND the result reports what was removed

AC-EVENT-008: Event Details and Stats
  GIVEN an event with guests and vendors
  WHEN details or stats are requested
  THEN embedded summaries reflect the live documents
*/

// newServices wires the full service stack against the test database
func newServices(tdb *testdb.TestDB) (*service.EventService, *service.GuestService, *service.VendorService) {
	eventRepo := repository.NewEventRepository(tdb.DB)
	guestRepo := repository.NewGuestRepository(tdb.DB)
	vendorRepo := repository.NewVendorRepository(tdb.DB)

	eventService := service.NewEventService(eventRepo, guestRepo, vendorRepo)
	guestService := service.NewGuestService(guestRepo, eventRepo)
	vendorService := service.NewVendorService(vendorRepo, eventRepo)
	return eventService, guestService, vendorService
}

func TestEvent_Create(t *testing.T) {
	// AC-EVENT-001: Create Event
	tdb := testdb.New(t)
	defer tdb.Close()

	eventService, _, _ := newServices(tdb)
	ctx := context.Background()

	event, err := eventService.CreateEvent(ctx, &model.EventRequest{
		Name:     "Company Gala",
		Date:     "2026-12-31",
		Time:     "19:00",
		Location: "Grand Ballroom",
	})

	require.NoError(t, err)
	require.NotNil(t, event)

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Company Gala", event.Name)
	assert.Equal(t, model.EventStatusPlanning, event.Status)
	assert.Equal(t, float64(0), event.Budget)
	assert.Equal(t, 0, event.GuestCount)
	assert.Equal(t, 0, event.VendorCount)
	assert.False(t, event.CreatedAt.IsZero())

	helpers.AssertRecordExists(t, tdb.DB, "event", event.ID)
}

func TestEvent_CreateValidation(t *testing.T) {
	// AC-EVENT-002: Create Event - Validation
	tdb := testdb.New(t)
	defer tdb.Close()

	eventService, _, _ := newServices(tdb)
	ctx := context.Background()

	tests := []struct {
		name string
		req  model.EventRequest
	}{
		{
			name: "missing name",
			req:  model.EventRequest{Date: "2026-12-31", Time: "19:00", Location: "Somewhere"},
		},
		{
			name: "name too long",
			req: model.EventRequest{
				Name: strings.Repeat("a", model.MaxEventNameLength+1), Date: "2026-12-31",
				Time: "19:00", Location: "Somewhere",
			},
		},
		{
			name: "missing date",
			req:  model.EventRequest{Name: "Party", Time: "19:00", Location: "Somewhere"},
		},
		{
			name: "missing location",
			req:  model.EventRequest{Name: "Party", Date: "2026-12-31", Time: "19:00"},
		},
		{
			name: "invalid status",
			req: model.EventRequest{
				Name: "Party", Date: "2026-12-31", Time: "19:00", Location: "Somewhere",
				Status: helpers.StringPtr("archived"),
			},
		},
		{
			name: "negative budget",
			req: model.EventRequest{
				Name: "Party", Date: "2026-12-31", Time: "19:00", Location: "Somewhere",
				Budget: helpers.Float64Ptr(-1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eventService.CreateEvent(ctx, &tt.req)
			require.Error(t, err)

			var apiErr *model.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 400, apiErr.Status)
			assert.NotEmpty(t, apiErr.Errors)
		})
	}
}

func TestEvent_Get(t *testing.T) {
	// AC-EVENT-003: Get Event
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, _ := newServices(tdb)
	ctx := context.Background()

	created := f.CreateEvent(t)

	// Fully qualified ID
	event, err := eventService.GetEvent(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, event.ID)
	assert.Equal(t, created.Name, event.Name)

	// Bare ID gets qualified
	bare := strings.TrimPrefix(created.ID, "event:")
	event, err = eventService.GetEvent(ctx, bare)
	require.NoError(t, err)
	assert.Equal(t, created.ID, event.ID)
}

func TestEvent_GetNotFound(t *testing.T) {
	// AC-EVENT-003 (variation): unknown event
	tdb := testdb.New(t)
	defer tdb.Close()

	eventService, _, _ := newServices(tdb)

	_, err := eventService.GetEvent(context.Background(), "event:doesnotexist")
	require.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestEvent_ListWithStatusFilter(t *testing.T) {
	// AC-EVENT-004: List Events
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, _ := newServices(tdb)
	ctx := context.Background()

	f.CreateEvent(t, func(o *fixtures.EventOpts) { o.Status = model.EventStatusPlanning })
	f.CreateEvent(t, func(o *fixtures.EventOpts) { o.Status = model.EventStatusConfirmed })
	f.CreateEvent(t, func(o *fixtures.EventOpts) { o.Status = model.EventStatusConfirmed })

	confirmed := model.EventStatusConfirmed
	events, err := eventService.ListEvents(ctx, &model.EventFilters{Status: &confirmed})
	require.NoError(t, err)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, model.EventStatusConfirmed, e.Status)
	}

	// No filter returns everything
	all, err := eventService.ListEvents(ctx, &model.EventFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestEvent_ListUpcomingOnly(t *testing.T) {
	// AC-EVENT-004 (variation): upcoming filter excludes past events
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, _ := newServices(tdb)
	ctx := context.Background()

	f.CreatePastEvent(t)
	future := f.CreateEvent(t)

	events, err := eventService.ListEvents(ctx, &model.EventFilters{UpcomingOnly: true})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, future.ID, events[0].ID)
}

func TestEvent_Update(t *testing.T) {
	// AC-EVENT-005: Update Event
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, _ := newServices(tdb)
	ctx := context.Background()

	created := f.CreateEvent(t)

	updated, err := eventService.UpdateEvent(ctx, created.ID, &model.EventRequest{
		Name:        "Renamed Gala",
		Date:        "2027-01-15",
		Time:        "20:00",
		Location:    "New Venue",
		Description: helpers.StringPtr("Black tie"),
		Budget:      helpers.Float64Ptr(12000),
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Gala", updated.Name)
	assert.Equal(t, "20:00", updated.Time)
	assert.Equal(t, "New Venue", updated.Location)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Black tie", *updated.Description)
	assert.Equal(t, float64(12000), updated.Budget)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
}

func TestEvent_UpdateNotFound(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	eventService, _, _ := newServices(tdb)

	_, err := eventService.UpdateEvent(context.Background(), "event:missing", &model.EventRequest{
		Name: "X", Date: "2026-12-31", Time: "19:00", Location: "Y",
	})
	require.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestEvent_SetStatus(t *testing.T) {
	// AC-EVENT-006: Set Event Status
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, _ := newServices(tdb)
	ctx := context.Background()

	created := f.CreateEvent(t)

	updated, err := eventService.SetEventStatus(ctx, created.ID, model.EventStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, model.EventStatusConfirmed, updated.Status)
	assert.Equal(t, created.Name, updated.Name)

	// Empty status
	_, err = eventService.SetEventStatus(ctx, created.ID, "")
	require.ErrorIs(t, err, service.ErrStatusRequired)

	// Invalid status
	_, err = eventService.SetEventStatus(ctx, created.ID, "archived")
	require.ErrorIs(t, err, service.ErrInvalidEventStatus)
}

func TestEvent_DeleteCascades(t *testing.T) {
	// AC-EVENT-007: Delete Event Cascades
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, _ := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)
	g1 := f.CreateGuest(t, event)
	g2 := f.CreateGuest(t, event)
	v1 := f.CreateVendor(t, event)

	result, err := eventService.DeleteEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, event.Name, result.DeletedEvent)
	assert.Equal(t, 2, result.DeletedGuests)
	assert.Equal(t, 1, result.DeletedVendors)

	helpers.AssertRecordNotExists(t, tdb.DB, "event", event.ID)
	helpers.AssertRecordNotExists(t, tdb.DB, "guest", g1.ID)
	helpers.AssertRecordNotExists(t, tdb.DB, "guest", g2.ID)
	helpers.AssertRecordNotExists(t, tdb.DB, "vendor", v1.ID)
}

func TestEvent_DeleteNotFound(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	eventService, _, _ := newServices(tdb)

	_, err := eventService.DeleteEvent(context.Background(), "event:missing")
	require.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestEvent_Details(t *testing.T) {
	// AC-EVENT-008: Event Details and Stats
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, _ := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)
	f.CreateConfirmedGuest(t, event, true)
	f.CreateGuest(t, event)
	f.CreateBookedVendor(t, event, 2500)

	details, err := eventService.GetEventWithDetails(ctx, event.ID)
	require.NoError(t, err)

	assert.Equal(t, event.ID, details.Event.ID)
	assert.Len(t, details.Guests, 2)
	assert.Len(t, details.Vendors, 1)
	assert.Equal(t, 2, details.GuestStats.Total)
	assert.Equal(t, 1, details.GuestStats.Confirmed)
	assert.Equal(t, 1, details.GuestStats.Pending)
	assert.Equal(t, 1, details.VendorStats.Total)
	assert.Equal(t, 1, details.VendorStats.Booked)
	assert.Equal(t, float64(2500), details.VendorStats.TotalFinal)
}

func TestEvent_Stats(t *testing.T) {
	// AC-EVENT-008 (variation): stats summary shape
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, _ := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)
	f.CreateConfirmedGuest(t, event, false)
	f.CreateGuest(t, event)
	f.CreateGuest(t, event)
	f.CreateBookedVendor(t, event, 1000)
	f.CreateVendor(t, event)

	stats, err := eventService.GetEventStats(ctx, event.ID)
	require.NoError(t, err)

	assert.Equal(t, event.Name, stats.Event.Name)
	assert.Equal(t, 3, stats.Guests.Total)
	assert.Equal(t, 1, stats.Guests.Confirmed)
	assert.Equal(t, 2, stats.Guests.Pending)
	assert.Equal(t, 2, stats.Vendors.Total)
	assert.Equal(t, 1, stats.Vendors.Booked)
	assert.Equal(t, 1, stats.Vendors.Researching)
	assert.Greater(t, stats.Event.DaysUntil, 0)
}
