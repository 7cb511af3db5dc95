package service

import (
	"context"
	"strings"
	"time"

	"github.com/eventmate/api/internal/model"
)

// EventRepositoryInterface defines the repository interface
type EventRepositoryInterface interface {
	Create(ctx context.Context, event *model.Event) error
	Get(ctx context.Context, eventID string) (*model.Event, error)
	List(ctx context.Context, filters *model.EventFilters) ([]*model.Event, error)
	Update(ctx context.Context, eventID string, updates map[string]interface{}) (*model.Event, error)
	Delete(ctx context.Context, eventID string) error
}

// GuestRepositoryForEvent is the slice of the guest repository the event
// service needs for details, stats and delete bookkeeping.
type GuestRepositoryForEvent interface {
	GetByEvent(ctx context.Context, eventID string, filters *model.GuestFilters) ([]*model.Guest, error)
	CountForEvent(ctx context.Context, eventID string) (int, error)
}

// VendorRepositoryForEvent is the slice of the vendor repository the event
// service needs.
type VendorRepositoryForEvent interface {
	GetByEvent(ctx context.Context, eventID string, filters *model.VendorFilters) ([]*model.Vendor, error)
	CountForEvent(ctx context.Context, eventID string) (int, error)
}

// EventService handles event business logic
type EventService struct {
	repo    EventRepositoryInterface
	guests  GuestRepositoryForEvent
	vendors VendorRepositoryForEvent
}

// NewEventService creates a new event service
func NewEventService(repo EventRepositoryInterface, guests GuestRepositoryForEvent, vendors VendorRepositoryForEvent) *EventService {
	return &EventService{
		repo:    repo,
		guests:  guests,
		vendors: vendors,
	}
}

// ListEvents returns events ordered by date ascending
func (s *EventService) ListEvents(ctx context.Context, filters *model.EventFilters) ([]*model.Event, error) {
	return s.repo.List(ctx, filters)
}

// GetEvent returns a single event
func (s *EventService) GetEvent(ctx context.Context, eventID string) (*model.Event, error) {
	event, err := s.repo.Get(ctx, recordID("event", eventID))
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// GetEventWithDetails returns an event together with its guests, vendors
// and their computed summaries. All statistics are computed from the
// fetched lists in one pass; no separate aggregation queries.
func (s *EventService) GetEventWithDetails(ctx context.Context, eventID string) (*model.EventWithDetails, error) {
	eventID = recordID("event", eventID)

	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	guests, err := s.guests.GetByEvent(ctx, eventID, nil)
	if err != nil {
		return nil, err
	}

	vendors, err := s.vendors.GetByEvent(ctx, eventID, nil)
	if err != nil {
		return nil, err
	}

	return &model.EventWithDetails{
		Event:       event,
		Guests:      guests,
		GuestStats:  model.ComputeGuestStats(guests),
		Vendors:     vendors,
		VendorStats: model.ComputeVendorStats(vendors),
	}, nil
}

// GetEventStats returns the compact planning summary for an event. It
// shares the computation path of GetEventWithDetails but keeps its own
// response shape.
func (s *EventService) GetEventStats(ctx context.Context, eventID string) (*model.EventStatsSummary, error) {
	eventID = recordID("event", eventID)

	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	guests, err := s.guests.GetByEvent(ctx, eventID, nil)
	if err != nil {
		return nil, err
	}

	vendors, err := s.vendors.GetByEvent(ctx, eventID, nil)
	if err != nil {
		return nil, err
	}

	summary := model.ComputeEventStatsSummary(event, guests, vendors, time.Now())
	return &summary, nil
}

// CreateEvent validates and creates a new event
func (s *EventService) CreateEvent(ctx context.Context, req *model.EventRequest) (*model.Event, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, model.NewValidationError(violations)
	}

	date, err := model.ParseEventDate(req.Date)
	if err != nil {
		return nil, model.NewValidationError([]model.FieldError{
			{Field: "date", Message: "Event date must be a valid date"},
		})
	}

	event := &model.Event{
		Name:        strings.TrimSpace(req.Name),
		Date:        date,
		Time:        req.Time,
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		Status:      model.EventStatusPlanning,
		Budget:      0,
	}
	if req.Status != nil {
		event.Status = *req.Status
	}
	if req.Budget != nil {
		event.Budget = *req.Budget
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent validates and applies a full update to an event
func (s *EventService) UpdateEvent(ctx context.Context, eventID string, req *model.EventRequest) (*model.Event, error) {
	eventID = recordID("event", eventID)

	if violations := req.Validate(); len(violations) > 0 {
		return nil, model.NewValidationError(violations)
	}

	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	date, err := model.ParseEventDate(req.Date)
	if err != nil {
		return nil, model.NewValidationError([]model.FieldError{
			{Field: "date", Message: "Event date must be a valid date"},
		})
	}

	updates := map[string]interface{}{
		"name":     strings.TrimSpace(req.Name),
		"date":     date,
		"time":     req.Time,
		"location": strings.TrimSpace(req.Location),
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Budget != nil {
		updates["budget"] = *req.Budget
	}

	return s.repo.Update(ctx, eventID, updates)
}

// SetEventStatus applies a targeted status change
func (s *EventService) SetEventStatus(ctx context.Context, eventID, status string) (*model.Event, error) {
	eventID = recordID("event", eventID)

	if strings.TrimSpace(status) == "" {
		return nil, ErrStatusRequired
	}
	if !model.ValidEventStatuses[status] {
		return nil, ErrInvalidEventStatus
	}

	if _, err := s.GetEvent(ctx, eventID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, eventID, map[string]interface{}{"status": status})
}

// DeleteEvent removes an event and cascades to its guests and vendors.
// The existence check runs before any delete is issued.
func (s *EventService) DeleteEvent(ctx context.Context, eventID string) (*model.EventDeleteResult, error) {
	eventID = recordID("event", eventID)

	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	guestCount, err := s.guests.CountForEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	vendorCount, err := s.vendors.CountForEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, eventID); err != nil {
		return nil, err
	}

	return &model.EventDeleteResult{
		DeletedEvent:   event.Name,
		DeletedGuests:  guestCount,
		DeletedVendors: vendorCount,
	}, nil
}
