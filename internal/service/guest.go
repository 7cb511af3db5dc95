package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/eventmate/api/internal/model"
)

// GuestRepositoryInterface defines the repository interface
type GuestRepositoryInterface interface {
	Create(ctx context.Context, guest *model.Guest) error
	CreateBulk(ctx context.Context, eventID string, guests []*model.Guest) error
	Get(ctx context.Context, guestID string) (*model.Guest, error)
	GetByEvent(ctx context.Context, eventID string, filters *model.GuestFilters) ([]*model.Guest, error)
	Update(ctx context.Context, guestID string, updates map[string]interface{}) (*model.Guest, error)
	Delete(ctx context.Context, guestID, eventID string) error
	DeleteAllForEvent(ctx context.Context, eventID string) error
	CountForEvent(ctx context.Context, eventID string) (int, error)
}

// EventRepositoryForGuest is the slice of the event repository guest
// operations need to verify the owning event.
type EventRepositoryForGuest interface {
	Get(ctx context.Context, eventID string) (*model.Event, error)
}

// GuestService handles guest business logic
type GuestService struct {
	repo   GuestRepositoryInterface
	events EventRepositoryForGuest
}

// NewGuestService creates a new guest service
func NewGuestService(repo GuestRepositoryInterface, events EventRepositoryForGuest) *GuestService {
	return &GuestService{
		repo:   repo,
		events: events,
	}
}

// ListGuestsForEvent returns an event's guests sorted by name
func (s *GuestService) ListGuestsForEvent(ctx context.Context, eventID string, filters *model.GuestFilters) ([]*model.Guest, error) {
	return s.repo.GetByEvent(ctx, recordID("event", eventID), filters)
}

// GetGuest returns a single guest
func (s *GuestService) GetGuest(ctx context.Context, guestID string) (*model.Guest, error) {
	guest, err := s.repo.Get(ctx, recordID("guest", guestID))
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	return guest, nil
}

// GetGuestStats computes the RSVP breakdown for an event's guests
func (s *GuestService) GetGuestStats(ctx context.Context, eventID string) (*model.GuestStatsDetail, error) {
	guests, err := s.repo.GetByEvent(ctx, recordID("event", eventID), nil)
	if err != nil {
		return nil, err
	}

	stats := model.ComputeGuestStatsDetail(guests)
	return &stats, nil
}

// AddGuest validates and inserts a guest. The owning event must exist;
// the event's guestCount is refreshed as part of the insert.
func (s *GuestService) AddGuest(ctx context.Context, req *model.GuestRequest) (*model.Guest, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, model.NewValidationError(violations)
	}

	eventID := recordID("event", req.EventID)
	if err := s.requireEvent(ctx, eventID); err != nil {
		return nil, err
	}

	guest := buildGuest(req, eventID)
	if err := s.repo.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// AddGuestsBulk validates and inserts several guests for one event. The
// event's guestCount is refreshed once after the batch.
func (s *GuestService) AddGuestsBulk(ctx context.Context, req *model.BulkGuestRequest) ([]*model.Guest, error) {
	if strings.TrimSpace(req.EventID) == "" {
		return nil, ErrEventIDRequired
	}
	if len(req.Guests) == 0 {
		return nil, ErrGuestListRequired
	}

	var violations []model.FieldError
	for i, guestReq := range req.Guests {
		for _, v := range guestReq.ValidateForBulk() {
			violations = append(violations, model.FieldError{
				Field:   fmt.Sprintf("guests[%d].%s", i, v.Field),
				Message: fmt.Sprintf("guests[%d]: %s", i, v.Message),
			})
		}
	}
	if len(violations) > 0 {
		return nil, model.NewValidationError(violations)
	}

	eventID := recordID("event", req.EventID)
	if err := s.requireEvent(ctx, eventID); err != nil {
		return nil, err
	}

	guests := make([]*model.Guest, 0, len(req.Guests))
	for _, guestReq := range req.Guests {
		guests = append(guests, buildGuest(guestReq, eventID))
	}

	if err := s.repo.CreateBulk(ctx, eventID, guests); err != nil {
		return nil, err
	}
	return guests, nil
}

// UpdateGuest validates and applies a full update to a guest
func (s *GuestService) UpdateGuest(ctx context.Context, guestID string, req *model.GuestRequest) (*model.Guest, error) {
	guestID = recordID("guest", guestID)

	if violations := req.ValidateForBulk(); len(violations) > 0 {
		return nil, model.NewValidationError(violations)
	}

	if _, err := s.GetGuest(ctx, guestID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name": strings.TrimSpace(req.Name),
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.RSVPStatus != nil {
		updates["rsvpStatus"] = *req.RSVPStatus
	}
	if req.PlusOne != nil {
		updates["plusOne"] = *req.PlusOne
	}
	if req.DietaryRestrictions != nil {
		updates["dietaryRestrictions"] = *req.DietaryRestrictions
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	return s.repo.Update(ctx, guestID, updates)
}

// SetGuestRSVP applies a targeted RSVP status change
func (s *GuestService) SetGuestRSVP(ctx context.Context, guestID, rsvpStatus string) (*model.Guest, error) {
	guestID = recordID("guest", guestID)

	if strings.TrimSpace(rsvpStatus) == "" {
		return nil, ErrRSVPStatusRequired
	}
	if !model.ValidRSVPStatuses[rsvpStatus] {
		return nil, ErrInvalidRSVPStatus
	}

	if _, err := s.GetGuest(ctx, guestID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, guestID, map[string]interface{}{"rsvpStatus": rsvpStatus})
}

// DeleteGuest removes a guest and refreshes the owning event's guestCount.
// Returns the deleted guest.
func (s *GuestService) DeleteGuest(ctx context.Context, guestID string) (*model.Guest, error) {
	guestID = recordID("guest", guestID)

	guest, err := s.GetGuest(ctx, guestID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, guestID, guest.EventID); err != nil {
		return nil, err
	}
	return guest, nil
}

// DeleteAllGuestsForEvent removes every guest of an event and returns how
// many were deleted. The event's guestCount is reset to zero.
func (s *GuestService) DeleteAllGuestsForEvent(ctx context.Context, eventID string) (int, error) {
	eventID = recordID("event", eventID)

	count, err := s.repo.CountForEvent(ctx, eventID)
	if err != nil {
		return 0, err
	}

	if err := s.repo.DeleteAllForEvent(ctx, eventID); err != nil {
		return 0, err
	}
	return count, nil
}

func (s *GuestService) requireEvent(ctx context.Context, eventID string) error {
	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	return nil
}

// buildGuest applies defaults and normalization to a validated request
func buildGuest(req *model.GuestRequest, eventID string) *model.Guest {
	guest := &model.Guest{
		EventID:             eventID,
		Name:                strings.TrimSpace(req.Name),
		Phone:               req.Phone,
		RSVPStatus:          model.RSVPStatusPending,
		DietaryRestrictions: req.DietaryRestrictions,
		Notes:               req.Notes,
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		guest.Email = &email
	}
	if req.RSVPStatus != nil {
		guest.RSVPStatus = *req.RSVPStatus
	}
	if req.PlusOne != nil {
		guest.PlusOne = *req.PlusOne
	}
	return guest
}
