package handler

import (
	"context"
	"net/http"

	"github.com/eventmate/api/internal/model"
)

// EventServiceInterface defines the event service operations the handler needs
type EventServiceInterface interface {
	ListEvents(ctx context.Context, filters *model.EventFilters) ([]*model.Event, error)
	GetEvent(ctx context.Context, eventID string) (*model.Event, error)
	GetEventWithDetails(ctx context.Context, eventID string) (*model.EventWithDetails, error)
	GetEventStats(ctx context.Context, eventID string) (*model.EventStatsSummary, error)
	CreateEvent(ctx context.Context, req *model.EventRequest) (*model.Event, error)
	UpdateEvent(ctx context.Context, eventID string, req *model.EventRequest) (*model.Event, error)
	SetEventStatus(ctx context.Context, eventID, status string) (*model.Event, error)
	DeleteEvent(ctx context.Context, eventID string) (*model.EventDeleteResult, error)
}

// EventHandler handles event endpoints
type EventHandler struct {
	eventService EventServiceInterface
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService EventServiceInterface) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// ListEvents handles GET /events?status=&upcoming=
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filters := &model.EventFilters{}
	if status := r.URL.Query().Get("status"); status != "" {
		filters.Status = &status
	}
	if r.URL.Query().Get("upcoming") == "true" {
		filters.UpcomingOnly = true
	}

	events, err := h.eventService.ListEvents(r.Context(), filters)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, events, len(events), "")
}

// GetEvent handles GET /events/{eventId}
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := h.eventService.GetEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, event, "")
}

// GetEventDetails handles GET /events/{eventId}/details
func (h *EventHandler) GetEventDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.eventService.GetEventWithDetails(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, details, "")
}

// GetEventStats handles GET /events/{eventId}/stats
func (h *EventHandler) GetEventStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.eventService.GetEventStats(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, stats, "")
}

// CreateEvent handles POST /events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.EventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	event, err := h.eventService.CreateEvent(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, event, "Event created successfully")
}

// UpdateEvent handles PUT /events/{eventId}
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.EventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	event, err := h.eventService.UpdateEvent(r.Context(), r.PathValue("eventId"), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, event, "Event updated successfully")
}

// UpdateEventStatus handles PATCH /events/{eventId}/status
func (h *EventHandler) UpdateEventStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateEventStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	event, err := h.eventService.SetEventStatus(r.Context(), r.PathValue("eventId"), req.Status)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, event, "Event status updated successfully")
}

// DeleteEvent handles DELETE /events/{eventId}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	result, err := h.eventService.DeleteEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, "Event and all related data deleted successfully")
}
