package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eventmate/api/internal/model"
)

// GuestServiceInterface defines the guest service operations the handler needs
type GuestServiceInterface interface {
	ListGuestsForEvent(ctx context.Context, eventID string, filters *model.GuestFilters) ([]*model.Guest, error)
	GetGuest(ctx context.Context, guestID string) (*model.Guest, error)
	GetGuestStats(ctx context.Context, eventID string) (*model.GuestStatsDetail, error)
	AddGuest(ctx context.Context, req *model.GuestRequest) (*model.Guest, error)
	AddGuestsBulk(ctx context.Context, req *model.BulkGuestRequest) ([]*model.Guest, error)
	UpdateGuest(ctx context.Context, guestID string, req *model.GuestRequest) (*model.Guest, error)
	SetGuestRSVP(ctx context.Context, guestID, rsvpStatus string) (*model.Guest, error)
	DeleteGuest(ctx context.Context, guestID string) (*model.Guest, error)
	DeleteAllGuestsForEvent(ctx context.Context, eventID string) (int, error)
}

// GuestHandler handles guest endpoints
type GuestHandler struct {
	guestService GuestServiceInterface
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(guestService GuestServiceInterface) *GuestHandler {
	return &GuestHandler{
		guestService: guestService,
	}
}

// ListGuests handles GET /guests/event/{eventId}?rsvpStatus=
func (h *GuestHandler) ListGuests(w http.ResponseWriter, r *http.Request) {
	filters := &model.GuestFilters{}
	if rsvpStatus := r.URL.Query().Get("rsvpStatus"); rsvpStatus != "" {
		filters.RSVPStatus = &rsvpStatus
	}

	guests, err := h.guestService.ListGuestsForEvent(r.Context(), r.PathValue("eventId"), filters)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, guests, len(guests), "")
}

// GetGuest handles GET /guests/{guestId}
func (h *GuestHandler) GetGuest(w http.ResponseWriter, r *http.Request) {
	guest, err := h.guestService.GetGuest(r.Context(), r.PathValue("guestId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, "")
}

// GetGuestStats handles GET /guests/event/{eventId}/stats
func (h *GuestHandler) GetGuestStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.guestService.GetGuestStats(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, stats, "")
}

// AddGuest handles POST /guests
func (h *GuestHandler) AddGuest(w http.ResponseWriter, r *http.Request) {
	var req model.GuestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	guest, err := h.guestService.AddGuest(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, guest, "Guest added successfully")
}

// AddGuestsBulk handles POST /guests/bulk
func (h *GuestHandler) AddGuestsBulk(w http.ResponseWriter, r *http.Request) {
	var req model.BulkGuestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	guests, err := h.guestService.AddGuestsBulk(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	message := fmt.Sprintf("%d guests added successfully", len(guests))
	WriteCollection(w, http.StatusCreated, guests, len(guests), message)
}

// UpdateGuest handles PUT /guests/{guestId}
func (h *GuestHandler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	var req model.GuestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	guest, err := h.guestService.UpdateGuest(r.Context(), r.PathValue("guestId"), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, "Guest updated successfully")
}

// UpdateGuestRSVP handles PATCH /guests/{guestId}/rsvp
func (h *GuestHandler) UpdateGuestRSVP(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateRSVPRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	guest, err := h.guestService.SetGuestRSVP(r.Context(), r.PathValue("guestId"), req.RSVPStatus)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, "RSVP status updated successfully")
}

// DeleteGuest handles DELETE /guests/{guestId}
func (h *GuestHandler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	guest, err := h.guestService.DeleteGuest(r.Context(), r.PathValue("guestId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	data := map[string]interface{}{"deletedGuest": guest.Name}
	WriteData(w, http.StatusOK, data, "Guest deleted successfully")
}

// DeleteAllGuests handles DELETE /guests/event/{eventId}/all
func (h *GuestHandler) DeleteAllGuests(w http.ResponseWriter, r *http.Request) {
	count, err := h.guestService.DeleteAllGuestsForEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	data := map[string]interface{}{"deletedCount": count}
	WriteData(w, http.StatusOK, data, "All guests deleted successfully")
}
