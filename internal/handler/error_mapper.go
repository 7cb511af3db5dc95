package handler

import (
	"errors"

	"github.com/eventmate/api/internal/model"
	"github.com/eventmate/api/internal/service"
)

// MapServiceError converts a service error to an APIError response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and messages across the API.
func MapServiceError(err error) *model.APIError {
	if err == nil {
		return nil
	}

	// Validation errors carry their status and per-field messages already
	var apiErr *model.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrEventNotFound):
		return model.NewNotFoundError("Event")
	case errors.Is(err, service.ErrGuestNotFound):
		return model.NewNotFoundError("Guest")
	case errors.Is(err, service.ErrVendorNotFound):
		return model.NewNotFoundError("Vendor")

	// ===== Bad Request Errors → 400 =====
	case errors.Is(err, service.ErrStatusRequired),
		errors.Is(err, service.ErrInvalidEventStatus),
		errors.Is(err, service.ErrInvalidVendorStatus),
		errors.Is(err, service.ErrRSVPStatusRequired),
		errors.Is(err, service.ErrInvalidRSVPStatus),
		errors.Is(err, service.ErrGuestListRequired),
		errors.Is(err, service.ErrVendorListRequired),
		errors.Is(err, service.ErrEventIDRequired):
		return model.NewBadRequestError(err.Error())

	// ===== Everything Else → 500 =====
	default:
		return model.NewInternalError("")
	}
}
