package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/eventmate/api/internal/model"
)

// VendorServiceInterface defines the vendor service operations the handler needs
type VendorServiceInterface interface {
	ListVendorsForEvent(ctx context.Context, eventID string, filters *model.VendorFilters) ([]*model.Vendor, error)
	GetVendor(ctx context.Context, vendorID string) (*model.Vendor, error)
	GetVendorsByCategory(ctx context.Context, eventID, category string) ([]*model.Vendor, error)
	GetVendorStats(ctx context.Context, eventID string) (*model.VendorStatsDetail, error)
	AddVendor(ctx context.Context, req *model.VendorRequest) (*model.Vendor, error)
	AddVendorsBulk(ctx context.Context, req *model.BulkVendorRequest) ([]*model.Vendor, error)
	UpdateVendor(ctx context.Context, vendorID string, req *model.VendorRequest) (*model.Vendor, error)
	SetVendorStatus(ctx context.Context, vendorID, status string) (*model.Vendor, error)
	SetVendorContract(ctx context.Context, vendorID string, req *model.UpdateContractRequest) (*model.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID string) (*model.Vendor, error)
	DeleteAllVendorsForEvent(ctx context.Context, eventID string) (int, error)
}

// VendorHandler handles vendor endpoints
type VendorHandler struct {
	vendorService VendorServiceInterface
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorService VendorServiceInterface) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
	}
}

// ListVendors handles GET /vendors/event/{eventId}?category=&status=
func (h *VendorHandler) ListVendors(w http.ResponseWriter, r *http.Request) {
	filters := &model.VendorFilters{}
	if category := r.URL.Query().Get("category"); category != "" {
		filters.Category = &category
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filters.Status = &status
	}

	vendors, err := h.vendorService.ListVendorsForEvent(r.Context(), r.PathValue("eventId"), filters)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, vendors, len(vendors), "")
}

// GetVendor handles GET /vendors/{vendorId}
func (h *VendorHandler) GetVendor(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.vendorService.GetVendor(r.Context(), r.PathValue("vendorId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, vendor, "")
}

// GetVendorsByCategory handles GET /vendors/event/{eventId}/category/{category}
func (h *VendorHandler) GetVendorsByCategory(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.vendorService.GetVendorsByCategory(r.Context(), r.PathValue("eventId"), r.PathValue("category"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, vendors, len(vendors), "")
}

// GetVendorStats handles GET /vendors/event/{eventId}/stats
func (h *VendorHandler) GetVendorStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.vendorService.GetVendorStats(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, stats, "")
}

// AddVendor handles POST /vendors
func (h *VendorHandler) AddVendor(w http.ResponseWriter, r *http.Request) {
	var req model.VendorRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	vendor, err := h.vendorService.AddVendor(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, vendor, "Vendor added successfully")
}

// AddVendorsBulk handles POST /vendors/bulk
func (h *VendorHandler) AddVendorsBulk(w http.ResponseWriter, r *http.Request) {
	var req model.BulkVendorRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	vendors, err := h.vendorService.AddVendorsBulk(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	message := fmt.Sprintf("%d vendors added successfully", len(vendors))
	WriteCollection(w, http.StatusCreated, vendors, len(vendors), message)
}

// UpdateVendor handles PUT /vendors/{vendorId}
func (h *VendorHandler) UpdateVendor(w http.ResponseWriter, r *http.Request) {
	var req model.VendorRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	vendor, err := h.vendorService.UpdateVendor(r.Context(), r.PathValue("vendorId"), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, vendor, "Vendor updated successfully")
}

// UpdateVendorStatus handles PATCH /vendors/{vendorId}/status
func (h *VendorHandler) UpdateVendorStatus(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateVendorStatusRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	vendor, err := h.vendorService.SetVendorStatus(r.Context(), r.PathValue("vendorId"), req.Status)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, vendor, "Vendor status updated successfully")
}

// UpdateVendorContract handles PATCH /vendors/{vendorId}/contract
func (h *VendorHandler) UpdateVendorContract(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateContractRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("Invalid request body"))
		return
	}

	vendor, err := h.vendorService.SetVendorContract(r.Context(), r.PathValue("vendorId"), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, vendor, "Contract details updated successfully")
}

// DeleteVendor handles DELETE /vendors/{vendorId}
func (h *VendorHandler) DeleteVendor(w http.ResponseWriter, r *http.Request) {
	vendor, err := h.vendorService.DeleteVendor(r.Context(), r.PathValue("vendorId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	data := map[string]interface{}{"deletedVendor": vendor.Name}
	WriteData(w, http.StatusOK, data, "Vendor deleted successfully")
}

// DeleteAllVendors handles DELETE /vendors/event/{eventId}/all
func (h *VendorHandler) DeleteAllVendors(w http.ResponseWriter, r *http.Request) {
	count, err := h.vendorService.DeleteAllVendorsForEvent(r.Context(), r.PathValue("eventId"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	data := map[string]interface{}{"deletedCount": count}
	WriteData(w, http.StatusOK, data, "All vendors deleted successfully")
}
