package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/eventmate/api/internal/model"
)

// VendorRepositoryInterface defines the repository interface
type VendorRepositoryInterface interface {
	Create(ctx context.Context, vendor *model.Vendor) error
	CreateBulk(ctx context.Context, eventID string, vendors []*model.Vendor) error
	Get(ctx context.Context, vendorID string) (*model.Vendor, error)
	GetByEvent(ctx context.Context, eventID string, filters *model.VendorFilters) ([]*model.Vendor, error)
	Update(ctx context.Context, vendorID string, updates map[string]interface{}) (*model.Vendor, error)
	Delete(ctx context.Context, vendorID, eventID string) error
	DeleteAllForEvent(ctx context.Context, eventID string) error
	CountForEvent(ctx context.Context, eventID string) (int, error)
}

// EventRepositoryForVendor is the slice of the event repository vendor
// operations need to verify the owning event.
type EventRepositoryForVendor interface {
	Get(ctx context.Context, eventID string) (*model.Event, error)
}

// VendorService handles vendor business logic
type VendorService struct {
	repo   VendorRepositoryInterface
	events EventRepositoryForVendor
}

// NewVendorService creates a new vendor service
func NewVendorService(repo VendorRepositoryInterface, events EventRepositoryForVendor) *VendorService {
	return &VendorService{
		repo:   repo,
		events: events,
	}
}

// ListVendorsForEvent returns an event's vendors sorted by category then
// name, optionally filtered by category and status.
func (s *VendorService) ListVendorsForEvent(ctx context.Context, eventID string, filters *model.VendorFilters) ([]*model.Vendor, error) {
	return s.repo.GetByEvent(ctx, recordID("event", eventID), filters)
}

// GetVendor returns a single vendor
func (s *VendorService) GetVendor(ctx context.Context, vendorID string) (*model.Vendor, error) {
	vendor, err := s.repo.Get(ctx, recordID("vendor", vendorID))
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, ErrVendorNotFound
	}
	return vendor, nil
}

// GetVendorsByCategory returns an event's vendors of one category sorted
// by name.
func (s *VendorService) GetVendorsByCategory(ctx context.Context, eventID, category string) ([]*model.Vendor, error) {
	filters := &model.VendorFilters{Category: &category}
	return s.repo.GetByEvent(ctx, recordID("event", eventID), filters)
}

// GetVendorStats computes the booking, pricing and category summary for
// an event's vendors.
func (s *VendorService) GetVendorStats(ctx context.Context, eventID string) (*model.VendorStatsDetail, error) {
	vendors, err := s.repo.GetByEvent(ctx, recordID("event", eventID), nil)
	if err != nil {
		return nil, err
	}

	stats := model.ComputeVendorStatsDetail(vendors)
	return &stats, nil
}

// AddVendor validates and inserts a vendor. The owning event must exist;
// the event's vendorCount is refreshed as part of the insert.
func (s *VendorService) AddVendor(ctx context.Context, req *model.VendorRequest) (*model.Vendor, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, model.NewValidationError(violations)
	}

	eventID := recordID("event", req.EventID)
	if err := s.requireEvent(ctx, eventID); err != nil {
		return nil, err
	}

	vendor := buildVendor(req, eventID)
	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// AddVendorsBulk validates and inserts several vendors for one event. The
// event's vendorCount is refreshed once after the batch.
func (s *VendorService) AddVendorsBulk(ctx context.Context, req *model.BulkVendorRequest) ([]*model.Vendor, error) {
	if strings.TrimSpace(req.EventID) == "" {
		return nil, ErrEventIDRequired
	}
	if len(req.Vendors) == 0 {
		return nil, ErrVendorListRequired
	}

	var violations []model.FieldError
	for i, vendorReq := range req.Vendors {
		for _, v := range vendorReq.ValidateForBulk() {
			violations = append(violations, model.FieldError{
				Field:   fmt.Sprintf("vendors[%d].%s", i, v.Field),
				Message: fmt.Sprintf("vendors[%d]: %s", i, v.Message),
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

	vendors := make([]*model.Vendor, 0, len(req.Vendors))
	for _, vendorReq := range req.Vendors {
		vendors = append(vendors, buildVendor(vendorReq, eventID))
	}

	if err := s.repo.CreateBulk(ctx, eventID, vendors); err != nil {
		return nil, err
	}
	return vendors, nil
}

// UpdateVendor validates and applies a full update to a vendor
func (s *VendorService) UpdateVendor(ctx context.Context, vendorID string, req *model.VendorRequest) (*model.Vendor, error) {
	vendorID = recordID("vendor", vendorID)

	if violations := req.ValidateForBulk(); len(violations) > 0 {
		return nil, model.NewValidationError(violations)
	}

	if _, err := s.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"name":     strings.TrimSpace(req.Name),
		"category": req.Category,
		"phone":    req.Phone,
	}
	if req.ContactPerson != nil {
		updates["contactPerson"] = *req.ContactPerson
	}
	if req.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Website != nil {
		updates["website"] = *req.Website
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.PriceRange != nil {
		updates["priceRange"] = *req.PriceRange
	}
	if req.Services != nil {
		updates["services"] = req.Services
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.QuotedPrice != nil {
		updates["quotedPrice"] = *req.QuotedPrice
	}
	if req.FinalPrice != nil {
		updates["finalPrice"] = *req.FinalPrice
	}
	if req.ContractSigned != nil {
		updates["contractSigned"] = *req.ContractSigned
	}
	if req.DepositPaid != nil {
		updates["depositPaid"] = *req.DepositPaid
	}
	if req.DepositAmount != nil {
		updates["depositAmount"] = *req.DepositAmount
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	return s.repo.Update(ctx, vendorID, updates)
}

// SetVendorStatus applies a targeted status change
func (s *VendorService) SetVendorStatus(ctx context.Context, vendorID, status string) (*model.Vendor, error) {
	vendorID = recordID("vendor", vendorID)

	if strings.TrimSpace(status) == "" {
		return nil, ErrStatusRequired
	}
	if !model.ValidVendorStatuses[status] {
		return nil, ErrInvalidVendorStatus
	}

	if _, err := s.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, vendorID, map[string]interface{}{"status": status})
}

// SetVendorContract patches only the contract fields present in the
// request; absent fields keep their prior values.
func (s *VendorService) SetVendorContract(ctx context.Context, vendorID string, req *model.UpdateContractRequest) (*model.Vendor, error) {
	vendorID = recordID("vendor", vendorID)

	if req.DepositAmount != nil && *req.DepositAmount < 0 {
		return nil, model.NewValidationError([]model.FieldError{
			{Field: "depositAmount", Message: "Deposit cannot be negative"},
		})
	}

	if _, err := s.GetVendor(ctx, vendorID); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.ContractSigned != nil {
		updates["contractSigned"] = *req.ContractSigned
	}
	if req.DepositPaid != nil {
		updates["depositPaid"] = *req.DepositPaid
	}
	if req.DepositAmount != nil {
		updates["depositAmount"] = *req.DepositAmount
	}

	return s.repo.Update(ctx, vendorID, updates)
}

// DeleteVendor removes a vendor and refreshes the owning event's
// vendorCount. Returns the deleted vendor.
func (s *VendorService) DeleteVendor(ctx context.Context, vendorID string) (*model.Vendor, error) {
	vendorID = recordID("vendor", vendorID)

	vendor, err := s.GetVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, vendorID, vendor.EventID); err != nil {
		return nil, err
	}
	return vendor, nil
}

// DeleteAllVendorsForEvent removes every vendor of an event and returns
// how many were deleted. The event's vendorCount is reset to zero.
func (s *VendorService) DeleteAllVendorsForEvent(ctx context.Context, eventID string) (int, error) {
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

func (s *VendorService) requireEvent(ctx context.Context, eventID string) error {
	event, err := s.events.Get(ctx, eventID)
	if err != nil {
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	return nil
}

// buildVendor applies defaults and normalization to a validated request
func buildVendor(req *model.VendorRequest, eventID string) *model.Vendor {
	vendor := &model.Vendor{
		EventID:       eventID,
		Name:          strings.TrimSpace(req.Name),
		Category:      req.Category,
		ContactPerson: req.ContactPerson,
		Phone:         req.Phone,
		Website:       req.Website,
		Address:       req.Address,
		PriceRange:    model.PriceRangeModerate,
		Services:      req.Services,
		Status:        model.VendorStatusResearching,
		Notes:         req.Notes,
	}
	if vendor.Services == nil {
		vendor.Services = []string{}
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		vendor.Email = &email
	}
	if req.Rating != nil {
		vendor.Rating = *req.Rating
	}
	if req.PriceRange != nil {
		vendor.PriceRange = *req.PriceRange
	}
	if req.Status != nil {
		vendor.Status = *req.Status
	}
	if req.QuotedPrice != nil {
		vendor.QuotedPrice = *req.QuotedPrice
	}
	if req.FinalPrice != nil {
		vendor.FinalPrice = *req.FinalPrice
	}
	if req.ContractSigned != nil {
		vendor.ContractSigned = *req.ContractSigned
	}
	if req.DepositPaid != nil {
		vendor.DepositPaid = *req.DepositPaid
	}
	if req.DepositAmount != nil {
		vendor.DepositAmount = *req.DepositAmount
	}
	return vendor
}
