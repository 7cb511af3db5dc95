package service

import (
	"context"
	"errors"
	"testing"

	"github.com/eventmate/api/internal/model"
)

func newVendorService() (*VendorService, *mockVendorRepo, *mockEventRepo) {
	vendors := newMockVendorRepo()
	events := newMockEventRepo()
	return NewVendorService(vendors, events), vendors, events
}

func TestAddVendor_AppliesDefaults(t *testing.T) {
	t.Parallel()

	svc, repo, events := newVendorService()
	events.add(&model.Event{ID: "event:abc", Name: "Gala"})

	vendor, err := svc.AddVendor(context.Background(), &model.VendorRequest{
		EventID:  "abc",
		Name:     " Tasty Catering ",
		Category: model.VendorCategoryCatering,
		Phone:    "555-0100",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vendor.Name != "Tasty Catering" {
		t.Errorf("expected trimmed name, got %q", vendor.Name)
	}
	if vendor.Status != model.VendorStatusResearching {
		t.Errorf("expected researching default, got %q", vendor.Status)
	}
	if vendor.PriceRange != model.PriceRangeModerate {
		t.Errorf("expected $$ default, got %q", vendor.PriceRange)
	}
	if vendor.Services == nil || len(vendor.Services) != 0 {
		t.Errorf("expected empty services slice, got %v", vendor.Services)
	}
	if vendor.EventID != "event:abc" {
		t.Errorf("expected qualified event ID, got %q", vendor.EventID)
	}
	if len(repo.vendors) != 1 {
		t.Errorf("expected 1 stored vendor, got %d", len(repo.vendors))
	}
}

func TestAddVendor_EventMissing(t *testing.T) {
	t.Parallel()

	svc, _, _ := newVendorService()

	_, err := svc.AddVendor(context.Background(), &model.VendorRequest{
		EventID:  "event:missing",
		Name:     "X",
		Category: model.VendorCategoryVenue,
		Phone:    "555-0100",
	})
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestAddVendor_ValidationError(t *testing.T) {
	t.Parallel()

	svc, _, _ := newVendorService()

	_, err := svc.AddVendor(context.Background(), &model.VendorRequest{
		EventID:  "event:abc",
		Name:     "X",
		Category: "plumbing",
		Phone:    "555-0100",
	})
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != 400 {
		t.Errorf("expected status 400, got %d", apiErr.Status)
	}
}

func TestAddVendorsBulk_EmptyList(t *testing.T) {
	t.Parallel()

	svc, _, _ := newVendorService()

	_, err := svc.AddVendorsBulk(context.Background(), &model.BulkVendorRequest{EventID: "event:abc"})
	if !errors.Is(err, ErrVendorListRequired) {
		t.Errorf("expected ErrVendorListRequired, got %v", err)
	}
}

func TestAddVendorsBulk_InsertsAll(t *testing.T) {
	t.Parallel()

	svc, repo, events := newVendorService()
	events.add(&model.Event{ID: "event:abc", Name: "Gala"})

	vendors, err := svc.AddVendorsBulk(context.Background(), &model.BulkVendorRequest{
		EventID: "abc",
		Vendors: []*model.VendorRequest{
			{Name: "Caterer", Category: model.VendorCategoryCatering, Phone: "555-0100"},
			{Name: "Venue Co", Category: model.VendorCategoryVenue, Phone: "555-0200"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vendors) != 2 || len(repo.vendors) != 2 {
		t.Fatalf("expected 2 vendors, got %d returned, %d stored", len(vendors), len(repo.vendors))
	}
	if repo.bulkEventID != "event:abc" {
		t.Errorf("expected bulk insert against qualified event, got %q", repo.bulkEventID)
	}
}

func TestGetVendorsByCategory_PassesFilter(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newVendorService()
	repo.add(&model.Vendor{EventID: "event:abc", Name: "Caterer", Category: model.VendorCategoryCatering})
	repo.add(&model.Vendor{EventID: "event:abc", Name: "Venue Co", Category: model.VendorCategoryVenue})

	vendors, err := svc.GetVendorsByCategory(context.Background(), "abc", model.VendorCategoryCatering)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(vendors) != 1 || vendors[0].Name != "Caterer" {
		t.Errorf("unexpected vendors: %v", vendors)
	}
	if repo.lastFilters == nil || repo.lastFilters.Category == nil || *repo.lastFilters.Category != model.VendorCategoryCatering {
		t.Errorf("expected category filter passed through, got %+v", repo.lastFilters)
	}
}

func TestSetVendorStatus_InvalidStatus(t *testing.T) {
	t.Parallel()

	svc, _, _ := newVendorService()

	_, err := svc.SetVendorStatus(context.Background(), "vendor:1", "hired")
	if !errors.Is(err, ErrInvalidVendorStatus) {
		t.Errorf("expected ErrInvalidVendorStatus, got %v", err)
	}
}

func TestSetVendorStatus_Valid(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newVendorService()
	repo.add(&model.Vendor{ID: "vendor:1", EventID: "event:abc", Name: "Caterer"})

	_, err := svc.SetVendorStatus(context.Background(), "vendor:1", model.VendorStatusBooked)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.lastUpdates) != 1 || repo.lastUpdates["status"] != model.VendorStatusBooked {
		t.Errorf("expected status-only update, got %v", repo.lastUpdates)
	}
}

func TestSetVendorContract_PartialPatch(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newVendorService()
	repo.add(&model.Vendor{ID: "vendor:1", EventID: "event:abc", Name: "Caterer"})

	signed := true
	_, err := svc.SetVendorContract(context.Background(), "vendor:1", &model.UpdateContractRequest{
		ContractSigned: &signed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.lastUpdates) != 1 || repo.lastUpdates["contractSigned"] != true {
		t.Errorf("expected contractSigned-only patch, got %v", repo.lastUpdates)
	}
}

func TestSetVendorContract_NegativeDeposit(t *testing.T) {
	t.Parallel()

	svc, _, _ := newVendorService()

	neg := -100.0
	_, err := svc.SetVendorContract(context.Background(), "vendor:1", &model.UpdateContractRequest{
		DepositAmount: &neg,
	})
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != 400 {
		t.Errorf("expected status 400, got %d", apiErr.Status)
	}
}

func TestSetVendorContract_NotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := newVendorService()

	signed := true
	_, err := svc.SetVendorContract(context.Background(), "vendor:missing", &model.UpdateContractRequest{
		ContractSigned: &signed,
	})
	if !errors.Is(err, ErrVendorNotFound) {
		t.Errorf("expected ErrVendorNotFound, got %v", err)
	}
}

func TestDeleteVendor_ReturnsVendorAndOwningEvent(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newVendorService()
	repo.add(&model.Vendor{ID: "vendor:1", EventID: "event:abc", Name: "Caterer"})

	vendor, err := svc.DeleteVendor(context.Background(), "vendor:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vendor.Name != "Caterer" {
		t.Errorf("expected deleted vendor returned, got %+v", vendor)
	}
	if repo.lastDeleteID != "vendor:1" || repo.lastEventID != "event:abc" {
		t.Errorf("unexpected delete args: %q %q", repo.lastDeleteID, repo.lastEventID)
	}
}

func TestDeleteAllVendorsForEvent_ReturnsCount(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newVendorService()
	repo.add(&model.Vendor{EventID: "event:abc", Name: "Caterer"})
	repo.add(&model.Vendor{EventID: "event:abc", Name: "Venue Co"})

	count, err := svc.DeleteAllVendorsForEvent(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 deleted, got %d", count)
	}
	if len(repo.vendors) != 0 {
		t.Errorf("expected no vendors remaining, got %d", len(repo.vendors))
	}
}

func TestGetVendorStats_CategoryBreakdown(t *testing.T) {
	t.Parallel()

	svc, repo, _ := newVendorService()
	repo.add(&model.Vendor{EventID: "event:abc", Name: "A", Category: model.VendorCategoryCatering, Status: model.VendorStatusBooked, QuotedPrice: 3000})
	repo.add(&model.Vendor{EventID: "event:abc", Name: "B", Category: model.VendorCategoryCatering, Status: model.VendorStatusResearching})
	repo.add(&model.Vendor{EventID: "event:abc", Name: "C", Category: model.VendorCategoryVenue, Status: model.VendorStatusQuoted, QuotedPrice: 8000})

	stats, err := svc.GetVendorStats(context.Background(), "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 3 || stats.Booked != 1 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.Pricing.TotalQuoted != 11000 {
		t.Errorf("expected TotalQuoted 11000, got %v", stats.Pricing.TotalQuoted)
	}
	if len(stats.CategoryBreakdown) != 2 || stats.CategoryBreakdown[0].Category != model.VendorCategoryCatering {
		t.Errorf("unexpected breakdown: %v", stats.CategoryBreakdown)
	}
}
