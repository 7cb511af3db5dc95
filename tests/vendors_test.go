package tests

import (
	"context"
	"testing"

	"github.com/eventmate/api/internal/model"
	"github.com/eventmate/api/internal/service"
	"github.com/eventmate/api/internal/testing/fixtures"
	"github.com/eventmate/api/internal/testing/helpers"
	"github.com/eventmate/api/internal/testing/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/*
FEATURE: Vendors
DOMAIN: Planning

ACCEPTANCE CRITERIA:
===================

AC-VENDOR-001: Add Vendor
  GIVEN an existing event
  WHEN a vendor is added
  THEN defaults apply (status researching, price range $$, empty services)
  AND the event's vendorCount is incremented in the same transaction

AC-VENDOR-002: Bulk Add Vendors
  GIVEN an existing event and a list of vendor payloads
  WHEN the batch is added
  THEN all vendors are created and vendorCount reflects the batch

AC-VENDOR-003: Vendor Status and Contract
  GIVEN an existing vendor
  WHEN status or contract fields are patched
  THEN only the provided fields change

AC-VENDOR-004: Delete Vendor / Delete All
  GIVEN vendors for an event
  WHEN one or all are deleted
  THEN vendorCount tracks the live count

AC-VENDOR-005: Vendor Stats
  GIVEN vendors with mixed statuses and prices
  WHEN stats are requested
  THEN totals, pricing sums, and the category breakdown are correct

AC-VENDOR-006: List by Category
  GIVEN vendors across categories
  WHEN filtered by category
  THEN only that category's vendors are returned
*/

func TestVendor_Add(t *testing.T) {
	// AC-VENDOR-001: Add Vendor
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, vendorService := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)

	vendor, err := vendorService.AddVendor(ctx, &model.VendorRequest{
		EventID:  event.ID,
		Name:     "Tasty Catering",
		Category: model.VendorCategoryCatering,
		Phone:    "555-0101",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, vendor.ID)
	assert.Equal(t, event.ID, vendor.EventID)
	assert.Equal(t, model.VendorStatusResearching, vendor.Status)
	assert.Equal(t, model.PriceRangeModerate, vendor.PriceRange)
	assert.NotNil(t, vendor.Services)
	assert.Empty(t, vendor.Services)
	assert.False(t, vendor.ContractSigned)

	refreshed, err := eventService.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.VendorCount)
}

func TestVendor_AddValidation(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	_, _, vendorService := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)

	tests := []struct {
		name string
		req  model.VendorRequest
	}{
		{
			name: "missing name",
			req:  model.VendorRequest{EventID: event.ID, Category: model.VendorCategoryVenue, Phone: "555-0100"},
		},
		{
			name: "invalid category",
			req:  model.VendorRequest{EventID: event.ID, Name: "X", Category: "plumbing", Phone: "555-0100"},
		},
		{
			name: "missing phone",
			req:  model.VendorRequest{EventID: event.ID, Name: "X", Category: model.VendorCategoryVenue},
		},
		{
			name: "rating out of range",
			req: model.VendorRequest{
				EventID: event.ID, Name: "X", Category: model.VendorCategoryVenue, Phone: "555-0100",
				Rating: helpers.Float64Ptr(6),
			},
		},
		{
			name: "negative quoted price",
			req: model.VendorRequest{
				EventID: event.ID, Name: "X", Category: model.VendorCategoryVenue, Phone: "555-0100",
				QuotedPrice: helpers.Float64Ptr(-10),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := vendorService.AddVendor(ctx, &tt.req)
			require.Error(t, err)

			var apiErr *model.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, 400, apiErr.Status)
		})
	}
}

func TestVendor_AddUnknownEvent(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	_, _, vendorService := newServices(tdb)

	_, err := vendorService.AddVendor(context.Background(), &model.VendorRequest{
		EventID:  "event:missing",
		Name:     "Nobody",
		Category: model.VendorCategoryOther,
		Phone:    "555-0100",
	})
	require.ErrorIs(t, err, service.ErrEventNotFound)
}

func TestVendor_BulkAdd(t *testing.T) {
	// AC-VENDOR-002: Bulk Add Vendors
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, vendorService := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)

	vendors, err := vendorService.AddVendorsBulk(ctx, &model.BulkVendorRequest{
		EventID: event.ID,
		Vendors: []*model.VendorRequest{
			{Name: "Venue Co", Category: model.VendorCategoryVenue, Phone: "555-0101"},
			{Name: "Flower Power", Category: model.VendorCategoryFlorist, Phone: "555-0102"},
		},
	})

	require.NoError(t, err)
	require.Len(t, vendors, 2)

	refreshed, err := eventService.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed.VendorCount)

	// Empty list rejected
	_, err = vendorService.AddVendorsBulk(ctx, &model.BulkVendorRequest{
		EventID: event.ID,
		Vendors: []*model.VendorRequest{},
	})
	require.ErrorIs(t, err, service.ErrVendorListRequired)
}

func TestVendor_SetStatus(t *testing.T) {
	// AC-VENDOR-003: Vendor Status and Contract
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	_, _, vendorService := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)
	vendor := f.CreateVendor(t, event)

	updated, err := vendorService.SetVendorStatus(ctx, vendor.ID, model.VendorStatusBooked)
	require.NoError(t, err)
	assert.Equal(t, model.VendorStatusBooked, updated.Status)
	assert.Equal(t, vendor.Name, updated.Name)

	_, err = vendorService.SetVendorStatus(ctx, vendor.ID, "hired")
	require.ErrorIs(t, err, service.ErrInvalidVendorStatus)
}

func TestVendor_SetContractPartialPatch(t *testing.T) {
	// AC-VENDOR-003 (variation): only provided contract fields change
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	_, _, vendorService := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)
	vendor := f.CreateVendor(t, event, func(o *fixtures.VendorOpts) {
		o.DepositAmount = 500
	})

	// Patch only contractSigned; deposit fields keep their values
	updated, err := vendorService.SetVendorContract(ctx, vendor.ID, &model.UpdateContractRequest{
		ContractSigned: helpers.BoolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, updated.ContractSigned)
	assert.False(t, updated.DepositPaid)
	assert.Equal(t, float64(500), updated.DepositAmount)

	// Patch deposit fields
	updated, err = vendorService.SetVendorContract(ctx, vendor.ID, &model.UpdateContractRequest{
		DepositPaid:   helpers.BoolPtr(true),
		DepositAmount: helpers.Float64Ptr(750),
	})
	require.NoError(t, err)
	assert.True(t, updated.ContractSigned, "earlier patch preserved")
	assert.True(t, updated.DepositPaid)
	assert.Equal(t, float64(750), updated.DepositAmount)

	// Negative deposit rejected
	_, err = vendorService.SetVendorContract(ctx, vendor.ID, &model.UpdateContractRequest{
		DepositAmount: helpers.Float64Ptr(-1),
	})
	require.Error(t, err)
}

func TestVendor_Delete(t *testing.T) {
	// AC-VENDOR-004: Delete Vendor / Delete All
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, vendorService := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)
	vendor := f.CreateVendor(t, event)
	f.CreateVendor(t, event)

	deleted, err := vendorService.DeleteVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, vendor.ID, deleted.ID)

	helpers.AssertRecordNotExists(t, tdb.DB, "vendor", vendor.ID)

	refreshed, err := eventService.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed.VendorCount)

	_, err = vendorService.DeleteVendor(ctx, vendor.ID)
	require.ErrorIs(t, err, service.ErrVendorNotFound)
}

func TestVendor_DeleteAll(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	eventService, _, vendorService := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)
	f.CreateVendor(t, event)
	f.CreateVendor(t, event)

	count, err := vendorService.DeleteAllVendorsForEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	refreshed, err := eventService.GetEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, refreshed.VendorCount)
}

func TestVendor_Stats(t *testing.T) {
	// AC-VENDOR-005: Vendor Stats
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	_, _, vendorService := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)
	f.CreateVendor(t, event, func(o *fixtures.VendorOpts) {
		o.Category = model.VendorCategoryCatering
		o.Status = model.VendorStatusBooked
		o.ContractSigned = true
		o.QuotedPrice = 3000
		o.FinalPrice = 2800
		o.DepositPaid = true
		o.DepositAmount = 500
	})
	f.CreateVendor(t, event, func(o *fixtures.VendorOpts) {
		o.Category = model.VendorCategoryCatering
		o.QuotedPrice = 3200
	})
	f.CreateVendor(t, event, func(o *fixtures.VendorOpts) {
		o.Category = model.VendorCategoryVenue
		o.QuotedPrice = 5000
	})

	stats, err := vendorService.GetVendorStats(ctx, event.ID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Booked)
	assert.Equal(t, 1, stats.ContractsSigned)
	assert.Equal(t, 1, stats.DepositsPaid)
	assert.Equal(t, float64(11200), stats.Pricing.TotalQuoted)
	assert.Equal(t, float64(2800), stats.Pricing.TotalFinal)
	assert.Equal(t, float64(500), stats.Pricing.TotalDeposits)

	require.Len(t, stats.CategoryBreakdown, 2)
	byCategory := map[string]model.CategoryCount{}
	for _, c := range stats.CategoryBreakdown {
		byCategory[c.Category] = c
	}
	assert.Equal(t, 2, byCategory[model.VendorCategoryCatering].Count)
	assert.Equal(t, 1, byCategory[model.VendorCategoryCatering].Booked)
	assert.Equal(t, 1, byCategory[model.VendorCategoryVenue].Count)
}

func TestVendor_ListByCategory(t *testing.T) {
	// AC-VENDOR-006: List by Category
	tdb := testdb.New(t)
	defer tdb.Close()

	f := fixtures.New(tdb.DB)
	_, _, vendorService := newServices(tdb)
	ctx := context.Background()

	event := f.CreateEvent(t)
	f.CreateVendor(t, event, func(o *fixtures.VendorOpts) { o.Category = model.VendorCategoryVenue })
	f.CreateVendor(t, event, func(o *fixtures.VendorOpts) { o.Category = model.VendorCategoryCatering })
	f.CreateVendor(t, event, func(o *fixtures.VendorOpts) { o.Category = model.VendorCategoryCatering })

	vendors, err := vendorService.GetVendorsByCategory(ctx, event.ID, model.VendorCategoryCatering)
	require.NoError(t, err)
	require.Len(t, vendors, 2)
	for _, v := range vendors {
		assert.Equal(t, model.VendorCategoryCatering, v.Category)
	}

	// Status filter on the general list
	booked := model.VendorStatusBooked
	none, err := vendorService.ListVendorsForEvent(ctx, event.ID, &model.VendorFilters{Status: &booked})
	require.NoError(t, err)
	assert.Empty(t, none)
}
