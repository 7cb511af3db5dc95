package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eventmate/api/internal/database"
	"github.com/eventmate/api/internal/model"
)

// vendorRecountQuery refreshes the vendorCount cache on the owning event,
// mirroring guestRecountQuery.
const vendorRecountQuery = `UPDATE event SET vendorCount = array::len((SELECT VALUE id FROM vendor WHERE eventId = $event_id)), updatedAt = time::now() WHERE id = type::record($event_id) RETURN NONE`

// VendorRepository handles vendor data access
type VendorRepository struct {
	db database.Database
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db database.Database) *VendorRepository {
	return &VendorRepository{db: db}
}

// Create inserts a vendor and refreshes the owning event's vendorCount in
// the same transaction.
func (r *VendorRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	query, vars := buildVendorCreate(vendor)

	tb := database.NewTxBuilder()
	tb.Add(query, vars)
	tb.Add(vendorRecountQuery, map[string]interface{}{"event_id": vendor.EventID})

	result, err := database.ExecuteTransaction(ctx, r.db, tb)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	vendor.ID = created.ID
	vendor.CreatedAt = created.CreatedAt
	vendor.UpdatedAt = created.UpdatedAt
	return nil
}

// CreateBulk inserts several vendors for one event atomically, with a
// single vendorCount refresh at the end.
func (r *VendorRepository) CreateBulk(ctx context.Context, eventID string, vendors []*model.Vendor) error {
	if len(vendors) == 0 {
		return nil
	}

	tb := database.NewTxBuilder()
	for _, vendor := range vendors {
		query, vars := buildVendorCreate(vendor)
		tb.Add(query, vars)
	}
	tb.Add(vendorRecountQuery, map[string]interface{}{"event_id": eventID})

	result, err := database.ExecuteTransaction(ctx, r.db, tb)
	if err != nil {
		return err
	}

	created := extractCreatedRecords(result)
	if len(created) != len(vendors) {
		return fmt.Errorf("expected %d created vendors, got %d", len(vendors), len(created))
	}

	for i, record := range created {
		vendors[i].ID = record.ID
		vendors[i].CreatedAt = record.CreatedAt
		vendors[i].UpdatedAt = record.UpdatedAt
	}
	return nil
}

// Get retrieves a vendor by ID. Returns nil when the vendor does not exist.
func (r *VendorRepository) Get(ctx context.Context, vendorID string) (*model.Vendor, error) {
	query := `SELECT * FROM type::record($vendor_id)`
	vars := map[string]interface{}{"vendor_id": vendorID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseVendorResult(result)
}

// GetByEvent retrieves the vendors of an event sorted by category then
// name, optionally filtered by category and status.
func (r *VendorRepository) GetByEvent(ctx context.Context, eventID string, filters *model.VendorFilters) ([]*model.Vendor, error) {
	query := `SELECT * FROM vendor WHERE eventId = $event_id`
	vars := map[string]interface{}{"event_id": eventID}

	if filters != nil {
		if filters.Category != nil {
			query += ` AND category = $category`
			vars["category"] = *filters.Category
		}
		if filters.Status != nil {
			query += ` AND status = $status`
			vars["status"] = *filters.Status
		}
	}

	query += ` ORDER BY category ASC, name ASC`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseVendorsResult(result)
}

// Update applies field updates to a vendor and returns the updated record
func (r *VendorRepository) Update(ctx context.Context, vendorID string, updates map[string]interface{}) (*model.Vendor, error) {
	query := `UPDATE vendor SET updatedAt = time::now()`
	vars := map[string]interface{}{"vendor_id": vendorID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($vendor_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseVendorResult(result)
}

// Delete removes a vendor and refreshes the owning event's vendorCount in
// the same transaction.
func (r *VendorRepository) Delete(ctx context.Context, vendorID, eventID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE vendor WHERE id = type::record($vendor_id)`, map[string]interface{}{"vendor_id": vendorID})
	batch.Add(vendorRecountQuery, map[string]interface{}{"event_id": eventID})

	return batch.Execute(ctx, r.db)
}

// DeleteAllForEvent removes every vendor of an event and resets the
// event's vendorCount to zero in the same transaction.
func (r *VendorRepository) DeleteAllForEvent(ctx context.Context, eventID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE vendor WHERE eventId = $event_id`, map[string]interface{}{"event_id": eventID})
	batch.Add(`UPDATE event SET vendorCount = 0, updatedAt = time::now() WHERE id = type::record($event_id) RETURN NONE`, map[string]interface{}{"event_id": eventID})

	return batch.Execute(ctx, r.db)
}

// CountForEvent returns the number of vendors belonging to an event
func (r *VendorRepository) CountForEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT count() AS count FROM vendor WHERE eventId = $event_id GROUP ALL`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	if data, ok := result.(map[string]interface{}); ok {
		return getInt(data, "count"), nil
	}
	return 0, nil
}

// Helper functions

// buildVendorCreate builds the CREATE statement for a vendor, including
// optional fields only when they have values.
func buildVendorCreate(vendor *model.Vendor) (string, map[string]interface{}) {
	vars := map[string]interface{}{
		"event_id":        vendor.EventID,
		"name":            vendor.Name,
		"category":        vendor.Category,
		"phone":           vendor.Phone,
		"rating":          vendor.Rating,
		"price_range":     vendor.PriceRange,
		"services":        vendor.Services,
		"status":          vendor.Status,
		"quoted_price":    vendor.QuotedPrice,
		"final_price":     vendor.FinalPrice,
		"contract_signed": vendor.ContractSigned,
		"deposit_paid":    vendor.DepositPaid,
		"deposit_amount":  vendor.DepositAmount,
	}

	setClause := `
		eventId = $event_id,
		name = $name,
		category = $category,
		phone = $phone,
		rating = $rating,
		priceRange = $price_range,
		services = $services,
		status = $status,
		quotedPrice = $quoted_price,
		finalPrice = $final_price,
		contractSigned = $contract_signed,
		depositPaid = $deposit_paid,
		depositAmount = $deposit_amount,
		createdAt = time::now(),
		updatedAt = time::now()`

	if vendor.ContactPerson != nil {
		setClause += ", contactPerson = $contact_person"
		vars["contact_person"] = *vendor.ContactPerson
	}
	if vendor.Email != nil {
		setClause += ", email = $email"
		vars["email"] = *vendor.Email
	}
	if vendor.Website != nil {
		setClause += ", website = $website"
		vars["website"] = *vendor.Website
	}
	if vendor.Address != nil {
		setClause += ", address = $address"
		vars["address"] = *vendor.Address
	}
	if vendor.Notes != nil {
		setClause += ", notes = $notes"
		vars["notes"] = *vendor.Notes
	}

	return "CREATE vendor SET " + setClause, vars
}

func (r *VendorRepository) parseVendorResult(result interface{}) (*model.Vendor, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	if id, ok := data["id"]; ok {
		data["id"] = convertSurrealID(id)
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	var vendor model.Vendor
	if err := json.Unmarshal(jsonBytes, &vendor); err != nil {
		return nil, err
	}

	vendor.ContactPerson = getStringPtr(data, "contactPerson")
	vendor.Email = getStringPtr(data, "email")
	vendor.Website = getStringPtr(data, "website")
	vendor.Address = getStringPtr(data, "address")
	vendor.Notes = getStringPtr(data, "notes")
	vendor.Services = getStringSlice(data, "services")
	vendor.Rating = getFloat(data, "rating")
	vendor.QuotedPrice = getFloat(data, "quotedPrice")
	vendor.FinalPrice = getFloat(data, "finalPrice")
	vendor.DepositAmount = getFloat(data, "depositAmount")
	vendor.ContractSigned = getBool(data, "contractSigned")
	vendor.DepositPaid = getBool(data, "depositPaid")

	if t := getTime(data, "createdAt"); t != nil {
		vendor.CreatedAt = *t
	}
	if t := getTime(data, "updatedAt"); t != nil {
		vendor.UpdatedAt = *t
	}

	return &vendor, nil
}

func (r *VendorRepository) parseVendorsResult(result []interface{}) ([]*model.Vendor, error) {
	vendors := make([]*model.Vendor, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					vendor, err := r.parseVendorResult(item)
					if err != nil {
						continue
					}
					vendors = append(vendors, vendor)
				}
				continue
			}
		}

		vendor, err := r.parseVendorResult(res)
		if err != nil {
			continue
		}
		vendors = append(vendors, vendor)
	}

	return vendors, nil
}
