package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/eventmate/api/internal/database"
	"github.com/eventmate/api/internal/model"
)

// guestRecountQuery refreshes the guestCount cache on the owning event.
// It is appended to every guest mutation batch so the cache can never
// drift from the live guest table.
const guestRecountQuery = `UPDATE event SET guestCount = array::len((SELECT VALUE id FROM guest WHERE eventId = $event_id)), updatedAt = time::now() WHERE id = type::record($event_id) RETURN NONE`

// GuestRepository handles guest data access
type GuestRepository struct {
	db database.Database
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db database.Database) *GuestRepository {
	return &GuestRepository{db: db}
}

// Create inserts a guest and refreshes the owning event's guestCount in
// the same transaction.
func (r *GuestRepository) Create(ctx context.Context, guest *model.Guest) error {
	query, vars := buildGuestCreate(guest)

	tb := database.NewTxBuilder()
	tb.Add(query, vars)
	tb.Add(guestRecountQuery, map[string]interface{}{"event_id": guest.EventID})

	result, err := database.ExecuteTransaction(ctx, r.db, tb)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	guest.ID = created.ID
	guest.CreatedAt = created.CreatedAt
	guest.UpdatedAt = created.UpdatedAt
	return nil
}

// CreateBulk inserts several guests for one event atomically, with a single
// guestCount refresh at the end.
func (r *GuestRepository) CreateBulk(ctx context.Context, eventID string, guests []*model.Guest) error {
	if len(guests) == 0 {
		return nil
	}

	tb := database.NewTxBuilder()
	for _, guest := range guests {
		query, vars := buildGuestCreate(guest)
		tb.Add(query, vars)
	}
	tb.Add(guestRecountQuery, map[string]interface{}{"event_id": eventID})

	result, err := database.ExecuteTransaction(ctx, r.db, tb)
	if err != nil {
		return err
	}

	created := extractCreatedRecords(result)
	if len(created) != len(guests) {
		return fmt.Errorf("expected %d created guests, got %d", len(guests), len(created))
	}

	for i, record := range created {
		guests[i].ID = record.ID
		guests[i].CreatedAt = record.CreatedAt
		guests[i].UpdatedAt = record.UpdatedAt
	}
	return nil
}

// Get retrieves a guest by ID. Returns nil when the guest does not exist.
func (r *GuestRepository) Get(ctx context.Context, guestID string) (*model.Guest, error) {
	query := `SELECT * FROM type::record($guest_id)`
	vars := map[string]interface{}{"guest_id": guestID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseGuestResult(result)
}

// GetByEvent retrieves the guests of an event sorted by name ascending,
// optionally filtered by RSVP status.
func (r *GuestRepository) GetByEvent(ctx context.Context, eventID string, filters *model.GuestFilters) ([]*model.Guest, error) {
	query := `SELECT * FROM guest WHERE eventId = $event_id`
	vars := map[string]interface{}{"event_id": eventID}

	if filters != nil && filters.RSVPStatus != nil {
		query += ` AND rsvpStatus = $rsvp_status`
		vars["rsvp_status"] = *filters.RSVPStatus
	}

	query += ` ORDER BY name ASC`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseGuestsResult(result)
}

// Update applies field updates to a guest and returns the updated record
func (r *GuestRepository) Update(ctx context.Context, guestID string, updates map[string]interface{}) (*model.Guest, error) {
	query := `UPDATE guest SET updatedAt = time::now()`
	vars := map[string]interface{}{"guest_id": guestID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($guest_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseGuestResult(result)
}

// Delete removes a guest and refreshes the owning event's guestCount in
// the same transaction.
func (r *GuestRepository) Delete(ctx context.Context, guestID, eventID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE guest WHERE id = type::record($guest_id)`, map[string]interface{}{"guest_id": guestID})
	batch.Add(guestRecountQuery, map[string]interface{}{"event_id": eventID})

	return batch.Execute(ctx, r.db)
}

// DeleteAllForEvent removes every guest of an event and resets the
// event's guestCount to zero in the same transaction. Since all guests
// are gone no recount is needed.
func (r *GuestRepository) DeleteAllForEvent(ctx context.Context, eventID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE guest WHERE eventId = $event_id`, map[string]interface{}{"event_id": eventID})
	batch.Add(`UPDATE event SET guestCount = 0, updatedAt = time::now() WHERE id = type::record($event_id) RETURN NONE`, map[string]interface{}{"event_id": eventID})

	return batch.Execute(ctx, r.db)
}

// CountForEvent returns the number of guests belonging to an event
func (r *GuestRepository) CountForEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT count() AS count FROM guest WHERE eventId = $event_id GROUP ALL`
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

// buildGuestCreate builds the CREATE statement for a guest, including
// optional fields only when they have values.
func buildGuestCreate(guest *model.Guest) (string, map[string]interface{}) {
	vars := map[string]interface{}{
		"event_id":    guest.EventID,
		"name":        guest.Name,
		"rsvp_status": guest.RSVPStatus,
		"plus_one":    guest.PlusOne,
	}

	setClause := `
		eventId = $event_id,
		name = $name,
		rsvpStatus = $rsvp_status,
		plusOne = $plus_one,
		createdAt = time::now(),
		updatedAt = time::now()`

	if guest.Email != nil {
		setClause += ", email = $email"
		vars["email"] = *guest.Email
	}
	if guest.Phone != nil {
		setClause += ", phone = $phone"
		vars["phone"] = *guest.Phone
	}
	if guest.DietaryRestrictions != nil {
		setClause += ", dietaryRestrictions = $dietary_restrictions"
		vars["dietary_restrictions"] = *guest.DietaryRestrictions
	}
	if guest.Notes != nil {
		setClause += ", notes = $notes"
		vars["notes"] = *guest.Notes
	}

	return "CREATE guest SET " + setClause, vars
}

func (r *GuestRepository) parseGuestResult(result interface{}) (*model.Guest, error) {
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

	var guest model.Guest
	if err := json.Unmarshal(jsonBytes, &guest); err != nil {
		return nil, err
	}

	guest.Email = getStringPtr(data, "email")
	guest.Phone = getStringPtr(data, "phone")
	guest.DietaryRestrictions = getStringPtr(data, "dietaryRestrictions")
	guest.Notes = getStringPtr(data, "notes")
	guest.PlusOne = getBool(data, "plusOne")

	if t := getTime(data, "createdAt"); t != nil {
		guest.CreatedAt = *t
	}
	if t := getTime(data, "updatedAt"); t != nil {
		guest.UpdatedAt = *t
	}

	return &guest, nil
}

func (r *GuestRepository) parseGuestsResult(result []interface{}) ([]*model.Guest, error) {
	guests := make([]*model.Guest, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					guest, err := r.parseGuestResult(item)
					if err != nil {
						continue
					}
					guests = append(guests, guest)
				}
				continue
			}
		}

		guest, err := r.parseGuestResult(res)
		if err != nil {
			continue
		}
		guests = append(guests, guest)
	}

	return guests, nil
}
