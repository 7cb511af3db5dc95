package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/eventmate/api/internal/database"
	"github.com/eventmate/api/internal/model"
)

// EventRepository handles event data access
type EventRepository struct {
	db database.Database
}

// NewEventRepository creates a new event repository
func NewEventRepository(db database.Database) *EventRepository {
	return &EventRepository{db: db}
}

// Create creates a new event. The counter caches start at zero.
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	// Build query dynamically to handle optional fields (SurrealDB option<T> requires NONE, not NULL)
	vars := map[string]interface{}{
		"name":     event.Name,
		"date":     event.Date,
		"time":     event.Time,
		"location": event.Location,
		"status":   event.Status,
		"budget":   event.Budget,
	}

	setClause := `
		name = $name,
		date = $date,
		time = $time,
		location = $location,
		status = $status,
		budget = $budget,
		guestCount = 0,
		vendorCount = 0,
		createdAt = time::now(),
		updatedAt = time::now()`

	if event.Description != nil {
		setClause += ", description = $description"
		vars["description"] = *event.Description
	}

	query := "CREATE event SET " + setClause

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	event.ID = created.ID
	event.CreatedAt = created.CreatedAt
	event.UpdatedAt = created.UpdatedAt
	return nil
}

// Get retrieves an event by ID. Returns nil when the event does not exist.
func (r *EventRepository) Get(ctx context.Context, eventID string) (*model.Event, error) {
	// Direct record access - more efficient than WHERE id =
	query := `SELECT * FROM type::record($event_id)`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.parseEventResult(result)
}

// List retrieves events sorted by date ascending, optionally filtered
// by status and by the upcoming window.
func (r *EventRepository) List(ctx context.Context, filters *model.EventFilters) ([]*model.Event, error) {
	query := `SELECT * FROM event`
	vars := map[string]interface{}{}

	conditions := make([]string, 0, 2)
	if filters != nil {
		if filters.Status != nil {
			conditions = append(conditions, "status = $status")
			vars["status"] = *filters.Status
		}
		if filters.UpcomingOnly {
			conditions = append(conditions, "date >= time::now()")
		}
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	query += ` ORDER BY date ASC`

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseEventsResult(result)
}

// Update applies field updates to an event and returns the updated record
func (r *EventRepository) Update(ctx context.Context, eventID string, updates map[string]interface{}) (*model.Event, error) {
	query := `UPDATE event SET updatedAt = time::now()`
	vars := map[string]interface{}{"event_id": eventID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($event_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return r.parseEventResult(result)
}

// Delete removes an event together with all of its guests and vendors
// in a single atomic batch.
func (r *EventRepository) Delete(ctx context.Context, eventID string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE guest WHERE eventId = $event_id`, map[string]interface{}{"event_id": eventID})
	batch.Add(`DELETE vendor WHERE eventId = $event_id`, map[string]interface{}{"event_id": eventID})
	batch.Add(`DELETE event WHERE id = type::record($event_id)`, map[string]interface{}{"event_id": eventID})

	return batch.Execute(ctx, r.db)
}

// ReconcileCounters recomputes guestCount and vendorCount for every event
// from the live guest and vendor tables. Mutations keep the counters in
// step transactionally; this repairs drift from out-of-band writes.
func (r *EventRepository) ReconcileCounters(ctx context.Context) error {
	query := `UPDATE event SET
		guestCount = array::len((SELECT VALUE id FROM guest WHERE eventId = <string>$parent.id)),
		vendorCount = array::len((SELECT VALUE id FROM vendor WHERE eventId = <string>$parent.id))
	RETURN NONE`

	return r.db.Execute(ctx, query, nil)
}

// Helper functions

func (r *EventRepository) parseEventResult(result interface{}) (*model.Event, error) {
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

	var event model.Event
	if err := json.Unmarshal(jsonBytes, &event); err != nil {
		return nil, err
	}

	event.Description = getStringPtr(data, "description")
	event.GuestCount = getInt(data, "guestCount")
	event.VendorCount = getInt(data, "vendorCount")
	event.Budget = getFloat(data, "budget")

	if t := getTime(data, "date"); t != nil {
		event.Date = *t
	}
	if t := getTime(data, "createdAt"); t != nil {
		event.CreatedAt = *t
	}
	if t := getTime(data, "updatedAt"); t != nil {
		event.UpdatedAt = *t
	}

	return &event, nil
}

func (r *EventRepository) parseEventsResult(result []interface{}) ([]*model.Event, error) {
	events := make([]*model.Event, 0)

	for _, res := range result {
		if resp, ok := res.(map[string]interface{}); ok {
			if resultData, ok := resp["result"].([]interface{}); ok {
				for _, item := range resultData {
					event, err := r.parseEventResult(item)
					if err != nil {
						continue
					}
					events = append(events, event)
				}
				continue
			}
		}

		event, err := r.parseEventResult(res)
		if err != nil {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}
