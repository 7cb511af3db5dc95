package service

import (
	"context"
	"fmt"

	"github.com/eventmate/api/internal/model"
)

// Mock repositories shared by the service tests. They are map backed and
// record the last update payload so tests can assert on what the service
// sends to the repository layer.

type mockEventRepo struct {
	events      map[string]*model.Event
	lastUpdates map[string]interface{}
	deleted     []string

	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error
}

func newMockEventRepo() *mockEventRepo {
	return &mockEventRepo{events: make(map[string]*model.Event)}
}

func (m *mockEventRepo) add(event *model.Event) *model.Event {
	if event.ID == "" {
		event.ID = fmt.Sprintf("event:%d", len(m.events)+1)
	}
	m.events[event.ID] = event
	return event
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.Event) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.add(event)
	return nil
}

func (m *mockEventRepo) Get(ctx context.Context, eventID string) (*model.Event, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.events[eventID], nil
}

func (m *mockEventRepo) List(ctx context.Context, filters *model.EventFilters) ([]*model.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*model.Event
	for _, e := range m.events {
		result = append(result, e)
	}
	return result, nil
}

func (m *mockEventRepo) Update(ctx context.Context, eventID string, updates map[string]interface{}) (*model.Event, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.lastUpdates = updates
	return m.events[eventID], nil
}

func (m *mockEventRepo) Delete(ctx context.Context, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, eventID)
	delete(m.events, eventID)
	return nil
}

type mockGuestRepo struct {
	guests       map[string]*model.Guest
	lastUpdates  map[string]interface{}
	lastDeleteID string
	lastEventID  string
	bulkEventID  string

	createErr error
	getErr    error
	updateErr error
	deleteErr error
	countErr  error
}

func newMockGuestRepo() *mockGuestRepo {
	return &mockGuestRepo{guests: make(map[string]*model.Guest)}
}

func (m *mockGuestRepo) add(guest *model.Guest) *model.Guest {
	if guest.ID == "" {
		guest.ID = fmt.Sprintf("guest:%d", len(m.guests)+1)
	}
	m.guests[guest.ID] = guest
	return guest
}

func (m *mockGuestRepo) Create(ctx context.Context, guest *model.Guest) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.add(guest)
	return nil
}

func (m *mockGuestRepo) CreateBulk(ctx context.Context, eventID string, guests []*model.Guest) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.bulkEventID = eventID
	for _, g := range guests {
		m.add(g)
	}
	return nil
}

func (m *mockGuestRepo) Get(ctx context.Context, guestID string) (*model.Guest, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.guests[guestID], nil
}

func (m *mockGuestRepo) GetByEvent(ctx context.Context, eventID string, filters *model.GuestFilters) ([]*model.Guest, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var result []*model.Guest
	for _, g := range m.guests {
		if g.EventID == eventID {
			result = append(result, g)
		}
	}
	return result, nil
}

func (m *mockGuestRepo) Update(ctx context.Context, guestID string, updates map[string]interface{}) (*model.Guest, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.lastUpdates = updates
	return m.guests[guestID], nil
}

func (m *mockGuestRepo) Delete(ctx context.Context, guestID, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.lastDeleteID = guestID
	m.lastEventID = eventID
	delete(m.guests, guestID)
	return nil
}

func (m *mockGuestRepo) DeleteAllForEvent(ctx context.Context, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.lastEventID = eventID
	for id, g := range m.guests {
		if g.EventID == eventID {
			delete(m.guests, id)
		}
	}
	return nil
}

func (m *mockGuestRepo) CountForEvent(ctx context.Context, eventID string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	count := 0
	for _, g := range m.guests {
		if g.EventID == eventID {
			count++
		}
	}
	return count, nil
}

type mockVendorRepo struct {
	vendors      map[string]*model.Vendor
	lastUpdates  map[string]interface{}
	lastFilters  *model.VendorFilters
	lastDeleteID string
	lastEventID  string
	bulkEventID  string

	createErr error
	getErr    error
	updateErr error
	deleteErr error
	countErr  error
}

func newMockVendorRepo() *mockVendorRepo {
	return &mockVendorRepo{vendors: make(map[string]*model.Vendor)}
}

func (m *mockVendorRepo) add(vendor *model.Vendor) *model.Vendor {
	if vendor.ID == "" {
		vendor.ID = fmt.Sprintf("vendor:%d", len(m.vendors)+1)
	}
	m.vendors[vendor.ID] = vendor
	return vendor
}

func (m *mockVendorRepo) Create(ctx context.Context, vendor *model.Vendor) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.add(vendor)
	return nil
}

func (m *mockVendorRepo) CreateBulk(ctx context.Context, eventID string, vendors []*model.Vendor) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.bulkEventID = eventID
	for _, v := range vendors {
		m.add(v)
	}
	return nil
}

func (m *mockVendorRepo) Get(ctx context.Context, vendorID string) (*model.Vendor, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.vendors[vendorID], nil
}

func (m *mockVendorRepo) GetByEvent(ctx context.Context, eventID string, filters *model.VendorFilters) ([]*model.Vendor, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	m.lastFilters = filters
	var result []*model.Vendor
	for _, v := range m.vendors {
		if v.EventID != eventID {
			continue
		}
		if filters != nil && filters.Category != nil && v.Category != *filters.Category {
			continue
		}
		if filters != nil && filters.Status != nil && v.Status != *filters.Status {
			continue
		}
		result = append(result, v)
	}
	return result, nil
}

func (m *mockVendorRepo) Update(ctx context.Context, vendorID string, updates map[string]interface{}) (*model.Vendor, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	m.lastUpdates = updates
	return m.vendors[vendorID], nil
}

func (m *mockVendorRepo) Delete(ctx context.Context, vendorID, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.lastDeleteID = vendorID
	m.lastEventID = eventID
	delete(m.vendors, vendorID)
	return nil
}

func (m *mockVendorRepo) DeleteAllForEvent(ctx context.Context, eventID string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.lastEventID = eventID
	for id, v := range m.vendors {
		if v.EventID == eventID {
			delete(m.vendors, id)
		}
	}
	return nil
}

func (m *mockVendorRepo) CountForEvent(ctx context.Context, eventID string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	count := 0
	for _, v := range m.vendors {
		if v.EventID == eventID {
			count++
		}
	}
	return count, nil
}
