package model

import (
	"sort"
	"time"
)

// Derived statistics. Every summary exposed by the API is computed here by
// scanning fetched documents in memory; there is no second, count-query
// based computation path. The response shapes below are part of the public
// API and must not change even where they overlap.

// GuestStats is the RSVP breakdown embedded in event detail responses.
type GuestStats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Declined  int `json:"declined"`
}

// GuestStatsDetail is the full guest summary for an event.
//
// EstimatedAttendees counts each confirmed plus-one as one extra seat
// (confirmed + withPlusOne), matching the long-standing API contract.
type GuestStatsDetail struct {
	Total              int `json:"total"`
	Confirmed          int `json:"confirmed"`
	Pending            int `json:"pending"`
	Declined           int `json:"declined"`
	WithPlusOne        int `json:"withPlusOne"`
	EstimatedAttendees int `json:"estimatedAttendees"`
}

// VendorStats is the vendor summary embedded in event detail responses.
type VendorStats struct {
	Total       int     `json:"total"`
	Booked      int     `json:"booked"`
	TotalQuoted float64 `json:"totalQuoted"`
	TotalFinal  float64 `json:"totalFinal"`
}

// VendorPricing aggregates money amounts across an event's vendors.
type VendorPricing struct {
	TotalQuoted   float64 `json:"totalQuoted"`
	TotalFinal    float64 `json:"totalFinal"`
	TotalDeposits float64 `json:"totalDeposits"`
}

// CategoryCount is one row of a category breakdown.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Booked   int    `json:"booked"`
}

// VendorStatsDetail is the full vendor summary for an event.
type VendorStatsDetail struct {
	Total             int             `json:"total"`
	Booked            int             `json:"booked"`
	ContractsSigned   int             `json:"contractsSigned"`
	DepositsPaid      int             `json:"depositsPaid"`
	Pricing           VendorPricing   `json:"pricing"`
	CategoryBreakdown []CategoryCount `json:"categoryBreakdown"`
}

// EventStatsSummary is the response shape of the event stats endpoint. It
// overlaps with EventWithDetails but keeps its historical field names.
type EventStatsSummary struct {
	Event   EventStatsHeader  `json:"event"`
	Guests  EventGuestCounts  `json:"guests"`
	Vendors EventVendorCounts `json:"vendors"`
}

// EventStatsHeader is the event slice of EventStatsSummary.
type EventStatsHeader struct {
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Location  string    `json:"location"`
	Status    string    `json:"status"`
	Budget    float64   `json:"budget"`
	DaysUntil int       `json:"daysUntil"`
}

// EventGuestCounts is the guest slice of EventStatsSummary. Pending is
// total minus confirmed, which also absorbs declined guests.
type EventGuestCounts struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
}

// EventVendorCounts is the vendor slice of EventStatsSummary. Researching
// is total minus booked, which also absorbs every non-booked status.
type EventVendorCounts struct {
	Total       int `json:"total"`
	Booked      int `json:"booked"`
	Researching int `json:"researching"`
}

// ComputeGuestStats scans guests and returns their RSVP breakdown.
func ComputeGuestStats(guests []*Guest) GuestStats {
	stats := GuestStats{Total: len(guests)}
	for _, g := range guests {
		switch g.RSVPStatus {
		case RSVPStatusConfirmed:
			stats.Confirmed++
		case RSVPStatusDeclined:
			stats.Declined++
		default:
			stats.Pending++
		}
	}
	return stats
}

// ComputeGuestStatsDetail scans guests and returns the full guest summary.
func ComputeGuestStatsDetail(guests []*Guest) GuestStatsDetail {
	base := ComputeGuestStats(guests)
	detail := GuestStatsDetail{
		Total:     base.Total,
		Confirmed: base.Confirmed,
		Pending:   base.Pending,
		Declined:  base.Declined,
	}
	for _, g := range guests {
		if g.PlusOne && g.RSVPStatus == RSVPStatusConfirmed {
			detail.WithPlusOne++
		}
	}
	detail.EstimatedAttendees = detail.Confirmed + detail.WithPlusOne
	return detail
}

// ComputeVendorStats scans vendors and returns the detail-page summary.
func ComputeVendorStats(vendors []*Vendor) VendorStats {
	stats := VendorStats{Total: len(vendors)}
	for _, v := range vendors {
		if v.IsBooked() {
			stats.Booked++
		}
		stats.TotalQuoted += v.QuotedPrice
		stats.TotalFinal += v.FinalPrice
	}
	return stats
}

// ComputeVendorStatsDetail scans vendors and returns the full vendor
// summary including pricing totals and the per-category breakdown, sorted
// by count descending (first-seen order breaks ties).
func ComputeVendorStatsDetail(vendors []*Vendor) VendorStatsDetail {
	detail := VendorStatsDetail{
		Total:             len(vendors),
		CategoryBreakdown: []CategoryCount{},
	}

	index := make(map[string]int)
	for _, v := range vendors {
		if v.IsBooked() {
			detail.Booked++
		}
		if v.ContractSigned {
			detail.ContractsSigned++
		}
		if v.DepositPaid {
			detail.DepositsPaid++
		}
		detail.Pricing.TotalQuoted += v.QuotedPrice
		detail.Pricing.TotalFinal += v.FinalPrice
		detail.Pricing.TotalDeposits += v.DepositAmount

		i, ok := index[v.Category]
		if !ok {
			i = len(detail.CategoryBreakdown)
			index[v.Category] = i
			detail.CategoryBreakdown = append(detail.CategoryBreakdown, CategoryCount{Category: v.Category})
		}
		detail.CategoryBreakdown[i].Count++
		if v.IsBooked() {
			detail.CategoryBreakdown[i].Booked++
		}
	}

	sort.SliceStable(detail.CategoryBreakdown, func(a, b int) bool {
		return detail.CategoryBreakdown[a].Count > detail.CategoryBreakdown[b].Count
	})

	return detail
}

// ComputeEventStatsSummary builds the event stats response from the event
// and its fetched dependents.
func ComputeEventStatsSummary(event *Event, guests []*Guest, vendors []*Vendor, now time.Time) EventStatsSummary {
	gs := ComputeGuestStats(guests)
	vs := ComputeVendorStats(vendors)

	return EventStatsSummary{
		Event: EventStatsHeader{
			Name:      event.Name,
			Date:      event.Date,
			Location:  event.Location,
			Status:    event.Status,
			Budget:    event.Budget,
			DaysUntil: event.DaysUntil(now),
		},
		Guests: EventGuestCounts{
			Total:     gs.Total,
			Confirmed: gs.Confirmed,
			Pending:   gs.Total - gs.Confirmed,
		},
		Vendors: EventVendorCounts{
			Total:       vs.Total,
			Booked:      vs.Booked,
			Researching: vs.Total - vs.Booked,
		},
	}
}
