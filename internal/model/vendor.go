package model

import (
	"strings"
	"time"
)

// Vendor represents a supplier engaged for exactly one event.
type Vendor struct {
	ID             string    `json:"id"`
	EventID        string    `json:"eventId"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	ContactPerson  *string   `json:"contactPerson,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Phone          string    `json:"phone"`
	Website        *string   `json:"website,omitempty"`
	Address        *string   `json:"address,omitempty"`
	Rating         float64   `json:"rating"`
	PriceRange     string    `json:"priceRange"`
	Services       []string  `json:"services"`
	Status         string    `json:"status"`
	QuotedPrice    float64   `json:"quotedPrice"`
	FinalPrice     float64   `json:"finalPrice"`
	ContractSigned bool      `json:"contractSigned"`
	DepositPaid    bool      `json:"depositPaid"`
	DepositAmount  float64   `json:"depositAmount"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// VendorCategory constants
const (
	VendorCategoryVenue          = "venue"
	VendorCategoryCatering       = "catering"
	VendorCategoryDecorations    = "decorations"
	VendorCategoryEntertainment  = "entertainment"
	VendorCategoryPhotography    = "photography"
	VendorCategoryTransportation = "transportation"
	VendorCategoryFlorist        = "florist"
	VendorCategoryOther          = "other"
)

// VendorStatus constants
const (
	VendorStatusResearching = "researching"
	VendorStatusContacted   = "contacted"
	VendorStatusQuoted      = "quoted"
	VendorStatusBooked      = "booked"
	VendorStatusConfirmed   = "confirmed"
	VendorStatusCancelled   = "cancelled"
)

// PriceRange constants
const (
	PriceRangeBudget   = "$"
	PriceRangeModerate = "$$"
	PriceRangePremium  = "$$$"
	PriceRangeLuxury   = "$$$$"
)

// Constraints
const (
	MaxVendorNameLength    = 100
	MaxContactPersonLength = 100
	MaxVendorAddressLength = 200
	MaxVendorNotesLength   = 500
	MaxVendorRating        = 5
)

// ValidVendorCategories maps each recognized vendor category to true.
var ValidVendorCategories = map[string]bool{
	VendorCategoryVenue:          true,
	VendorCategoryCatering:       true,
	VendorCategoryDecorations:    true,
	VendorCategoryEntertainment:  true,
	VendorCategoryPhotography:    true,
	VendorCategoryTransportation: true,
	VendorCategoryFlorist:        true,
	VendorCategoryOther:          true,
}

// ValidVendorStatuses maps each recognized vendor status to true.
var ValidVendorStatuses = map[string]bool{
	VendorStatusResearching: true,
	VendorStatusContacted:   true,
	VendorStatusQuoted:      true,
	VendorStatusBooked:      true,
	VendorStatusConfirmed:   true,
	VendorStatusCancelled:   true,
}

// ValidPriceRanges maps each recognized price range to true.
var ValidPriceRanges = map[string]bool{
	PriceRangeBudget:   true,
	PriceRangeModerate: true,
	PriceRangePremium:  true,
	PriceRangeLuxury:   true,
}

// IsSecured reports whether the vendor is locked in: contract signed and
// deposit paid. Derived, never stored.
func (v *Vendor) IsSecured() bool {
	return v.ContractSigned && v.DepositPaid
}

// IsBooked reports whether the vendor counts as booked for statistics
// purposes (status booked or confirmed).
func (v *Vendor) IsBooked() bool {
	return v.Status == VendorStatusBooked || v.Status == VendorStatusConfirmed
}

// VendorRequest represents a request to create or fully replace a vendor.
type VendorRequest struct {
	EventID        string   `json:"eventId"`
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	ContactPerson  *string  `json:"contactPerson,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Phone          string   `json:"phone"`
	Website        *string  `json:"website,omitempty"`
	Address        *string  `json:"address,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	PriceRange     *string  `json:"priceRange,omitempty"`
	Services       []string `json:"services,omitempty"`
	Status         *string  `json:"status,omitempty"`
	QuotedPrice    *float64 `json:"quotedPrice,omitempty"`
	FinalPrice     *float64 `json:"finalPrice,omitempty"`
	ContractSigned *bool    `json:"contractSigned,omitempty"`
	DepositPaid    *bool    `json:"depositPaid,omitempty"`
	DepositAmount  *float64 `json:"depositAmount,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

// Validate checks the request against the vendor constraints.
func (r *VendorRequest) Validate() []FieldError {
	errors := r.validateFields()
	if strings.TrimSpace(r.EventID) == "" {
		errors = append(errors, FieldError{Field: "eventId", Message: "Event ID is required"})
	}
	return errors
}

// ValidateForBulk checks everything except eventId.
func (r *VendorRequest) ValidateForBulk() []FieldError {
	return r.validateFields()
}

func (r *VendorRequest) validateFields() []FieldError {
	var errors []FieldError

	if strings.TrimSpace(r.Name) == "" {
		errors = append(errors, FieldError{Field: "name", Message: "Vendor name is required"})
	} else if len(r.Name) > MaxVendorNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "Name cannot exceed 100 characters"})
	}
	if r.Category == "" {
		errors = append(errors, FieldError{Field: "category", Message: "Category is required"})
	} else if !ValidVendorCategories[r.Category] {
		errors = append(errors, FieldError{Field: "category", Message: "Category must be venue, catering, decorations, entertainment, photography, transportation, florist, or other"})
	}
	if r.ContactPerson != nil && len(*r.ContactPerson) > MaxContactPersonLength {
		errors = append(errors, FieldError{Field: "contactPerson", Message: "Contact person name cannot exceed 100 characters"})
	}
	if r.Email != nil && *r.Email != "" && !IsValidEmail(*r.Email) {
		errors = append(errors, FieldError{Field: "email", Message: "Please provide a valid email address"})
	}
	if strings.TrimSpace(r.Phone) == "" {
		errors = append(errors, FieldError{Field: "phone", Message: "Phone number is required"})
	}
	if r.Address != nil && len(*r.Address) > MaxVendorAddressLength {
		errors = append(errors, FieldError{Field: "address", Message: "Address cannot exceed 200 characters"})
	}
	if r.Rating != nil {
		if *r.Rating < 0 {
			errors = append(errors, FieldError{Field: "rating", Message: "Rating cannot be less than 0"})
		} else if *r.Rating > MaxVendorRating {
			errors = append(errors, FieldError{Field: "rating", Message: "Rating cannot be more than 5"})
		}
	}
	if r.PriceRange != nil && !ValidPriceRanges[*r.PriceRange] {
		errors = append(errors, FieldError{Field: "priceRange", Message: "Price range must be $, $$, $$$, or $$$$"})
	}
	if r.Status != nil && !ValidVendorStatuses[*r.Status] {
		errors = append(errors, FieldError{Field: "status", Message: "Status must be researching, contacted, quoted, booked, confirmed, or cancelled"})
	}
	if r.QuotedPrice != nil && *r.QuotedPrice < 0 {
		errors = append(errors, FieldError{Field: "quotedPrice", Message: "Price cannot be negative"})
	}
	if r.FinalPrice != nil && *r.FinalPrice < 0 {
		errors = append(errors, FieldError{Field: "finalPrice", Message: "Price cannot be negative"})
	}
	if r.DepositAmount != nil && *r.DepositAmount < 0 {
		errors = append(errors, FieldError{Field: "depositAmount", Message: "Deposit cannot be negative"})
	}
	if r.Notes != nil && len(*r.Notes) > MaxVendorNotesLength {
		errors = append(errors, FieldError{Field: "notes", Message: "Notes cannot exceed 500 characters"})
	}

	return errors
}

// BulkVendorRequest adds several vendors to one event in a single call.
type BulkVendorRequest struct {
	EventID string           `json:"eventId"`
	Vendors []*VendorRequest `json:"vendors"`
}

// UpdateVendorStatusRequest represents a targeted status change.
type UpdateVendorStatusRequest struct {
	Status string `json:"status"`
}

// UpdateContractRequest patches the contract fields. Only fields present in
// the request body are changed; absent fields keep their prior values.
type UpdateContractRequest struct {
	ContractSigned *bool    `json:"contractSigned,omitempty"`
	DepositPaid    *bool    `json:"depositPaid,omitempty"`
	DepositAmount  *float64 `json:"depositAmount,omitempty"`
}

// VendorFilters narrows vendor list queries.
type VendorFilters struct {
	Category *string
	Status   *string
}
