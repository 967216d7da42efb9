package appointment

import (
	"fmt"
	"time"

	"petshop-api/internal/pkg/amount"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Window is a half-open interval [start, end).
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{start: start, end: end}, nil
}

func (w Window) Start() time.Time {
	return w.start
}

func (w Window) End() time.Time {
	return w.end
}

// Overlaps reports whether the two windows share at least one instant.
// Adjacent windows ([10:00,11:00) and [11:00,12:00)) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.start.Before(other.end) && other.start.Before(w.end)
}

type Resource struct {
	Kind    ResourceKind
	PetID   int64
	StaffID uuid.UUID
}

func PetResource(petID int64) Resource {
	return Resource{Kind: ResourcePet, PetID: petID}
}

func StaffResource(staffID uuid.UUID) Resource {
	return Resource{Kind: ResourceStaff, StaffID: staffID}
}

// LockKey identifies the resource for advisory locking.
func (r Resource) LockKey() string {
	if r.Kind == ResourceStaff {
		return "appointment:staff:" + r.StaffID.String()
	}
	return fmt.Sprintf("appointment:pet:%d", r.PetID)
}

// Resources lists what a booking occupies, pet first. Lock acquisition relies on this order.
func Resources(petID int64, staffID *uuid.UUID) []Resource {
	rs := []Resource{PetResource(petID)}
	if staffID != nil {
		rs = append(rs, StaffResource(*staffID))
	}
	return rs
}

type LineItem struct {
	serviceID int64
	quantity  int32
	unitPrice decimal.Decimal
	discount  decimal.Decimal
}

func NewLineItem(serviceID int64, quantity int32, unitPrice, discount decimal.Decimal) (LineItem, error) {
	if serviceID <= 0 {
		return LineItem{}, ErrInvalidService
	}
	if quantity <= 0 {
		return LineItem{}, ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return LineItem{}, ErrNegativePrice
	}
	if !amount.IsMoney(unitPrice) || !amount.IsMoney(discount) {
		return LineItem{}, ErrAmountScale
	}
	gross := unitPrice.Mul(decimal.NewFromInt32(quantity))
	if discount.IsNegative() || discount.GreaterThan(gross) {
		return LineItem{}, ErrInvalidDiscount
	}
	return LineItem{serviceID: serviceID, quantity: quantity, unitPrice: unitPrice, discount: discount}, nil
}

// ReconstructLineItem rebuilds a stored line without re-validating it.
func ReconstructLineItem(serviceID int64, quantity int32, unitPrice, discount decimal.Decimal) LineItem {
	return LineItem{serviceID: serviceID, quantity: quantity, unitPrice: unitPrice, discount: discount}
}

func (li LineItem) ServiceID() int64 {
	return li.serviceID
}

func (li LineItem) Quantity() int32 {
	return li.quantity
}

func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

func (li LineItem) Discount() decimal.Decimal {
	return li.discount
}

func (li LineItem) Amount() decimal.Decimal {
	return li.unitPrice.Mul(decimal.NewFromInt32(li.quantity)).Sub(li.discount)
}

// ItemRequest is a requested line item whose unit price may still need to be
// resolved from the service catalog.
type ItemRequest struct {
	ServiceID int64
	Quantity  int32
	UnitPrice *decimal.Decimal
	Discount  decimal.Decimal
}

// Resolve builds the line item, taking the catalog price when none was supplied.
func (r ItemRequest) Resolve(catalogPrice decimal.Decimal) (LineItem, error) {
	price := catalogPrice
	if r.UnitPrice != nil {
		price = *r.UnitPrice
	}
	return NewLineItem(r.ServiceID, r.Quantity, price, r.Discount)
}

// Validate checks everything that does not depend on the catalog, so bad input
// is rejected before a transaction starts.
func (r ItemRequest) Validate() error {
	if r.ServiceID <= 0 {
		return ErrInvalidService
	}
	if r.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.UnitPrice != nil && r.UnitPrice.IsNegative() {
		return ErrNegativePrice
	}
	if r.Discount.IsNegative() {
		return ErrInvalidDiscount
	}
	if (r.UnitPrice != nil && !amount.IsMoney(*r.UnitPrice)) || !amount.IsMoney(r.Discount) {
		return ErrAmountScale
	}
	return nil
}
