package sale

import (
	"time"

	"petshop-api/internal/pkg/amount"

	"github.com/shopspring/decimal"
)

// CatalogEntry is the catalog state an item is snapshotted from.
type CatalogEntry struct {
	Kind   ItemKind
	ID     int64
	Name   string
	Price  decimal.Decimal
	Active bool
}

type ItemRequest struct {
	Kind     ItemKind
	RefID    int64
	Quantity decimal.Decimal
}

func (r ItemRequest) Validate() error {
	if r.Kind != KindService && r.Kind != KindProduct {
		return ErrInvalidKind
	}
	if r.RefID <= 0 {
		return ErrInvalidRef
	}
	if !r.Quantity.IsPositive() {
		return ErrInvalidQuantity
	}
	if !amount.IsQuantity(r.Quantity) {
		return ErrQuantityScale
	}
	return nil
}

type Item struct {
	kind        ItemKind
	refID       int64
	description string
	quantity    decimal.Decimal
	unitPrice   decimal.Decimal
}

// SnapshotItem copies the entry's name and current price into a new line.
func SnapshotItem(entry CatalogEntry, quantity decimal.Decimal) (Item, error) {
	if !entry.Active {
		return Item{}, ErrInactiveItem
	}
	req := ItemRequest{Kind: entry.Kind, RefID: entry.ID, Quantity: quantity}
	if err := req.Validate(); err != nil {
		return Item{}, err
	}
	return Item{
		kind:        entry.Kind,
		refID:       entry.ID,
		description: entry.Name,
		quantity:    quantity,
		unitPrice:   entry.Price,
	}, nil
}

func ReconstructItem(kind ItemKind, refID int64, description string, quantity, unitPrice decimal.Decimal) Item {
	return Item{kind: kind, refID: refID, description: description, quantity: quantity, unitPrice: unitPrice}
}

func (i Item) Kind() ItemKind             { return i.kind }
func (i Item) RefID() int64               { return i.refID }
func (i Item) Description() string        { return i.description }
func (i Item) Quantity() decimal.Decimal  { return i.quantity }
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i Item) Subtotal() decimal.Decimal  { return i.unitPrice.Mul(i.quantity) }
func (i Item) IsProduct() bool            { return i.kind == KindProduct }

type Sale struct {
	id        int64
	clientID  int64
	petID     *int64
	status    Status
	items     []Item
	createdAt time.Time
	paidAt    *time.Time
}

func NewSale(clientID int64, petID *int64, now time.Time) (*Sale, error) {
	if clientID <= 0 {
		return nil, ErrInvalidClient
	}
	return &Sale{clientID: clientID, petID: petID, status: StatusOpen, createdAt: now}, nil
}

func ReconstructSale(id, clientID int64, petID *int64, status Status, items []Item, createdAt time.Time, paidAt *time.Time) *Sale {
	return &Sale{
		id:        id,
		clientID:  clientID,
		petID:     petID,
		status:    status,
		items:     items,
		createdAt: createdAt,
		paidAt:    paidAt,
	}
}

func (s *Sale) ID() int64            { return s.id }
func (s *Sale) ClientID() int64      { return s.clientID }
func (s *Sale) PetID() *int64        { return s.petID }
func (s *Sale) Status() Status       { return s.status }
func (s *Sale) Items() []Item        { return s.items }
func (s *Sale) CreatedAt() time.Time { return s.createdAt }
func (s *Sale) PaidAt() *time.Time   { return s.paidAt }
func (s *Sale) IsOpen() bool         { return s.status == StatusOpen }

// Total is always derived from the items, never stored independently in memory.
func (s *Sale) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

func (s *Sale) AddItem(item Item) error {
	if !s.IsOpen() {
		return ErrAlreadyPaid
	}
	s.items = append(s.items, item)
	return nil
}

// ProductLines returns the lines that debit inventory on payment.
func (s *Sale) ProductLines() []Item {
	var lines []Item
	for _, it := range s.items {
		if it.IsProduct() {
			lines = append(lines, it)
		}
	}
	return lines
}

func (s *Sale) MarkPaid(now time.Time) error {
	if !s.IsOpen() {
		return ErrAlreadyPaid
	}
	s.status = StatusPaid
	s.paidAt = &now
	return nil
}
