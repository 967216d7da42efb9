package inventory

import (
	"fmt"
	"strings"
	"time"

	"petshop-api/internal/pkg/amount"
	"petshop-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Kind string

const (
	KindIn  Kind = "entrada"
	KindOut Kind = "saida"
)

func (k Kind) String() string {
	return string(k)
}

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindIn:
		return KindIn, nil
	case KindOut, "saída":
		return KindOut, nil
	default:
		return "", ErrInvalidKind
	}
}

var (
	ErrInvalidKind     = errs.Invalid("tipo must be entrada or saida")
	ErrInvalidQuantity = errs.Invalid("quantidade must be greater than zero")
	ErrQuantityScale   = errs.Invalid("quantidade allows at most 3 decimal places and 9 integer digits")
	ErrInvalidProduct  = errs.Invalid("produto_id must be a positive id")
)

// Movement is append-only. Corrections are recorded as offsetting movements.
type Movement struct {
	productID int64
	kind      Kind
	quantity  decimal.Decimal
	note      *string
	saleID    *int64
	createdAt time.Time
}

func NewMovement(productID int64, kind Kind, quantity decimal.Decimal, note *string, now time.Time) (*Movement, error) {
	if productID <= 0 {
		return nil, ErrInvalidProduct
	}
	if kind != KindIn && kind != KindOut {
		return nil, ErrInvalidKind
	}
	if !quantity.IsPositive() {
		return nil, ErrInvalidQuantity
	}
	if !amount.IsQuantity(quantity) {
		return nil, ErrQuantityScale
	}
	if note != nil {
		n := strings.TrimSpace(*note)
		if n == "" {
			note = nil
		} else {
			note = &n
		}
	}
	return &Movement{productID: productID, kind: kind, quantity: quantity, note: note, createdAt: now}, nil
}

// NewSaleDebit is the exit recorded for a product line when a sale is paid.
func NewSaleDebit(productID int64, quantity decimal.Decimal, saleID int64, now time.Time) (*Movement, error) {
	note := fmt.Sprintf("venda %d", saleID)
	m, err := NewMovement(productID, KindOut, quantity, &note, now)
	if err != nil {
		return nil, err
	}
	m.saleID = &saleID
	return m, nil
}

func (m *Movement) ProductID() int64          { return m.productID }
func (m *Movement) Kind() Kind                { return m.kind }
func (m *Movement) Quantity() decimal.Decimal { return m.quantity }
func (m *Movement) Note() *string             { return m.note }
func (m *Movement) SaleID() *int64            { return m.saleID }
func (m *Movement) CreatedAt() time.Time      { return m.createdAt }
