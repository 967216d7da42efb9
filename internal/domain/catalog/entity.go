package catalog

import (
	"strings"

	"petshop-api/internal/pkg/amount"
	"petshop-api/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Unit string

const (
	UnitPiece    Unit = "UN"
	UnitKilogram Unit = "KG"
	UnitLiter    Unit = "L"
)

func (u Unit) IsValid() bool {
	switch u {
	case UnitPiece, UnitKilogram, UnitLiter:
		return true
	default:
		return false
	}
}

var (
	ErrEmptyName    = errs.Invalid("catalog item name is required")
	ErrInvalidPrice = errs.Invalid("preco must be greater than zero")
	ErrInvalidUnit  = errs.Invalid("unidade must be UN, KG or L")
	ErrPriceScale   = errs.Invalid("preco allows at most 2 decimal places and 10 integer digits")

	ErrServiceNotFound = errs.NotFound("service not found")
	ErrProductNotFound = errs.NotFound("product not found")
)

// Item is the shared shape of services and products. Unit is empty for services.
type Item struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Unit        Unit
	Active      bool
}

func NewService(name string, description *string, price decimal.Decimal, active bool) (*Item, error) {
	return newItem(name, description, price, "", active)
}

func NewProduct(name string, description *string, price decimal.Decimal, unit Unit, active bool) (*Item, error) {
	if unit == "" {
		unit = UnitPiece
	}
	if !unit.IsValid() {
		return nil, ErrInvalidUnit
	}
	return newItem(name, description, price, unit, active)
}

func newItem(name string, description *string, price decimal.Decimal, unit Unit, active bool) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if !amount.IsMoney(price) {
		return nil, ErrPriceScale
	}
	if description != nil {
		d := strings.TrimSpace(*description)
		if d == "" {
			description = nil
		} else {
			description = &d
		}
	}
	return &Item{Name: name, Description: description, Price: price, Unit: unit, Active: active}, nil
}
