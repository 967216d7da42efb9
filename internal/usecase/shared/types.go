package shared

import (
	"petshop-api/internal/domain/customer"
	"petshop-api/internal/domain/sale"

	"github.com/shopspring/decimal"
)

type ClientSnapshot struct {
	ID     int64
	Name   string
	Status customer.Status
}

type PetSnapshot struct {
	ID       int64
	Name     string
	ClientID int64
	Status   customer.Status
}

// CatalogSnapshot is a service or product as a write path sees it.
type CatalogSnapshot struct {
	ID     int64
	Kind   sale.ItemKind
	Name   string
	Price  decimal.Decimal
	Active bool
}

func (s *CatalogSnapshot) Entry() sale.CatalogEntry {
	return sale.CatalogEntry{Kind: s.Kind, ID: s.ID, Name: s.Name, Price: s.Price, Active: s.Active}
}
