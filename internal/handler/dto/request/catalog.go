package request

import (
	"petshop-api/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type ServiceRequest struct {
	Name        string          `json:"nome" binding:"required"`
	Description *string         `json:"descricao,omitempty"`
	Price       decimal.Decimal `json:"preco"`
	Active      *bool           `json:"ativo,omitempty"`
}

func (r ServiceRequest) ToCommand() commands.ServiceRequest {
	return commands.ServiceRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Active:      activeOrDefault(r.Active),
	}
}

type ProductRequest struct {
	Name        string          `json:"nome" binding:"required"`
	Description *string         `json:"descricao,omitempty"`
	Price       decimal.Decimal `json:"preco"`
	Unit        string          `json:"unidade,omitempty"`
	Active      *bool           `json:"ativo,omitempty"`
}

func (r ProductRequest) ToCommand() commands.ProductRequest {
	return commands.ProductRequest{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Unit:        r.Unit,
		Active:      activeOrDefault(r.Active),
	}
}

func activeOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}
