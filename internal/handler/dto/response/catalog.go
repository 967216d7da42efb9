package response

import (
	"time"

	"petshop-api/internal/usecase/queries"
)

type ServiceResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	Description *string   `json:"descricao,omitempty"`
	Price       Money     `json:"preco"`
	Active      bool      `json:"ativo"`
	CreatedAt   time.Time `json:"criado_em"`
	UpdatedAt   time.Time `json:"atualizado_em"`
}

type ProductResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	Description *string   `json:"descricao,omitempty"`
	Price       Money     `json:"preco"`
	Unit        string    `json:"unidade"`
	Active      bool      `json:"ativo"`
	CreatedAt   time.Time `json:"criado_em"`
	UpdatedAt   time.Time `json:"atualizado_em"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return copyInto[ServiceResponse](v)
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	return copyAll[ServiceResponse](views)
}

func FromProductView(v *queries.ProductView) *ProductResponse {
	return copyInto[ProductResponse](v)
}

func FromProductViews(views []*queries.ProductView) []*ProductResponse {
	return copyAll[ProductResponse](views)
}
