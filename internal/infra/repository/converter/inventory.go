package converter

import (
	"petshop-api/internal/domain/inventory"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
)

func MovementToCreateParams(m *inventory.Movement) sqlc.CreateInventoryMovementParams {
	return sqlc.CreateInventoryMovementParams{
		ProductID: m.ProductID(),
		Kind:      m.Kind().String(),
		Quantity:  pgconv.DecimalToNumeric(m.Quantity()),
		Note:      pgconv.StringPtrToPgtype(m.Note()),
		SaleID:    pgconv.Int8PtrToPgtype(m.SaleID()),
		CreatedAt: pgconv.TimeToPgtype(m.CreatedAt()),
	}
}
