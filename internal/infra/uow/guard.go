package uow

import (
	"context"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/infra"
	"petshop-api/internal/infra/capability"
	sqlc "petshop-api/internal/infra/sqlc/generated"
)

type LockQueries interface {
	AcquireXactLock(ctx context.Context, db sqlc.DBTX, lockKey string) error
}

// AdvisoryGuard takes a transaction-scoped advisory lock for every resource
// whose overlap rule the schema does not enforce. Locks are released on
// commit or rollback.
type AdvisoryGuard struct {
	queries LockQueries
	db      sqlc.DBTX
	schema  capability.Schema
}

func NewAdvisoryGuard(queries LockQueries, db sqlc.DBTX, schema capability.Schema) *AdvisoryGuard {
	return &AdvisoryGuard{
		queries: queries,
		db:      db,
		schema:  schema,
	}
}

// Acquire locks in the order given. Callers pass appointment.Resources, which
// always lists the pet before the staff member.
func (g *AdvisoryGuard) Acquire(ctx context.Context, resources []appointment.Resource) error {
	for _, r := range resources {
		if g.schema.Enforces(r.Kind) {
			continue
		}
		if err := g.queries.AcquireXactLock(ctx, g.db, r.LockKey()); err != nil {
			return infra.WrapRepoErr("failed to acquire "+string(r.Kind)+" lock", err)
		}
	}
	return nil
}
