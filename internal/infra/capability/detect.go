package capability

import (
	"context"
	"log/slog"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/infra"
	sqlc "petshop-api/internal/infra/sqlc/generated"
)

const (
	AppointmentsTable      = "public.appointments"
	PetOverlapConstraint   = "appointments_pet_no_overlap"
	StaffOverlapConstraint = "appointments_staff_no_overlap"
)

// Schema records which overlap guarantees the connected database enforces on
// its own. It is detected once at startup and is read-only afterwards.
type Schema struct {
	petExclusion   bool
	staffExclusion bool
}

func NewSchema(petExclusion, staffExclusion bool) Schema {
	return Schema{petExclusion: petExclusion, staffExclusion: staffExclusion}
}

// Enforces reports whether an exclusion constraint covers the resource kind.
func (s Schema) Enforces(kind appointment.ResourceKind) bool {
	switch kind {
	case appointment.ResourcePet:
		return s.petExclusion
	case appointment.ResourceStaff:
		return s.staffExclusion
	default:
		return false
	}
}

// KindForConstraint maps an exclusion constraint name back to the resource it guards.
func KindForConstraint(name string) (appointment.ResourceKind, bool) {
	switch name {
	case PetOverlapConstraint:
		return appointment.ResourcePet, true
	case StaffOverlapConstraint:
		return appointment.ResourceStaff, true
	default:
		return "", false
	}
}

type ConstraintQueries interface {
	ListExclusionConstraints(ctx context.Context, db sqlc.DBTX, tableName string) ([]string, error)
}

func Detect(ctx context.Context, queries ConstraintQueries, db sqlc.DBTX) (Schema, error) {
	names, err := queries.ListExclusionConstraints(ctx, db, AppointmentsTable)
	if err != nil {
		return Schema{}, infra.WrapRepoErr("failed to detect appointment constraints", err)
	}

	var schema Schema
	for _, name := range names {
		switch name {
		case PetOverlapConstraint:
			schema.petExclusion = true
		case StaffOverlapConstraint:
			schema.staffExclusion = true
		}
	}

	slog.Info("schema capabilities detected",
		slog.Bool("pet_exclusion", schema.petExclusion),
		slog.Bool("staff_exclusion", schema.staffExclusion))
	if !schema.petExclusion || !schema.staffExclusion {
		slog.Warn("overlap exclusion constraints missing, falling back to advisory locks")
	}
	return schema, nil
}
