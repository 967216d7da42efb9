package appointment

import "petshop-api/internal/pkg/errs"

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type ResourceKind string

const (
	ResourcePet   ResourceKind = "pet"
	ResourceStaff ResourceKind = "staff"
)

var (
	ErrInvalidWindow    = errs.Invalid("appointment start must be before its end")
	ErrInvalidStatus    = errs.Invalid("invalid appointment status")
	ErrInvalidPet       = errs.Invalid("pet_id must be a positive id")
	ErrInvalidClient    = errs.Invalid("cliente_id must be a positive id")
	ErrInvalidService   = errs.Invalid("servico_id must be a positive id")
	ErrInvalidQuantity  = errs.Invalid("appointment item quantity must be a positive integer")
	ErrNegativePrice    = errs.Invalid("appointment item price cannot be negative")
	ErrInvalidDiscount  = errs.Invalid("appointment item discount must be between zero and the line amount")
	ErrAmountScale      = errs.Invalid("preco_unit and desconto allow at most 2 decimal places and 10 integer digits")
	ErrPetOwnerMismatch = errs.Invalid("pet does not belong to the given client")
	ErrStaffChange      = errs.Invalid("staff_id and remover_staff cannot be combined")

	ErrPetUnavailable   = errs.Conflict("pet already has a scheduled appointment in this time window")
	ErrStaffUnavailable = errs.Conflict("staff member already has a scheduled appointment in this time window")

	ErrNotFound      = errs.NotFound("appointment not found")
	ErrStaffNotFound = errs.NotFound("staff member not found")
)

// ConflictFor returns the user-facing conflict error for a resource kind.
func ConflictFor(kind ResourceKind) error {
	if kind == ResourceStaff {
		return ErrStaffUnavailable
	}
	return ErrPetUnavailable
}
