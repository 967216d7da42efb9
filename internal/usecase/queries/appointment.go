package queries

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/queries/appointment_mock.go -package=queriesmock

import (
	"context"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/infra"
	"petshop-api/internal/pkg/errs"
)

var ErrInvalidRange = errs.Invalid("de must be before ate")

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id int64) (*AppointmentView, error)
	List(ctx context.Context, filter AppointmentFilter, after *Keyset, limit int32) ([]*AppointmentView, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id int64) (*AppointmentView, error)
	List(ctx context.Context, filter AppointmentFilter, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
}

func NewAppointmentQueries(store AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{store: store}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id int64) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, appointment.ErrNotFound
		}
		return nil, err
	}
	return view, nil
}

// List returns appointments intersecting [From, To) in (starts_at, id) order.
func (q *appointmentQueriesImpl) List(ctx context.Context, filter AppointmentFilter, cursor *Cursor, limit int) ([]*AppointmentView, *Cursor, error) {
	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return nil, nil, ErrInvalidRange
	}
	if filter.Status != nil && !appointment.Status(*filter.Status).IsValid() {
		return nil, nil, appointment.ErrInvalidStatus
	}

	var after *Keyset
	if cursor != nil && cursor.After != "" {
		k, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, nil, ErrInvalidCursor
		}
		after = &k
	}

	limit = ValidateLimit(limit, DefaultListLimit, MaxListLimit)
	rows, err := q.store.List(ctx, filter, after, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(Keyset{StartsAt: last.Start, ID: last.ID})}
		rows = rows[:limit]
	}
	return rows, next, nil
}
