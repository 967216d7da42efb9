package uow

import (
	"context"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/domain/customer"
	"petshop-api/internal/domain/sale"
	"petshop-api/internal/domain/user"
	"petshop-api/internal/infra"
	"petshop-api/internal/infra/readstore"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/usecase/shared"

	"github.com/google/uuid"
)

type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	appointmentStore *readstore.AppointmentReadStore
	customerStore    *readstore.CustomerReadStore
	catalogStore     *readstore.CatalogReadStore
	userStore        *readstore.UserReadStore
}

func newCommandReads(q *sqlc.Queries, dbtx sqlc.DBTX) *commandReads {
	return &commandReads{q: q, dbtx: dbtx}
}

func (r *commandReads) appointments() *readstore.AppointmentReadStore {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.q, r.dbtx)
	}
	return r.appointmentStore
}

func (r *commandReads) customers() *readstore.CustomerReadStore {
	if r.customerStore == nil {
		r.customerStore = readstore.NewCustomerReadStore(r.q, r.dbtx)
	}
	return r.customerStore
}

func (r *commandReads) catalog() *readstore.CatalogReadStore {
	if r.catalogStore == nil {
		r.catalogStore = readstore.NewCatalogReadStore(r.q, r.dbtx)
	}
	return r.catalogStore
}

func (r *commandReads) users() *readstore.UserReadStore {
	if r.userStore == nil {
		r.userStore = readstore.NewUserReadStore(r.q, r.dbtx)
	}
	return r.userStore
}

func (r *commandReads) HasOverlap(ctx context.Context, resource appointment.Resource, window appointment.Window, excludeID *int64) (bool, error) {
	return r.appointments().HasOverlap(ctx, resource, window, excludeID)
}

func (r *commandReads) ClientByID(ctx context.Context, id int64) (*shared.ClientSnapshot, error) {
	c, err := r.customers().FindClient(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, customer.ErrClientNotFound)
	}
	return &shared.ClientSnapshot{ID: c.ID, Name: c.Name, Status: customer.Status(c.Status)}, nil
}

func (r *commandReads) PetByID(ctx context.Context, id int64) (*shared.PetSnapshot, error) {
	p, err := r.customers().FindPet(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, customer.ErrPetNotFound)
	}
	return &shared.PetSnapshot{ID: p.ID, Name: p.Name, ClientID: p.ClientID, Status: customer.Status(p.Status)}, nil
}

func (r *commandReads) SpeciesByID(ctx context.Context, id int64) error {
	_, err := r.customers().FindSpecies(ctx, id)
	return notFoundAs(err, customer.ErrSpeciesNotFound)
}

func (r *commandReads) ServiceByID(ctx context.Context, id int64) (*shared.CatalogSnapshot, error) {
	s, err := r.catalog().FindService(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, catalog.ErrServiceNotFound)
	}
	return &shared.CatalogSnapshot{ID: s.ID, Kind: sale.KindService, Name: s.Name, Price: s.Price, Active: s.Active}, nil
}

func (r *commandReads) ProductByID(ctx context.Context, id int64) (*shared.CatalogSnapshot, error) {
	p, err := r.catalog().FindProduct(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, catalog.ErrProductNotFound)
	}
	return &shared.CatalogSnapshot{ID: p.ID, Kind: sale.KindProduct, Name: p.Name, Price: p.Price, Active: p.Active}, nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	v, err := r.users().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, user.ErrNotFound)
	}
	role, err := user.NewRole(v.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", v.ID)
	}
	return user.ReconstructUser(v.ID, v.Email, v.DisplayName, role, v.CreatedAt, v.UpdatedAt), nil
}

func notFoundAs(err, domainErr error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return domainErr
	}
	return err
}
