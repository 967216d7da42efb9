//go:build unit

package commands_test

import (
	"context"
	"maps"
	"time"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/domain/customer"
	"petshop-api/internal/domain/inventory"
	"petshop-api/internal/domain/sale"
	"petshop-api/internal/domain/user"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memState is everything the fake unit of work persists. Within works on a
// copy and only publishes it when the callback succeeds.
type memState struct {
	nextID       int64
	appointments map[int64]*appointment.Appointment
	sales        map[int64]*sale.Sale
	movements    []*inventory.Movement
	clients      map[int64]*customer.Client
	pets         map[int64]*customer.Pet
	species      map[int64]string
	services     map[int64]*catalog.Item
	products     map[int64]*catalog.Item
	users        map[uuid.UUID]*user.User
}

func (s *memState) clone() *memState {
	c := *s
	c.appointments = maps.Clone(s.appointments)
	c.sales = maps.Clone(s.sales)
	c.movements = append([]*inventory.Movement(nil), s.movements...)
	c.clients = maps.Clone(s.clients)
	c.pets = maps.Clone(s.pets)
	c.species = maps.Clone(s.species)
	c.services = maps.Clone(s.services)
	c.products = maps.Clone(s.products)
	c.users = maps.Clone(s.users)
	return &c
}

func (s *memState) id() int64 {
	s.nextID++
	return s.nextID
}

type memUoW struct {
	state    *memState
	locked   [][]appointment.Resource
	attempts int
}

func newMemUoW() *memUoW {
	return &memUoW{state: &memState{
		appointments: map[int64]*appointment.Appointment{},
		sales:        map[int64]*sale.Sale{},
		clients:      map[int64]*customer.Client{},
		pets:         map[int64]*customer.Pet{},
		species:      map[int64]string{},
		services:     map[int64]*catalog.Item{},
		products:     map[int64]*catalog.Item{},
		users:        map[uuid.UUID]*user.User{},
	}}
}

func (u *memUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.attempts++
	work := u.state.clone()
	if err := fn(ctx, &memTx{uow: u, s: work}); err != nil {
		return err
	}
	u.state = work
	return nil
}

func (u *memUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *memUoW) CommandReads() shared.CommandReads {
	return &memTx{uow: u, s: u.state}
}

// seed helpers

func (u *memUoW) addClient(name string) int64 {
	id := u.state.id()
	u.state.clients[id] = &customer.Client{Name: name, Status: customer.StatusActive}
	return id
}

func (u *memUoW) addPet(name string, clientID int64) int64 {
	id := u.state.id()
	u.state.pets[id] = &customer.Pet{Name: name, ClientID: clientID, SpeciesID: 1, Status: customer.StatusActive}
	return id
}

func (u *memUoW) addPetWithID(id int64, name string, clientID int64) {
	u.state.pets[id] = &customer.Pet{Name: name, ClientID: clientID, SpeciesID: 1, Status: customer.StatusActive}
}

func (u *memUoW) addService(name, price string, active bool) int64 {
	id := u.state.id()
	u.state.services[id] = &catalog.Item{Name: name, Price: decimal.RequireFromString(price), Active: active}
	return id
}

func (u *memUoW) addProduct(name, price string) int64 {
	id := u.state.id()
	u.state.products[id] = &catalog.Item{Name: name, Price: decimal.RequireFromString(price), Unit: catalog.UnitPiece, Active: true}
	return id
}

func (u *memUoW) addUser(role user.Role) uuid.UUID {
	id := uuid.New()
	now := time.Now()
	u.state.users[id] = user.ReconstructUser(id, id.String()+"@petshop.test", "staff", role, now, now)
	return id
}

func (u *memUoW) appointment(id int64) *appointment.Appointment {
	return u.state.appointments[id]
}

func (u *memUoW) sale(id int64) *sale.Sale {
	return u.state.sales[id]
}

func (u *memUoW) balance(productID int64) decimal.Decimal {
	total := decimal.Zero
	for _, m := range u.state.movements {
		if m.ProductID() != productID {
			continue
		}
		if m.Kind() == inventory.KindIn {
			total = total.Add(m.Quantity())
		} else {
			total = total.Sub(m.Quantity())
		}
	}
	return total
}

type memTx struct {
	uow *memUoW
	s   *memState
}

func (t *memTx) Appointments() shared.AppointmentRepository { return (*memAppointments)(t) }
func (t *memTx) Sales() shared.SaleRepository               { return (*memSales)(t) }
func (t *memTx) Inventory() shared.InventoryRepository      { return (*memInventory)(t) }
func (t *memTx) Catalog() shared.CatalogRepository          { return (*memCatalog)(t) }
func (t *memTx) Customers() shared.CustomerRepository       { return (*memCustomers)(t) }
func (t *memTx) Users() shared.UserRepository               { return (*memUsers)(t) }
func (t *memTx) Guard() shared.AvailabilityGuard            { return t }
func (t *memTx) Reads() shared.CommandReads                 { return t }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

func (t *memTx) Acquire(_ context.Context, resources []appointment.Resource) error {
	t.uow.locked = append(t.uow.locked, resources)
	return nil
}

func (t *memTx) HasOverlap(_ context.Context, r appointment.Resource, w appointment.Window, excludeID *int64) (bool, error) {
	for id, a := range t.s.appointments {
		if excludeID != nil && *excludeID == id {
			continue
		}
		if !a.IsScheduled() || !a.Window().Overlaps(w) {
			continue
		}
		switch r.Kind {
		case appointment.ResourcePet:
			if a.PetID() == r.PetID {
				return true, nil
			}
		case appointment.ResourceStaff:
			if a.StaffID() != nil && *a.StaffID() == r.StaffID {
				return true, nil
			}
		}
	}
	return false, nil
}

func (t *memTx) ClientByID(_ context.Context, id int64) (*shared.ClientSnapshot, error) {
	c, ok := t.s.clients[id]
	if !ok {
		return nil, customer.ErrClientNotFound
	}
	return &shared.ClientSnapshot{ID: id, Name: c.Name, Status: c.Status}, nil
}

func (t *memTx) PetByID(_ context.Context, id int64) (*shared.PetSnapshot, error) {
	p, ok := t.s.pets[id]
	if !ok {
		return nil, customer.ErrPetNotFound
	}
	return &shared.PetSnapshot{ID: id, Name: p.Name, ClientID: p.ClientID, Status: p.Status}, nil
}

func (t *memTx) SpeciesByID(_ context.Context, id int64) error {
	if _, ok := t.s.species[id]; !ok {
		return customer.ErrSpeciesNotFound
	}
	return nil
}

func (t *memTx) ServiceByID(_ context.Context, id int64) (*shared.CatalogSnapshot, error) {
	it, ok := t.s.services[id]
	if !ok {
		return nil, catalog.ErrServiceNotFound
	}
	return &shared.CatalogSnapshot{ID: id, Kind: sale.KindService, Name: it.Name, Price: it.Price, Active: it.Active}, nil
}

func (t *memTx) ProductByID(_ context.Context, id int64) (*shared.CatalogSnapshot, error) {
	it, ok := t.s.products[id]
	if !ok {
		return nil, catalog.ErrProductNotFound
	}
	return &shared.CatalogSnapshot{ID: id, Kind: sale.KindProduct, Name: it.Name, Price: it.Price, Active: it.Active}, nil
}

func (t *memTx) UserByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := t.s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return user.ReconstructUser(u.ID(), u.Email(), u.DisplayName(), u.Role(), u.CreatedAt(), u.UpdatedAt()), nil
}

type memAppointments memTx

func copyAppointment(id int64, a *appointment.Appointment) *appointment.Appointment {
	items := append([]appointment.LineItem(nil), a.Items()...)
	return appointment.ReconstructAppointment(id, a.PetID(), a.ClientID(), a.StaffID(), a.Window(), a.Status(), a.Notes(), items, a.CreatedAt(), a.UpdatedAt())
}

func (r *memAppointments) Create(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) (int64, error) {
	id := r.s.id()
	r.s.appointments[id] = copyAppointment(id, a)
	return id, nil
}

func (r *memAppointments) Update(_ context.Context, _ sqlc.DBTX, a *appointment.Appointment) error {
	if _, ok := r.s.appointments[a.ID()]; !ok {
		return appointment.ErrNotFound
	}
	r.s.appointments[a.ID()] = copyAppointment(a.ID(), a)
	return nil
}

func (r *memAppointments) ReplaceItems(_ context.Context, _ sqlc.DBTX, id int64, items []appointment.LineItem) error {
	a, ok := r.s.appointments[id]
	if !ok {
		return appointment.ErrNotFound
	}
	c := copyAppointment(id, a)
	c.ReplaceItems(items, c.UpdatedAt())
	r.s.appointments[id] = c
	return nil
}

func (r *memAppointments) FindForUpdate(_ context.Context, _ sqlc.DBTX, id int64) (*appointment.Appointment, error) {
	a, ok := r.s.appointments[id]
	if !ok {
		return nil, appointment.ErrNotFound
	}
	return copyAppointment(id, a), nil
}

type memSales memTx

func copySale(id int64, s *sale.Sale) *sale.Sale {
	items := append([]sale.Item(nil), s.Items()...)
	return sale.ReconstructSale(id, s.ClientID(), s.PetID(), s.Status(), items, s.CreatedAt(), s.PaidAt())
}

func (r *memSales) Create(_ context.Context, _ sqlc.DBTX, s *sale.Sale) (int64, error) {
	id := r.s.id()
	r.s.sales[id] = copySale(id, s)
	return id, nil
}

func (r *memSales) AppendItem(_ context.Context, _ sqlc.DBTX, saleID int64, _ int, item sale.Item, _ decimal.Decimal) error {
	s, ok := r.s.sales[saleID]
	if !ok {
		return sale.ErrNotFound
	}
	c := copySale(saleID, s)
	if err := c.AddItem(item); err != nil {
		return err
	}
	r.s.sales[saleID] = c
	return nil
}

func (r *memSales) FindForUpdate(_ context.Context, _ sqlc.DBTX, id int64) (*sale.Sale, error) {
	s, ok := r.s.sales[id]
	if !ok {
		return nil, sale.ErrNotFound
	}
	return copySale(id, s), nil
}

func (r *memSales) MarkPaid(_ context.Context, _ sqlc.DBTX, s *sale.Sale) error {
	r.s.sales[s.ID()] = copySale(s.ID(), s)
	return nil
}

type memInventory memTx

func (r *memInventory) Record(_ context.Context, _ sqlc.DBTX, m *inventory.Movement) (int64, error) {
	r.s.movements = append(r.s.movements, m)
	return int64(len(r.s.movements)), nil
}

type memCatalog memTx

func (r *memCatalog) CreateService(_ context.Context, _ sqlc.DBTX, it *catalog.Item, _ time.Time) (int64, error) {
	id := r.s.id()
	r.s.services[id] = it
	return id, nil
}

func (r *memCatalog) UpdateService(_ context.Context, _ sqlc.DBTX, id int64, it *catalog.Item, _ time.Time) error {
	if _, ok := r.s.services[id]; !ok {
		return catalog.ErrServiceNotFound
	}
	r.s.services[id] = it
	return nil
}

func (r *memCatalog) CreateProduct(_ context.Context, _ sqlc.DBTX, it *catalog.Item, _ time.Time) (int64, error) {
	id := r.s.id()
	r.s.products[id] = it
	return id, nil
}

func (r *memCatalog) UpdateProduct(_ context.Context, _ sqlc.DBTX, id int64, it *catalog.Item, _ time.Time) error {
	if _, ok := r.s.products[id]; !ok {
		return catalog.ErrProductNotFound
	}
	r.s.products[id] = it
	return nil
}

type memCustomers memTx

func (r *memCustomers) CreateClient(_ context.Context, _ sqlc.DBTX, c *customer.Client, _ time.Time) (int64, error) {
	id := r.s.id()
	r.s.clients[id] = c
	return id, nil
}

func (r *memCustomers) UpdateClient(_ context.Context, _ sqlc.DBTX, id int64, c *customer.Client, _ time.Time) error {
	if _, ok := r.s.clients[id]; !ok {
		return customer.ErrClientNotFound
	}
	r.s.clients[id] = c
	return nil
}

func (r *memCustomers) CreatePet(_ context.Context, _ sqlc.DBTX, p *customer.Pet, _ time.Time) (int64, error) {
	id := r.s.id()
	r.s.pets[id] = p
	return id, nil
}

func (r *memCustomers) UpdatePet(_ context.Context, _ sqlc.DBTX, id int64, p *customer.Pet, _ time.Time) error {
	if _, ok := r.s.pets[id]; !ok {
		return customer.ErrPetNotFound
	}
	r.s.pets[id] = p
	return nil
}

func (r *memCustomers) SetClientStatus(_ context.Context, _ sqlc.DBTX, id int64, status customer.Status, _ time.Time) error {
	c, ok := r.s.clients[id]
	if !ok {
		return customer.ErrClientNotFound
	}
	cp := *c
	cp.Status = status
	r.s.clients[id] = &cp
	return nil
}

func (r *memCustomers) SetPetStatus(_ context.Context, _ sqlc.DBTX, id int64, status customer.Status, _ time.Time) error {
	p, ok := r.s.pets[id]
	if !ok {
		return customer.ErrPetNotFound
	}
	cp := *p
	cp.Status = status
	r.s.pets[id] = &cp
	return nil
}

type memUsers memTx

func (r *memUsers) Save(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	r.s.users[u.ID()] = u
	return nil
}

func (r *memUsers) UpdateRole(_ context.Context, _ sqlc.DBTX, u *user.User) error {
	if _, ok := r.s.users[u.ID()]; !ok {
		return user.ErrNotFound
	}
	r.s.users[u.ID()] = u
	return nil
}

type countingMetrics struct {
	booked    int
	conflicts map[string]int
	paid      int
	movements map[string]int
}

func newCountingMetrics() *countingMetrics {
	return &countingMetrics{conflicts: map[string]int{}, movements: map[string]int{}}
}

func (m *countingMetrics) AppointmentBooked()              { m.booked++ }
func (m *countingMetrics) BookingConflict(resource string) { m.conflicts[resource]++ }
func (m *countingMetrics) SalePaid()                       { m.paid++ }
func (m *countingMetrics) MovementRecorded(kind string)    { m.movements[kind]++ }

type memCache struct {
	users   map[uuid.UUID]*user.User
	evicted []uuid.UUID
}

func newMemCache() *memCache {
	return &memCache{users: map[uuid.UUID]*user.User{}}
}

func (c *memCache) Get(_ context.Context, id uuid.UUID) (*user.User, error) {
	return c.users[id], nil
}

func (c *memCache) Set(_ context.Context, u *user.User) error {
	c.users[u.ID()] = u
	return nil
}

func (c *memCache) Evict(_ context.Context, id uuid.UUID) error {
	delete(c.users, id)
	c.evicted = append(c.evicted, id)
	return nil
}
