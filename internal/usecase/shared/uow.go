package shared

import (
	"context"
	"time"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/domain/customer"
	"petshop-api/internal/domain/inventory"
	"petshop-api/internal/domain/sale"
	"petshop-api/internal/domain/user"
	sqlc "petshop-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Sales() SaleRepository
	Inventory() InventoryRepository
	Catalog() CatalogRepository
	Customers() CustomerRepository
	Users() UserRepository
	Guard() AvailabilityGuard
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups write paths need inside their transaction.
// Missing rows come back as the domain NotFound errors.
type CommandReads interface {
	appointment.OverlapFinder
	ClientByID(ctx context.Context, id int64) (*ClientSnapshot, error)
	PetByID(ctx context.Context, id int64) (*PetSnapshot, error)
	SpeciesByID(ctx context.Context, id int64) error
	ServiceByID(ctx context.Context, id int64) (*CatalogSnapshot, error)
	ProductByID(ctx context.Context, id int64) (*CatalogSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

// AvailabilityGuard serializes writers competing for the same pet or staff
// member when the database has no exclusion constraint doing it for us.
type AvailabilityGuard interface {
	Acquire(ctx context.Context, resources []appointment.Resource) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment) (int64, error)
	Update(ctx context.Context, tx sqlc.DBTX, appt *appointment.Appointment) error
	ReplaceItems(ctx context.Context, tx sqlc.DBTX, appointmentID int64, items []appointment.LineItem) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*appointment.Appointment, error)
}

type SaleRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) (int64, error)
	AppendItem(ctx context.Context, tx sqlc.DBTX, saleID int64, position int, item sale.Item, total decimal.Decimal) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*sale.Sale, error)
	MarkPaid(ctx context.Context, tx sqlc.DBTX, s *sale.Sale) error
}

type InventoryRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, m *inventory.Movement) (int64, error)
}

type CatalogRepository interface {
	CreateService(ctx context.Context, tx sqlc.DBTX, item *catalog.Item, now time.Time) (int64, error)
	UpdateService(ctx context.Context, tx sqlc.DBTX, id int64, item *catalog.Item, now time.Time) error
	CreateProduct(ctx context.Context, tx sqlc.DBTX, item *catalog.Item, now time.Time) (int64, error)
	UpdateProduct(ctx context.Context, tx sqlc.DBTX, id int64, item *catalog.Item, now time.Time) error
}

type CustomerRepository interface {
	CreateClient(ctx context.Context, tx sqlc.DBTX, c *customer.Client, now time.Time) (int64, error)
	UpdateClient(ctx context.Context, tx sqlc.DBTX, id int64, c *customer.Client, now time.Time) error
	CreatePet(ctx context.Context, tx sqlc.DBTX, p *customer.Pet, now time.Time) (int64, error)
	UpdatePet(ctx context.Context, tx sqlc.DBTX, id int64, p *customer.Pet, now time.Time) error
	SetClientStatus(ctx context.Context, tx sqlc.DBTX, id int64, status customer.Status, now time.Time) error
	SetPetStatus(ctx context.Context, tx sqlc.DBTX, id int64, status customer.Status, now time.Time) error
}

type UserRepository interface {
	Save(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateRole(ctx context.Context, tx sqlc.DBTX, u *user.User) error
}
