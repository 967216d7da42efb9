package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentView is an appointment joined with pet, client and staff names.
// Items and Total are only filled for single-appointment reads.
type AppointmentView struct {
	ID         int64
	PetID      int64
	PetName    string
	ClientID   int64
	ClientName string
	StaffID    *uuid.UUID
	StaffName  *string
	Start      time.Time
	End        time.Time
	Status     string
	Notes      *string
	Items      []AppointmentItemView
	Total      decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type AppointmentItemView struct {
	ServiceID   int64
	ServiceName string
	Quantity    int32
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	Amount      decimal.Decimal
}

type AppointmentFilter struct {
	From     *time.Time
	To       *time.Time
	Status   *string
	StaffID  *uuid.UUID
	ClientID *int64
	PetID    *int64
}

type SaleView struct {
	ID         int64
	ClientID   int64
	ClientName string
	PetID      *int64
	PetName    *string
	Status     string
	Total      decimal.Decimal
	Items      []SaleItemView
	CreatedAt  time.Time
	PaidAt     *time.Time
}

type SaleItemView struct {
	Kind        string
	RefID       int64
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

type SaleFilter struct {
	Status   *string
	ClientID *int64
}

type MovementView struct {
	ID          int64
	ProductID   int64
	ProductName string
	Unit        string
	Kind        string
	Quantity    decimal.Decimal
	Note        *string
	SaleID      *int64
	CreatedAt   time.Time
}

type BalanceView struct {
	ProductID int64
	Balance   decimal.Decimal
}

type ServiceView struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ProductView struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal
	Unit        string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ClientView struct {
	ID        int64
	Name      string
	Phone     *string
	Email     *string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClientFilter struct {
	Search *string
	Status *string
}

type PetView struct {
	ID          int64
	Name        string
	ClientID    int64
	ClientName  string
	SpeciesID   int64
	SpeciesName string
	Breed       *string
	BirthDate   *time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PetFilter struct {
	ClientID *int64
	Status   *string
}

type SpeciesView struct {
	ID   int64
	Name string
}

type BirthdayView struct {
	PetID        int64
	PetName      string
	SpeciesName  string
	BirthDate    time.Time
	NextBirthday time.Time
	DaysUntil    int
	Age          int
	ClientID     int64
	ClientName   string
	ClientPhone  *string
}

type UserView struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Role        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
