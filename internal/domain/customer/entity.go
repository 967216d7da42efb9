package customer

import (
	"strings"
	"time"

	"petshop-api/internal/pkg/errs"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

var (
	ErrEmptyName     = errs.Invalid("nome is required")
	ErrInvalidStatus = errs.Invalid("status must be active or inactive")
	ErrInvalidOwner  = errs.Invalid("cliente_id must be a positive id")
	ErrInvalidSpecie = errs.Invalid("especie_id must be a positive id")
	ErrFutureBirth   = errs.Invalid("nascimento cannot be in the future")

	ErrClientNotFound  = errs.NotFound("client not found")
	ErrPetNotFound     = errs.NotFound("pet not found")
	ErrSpeciesNotFound = errs.NotFound("species not found")
)

type Client struct {
	Name   string
	Phone  *string
	Email  *string
	Status Status
}

func NewClient(name string, phone, email *string) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Client{Name: name, Phone: trimmed(phone), Email: trimmed(email), Status: StatusActive}, nil
}

type Pet struct {
	Name      string
	ClientID  int64
	SpeciesID int64
	Breed     *string
	BirthDate *time.Time
	Status    Status
}

func NewPet(name string, clientID, speciesID int64, breed *string, birthDate *time.Time, now time.Time) (*Pet, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if clientID <= 0 {
		return nil, ErrInvalidOwner
	}
	if speciesID <= 0 {
		return nil, ErrInvalidSpecie
	}
	if birthDate != nil && birthDate.After(now) {
		return nil, ErrFutureBirth
	}
	return &Pet{
		Name:      name,
		ClientID:  clientID,
		SpeciesID: speciesID,
		Breed:     trimmed(breed),
		BirthDate: birthDate,
		Status:    StatusActive,
	}, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
