package request

import (
	"time"

	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

var ErrInvalidDate = errs.Invalid("nascimento must be a date in YYYY-MM-DD format")

type ClientRequest struct {
	Name   string  `json:"nome" binding:"required"`
	Phone  *string `json:"telefone,omitempty"`
	Email  *string `json:"email,omitempty"`
	Status *string `json:"status,omitempty"`
}

func (r ClientRequest) ToCommand() commands.ClientRequest {
	return commands.ClientRequest{Name: r.Name, Phone: r.Phone, Email: r.Email, Status: r.Status}
}

type PetRequest struct {
	Name      string  `json:"nome" binding:"required"`
	ClientID  int64   `json:"cliente_id" binding:"required"`
	SpeciesID int64   `json:"especie_id" binding:"required"`
	Breed     *string `json:"raca,omitempty"`
	BirthDate *string `json:"nascimento,omitempty"`
	Status    *string `json:"status,omitempty"`
}

func (r PetRequest) ToCommand() (commands.PetRequest, error) {
	var birth *time.Time
	if r.BirthDate != nil && *r.BirthDate != "" {
		t, err := time.Parse(dateLayout, *r.BirthDate)
		if err != nil {
			return commands.PetRequest{}, ErrInvalidDate
		}
		birth = &t
	}
	return commands.PetRequest{
		Name:      r.Name,
		ClientID:  r.ClientID,
		SpeciesID: r.SpeciesID,
		Breed:     r.Breed,
		BirthDate: birth,
		Status:    r.Status,
	}, nil
}
