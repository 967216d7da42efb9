package response

import (
	"time"

	"petshop-api/internal/usecase/queries"
)

type ClientResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nome"`
	Phone     *string   `json:"telefone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"criado_em"`
	UpdatedAt time.Time `json:"atualizado_em"`
}

type PetResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	ClientID    int64     `json:"cliente_id"`
	ClientName  string    `json:"cliente_nome"`
	SpeciesID   int64     `json:"especie_id"`
	SpeciesName string    `json:"especie_nome"`
	Breed       *string   `json:"raca,omitempty"`
	BirthDate   *Date     `json:"nascimento,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"criado_em"`
	UpdatedAt   time.Time `json:"atualizado_em"`
}

type SpeciesResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

type BirthdayResponse struct {
	PetID        int64   `json:"pet_id"`
	PetName      string  `json:"pet_nome"`
	SpeciesName  string  `json:"especie_nome"`
	BirthDate    Date    `json:"nascimento"`
	NextBirthday Date    `json:"proximo_aniversario"`
	DaysUntil    int     `json:"dias_restantes"`
	Age          int     `json:"idade"`
	ClientID     int64   `json:"cliente_id"`
	ClientName   string  `json:"cliente_nome"`
	ClientPhone  *string `json:"cliente_telefone,omitempty"`
}

func FromClientView(v *queries.ClientView) *ClientResponse {
	return copyInto[ClientResponse](v)
}

func FromClientViews(views []*queries.ClientView) []*ClientResponse {
	return copyAll[ClientResponse](views)
}

func FromPetView(v *queries.PetView) *PetResponse {
	return copyInto[PetResponse](v)
}

func FromPetViews(views []*queries.PetView) []*PetResponse {
	return copyAll[PetResponse](views)
}

func FromSpeciesViews(views []*queries.SpeciesView) []*SpeciesResponse {
	return copyAll[SpeciesResponse](views)
}

func FromBirthdayViews(views []*queries.BirthdayView) []*BirthdayResponse {
	return copyAll[BirthdayResponse](views)
}
