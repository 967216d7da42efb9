package converter

import (
	"time"

	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/domain/customer"
	sqlc "petshop-api/internal/infra/sqlc/generated"
	"petshop-api/internal/pkg/pgconv"
)

func ServiceToCreateParams(item *catalog.Item, now time.Time) sqlc.CreateServiceParams {
	return sqlc.CreateServiceParams{
		Name:        item.Name,
		Description: pgconv.StringPtrToPgtype(item.Description),
		Price:       pgconv.DecimalToNumeric(item.Price),
		Active:      item.Active,
		CreatedAt:   pgconv.TimeToPgtype(now),
		UpdatedAt:   pgconv.TimeToPgtype(now),
	}
}

func ServiceToUpdateParams(id int64, item *catalog.Item, now time.Time) sqlc.UpdateServiceParams {
	return sqlc.UpdateServiceParams{
		ID:          id,
		Name:        item.Name,
		Description: pgconv.StringPtrToPgtype(item.Description),
		Price:       pgconv.DecimalToNumeric(item.Price),
		Active:      item.Active,
		UpdatedAt:   pgconv.TimeToPgtype(now),
	}
}

func ProductToCreateParams(item *catalog.Item, now time.Time) sqlc.CreateProductParams {
	return sqlc.CreateProductParams{
		Name:        item.Name,
		Description: pgconv.StringPtrToPgtype(item.Description),
		Price:       pgconv.DecimalToNumeric(item.Price),
		Unit:        string(item.Unit),
		Active:      item.Active,
		CreatedAt:   pgconv.TimeToPgtype(now),
		UpdatedAt:   pgconv.TimeToPgtype(now),
	}
}

func ProductToUpdateParams(id int64, item *catalog.Item, now time.Time) sqlc.UpdateProductParams {
	return sqlc.UpdateProductParams{
		ID:          id,
		Name:        item.Name,
		Description: pgconv.StringPtrToPgtype(item.Description),
		Price:       pgconv.DecimalToNumeric(item.Price),
		Unit:        string(item.Unit),
		Active:      item.Active,
		UpdatedAt:   pgconv.TimeToPgtype(now),
	}
}

func ClientToCreateParams(c *customer.Client, now time.Time) sqlc.CreateClientParams {
	return sqlc.CreateClientParams{
		Name:      c.Name,
		Phone:     pgconv.StringPtrToPgtype(c.Phone),
		Email:     pgconv.StringPtrToPgtype(c.Email),
		Status:    string(c.Status),
		CreatedAt: pgconv.TimeToPgtype(now),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
}

func ClientToUpdateParams(id int64, c *customer.Client, now time.Time) sqlc.UpdateClientParams {
	return sqlc.UpdateClientParams{
		ID:        id,
		Name:      c.Name,
		Phone:     pgconv.StringPtrToPgtype(c.Phone),
		Email:     pgconv.StringPtrToPgtype(c.Email),
		Status:    string(c.Status),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
}

func PetToCreateParams(p *customer.Pet, now time.Time) sqlc.CreatePetParams {
	return sqlc.CreatePetParams{
		Name:      p.Name,
		ClientID:  p.ClientID,
		SpeciesID: p.SpeciesID,
		Breed:     pgconv.StringPtrToPgtype(p.Breed),
		BirthDate: pgconv.DatePtrToPgtype(p.BirthDate),
		Status:    string(p.Status),
		CreatedAt: pgconv.TimeToPgtype(now),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
}

func PetToUpdateParams(id int64, p *customer.Pet, now time.Time) sqlc.UpdatePetParams {
	return sqlc.UpdatePetParams{
		ID:        id,
		Name:      p.Name,
		ClientID:  p.ClientID,
		SpeciesID: p.SpeciesID,
		Breed:     pgconv.StringPtrToPgtype(p.Breed),
		BirthDate: pgconv.DatePtrToPgtype(p.BirthDate),
		Status:    string(p.Status),
		UpdatedAt: pgconv.TimeToPgtype(now),
	}
}
