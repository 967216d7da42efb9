//go:build unit

package customer_test

import (
	"testing"
	"time"

	"petshop-api/internal/domain/customer"
	"petshop-api/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	c, err := customer.NewClient("  Maria Souza ", ptr.To(" "), ptr.To("maria@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Maria Souza", c.Name)
	assert.Nil(t, c.Phone)
	assert.Equal(t, "maria@example.com", *c.Email)
	assert.Equal(t, customer.StatusActive, c.Status)

	_, err = customer.NewClient("", nil, nil)
	require.ErrorIs(t, err, customer.ErrEmptyName)
}

func TestNewPet(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	born := time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)
	tomorrow := now.AddDate(0, 0, 1)

	tests := []struct {
		name      string
		petName   string
		clientID  int64
		speciesID int64
		birth     *time.Time
		errIs     error
	}{
		{name: "valid", petName: "Rex", clientID: 1, speciesID: 1, birth: &born},
		{name: "no birth date", petName: "Rex", clientID: 1, speciesID: 1},
		{name: "blank name", petName: " ", clientID: 1, speciesID: 1, errIs: customer.ErrEmptyName},
		{name: "missing owner", petName: "Rex", clientID: 0, speciesID: 1, errIs: customer.ErrInvalidOwner},
		{name: "missing species", petName: "Rex", clientID: 1, speciesID: -1, errIs: customer.ErrInvalidSpecie},
		{name: "born tomorrow", petName: "Rex", clientID: 1, speciesID: 1, birth: &tomorrow, errIs: customer.ErrFutureBirth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pet, err := customer.NewPet(tt.petName, tt.clientID, tt.speciesID, nil, tt.birth, now)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, customer.StatusActive, pet.Status)
			assert.Equal(t, tt.birth, pet.BirthDate)
		})
	}
}
