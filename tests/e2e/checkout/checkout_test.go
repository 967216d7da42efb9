//go:build e2e

package checkout_test

import (
	"fmt"
	"net/http"
	"testing"

	"petshop-api/internal/handler/dto/response"
	"petshop-api/tests/common/authtest"
	"petshop-api/tests/common/dbtest"
	"petshop-api/tests/common/httptest"
	"petshop-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	salesURL     = "/api/vendas"
	saleURL      = "/api/vendas/%d"
	saleItemsURL = "/api/vendas/%d/itens"
	payURL       = "/api/vendas/%d/pagar"
	movementsURL = "/api/estoque/movimentos"
	balanceURL   = "/api/estoque/saldo/%d"
)

type CheckoutSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *CheckoutSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.IdP)
}

func (s *CheckoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) token() string {
	return s.jwt.GenerateToken(s.T(), uuid.New(), "caixa@example.com")
}

func (s *CheckoutSuite) balance(token string, productID int64) response.Quantity {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, fmt.Sprintf(balanceURL, productID), nil, token)
	var got response.BalanceResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &got)
	return got.Balance
}

func (s *CheckoutSuite) TestSaleLifecycle() {
	s.Run("Normal case: paying a sale debits stock once", func() {
		t := s.T()
		token := s.token()
		clientID := dbtest.CreateTestClient(t, s.DB, "Ana Souza")
		serviceID := dbtest.CreateTestService(t, s.DB, "Consulta", "60.00", true)
		productID := dbtest.CreateTestProduct(t, s.DB, "Ração 1kg", "15.00", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, movementsURL, map[string]any{
			"produto_id": productID, "tipo": "entrada", "quantidade": "10",
		}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, map[string]any{
			"cliente_id": clientID,
			"itens": []map[string]any{
				{"tipo": "servico", "ref_id": serviceID, "quantidade": "1"},
				{"tipo": "produto", "ref_id": productID, "quantidade": "2"},
			},
		}, token)
		var created response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, "open", created.Status)
		require.Equal(t, response.Money("90.00"), created.Total)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(payURL, created.ID), nil, token)
		var status response.StatusResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &status)
		require.Equal(t, "paid", status.Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(saleURL, created.ID), nil, token)
		var paid response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &paid)
		require.NotNil(t, paid.PaidAt)

		require.Equal(t, response.Quantity("8"), s.balance(token, productID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(payURL, created.ID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
		require.Equal(t, response.Quantity("8"), s.balance(token, productID))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(saleItemsURL, created.ID), map[string]any{
			"tipo": "produto", "ref_id": productID, "quantidade": "1",
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("Abnormal case: concurrent payments settle the sale once", func() {
		t := s.T()
		token := s.token()
		clientID := dbtest.CreateTestClient(t, s.DB, "Diego Alves")
		productID := dbtest.CreateTestProduct(t, s.DB, "Petisco", "8.00", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, movementsURL, map[string]any{
			"produto_id": productID, "tipo": "entrada", "quantidade": "10",
		}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, map[string]any{
			"cliente_id": clientID,
			"itens":      []map[string]any{{"tipo": "produto", "ref_id": productID, "quantidade": "3"}},
		}, token)
		var created response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		pay := httptest.Call{Method: http.MethodPost, Path: fmt.Sprintf(payURL, created.ID)}
		results := httptest.PerformConcurrently(t, s.Router, token, pay, pay, pay, pay)

		counts := httptest.StatusCounts(results)
		require.Equal(t, map[int]int{http.StatusOK: 1, http.StatusConflict: len(results) - 1}, counts)
		require.Equal(t, response.Quantity("7"), s.balance(token, productID))

		var exits int
		err := s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM inventory_movements WHERE product_id = $1 AND kind = 'saida'", productID).Scan(&exits)
		require.NoError(t, err)
		require.Equal(t, 1, exits)
	})

	s.Run("Abnormal case: quantities beyond three decimal places are rejected", func() {
		t := s.T()
		token := s.token()
		clientID := dbtest.CreateTestClient(t, s.DB, "Elisa Rocha")
		productID := dbtest.CreateTestProduct(t, s.DB, "Areia", "4.00", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, map[string]any{
			"cliente_id": clientID,
			"itens":      []map[string]any{{"tipo": "produto", "ref_id": productID, "quantidade": "1.2345"}},
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "quantidade")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, map[string]any{
			"cliente_id": clientID,
			"itens":      []map[string]any{{"tipo": "produto", "ref_id": productID, "quantidade": "1.235"}},
		}, token)
		var created response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.Equal(t, response.Money("4.94"), created.Total)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(saleURL, created.ID), nil, token)
		var stored response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &stored)
		require.Equal(t, created.Total, stored.Total)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, movementsURL, map[string]any{
			"produto_id": productID, "tipo": "entrada", "quantidade": "0.0001",
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "quantidade")
	})

	s.Run("Normal case: items keep the price of the moment they were added", func() {
		t := s.T()
		token := s.token()
		clientID := dbtest.CreateTestClient(t, s.DB, "Bruno Lima")
		productID := dbtest.CreateTestProduct(t, s.DB, "Shampoo", "20.00", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, map[string]any{
			"cliente_id": clientID,
			"itens":      []map[string]any{{"tipo": "produto", "ref_id": productID, "quantidade": "1"}},
		}, token)
		var created response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)

		_, err := s.DB.Exec(t.Context(), "UPDATE products SET price = 25.00 WHERE id = $1", productID)
		require.NoError(t, err)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(saleItemsURL, created.ID), map[string]any{
			"tipo": "produto", "ref_id": productID, "quantidade": "1",
		}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, nil)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(saleURL, created.ID), nil, token)
		var got response.SaleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &got)

		prices := make([]response.Money, 0, len(got.Items))
		for _, it := range got.Items {
			prices = append(prices, it.UnitPrice)
		}
		if diff := cmp.Diff([]response.Money{"20.00", "25.00"}, prices); diff != "" {
			t.Errorf("unit prices mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, response.Money("45.00"), got.Total)
	})

	s.Run("Abnormal case: inactive items and empty sales are rejected", func() {
		t := s.T()
		token := s.token()
		clientID := dbtest.CreateTestClient(t, s.DB, "Carla Dias")
		serviceID := dbtest.CreateTestService(t, s.DB, "Tosa antiga", "30.00", false)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, map[string]any{
			"cliente_id": clientID,
			"itens":      []map[string]any{{"tipo": "servico", "ref_id": serviceID, "quantidade": "1"}},
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, salesURL, map[string]any{
			"cliente_id": clientID,
			"itens":      []map[string]any{},
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})
}

func (s *CheckoutSuite) TestInventory() {
	s.Run("Normal case: balance is entries minus exits and may go negative", func() {
		t := s.T()
		token := s.token()
		productID := dbtest.CreateTestProduct(t, s.DB, "Coleira", "35.00", true)

		for _, mv := range []map[string]any{
			{"produto_id": productID, "tipo": "entrada", "quantidade": "10"},
			{"produto_id": productID, "tipo": "saida", "quantidade": "3"},
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, movementsURL, mv, token)
			httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
		}
		require.Equal(t, response.Quantity("7"), s.balance(token, productID))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, movementsURL, map[string]any{
			"produto_id": productID, "tipo": "saida", "quantidade": "9",
		}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, nil)
		require.Equal(t, response.Quantity("-2"), s.balance(token, productID))
	})

	s.Run("Abnormal case: bad kind, quantity and product are rejected", func() {
		t := s.T()
		token := s.token()
		productID := dbtest.CreateTestProduct(t, s.DB, "Brinquedo", "12.00", true)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, movementsURL, map[string]any{
			"produto_id": productID, "tipo": "ajuste", "quantidade": "1",
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, movementsURL, map[string]any{
			"produto_id": productID, "tipo": "entrada", "quantidade": "0",
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, movementsURL, map[string]any{
			"produto_id": 999999, "tipo": "entrada", "quantidade": "1",
		}, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(balanceURL, 999999), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}
