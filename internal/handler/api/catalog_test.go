//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/handler/api"
	reqdto "petshop-api/internal/handler/dto/request"
	resdto "petshop-api/internal/handler/dto/response"
	"petshop-api/internal/pkg/ptr"
	"petshop-api/internal/usecase/commands"
	"petshop-api/internal/usecase/queries"
	"petshop-api/tests/common/httptest"
	"petshop-api/tests/common/testutil"
	commandsmock "petshop-api/tests/mock/commands"
	queriesmock "petshop-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCatalogCommands
	mockQueries  *queriesmock.MockCatalogQueries
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCatalogCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCatalogQueries(s.mockCtrl)
	handler := api.NewCatalogHandler(s.mockCommands, s.mockQueries)

	s.router.Use(fakeAuth)
	s.router.POST("/servicos", handler.CreateService)
	s.router.PUT("/servicos/:id", handler.UpdateService)
	s.router.GET("/servicos", handler.ListServices)
	s.router.POST("/produtos", handler.CreateProduct)
	s.router.GET("/produtos/:id", handler.GetProduct)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestCreateService() {
	s.Run("success: ativo defaults to true", func() {
		s.mockCommands.EXPECT().CreateService(gomock.Any(), commands.ServiceRequest{
			Name:   "Banho",
			Price:  decimal.RequireFromString("45.5"),
			Active: true,
		}).Return(int64(3), nil)
		s.mockQueries.EXPECT().GetService(gomock.Any(), int64(3)).Return(&queries.ServiceView{
			ID: 3, Name: "Banho", Price: decimal.RequireFromString("45.5"), Active: true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/servicos",
			map[string]any{"nome": "Banho", "preco": "45.5"}, "admin")
		var got resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(resdto.Money("45.50"), got.Price)
		s.True(got.Active)
	})

	s.Run("error: rejected price", func() {
		s.mockCommands.EXPECT().CreateService(gomock.Any(), gomock.Any()).Return(int64(0), catalog.ErrInvalidPrice)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/servicos",
			map[string]any{"nome": "Banho", "preco": "0"}, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "preco must be greater than zero")
	})

	s.Run("error: missing nome", func() {
		body := testutil.DtoMap(s.T(), reqdto.ServiceRequest{Name: "Banho", Price: decimal.NewFromInt(10)},
			testutil.Field("nome", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/servicos", body, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *CatalogHandlerTestSuite) TestUpdateService() {
	s.Run("success: deactivation", func() {
		s.mockCommands.EXPECT().UpdateService(gomock.Any(), int64(3), commands.ServiceRequest{
			Name:   "Banho",
			Price:  decimal.RequireFromString("45.5"),
			Active: false,
		}).Return(nil)
		s.mockQueries.EXPECT().GetService(gomock.Any(), int64(3)).Return(&queries.ServiceView{ID: 3, Name: "Banho"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/servicos/3",
			map[string]any{"nome": "Banho", "preco": "45.5", "ativo": false}, "admin")
		var got resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
	})

	s.Run("error: unknown service", func() {
		s.mockCommands.EXPECT().UpdateService(gomock.Any(), int64(9), gomock.Any()).Return(catalog.ErrServiceNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/servicos/9",
			map[string]any{"nome": "Banho", "preco": "45.5"}, "admin")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "service not found")
	})
}

func (s *CatalogHandlerTestSuite) TestListServices() {
	s.Run("success: ativo filter", func() {
		s.mockQueries.EXPECT().ListServices(gomock.Any(), ptr.To(true)).Return([]*queries.ServiceView{
			{ID: 1, Name: "Banho", Price: decimal.NewFromInt(40), Active: true},
			{ID: 2, Name: "Tosa", Price: decimal.NewFromInt(50), Active: true},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/servicos?ativo=true", nil, "token")
		var got []resdto.ServiceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.Len(got, 2)
		s.Equal(resdto.Money("40.00"), got[0].Price)
	})

	s.Run("error: malformed ativo", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/servicos?ativo=talvez", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "ativo must be true or false")
	})
}

func (s *CatalogHandlerTestSuite) TestProducts() {
	s.Run("create passes the unit through", func() {
		s.mockCommands.EXPECT().CreateProduct(gomock.Any(), commands.ProductRequest{
			Name:   "Ração",
			Price:  decimal.RequireFromString("12"),
			Unit:   "KG",
			Active: true,
		}).Return(int64(4), nil)
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), int64(4)).Return(&queries.ProductView{
			ID: 4, Name: "Ração", Price: decimal.RequireFromString("12"), Unit: "KG", Active: true,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/produtos",
			map[string]any{"nome": "Ração", "preco": "12", "unidade": "KG"}, "admin")
		var got resdto.ProductResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal("KG", got.Unit)
		s.Equal(resdto.Money("12.00"), got.Price)
	})

	s.Run("get unknown product", func() {
		s.mockQueries.EXPECT().GetProduct(gomock.Any(), int64(77)).Return(nil, catalog.ErrProductNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/produtos/77", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "product not found")
	})
}
