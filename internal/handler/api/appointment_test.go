//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"petshop-api/internal/domain/appointment"
	"petshop-api/internal/domain/catalog"
	"petshop-api/internal/handler/api"
	resdto "petshop-api/internal/handler/dto/response"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/usecase/commands"
	"petshop-api/internal/usecase/queries"
	"petshop-api/tests/common/httptest"
	"petshop-api/tests/common/testutil"
	commandsmock "petshop-api/tests/mock/commands"
	queriesmock "petshop-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)

	s.router.Use(fakeAuth)
	s.router.POST("/agendamentos", s.handler.Create)
	s.router.GET("/agendamentos", s.handler.List)
	s.router.GET("/agendamentos/:id", s.handler.Get)
	s.router.PATCH("/agendamentos/:id", s.handler.Update)
	s.router.PUT("/agendamentos/:id/itens", s.handler.ReplaceItems)
	s.router.POST("/agendamentos/:id/cancelar", s.handler.Cancel)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

var (
	apptStart = time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC)
	apptEnd   = apptStart.Add(time.Hour)
)

func appointmentView(id int64) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:         id,
		PetID:      7,
		PetName:    "Rex",
		ClientID:   3,
		ClientName: "Ana Souza",
		Start:      apptStart,
		End:        apptEnd,
		Status:     appointment.StatusScheduled.String(),
		Items: []queries.AppointmentItemView{{
			ServiceID:   42,
			ServiceName: "Banho",
			Quantity:    1,
			UnitPrice:   decimal.RequireFromString("45"),
			Discount:    decimal.Zero,
			Amount:      decimal.RequireFromString("45"),
		}},
		Total:     decimal.RequireFromString("45"),
		CreatedAt: apptStart.Add(-24 * time.Hour),
		UpdatedAt: apptStart.Add(-24 * time.Hour),
	}
}

func createAppointmentBody() map[string]any {
	return map[string]any{
		"pet_id":     7,
		"cliente_id": 3,
		"inicio":     apptStart.Format(time.RFC3339),
		"fim":        apptEnd.Format(time.RFC3339),
		"itens":      []map[string]any{{"servico_id": 42}},
	}
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestCreate() {
	url := "/agendamentos"

	s.Run("success: returns 201 with the stored appointment", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, req commands.CreateAppointmentRequest) (int64, error) {
				s.Equal(int64(7), req.PetID)
				s.Equal(int64(3), req.ClientID)
				s.True(req.Start.Equal(apptStart))
				s.Require().Len(req.Items, 1)
				s.Equal(int32(1), req.Items[0].Quantity, "quantity defaults to 1")
				s.True(req.Items[0].Discount.IsZero())
				s.Nil(req.Items[0].UnitPrice)
				return 11, nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(11)).Return(appointmentView(11), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createAppointmentBody(), "token")

		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(11), body.ID)
		s.Equal(resdto.Money("45.00"), body.Total)
		s.Equal(resdto.Money("45.00"), body.Items[0].UnitPrice)
		s.Equal("scheduled", body.Status)
	})

	s.Run("error: 400 on binding failures", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{name: "missing pet_id", mutate: testutil.Field("pet_id", nil)},
			{name: "missing cliente_id", mutate: testutil.Field("cliente_id", nil)},
			{name: "malformed inicio", mutate: testutil.Field("inicio", "amanha")},
			{name: "item without servico_id", mutate: testutil.Field("itens", []map[string]any{{"quantidade": 2}})},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := createAppointmentBody()
				tc.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to statuses", func() {
		cases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "pet conflict", err: appointment.ErrPetUnavailable, expectedStatus: http.StatusConflict, expectedMsg: "pet already has"},
			{name: "staff conflict", err: appointment.ErrStaffUnavailable, expectedStatus: http.StatusConflict, expectedMsg: "staff member"},
			{name: "invalid window", err: appointment.ErrInvalidWindow, expectedStatus: http.StatusBadRequest, expectedMsg: "start must be before"},
			{name: "unknown service", err: errs.Wrapf(catalog.ErrServiceNotFound, "item 1 (servico_id %d)", 42), expectedStatus: http.StatusNotFound, expectedMsg: "servico_id 42"},
			{name: "unexpected", err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createAppointmentBody(), "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestList() {
	s.Run("success: forwards filters and returns the next cursor", func() {
		staffID := uuid.New()
		next := &queries.Cursor{After: "abc"}
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Nil(), 2).
			DoAndReturn(func(_ any, f queries.AppointmentFilter, _ *queries.Cursor, _ int) ([]*queries.AppointmentView, *queries.Cursor, error) {
				s.Require().NotNil(f.From)
				s.True(f.From.Equal(apptStart))
				s.Require().NotNil(f.StaffID)
				s.Equal(staffID, *f.StaffID)
				s.Require().NotNil(f.PetID)
				s.Equal(int64(7), *f.PetID)
				return []*queries.AppointmentView{appointmentView(1), appointmentView(2)}, next, nil
			})

		url := fmt.Sprintf("/agendamentos?de=%s&staff_id=%s&pet_id=7&limit=2", apptStart.Format(time.RFC3339), staffID)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "token")

		var body resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Require().NotNil(body.Next)
		s.Equal("abc", *body.Next)
	})

	s.Run("success: passes the cursor through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), &queries.Cursor{After: "xyz"}, 0).
			Return([]*queries.AppointmentView{}, nil, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agendamentos?after=xyz", nil, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on malformed query parameters", func() {
		for _, q := range []string{"de=ontem", "staff_id=nope", "pet_id=x", "limit=ten"} {
			s.Run(q, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agendamentos?"+q, nil, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: inverted range is rejected", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidRange)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agendamentos", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "de must be before ate")
	})
}

// ================================================================================
// TestGet / TestUpdate / TestCancel
// ================================================================================

func (s *AppointmentHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5)).Return(appointmentView(5), nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agendamentos/5", nil, "token")
		var body resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Rex", body.PetName)
	})

	s.Run("error: non numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agendamentos/abc", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "id must be a positive integer")
	})

	s.Run("error: not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(9)).Return(nil, appointment.ErrNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agendamentos/9", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "appointment not found")
	})
}

func (s *AppointmentHandlerTestSuite) TestUpdate() {
	s.Run("success: only supplied fields are forwarded", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, req commands.UpdateAppointmentRequest) error {
				s.Nil(req.PetID)
				s.Nil(req.Start)
				s.Require().NotNil(req.Notes)
				s.Equal("jejum de 8h", *req.Notes)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5)).Return(appointmentView(5), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/agendamentos/5",
			map[string]any{"observacoes": "jejum de 8h"}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: remover_staff is forwarded as a clear", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, req commands.UpdateAppointmentRequest) error {
				s.True(req.ClearStaff)
				s.Nil(req.StaffID)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5)).Return(appointmentView(5), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/agendamentos/5",
			map[string]any{"remover_staff": true}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: staff_id with remover_staff", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(appointment.ErrStaffChange)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/agendamentos/5",
			map[string]any{"remover_staff": true, "staff_id": "7c9e6679-7425-40de-944b-e07fc1f90ae7"}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "remover_staff")
	})

	s.Run("error: conflict", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(appointment.ErrPetUnavailable)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/agendamentos/5",
			map[string]any{"inicio": apptStart.Format(time.RFC3339)}, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})
}

func (s *AppointmentHandlerTestSuite) TestReplaceItems() {
	s.Run("success: explicit price and discount are kept", func() {
		s.mockCommands.EXPECT().ReplaceLineItems(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, items []appointment.ItemRequest) error {
				s.Require().Len(items, 1)
				s.Require().NotNil(items[0].UnitPrice)
				s.Equal("50", items[0].UnitPrice.String())
				s.Equal("5", items[0].Discount.String())
				s.Equal(int32(3), items[0].Quantity)
				return nil
			})
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5)).Return(appointmentView(5), nil)

		body := map[string]any{"itens": []map[string]any{
			{"servico_id": 42, "quantidade": 3, "preco_unit": "50", "desconto": "5"},
		}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/agendamentos/5/itens", body, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}

func (s *AppointmentHandlerTestSuite) TestCancel() {
	s.Run("success: returns the resulting status", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(5)).Return(appointment.StatusCancelled, nil)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/agendamentos/5/cancelar", nil, "token")
		var body resdto.StatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(resdto.StatusResponse{ID: 5, Status: "cancelled"}, body)
	})

	s.Run("error: not found", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(6)).Return(appointment.Status(""), appointment.ErrNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/agendamentos/6/cancelar", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}
