package api

import (
	"net/http"

	reqdto "petshop-api/internal/handler/dto/request"
	resdto "petshop-api/internal/handler/dto/response"
	"petshop-api/internal/handler/httperr"
	"petshop-api/internal/usecase/commands"
	"petshop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Book a pet (and optionally a staff member) for a time window. Overlapping scheduled appointments of the same pet or staff member are rejected.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/agendamentos [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary List appointments
// @Description Appointments intersecting [de, ate) ordered by start, with keyset pagination
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param de query string false "Window start (RFC 3339)"
// @Param ate query string false "Window end (RFC 3339)"
// @Param status query string false "scheduled or cancelled"
// @Param staff_id query string false "Staff user id"
// @Param cliente_id query int false "Client id"
// @Param pet_id query int false "Pet id"
// @Param limit query int false "Page size (default 50, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Router /api/agendamentos [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	var filter queries.AppointmentFilter
	var ok bool
	if filter.From, ok = queryTime(c, "de"); !ok {
		return
	}
	if filter.To, ok = queryTime(c, "ate"); !ok {
		return
	}
	if filter.StaffID, ok = queryUUID(c, "staff_id"); !ok {
		return
	}
	if filter.ClientID, ok = queryInt64(c, "cliente_id"); !ok {
		return
	}
	if filter.PetID, ok = queryInt64(c, "pet_id"); !ok {
		return
	}
	filter.Status = queryString(c, "status")
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.List(c.Request.Context(), filter, cursor, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentList(views, next))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment id"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/agendamentos/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Update appointment
// @Description Partial update; omitted fields keep their values. Availability is rechecked for scheduled appointments.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment id"
// @Param request body reqdto.UpdateAppointmentRequest true "Fields to change"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/agendamentos/{id} [patch]
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.Update(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Replace appointment items
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment id"
// @Param request body reqdto.ReplaceItemsRequest true "New item set"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/agendamentos/{id}/itens [put]
func (h *AppointmentHandler) ReplaceItems(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ReplaceItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.ReplaceLineItems(c.Request.Context(), id, req.ToDomain()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Cancel appointment
// @Description Cancelling an already cancelled appointment succeeds without changes
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Appointment id"
// @Success 200 {object} resdto.StatusResponse
// @Failure 404 {object} httperr.Response
// @Router /api/agendamentos/{id}/cancelar [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	status, err := h.cmds.Cancel(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{ID: id, Status: status.String()})
}

func (h *AppointmentHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromAppointmentView(view))
}
