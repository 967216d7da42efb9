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

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Create client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ClientRequest true "Client"
// @Success 201 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Router /api/clientes [post]
func (h *CustomerHandler) CreateClient(c *gin.Context) {
	var req reqdto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.CreateClient(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondClient(c, http.StatusCreated, id)
}

// @Summary Replace client
// @Tags clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client id"
// @Param request body reqdto.ClientRequest true "Client"
// @Success 200 {object} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/clientes/{id} [put]
func (h *CustomerHandler) UpdateClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateClient(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondClient(c, http.StatusOK, id)
}

// @Summary Get client
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path int true "Client id"
// @Success 200 {object} resdto.ClientResponse
// @Failure 404 {object} httperr.Response
// @Router /api/clientes/{id} [get]
func (h *CustomerHandler) GetClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondClient(c, http.StatusOK, id)
}

// @Summary List clients
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name, phone or email contains"
// @Param status query string false "active or inactive"
// @Param limit query int false "Max rows (default and max 200)"
// @Success 200 {array} resdto.ClientResponse
// @Failure 400 {object} httperr.Response
// @Router /api/clientes [get]
func (h *CustomerHandler) ListClients(c *gin.Context) {
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	filter := queries.ClientFilter{Search: queryString(c, "q"), Status: queryString(c, "status")}
	views, err := h.q.ListClients(c.Request.Context(), filter, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClientViews(views))
}

// @Summary Deactivate client
// @Description Soft delete: the client stays with status inactive
// @Tags clients
// @Security BearerAuth
// @Param id path int true "Client id"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/clientes/{id} [delete]
func (h *CustomerHandler) DeleteClient(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeactivateClient(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Create pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.PetRequest true "Pet"
// @Success 201 {object} resdto.PetResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/pets [post]
func (h *CustomerHandler) CreatePet(c *gin.Context) {
	var req reqdto.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	id, err := h.cmds.CreatePet(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondPet(c, http.StatusCreated, id)
}

// @Summary Replace pet
// @Tags pets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet id"
// @Param request body reqdto.PetRequest true "Pet"
// @Success 200 {object} resdto.PetResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/pets/{id} [put]
func (h *CustomerHandler) UpdatePet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.UpdatePet(c.Request.Context(), id, cmd); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondPet(c, http.StatusOK, id)
}

// @Summary Get pet
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pet id"
// @Success 200 {object} resdto.PetResponse
// @Failure 404 {object} httperr.Response
// @Router /api/pets/{id} [get]
func (h *CustomerHandler) GetPet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondPet(c, http.StatusOK, id)
}

// @Summary List pets
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Param cliente_id query int false "Owner id"
// @Param status query string false "active or inactive"
// @Param limit query int false "Max rows (default and max 200)"
// @Success 200 {array} resdto.PetResponse
// @Failure 400 {object} httperr.Response
// @Router /api/pets [get]
func (h *CustomerHandler) ListPets(c *gin.Context) {
	clientID, ok := queryInt64(c, "cliente_id")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	filter := queries.PetFilter{ClientID: clientID, Status: queryString(c, "status")}
	views, err := h.q.ListPets(c.Request.Context(), filter, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPetViews(views))
}

// @Summary Deactivate pet
// @Tags pets
// @Security BearerAuth
// @Param id path int true "Pet id"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/pets/{id} [delete]
func (h *CustomerHandler) DeletePet(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.DeactivatePet(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List species
// @Tags pets
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.SpeciesResponse
// @Router /api/especies [get]
func (h *CustomerHandler) ListSpecies(c *gin.Context) {
	views, err := h.q.ListSpecies(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSpeciesViews(views))
}

// @Summary Upcoming pet birthdays
// @Description Active pets whose birthday falls within the next 30 days, soonest first
// @Tags consultant
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BirthdayResponse
// @Router /api/consultor/aniversarios [get]
func (h *CustomerHandler) UpcomingBirthdays(c *gin.Context) {
	views, err := h.q.UpcomingBirthdays(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBirthdayViews(views))
}

func (h *CustomerHandler) respondClient(c *gin.Context, status int, id int64) {
	view, err := h.q.GetClient(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromClientView(view))
}

func (h *CustomerHandler) respondPet(c *gin.Context, status int, id int64) {
	view, err := h.q.GetPet(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromPetView(view))
}
