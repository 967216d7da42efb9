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

type SaleHandler struct {
	cmds commands.SaleCommands
	q    queries.SaleQueries
}

func NewSaleHandler(cmds commands.SaleCommands, q queries.SaleQueries) *SaleHandler {
	return &SaleHandler{cmds: cmds, q: q}
}

// @Summary Create sale
// @Description Create an open sale. Every line snapshots the catalog name and price.
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSaleRequest true "Sale"
// @Success 201 {object} resdto.SaleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/vendas [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req reqdto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	id, err := h.cmds.Create(c.Request.Context(), cmd)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusCreated, id)
}

// @Summary List sales
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param status query string false "open or paid"
// @Param cliente_id query int false "Client id"
// @Param limit query int false "Max rows (default 50, max 200)"
// @Success 200 {array} resdto.SaleResponse
// @Failure 400 {object} httperr.Response
// @Router /api/vendas [get]
func (h *SaleHandler) List(c *gin.Context) {
	clientID, ok := queryInt64(c, "cliente_id")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	filter := queries.SaleFilter{Status: queryString(c, "status"), ClientID: clientID}
	views, err := h.q.List(c.Request.Context(), filter, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSaleViews(views))
}

// @Summary Get sale
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sale id"
// @Success 200 {object} resdto.SaleResponse
// @Failure 404 {object} httperr.Response
// @Router /api/vendas/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Add sale item
// @Description Append one line to an open sale
// @Tags sales
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sale id"
// @Param request body reqdto.SaleItemRequest true "Item"
// @Success 200 {object} resdto.SaleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vendas/{id}/itens [post]
func (h *SaleHandler) AddItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.SaleItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	item, err := req.ToDomain()
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	if err := h.cmds.AddItem(c.Request.Context(), id, item); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Pay sale
// @Description Mark an open sale paid and debit stock for its product lines
// @Tags sales
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sale id"
// @Success 200 {object} resdto.StatusResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/vendas/{id}/pagar [post]
func (h *SaleHandler) Pay(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	status, err := h.cmds.Pay(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.StatusResponse{ID: id, Status: status.String()})
}

func (h *SaleHandler) respond(c *gin.Context, status int, id int64) {
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromSaleView(view))
}
