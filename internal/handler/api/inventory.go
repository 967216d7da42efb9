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

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

// @Summary Record stock movement
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordMovementRequest true "Movement"
// @Success 201 {object} resdto.CreatedResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/estoque/movimentos [post]
func (h *InventoryHandler) RecordMovement(c *gin.Context) {
	var req reqdto.RecordMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.RecordMovement(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.CreatedResponse{ID: id})
}

// @Summary List recent movements
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param produto_id query int false "Product id"
// @Param limit query int false "Max rows (default 100, max 200)"
// @Success 200 {array} resdto.MovementResponse
// @Failure 400 {object} httperr.Response
// @Router /api/estoque/movimentos [get]
func (h *InventoryHandler) ListMovements(c *gin.Context) {
	productID, ok := queryInt64(c, "produto_id")
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	views, err := h.q.ListRecent(c.Request.Context(), productID, limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMovementViews(views))
}

// @Summary Product stock balance
// @Description Sum of entradas minus sum of saidas; 0 when the product has no movements
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param produtoId path int true "Product id"
// @Success 200 {object} resdto.BalanceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/estoque/saldo/{produtoId} [get]
func (h *InventoryHandler) Balance(c *gin.Context) {
	productID, ok := pathID(c, "produtoId")
	if !ok {
		return
	}
	view, err := h.q.Balance(c.Request.Context(), productID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBalanceView(view))
}
