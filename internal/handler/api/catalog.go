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

type CatalogHandler struct {
	cmds commands.CatalogCommands
	q    queries.CatalogQueries
}

func NewCatalogHandler(cmds commands.CatalogCommands, q queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{cmds: cmds, q: q}
}

// @Summary Create service
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 201 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Router /api/servicos [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.CreateService(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondService(c, http.StatusCreated, id)
}

// @Summary Replace service
// @Description Full replace; send ativo=false to deactivate
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service id"
// @Param request body reqdto.ServiceRequest true "Service"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/servicos/{id} [put]
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateService(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondService(c, http.StatusOK, id)
}

// @Summary Get service
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Service id"
// @Success 200 {object} resdto.ServiceResponse
// @Failure 404 {object} httperr.Response
// @Router /api/servicos/{id} [get]
func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondService(c, http.StatusOK, id)
}

// @Summary List services
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param ativo query bool false "Filter by active flag"
// @Success 200 {array} resdto.ServiceResponse
// @Router /api/servicos [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	active, ok := queryBool(c, "ativo")
	if !ok {
		return
	}
	views, err := h.q.ListServices(c.Request.Context(), active)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceViews(views))
}

// @Summary Create product
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductRequest true "Product"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Router /api/produtos [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	id, err := h.cmds.CreateProduct(c.Request.Context(), req.ToCommand())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondProduct(c, http.StatusCreated, id)
}

// @Summary Replace product
// @Tags catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product id"
// @Param request body reqdto.ProductRequest true "Product"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/produtos/{id} [put]
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	if err := h.cmds.UpdateProduct(c.Request.Context(), id, req.ToCommand()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondProduct(c, http.StatusOK, id)
}

// @Summary Get product
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path int true "Product id"
// @Success 200 {object} resdto.ProductResponse
// @Failure 404 {object} httperr.Response
// @Router /api/produtos/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respondProduct(c, http.StatusOK, id)
}

// @Summary List products
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param ativo query bool false "Filter by active flag"
// @Success 200 {array} resdto.ProductResponse
// @Router /api/produtos [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	active, ok := queryBool(c, "ativo")
	if !ok {
		return
	}
	views, err := h.q.ListProducts(c.Request.Context(), active)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

func (h *CatalogHandler) respondService(c *gin.Context, status int, id int64) {
	view, err := h.q.GetService(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromServiceView(view))
}

func (h *CatalogHandler) respondProduct(c *gin.Context, status int, id int64) {
	view, err := h.q.GetProduct(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(status, resdto.FromProductView(view))
}
