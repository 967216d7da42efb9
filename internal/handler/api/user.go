package api

import (
	"net/http"

	reqdto "petshop-api/internal/handler/dto/request"
	resdto "petshop-api/internal/handler/dto/response"
	"petshop-api/internal/handler/httperr"
	"petshop-api/internal/handler/middleware"
	"petshop-api/internal/pkg/errs"
	"petshop-api/internal/usecase/commands"
	"petshop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	identity commands.IdentityCommands
	q        queries.UserQueries
}

func NewUserHandler(identity commands.IdentityCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{identity: identity, q: q}
}

// @Summary Current user
// @Description The local user the bearer token resolved to
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Router /api/auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	u, ok := middleware.GetUser(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("no authenticated user"), "Unauthorized", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}

// @Summary List users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param q query string false "Email or name contains"
// @Success 200 {array} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Router /api/admin/usuarios [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context(), queryString(c, "q"))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}

// @Summary Get user
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Success 200 {object} resdto.UserResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/usuarios/{id} [get]
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Change user role
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User id"
// @Param request body reqdto.ChangeRoleRequest true "New role"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/admin/usuarios/{id} [put]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, err, "Invalid request")
		return
	}
	u, err := h.identity.ChangeRole(c.Request.Context(), id, req.Role)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUser(u))
}
