package handlers

import (
	"net/http"

	response "registro_inpi/internal/adapter/http/dto/response"
	"registro_inpi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

// GetOverview godoc
// @Summary      Admin console totals
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.AdminOverviewResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/overview [get]
func (h *AdminHandler) GetOverview(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	overview, err := h.usecase.Overview(c.Request.Context(), identity)
	if err != nil {
		writeUseCaseError(c, "admin", err)
		return
	}
	c.JSON(http.StatusOK, response.FromAdminOverview(overview))
}

// GetRecentActivity godoc
// @Summary      Latest status changes across all processes
// @Tags         admin
// @Produce      json
// @Param        limit  query     int  false  "Max items (default 20)"
// @Success      200    {array}   response.ActivityResponse
// @Failure      403    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/activity [get]
func (h *AdminHandler) GetRecentActivity(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}
	items, err := h.usecase.RecentActivity(c.Request.Context(), identity, limit)
	if err != nil {
		writeUseCaseError(c, "admin", err)
		return
	}
	c.JSON(http.StatusOK, response.FromActivity(items))
}

// ListUsers godoc
// @Summary      All registered profiles
// @Tags         admin
// @Produce      json
// @Success      200  {array}   response.ProfileResponse
// @Failure      403  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListUsers(c.Request.Context(), identity)
	if err != nil {
		writeUseCaseError(c, "admin", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfiles(items))
}
