package handlers

import (
	"log"
	"net/http"

	request "registro_inpi/internal/adapter/http/dto/request"
	response "registro_inpi/internal/adapter/http/dto/response"
	"registro_inpi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// RegisterProfile godoc
// @Summary      Create the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      request.ProfileRequest  true  "Profile"
// @Success      201   {object}  response.ProfileResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /profile [post]
func (h *ProfileHandler) RegisterProfile(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	profile, err := h.usecase.Register(c.Request.Context(), identity, payload.ToInput())
	if err != nil {
		writeUseCaseError(c, "profile", err)
		return
	}
	log.Printf("[profile][handler] register success user_id=%s", profile.ID)
	c.JSON(http.StatusCreated, response.FromProfile(profile))
}

// GetProfile godoc
// @Summary      The caller's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.ProfileResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	profile, err := h.usecase.Get(c.Request.Context(), identity.UserID)
	if err != nil {
		writeUseCaseError(c, "profile", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(profile))
}

// UpdateProfile godoc
// @Summary      Update the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      request.ProfileRequest  true  "Profile"
// @Success      200   {object}  response.ProfileResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	profile, err := h.usecase.Update(c.Request.Context(), identity.UserID, payload.ToInput())
	if err != nil {
		writeUseCaseError(c, "profile", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(profile))
}
