package handlers

import (
	"log"
	"net/http"

	request "registro_inpi/internal/adapter/http/dto/request"
	response "registro_inpi/internal/adapter/http/dto/response"
	"registro_inpi/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProcessHandler exposes the registration process lifecycle.
type ProcessHandler struct {
	usecase usecase.IProcessUseCase
}

func NewProcessHandler(uc usecase.IProcessUseCase) *ProcessHandler {
	return &ProcessHandler{usecase: uc}
}

// CreateProcess godoc
// @Summary      Open a registration process
// @Description  Creates a draft process, its first history entry and the pending registration fee.
// @Tags         processes
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateProcessRequest  true  "Process"
// @Success      201   {object}  response.ProcessCreateResponse
// @Failure      400   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /processes [post]
func (h *ProcessHandler) CreateProcess(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var payload request.CreateProcessRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	process, billing, err := h.usecase.Create(c.Request.Context(), identity.UserID, payload.ToInput())
	if err != nil {
		writeUseCaseError(c, "process", err)
		return
	}
	log.Printf("[process][handler] create success user_id=%s process_id=%s", identity.UserID, process.ID)

	c.JSON(http.StatusCreated, response.ProcessCreateResponse{
		Process: response.FromProcess(process),
		Billing: response.FromBillingRecord(billing),
	})
}

// ListProcesses godoc
// @Summary      List my registration processes
// @Tags         processes
// @Produce      json
// @Success      200  {array}  response.ProcessResponse
// @Security     Bearer
// @Router       /processes [get]
func (h *ProcessHandler) ListProcesses(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListByUser(c.Request.Context(), identity.UserID)
	if err != nil {
		writeUseCaseError(c, "process", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProcesses(items))
}

// GetProcess godoc
// @Summary      Get a registration process
// @Tags         processes
// @Produce      json
// @Param        id   path      string  true  "Process id"
// @Success      200  {object}  response.ProcessResponse
// @Failure      403  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /processes/{id} [get]
func (h *ProcessHandler) GetProcess(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	process, err := h.usecase.Get(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		writeUseCaseError(c, "process", err)
		return
	}
	c.JSON(http.StatusOK, response.FromProcess(process))
}

// GetProcessHistory godoc
// @Summary      Status history of a process, oldest first
// @Tags         processes
// @Produce      json
// @Param        id   path     string  true  "Process id"
// @Success      200  {array}  response.MonitoringResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /processes/{id}/history [get]
func (h *ProcessHandler) GetProcessHistory(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	items, err := h.usecase.History(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		writeUseCaseError(c, "process", err)
		return
	}
	c.JSON(http.StatusOK, response.FromMonitoringEntries(items))
}

// TransitionStatus godoc
// @Summary      Change the status of a process
// @Description  Owners may only submit a draft; admins may perform any legal transition.
// @Tags         processes
// @Accept       json
// @Produce      json
// @Param        id    path      string                           true  "Process id"
// @Param        body  body      request.TransitionStatusRequest  true  "Transition"
// @Success      200   {object}  response.TransitionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /processes/{id}/status [patch]
func (h *ProcessHandler) TransitionStatus(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var payload request.TransitionStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	process, entry, err := h.usecase.TransitionStatus(c.Request.Context(), identity, c.Param("id"), payload.ToInput())
	if err != nil {
		writeUseCaseError(c, "process", err)
		return
	}
	log.Printf("[process][handler] transition success process_id=%s status=%s", process.ID, process.Status)

	c.JSON(http.StatusOK, response.TransitionResponse{
		Process:    response.FromProcess(process),
		Monitoring: response.FromMonitoring(entry),
	})
}
