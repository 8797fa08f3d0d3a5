package handlers

import (
	"log"
	"net/http"

	request "registro_inpi/internal/adapter/http/dto/request"
	response "registro_inpi/internal/adapter/http/dto/response"
	"registro_inpi/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ConsultationHandler struct {
	usecase usecase.IConsultationUseCase
}

func NewConsultationHandler(uc usecase.IConsultationUseCase) *ConsultationHandler {
	return &ConsultationHandler{usecase: uc}
}

// RunConsultation godoc
// @Summary      Run a registry search
// @Description  Searches the INPI catalog and records a pending billing record for the search cost.
// @Tags         consultations
// @Accept       json
// @Produce      json
// @Param        body  body      request.ConsultationRequest  true  "Search"
// @Success      201   {object}  response.ConsultationRunResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      500   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /consultations [post]
func (h *ConsultationHandler) RunConsultation(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var payload request.ConsultationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	consultation, billing, err := h.usecase.Run(c.Request.Context(), identity.UserID, payload.SearchTerm, payload.Type())
	if err != nil {
		writeUseCaseError(c, "consultation", err)
		return
	}
	log.Printf("[consultation][handler] run success user_id=%s consultation_id=%s", identity.UserID, consultation.ID)

	c.JSON(http.StatusCreated, response.ConsultationRunResponse{
		Consultation: response.FromConsultation(consultation),
		Billing:      response.FromBillingRecord(billing),
	})
}

// ListConsultations godoc
// @Summary      List my consultations
// @Tags         consultations
// @Produce      json
// @Param        limit  query     int  false  "Max items (default 10)"
// @Success      200    {array}   response.ConsultationResponse
// @Failure      400    {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /consultations [get]
func (h *ConsultationHandler) ListConsultations(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	limit, ok := queryLimit(c)
	if !ok {
		return
	}

	items, err := h.usecase.ListByUser(c.Request.Context(), identity.UserID, limit)
	if err != nil {
		writeUseCaseError(c, "consultation", err)
		return
	}
	c.JSON(http.StatusOK, response.FromConsultations(items))
}
