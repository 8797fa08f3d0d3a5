package handlers

import (
	"log"
	"net/http"

	request "registro_inpi/internal/adapter/http/dto/request"
	response "registro_inpi/internal/adapter/http/dto/response"
	"registro_inpi/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BillingHandler handles HTTP requests for billing records.
type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

// ListBilling godoc
// @Summary      List my billing records
// @Tags         billing
// @Produce      json
// @Success      200  {array}  response.BillingRecordResponse
// @Security     Bearer
// @Router       /billing [get]
func (h *BillingHandler) ListBilling(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	items, err := h.usecase.ListByUser(c.Request.Context(), identity.UserID)
	if err != nil {
		writeUseCaseError(c, "billing", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingRecords(items))
}

// PayBillingRecord godoc
// @Summary      Pay a pending billing record
// @Tags         billing
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Billing record id"
// @Param        body  body      request.PayRequest  true  "Payment"
// @Success      200   {object}  response.BillingRecordResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      403   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Failure      502   {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /billing/{id}/pay [post]
func (h *BillingHandler) PayBillingRecord(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	var payload request.PayRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	recordID := c.Param("id")
	log.Printf("[billing][handler] pay start record_id=%s user_id=%s", recordID, identity.UserID)
	paid, err := h.usecase.Pay(c.Request.Context(), recordID, identity.UserID, payload.Method())
	if err != nil {
		writeUseCaseError(c, "billing", err)
		return
	}
	log.Printf("[billing][handler] pay success record_id=%s invoice=%s", paid.ID, paid.InvoiceNumber)

	c.JSON(http.StatusOK, response.FromBillingRecord(paid))
}

// GetBillingReport godoc
// @Summary      Billing dashboard of the caller
// @Tags         billing
// @Produce      json
// @Success      200  {object}  response.BillingReportResponse
// @Security     Bearer
// @Router       /billing/report [get]
func (h *BillingHandler) GetBillingReport(c *gin.Context) {
	identity, ok := caller(c)
	if !ok {
		return
	}
	report, err := h.usecase.Report(c.Request.Context(), identity.UserID)
	if err != nil {
		writeUseCaseError(c, "billing", err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingReport(report))
}
