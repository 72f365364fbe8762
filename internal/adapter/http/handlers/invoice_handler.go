package handlers

import (
	"net/http"

	request "workshop_xpto/internal/adapter/http/dto/request"
	response "workshop_xpto/internal/adapter/http/dto/response"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves the invoice view and the billing form of a work order.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// GetInvoice godoc
// @Summary  Compute the invoice of a work order
// @Tags     billing
// @Produce  json
// @Param    service_id  path      int  true  "Service id"
// @Success  200         {object}  response.InvoiceResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /work-orders/{service_id}/invoice [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, ok := serviceIDParam(c)
	if !ok {
		return
	}
	inv, err := h.usecase.GetInvoice(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// GetBilling godoc
// @Summary      Billing form values
// @Description  Stored billing, with labor pre-filled from the catalog until the first save
// @Tags         billing
// @Produce      json
// @Param        service_id  path      int  true  "Service id"
// @Success      200         {object}  response.BillingResponse
// @Failure      404         {object}  pkg.HTTPError
// @Router       /work-orders/{service_id}/billing/prefill [get]
func (h *InvoiceHandler) GetBilling(c *gin.Context) {
	id, ok := serviceIDParam(c)
	if !ok {
		return
	}
	b, err := h.usecase.Prefill(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBilling(b))
}

// UpdateBilling godoc
// @Summary  Save billing adjustments
// @Tags     billing
// @Accept   json
// @Produce  json
// @Param    service_id  path      int                          true  "Service id"
// @Param    body        body      request.BillingPatchRequest  true  "Billing fields to change"
// @Success  200         {object}  response.WorkOrderResponse
// @Failure  400         {object}  pkg.HTTPError
// @Failure  404         {object}  pkg.HTTPError
// @Router   /work-orders/{service_id}/billing [patch]
func (h *InvoiceHandler) UpdateBilling(c *gin.Context) {
	id, ok := serviceIDParam(c)
	if !ok {
		return
	}
	var payload request.BillingPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	updated, err := h.usecase.UpdateBilling(c.Request.Context(), id, patch)
	if err != nil {
		logger.L.Warnf("[billing][handler] update failed service_id=%d err=%v", id, err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}
