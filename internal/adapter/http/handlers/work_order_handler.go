package handlers

import (
	"net/http"

	request "workshop_xpto/internal/adapter/http/dto/request"
	response "workshop_xpto/internal/adapter/http/dto/response"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mocks/mock_usecases.go -package=mocks workshop_xpto/internal/usecase ICatalogUseCase,IInvoiceUseCase,IPaymentUseCase,IWorkOrderUseCase

// WorkOrderHandler handles HTTP requests for work orders.
type WorkOrderHandler struct {
	usecase usecase.IWorkOrderUseCase
}

func NewWorkOrderHandler(uc usecase.IWorkOrderUseCase) *WorkOrderHandler {
	return &WorkOrderHandler{usecase: uc}
}

// CreateWorkOrder godoc
// @Summary      Create a work order
// @Description  Issues the next service id and stores the work order as Pending
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        body  body      request.WorkOrderCreateRequest  true  "Work order"
// @Success      201   {object}  response.WorkOrderResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      503   {object}  pkg.HTTPError
// @Router       /work-orders [post]
func (h *WorkOrderHandler) CreateWorkOrder(c *gin.Context) {
	var payload request.WorkOrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	draft, err := payload.ToEntity()
	if err != nil {
		writeError(c, mapError(err))
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), draft)
	if err != nil {
		logger.L.Warnf("[work-order][handler] create failed err=%v", err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromWorkOrder(created))
}

// ListWorkOrders godoc
// @Summary  List work orders, newest first
// @Tags     work-orders
// @Produce  json
// @Success  200  {array}   response.WorkOrderResponse
// @Failure  503  {object}  pkg.HTTPError
// @Router   /work-orders [get]
func (h *WorkOrderHandler) ListWorkOrders(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrders(list))
}

// GetWorkOrder godoc
// @Summary  Get a work order by service id
// @Tags     work-orders
// @Produce  json
// @Param    service_id  path      int  true  "Service id"
// @Success  200         {object}  response.WorkOrderResponse
// @Failure  404         {object}  pkg.HTTPError
// @Router   /work-orders/{service_id} [get]
func (h *WorkOrderHandler) GetWorkOrder(c *gin.Context) {
	id, ok := serviceIDParam(c)
	if !ok {
		return
	}
	w, err := h.usecase.GetByServiceID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(w))
}

// UpdateWorkOrder godoc
// @Summary      Partially update a work order
// @Description  Only the fields present in the body change. Billing is updated through the billing endpoint.
// @Tags         work-orders
// @Accept       json
// @Produce      json
// @Param        service_id  path      int                            true  "Service id"
// @Param        body        body      request.WorkOrderPatchRequest  true  "Fields to change"
// @Success      200         {object}  response.WorkOrderResponse
// @Failure      400         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Router       /work-orders/{service_id} [patch]
func (h *WorkOrderHandler) UpdateWorkOrder(c *gin.Context) {
	id, ok := serviceIDParam(c)
	if !ok {
		return
	}
	var payload request.WorkOrderPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, bindingError(err))
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, mapError(err))
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		logger.L.Warnf("[work-order][handler] update failed service_id=%d err=%v", id, err)
		writeError(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(updated))
}

// DeleteWorkOrder godoc
// @Summary   Delete a work order
// @Tags      work-orders
// @Security  AdminKey
// @Param     service_id  path  int  true  "Service id"
// @Success   204
// @Failure   403  {object}  pkg.HTTPError
// @Failure   404  {object}  pkg.HTTPError
// @Router    /work-orders/{service_id} [delete]
func (h *WorkOrderHandler) DeleteWorkOrder(c *gin.Context) {
	id, ok := serviceIDParam(c)
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
