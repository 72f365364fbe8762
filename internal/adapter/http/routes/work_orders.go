package routes

import (
	"workshop_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/work-orders"
	PathCatalog    = "/catalog"
)

func addWorkOrderRoutes(
	rg *gin.RouterGroup,
	workOrderHandler *handlers.WorkOrderHandler,
	invoiceHandler *handlers.InvoiceHandler,
	paymentHandler *handlers.PaymentHandler,
) {
	workOrders := rg.Group(PathWorkOrders)
	{
		workOrders.GET("", workOrderHandler.ListWorkOrders)
		workOrders.POST("", workOrderHandler.CreateWorkOrder)
		workOrders.GET("/:service_id", workOrderHandler.GetWorkOrder)
		workOrders.PATCH("/:service_id", workOrderHandler.UpdateWorkOrder)
		workOrders.DELETE("/:service_id", workOrderHandler.DeleteWorkOrder)

		workOrders.GET("/:service_id/invoice", invoiceHandler.GetInvoice)
		workOrders.GET("/:service_id/billing/prefill", invoiceHandler.GetBilling)
		workOrders.PATCH("/:service_id/billing", invoiceHandler.UpdateBilling)
		workOrders.POST("/:service_id/payments", paymentHandler.CreatePayment)
	}
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("", catalogHandler.ListCatalog)
		catalog.POST("", catalogHandler.CreateCatalogEntry)
		catalog.DELETE("/:id", catalogHandler.DeleteCatalogEntry)
	}
}
