package routes

import (
	"context"
	"net/http"
	"strconv"
	"time"

	_ "workshop_xpto/docs"
	"workshop_xpto/internal/adapter/http/handlers"
	"workshop_xpto/internal/adapter/http/middleware"
	"workshop_xpto/internal/config"
	"workshop_xpto/internal/infrastructure/database"
	"workshop_xpto/internal/infrastructure/payments"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	WorkOrders *handlers.WorkOrderHandler
	Catalog    *handlers.CatalogHandler
	Invoices   *handlers.InvoiceHandler
	Payments   *handlers.PaymentHandler
}

// NewHandlers wires usecases and handlers on top of the given stores.
func NewHandlers(cfg *config.Configuration, stores *database.Stores, log *logger.Logger) Handlers {
	var paymentGateway interfaces.IPaymentGateway
	if !cfg.Payments.Mock {
		mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments.AccessToken, log)
		if err != nil {
			log.Warnf("[payment][startup] Mercado Pago gateway not configured: %v", err)
		} else {
			paymentGateway = mpGateway
		}
	}

	workOrderUseCase := usecase.NewWorkOrderUseCase(stores.WorkOrders, stores.Issuer, stores.Catalog, log)
	catalogUseCase := usecase.NewCatalogUseCase(stores.Catalog, log)
	invoiceUseCase := usecase.NewInvoiceUseCase(stores.WorkOrders, stores.Pricing, cfg.Billing.Currency, log)
	paymentUseCase := usecase.NewPaymentUseCase(invoiceUseCase, paymentGateway, usecase.PaymentSettings{
		Mock:        cfg.Payments.Mock,
		AccessToken: cfg.Payments.AccessToken,
	}, log)

	return Handlers{
		WorkOrders: handlers.NewWorkOrderHandler(workOrderUseCase),
		Catalog:    handlers.NewCatalogHandler(catalogUseCase),
		Invoices:   handlers.NewInvoiceHandler(invoiceUseCase),
		Payments:   handlers.NewPaymentHandler(paymentUseCase, cfg.Payments.Mock),
	}
}

// NewRouter builds the gin engine with middlewares, swagger and /v1 routes.
func NewRouter(cfg *config.Configuration, h Handlers, log *logger.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addWorkOrderRoutes(v1, h.WorkOrders, h.Invoices, h.Payments)
	return router
}

// Run opens the configured store and serves until ctx is cancelled or the
// listener fails.
func Run(ctx context.Context, cfg *config.Configuration, log *logger.Logger) error {
	stores, err := database.Open(ctx, cfg, log)
	if err != nil {
		return errors.Wrap(err, "open store")
	}
	defer stores.Close()
	if err := stores.Migrate(ctx); err != nil {
		return errors.Wrap(err, "migrate store")
	}

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           NewRouter(cfg, NewHandlers(cfg, stores, log), log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		log.Infof("[http][startup] listening port=%d driver=%s", cfg.Server.Port, cfg.Store.Driver)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "failed to startup the application")
	case <-ctx.Done():
		log.Infof("[http][shutdown] draining connections")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func setMiddlewares(router *gin.Engine, cfg *config.Configuration, log *logger.Logger) {
	router.Use(middleware.RequestID)
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorf("[http][recovery] recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(middleware.AdminPrincipal(cfg.Auth.AdminKey, log))
}
