package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"workshop_xpto/internal/adapter/http/routes"
	"workshop_xpto/internal/config"
	"workshop_xpto/internal/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Workshop Work Orders API
// @version         1.0
// @description     Vehicle service work orders, catalog, invoices and payments.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key
// @description Admin key enabling delete operations.

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logger.L.Fatalf("failed to load config: %v", err)
	}
	log, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		logger.L.Fatalf("failed to build logger: %v", err)
	}
	logger.L = log
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
