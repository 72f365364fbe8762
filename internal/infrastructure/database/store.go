package database

import (
	"context"
	"fmt"

	"workshop_xpto/internal/adapter/persistence/cache"
	"workshop_xpto/internal/adapter/persistence/memory"
	"workshop_xpto/internal/adapter/persistence/postgres"
	"workshop_xpto/internal/adapter/persistence/repository"
	"workshop_xpto/internal/config"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Stores bundles the repositories of the configured driver.
type Stores struct {
	Issuer     interfaces.ISequenceIssuer
	WorkOrders interfaces.IWorkOrderRepository
	Catalog    interfaces.ICatalogRepository
	// Pricing is the uncached catalog. Invoice pricing reads it so entries
	// changed by another process take effect on the next request.
	Pricing interfaces.ICatalogRepository

	migrate func(ctx context.Context) error
	close   func()
}

// Migrate creates the tables or schema the driver needs. It is idempotent.
func (s *Stores) Migrate(ctx context.Context) error {
	if s.migrate == nil {
		return nil
	}
	return s.migrate(ctx)
}

func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to the store selected by cfg.Store.Driver, waiting up to
// cfg.Store.MaxWait for it to become reachable. Catalog is wrapped in a read
// cache when cfg.Catalog.CacheTTL is positive; Pricing never is.
func Open(ctx context.Context, cfg *config.Configuration, log *logger.Logger) (*Stores, error) {
	var (
		s   *Stores
		err error
	)
	switch cfg.Store.Driver {
	case config.DriverMemory:
		s = &Stores{
			Issuer:     memory.NewSequenceIssuer(),
			WorkOrders: memory.NewWorkOrderRepository(),
			Catalog:    memory.NewCatalogRepository(),
		}
	case config.DriverPostgres:
		s, err = openPostgres(ctx, cfg, log)
	case config.DriverDynamoDB:
		s, err = openDynamoDB(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	if err != nil {
		return nil, err
	}
	s.Pricing = s.Catalog
	if cfg.Catalog.CacheTTL > 0 {
		s.Catalog = cache.NewCatalogCache(s.Catalog, cfg.Catalog.CacheTTL)
	}
	log.Infof("[store][startup] opened driver=%s", cfg.Store.Driver)
	return s, nil
}

func openPostgres(ctx context.Context, cfg *config.Configuration, log *logger.Logger) (*Stores, error) {
	pool, err := NewPostgresPool(ctx, cfg.Postgres.URL)
	if err != nil {
		return nil, err
	}
	if err := WaitReady(ctx, "postgres", cfg.Store.MaxWait, pool.Ping, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres not reachable: %w", err)
	}
	return &Stores{
		Issuer:     postgres.NewSequenceIssuer(pool),
		WorkOrders: postgres.NewWorkOrderRepository(pool),
		Catalog:    postgres.NewCatalogRepository(pool),
		migrate:    func(ctx context.Context) error { return postgres.Migrate(ctx, pool) },
		close:      pool.Close,
	}, nil
}

func openDynamoDB(ctx context.Context, cfg *config.Configuration, log *logger.Logger) (*Stores, error) {
	client, err := NewDynamoDBClient(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamodb config: %w", err)
	}
	tables := repository.Tables{
		WorkOrders: cfg.DynamoDB.WorkOrdersTable,
		Catalog:    cfg.DynamoDB.CatalogTable,
		Counters:   cfg.DynamoDB.CountersTable,
	}
	ping := func(ctx context.Context) error {
		_, err := client.ListTables(ctx, &dynamodb.ListTablesInput{Limit: aws.Int32(1)})
		return err
	}
	if err := WaitReady(ctx, "dynamodb", cfg.Store.MaxWait, ping, log); err != nil {
		return nil, fmt.Errorf("dynamodb not reachable: %w", err)
	}
	return &Stores{
		Issuer:     repository.NewSequenceDynamoIssuer(client, tables.Counters),
		WorkOrders: repository.NewWorkOrderDynamoRepository(client, tables.WorkOrders),
		Catalog:    repository.NewCatalogDynamoRepository(client, tables.Catalog),
		migrate: func(ctx context.Context) error {
			created, err := repository.EnsureTables(ctx, client, tables, cfg.Store.MaxWait)
			if len(created) > 0 {
				log.Infof("[store][migrate] created dynamodb tables=%v", created)
			}
			return err
		},
	}, nil
}
