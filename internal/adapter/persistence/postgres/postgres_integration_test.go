package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load("../../../../.env")

	// Tables are truncated, so never point this at a live database.
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres integration test")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(db.Close)

	if err := Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if _, err := db.Exec(ctx, `TRUNCATE TABLE counters, catalog_entries, work_orders`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	return db
}

func TestSequenceIssuer_Concurrent(t *testing.T) {
	db := setupTestDB(t)
	issuer := NewSequenceIssuer(db)
	const n = 50

	p := pool.NewWithResults[int64]().WithErrors().WithMaxGoroutines(10)
	for i := 0; i < n; i++ {
		p.Go(func() (int64, error) {
			return issuer.NextID(context.Background(), entities.CounterServiceID)
		})
	}
	ids, err := p.Wait()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seen := map[int64]bool{}
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(seen))
	}
}

func TestWorkOrderRepository_PartialUpdates(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewWorkOrderRepository(db)

	w := entities.WorkOrder{
		ID:        uuid.NewString(),
		ServiceID: 1,
		Vehicle:   entities.Vehicle{Name: "Corolla"},
		Customer:  entities.Customer{Name: "Nimal"},
		Items: []entities.LineItemSelection{
			{Name: "Engine Tune", Category: entities.CategoryService, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1500)},
		},
		Notes:     "check brakes",
		Status:    entities.StatusPending,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
		Billing:   entities.NewBillingRecord(),
	}
	if _, err := repo.Create(ctx, w); err != nil {
		t.Fatalf("create: %v", err)
	}

	ready := entities.StatusReady
	got, err := repo.UpdatePartial(ctx, 1, entities.WorkOrderPatch{Status: &ready})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != entities.StatusReady || got.Notes != "check brakes" || len(got.Items) != 1 || got.Billing.Billed() {
		t.Fatalf("status-only update changed other fields: %+v", got)
	}

	first := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	labor := decimal.NewFromInt(1500)
	got, err = repo.UpdatePartial(ctx, 1, entities.WorkOrderPatch{Billing: &entities.BillingPatch{LaborCost: &labor, BilledAt: &first}})
	if err != nil {
		t.Fatalf("update billing: %v", err)
	}
	later := first.Add(time.Hour)
	paid := entities.PaymentStatusPaid
	got, err = repo.UpdatePartial(ctx, 1, entities.WorkOrderPatch{Billing: &entities.BillingPatch{PaymentStatus: &paid, BilledAt: &later}})
	if err != nil {
		t.Fatalf("update billing: %v", err)
	}
	if got.Billing.BilledAt == nil || !got.Billing.BilledAt.Equal(first) {
		t.Fatalf("billed_at overwritten: %v", got.Billing.BilledAt)
	}
	if !got.Billing.LaborCost.Equal(labor) || got.Billing.PaymentStatus != entities.PaymentStatusPaid {
		t.Fatalf("unexpected billing %+v", got.Billing)
	}

	missing, err := repo.UpdatePartial(ctx, 99, entities.WorkOrderPatch{Status: &ready})
	if err != nil || missing.Exists() {
		t.Fatalf("expected zero value for missing work order, got %+v err=%v", missing, err)
	}

	ok, err := repo.Delete(ctx, 99)
	if err != nil || ok {
		t.Fatalf("expected nothing deleted, got ok=%v err=%v", ok, err)
	}
	ok, err = repo.Delete(ctx, 1)
	if err != nil || !ok {
		t.Fatalf("expected deleted, got ok=%v err=%v", ok, err)
	}
}

func TestCatalogRepository_UniqueName(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewCatalogRepository(db)

	e := entities.CatalogEntry{ID: uuid.NewString(), Name: "Engine Oil", Category: entities.CategoryConsumable, Price: decimal.NewFromInt(800)}
	if _, err := repo.Create(ctx, e); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := repo.Create(ctx, entities.CatalogEntry{ID: uuid.NewString(), Name: "Engine Oil", Category: entities.CategoryConsumable})
	if !errs.IsDuplicateCatalogName(err) {
		t.Fatalf("expected duplicate name, got %v", err)
	}

	got, err := repo.GetByID(ctx, e.ID)
	if err != nil || got.Name != "Engine Oil" || !got.Price.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("unexpected entry %+v err=%v", got, err)
	}
	ok, err := repo.Delete(ctx, e.ID)
	if err != nil || !ok {
		t.Fatalf("expected deleted, got ok=%v err=%v", ok, err)
	}
	got, err = repo.FindByName(ctx, "Engine Oil")
	if err != nil || got.Exists() {
		t.Fatalf("expected zero entry, got %+v err=%v", got, err)
	}
}
