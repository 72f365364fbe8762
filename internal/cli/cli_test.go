package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"workshop_xpto/internal/config"
	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `entries:
  - name: Engine Tune
    category: Service
    price: 1500
  - name: Engine Oil
    category: Lubricant
    price: "800.50"
`

func newMemoryApp(t *testing.T) *App {
	t.Helper()
	a, err := NewApp(context.Background(), config.GetDefaultConfig(), logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func run(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(func(context.Context) (*App, error) { return a, nil })
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseSeedFile(t *testing.T) {
	entries, err := ParseSeedFile([]byte(seedYAML))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entities.CategoryService, entries[0].Category)
	assert.Equal(t, entities.CategoryConsumable, entries[1].Category)
	assert.True(t, entries[1].Price.Equal(decimal.RequireFromString("800.5")))

	_, err = ParseSeedFile([]byte("entries:\n  - name: X\n    category: Gadget\n    price: 1\n"))
	assert.Error(t, err)
	_, err = ParseSeedFile([]byte("entries:\n  - name: X\n    category: Service\n    price: cheap\n"))
	assert.Error(t, err)
}

func TestSeedCatalogCmd(t *testing.T) {
	a := newMemoryApp(t)
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o600))

	out, err := run(t, a, "seed-catalog", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "2 added, 0 skipped")

	out, err = run(t, a, "seed-catalog", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "0 added, 2 skipped")

	list, err := a.Catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestInvoiceCmd(t *testing.T) {
	a := newMemoryApp(t)
	ctx := context.Background()
	_, err := a.Catalog.Create(ctx, entities.CatalogEntry{Name: "Engine Tune", Category: entities.CategoryService, Price: decimal.NewFromInt(1500)})
	require.NoError(t, err)

	workOrders := usecase.NewWorkOrderUseCase(a.Stores.WorkOrders, a.Stores.Issuer, a.Stores.Catalog, logger.NewNop())
	w, err := workOrders.Create(ctx, entities.WorkOrder{
		Vehicle:  entities.Vehicle{Name: "Corolla"},
		Customer: entities.Customer{Name: "Nimal"},
		Items:    []entities.LineItemSelection{{Name: "Engine Tune"}},
	})
	require.NoError(t, err)

	out, err := run(t, a, "invoice", "1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), w.ServiceID)
	assert.Contains(t, out, "Engine Tune (Labor)")
	assert.Contains(t, out, "1500.00")
	assert.Contains(t, out, "Total (LKR)")
	assert.Contains(t, out, "pre-filled")

	_, err = run(t, a, "invoice", "abc")
	assert.Error(t, err)
	_, err = run(t, a, "invoice", "99")
	assert.Error(t, err)
}

func TestNextIDAndMigrateCmd(t *testing.T) {
	a := newMemoryApp(t)

	out, err := run(t, a, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "up to date")

	out, err = run(t, a, "next-id", "diagnostics")
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(out))
	out, err = run(t, a, "next-id", "diagnostics")
	require.NoError(t, err)
	assert.Equal(t, "2", strings.TrimSpace(out))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))

	got := truncate("Óleo sintético de motor", 7)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "Óleo...", got)
	assert.Equal(t, "Revisão", truncate("Revisão", 7))
}
