package entities

import (
	"testing"
	"time"

	"workshop_xpto/internal/domain/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestParseWorkOrderStatus(t *testing.T) {
	for in, want := range map[string]WorkOrderStatus{
		"Pending":     StatusPending,
		"In Progress": StatusInProgress,
		"inprogress":  StatusInProgress,
		"READY":       StatusReady,
		" Completed ": StatusCompleted,
	} {
		got, ok := ParseWorkOrderStatus(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}
	_, ok := ParseWorkOrderStatus("Cancelled")
	assert.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("Lubricant")
	assert.True(t, ok)
	assert.Equal(t, CategoryConsumable, c)

	c, ok = ParseCategory("service")
	assert.True(t, ok)
	assert.Equal(t, CategoryService, c)

	_, ok = ParseCategory("tyre")
	assert.False(t, ok)
}

func TestWorkOrder_ValidateDraft(t *testing.T) {
	item := LineItemSelection{Name: "Engine Tune", Category: CategoryService}
	valid := WorkOrder{Vehicle: Vehicle{Name: "Corolla"}, Customer: Customer{Name: "Nimal"}, Items: []LineItemSelection{item}}
	require.NoError(t, valid.ValidateDraft())

	cases := map[string]WorkOrder{
		"missing vehicle": {Customer: Customer{Name: "Nimal"}, Items: []LineItemSelection{item}},
		"missing owner":   {Vehicle: Vehicle{Name: "Corolla"}, Items: []LineItemSelection{item}},
		"no items":        {Vehicle: Vehicle{Name: "Corolla"}, Customer: Customer{Name: "Nimal"}},
		"duplicate items": {Vehicle: Vehicle{Name: "Corolla"}, Customer: Customer{Name: "Nimal"}, Items: []LineItemSelection{item, {Name: " Engine Tune "}}},
		"negative qty":    {Vehicle: Vehicle{Name: "Corolla"}, Customer: Customer{Name: "Nimal"}, Items: []LineItemSelection{{Name: "Oil", Quantity: decimal.NewFromInt(-1)}}},
	}
	for name, w := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, errs.IsValidation(w.ValidateDraft()))
		})
	}
}

func TestNormalizeSelection(t *testing.T) {
	it := NormalizeSelection(LineItemSelection{Name: "  Engine Oil "})
	assert.Equal(t, "Engine Oil", it.Name)
	assert.True(t, it.Quantity.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, CategoryService, it.Category)

	it = NormalizeSelection(LineItemSelection{Name: "Oil", Category: CategoryConsumable, Quantity: decimal.NewFromInt(4)})
	assert.True(t, it.Quantity.Equal(decimal.NewFromInt(4)))
}

func TestBillingRecord_Totals(t *testing.T) {
	b := NewBillingRecord()
	b.PartsCost = decimal.NewFromInt(1000)
	b.LaborCost = decimal.NewFromInt(500)
	b.ExtraServiceCost = decimal.NewFromInt(200)
	b.Discount = decimal.NewFromInt(100)
	assert.True(t, b.Subtotal().Equal(decimal.NewFromInt(1700)))
	assert.True(t, b.Total().Equal(decimal.NewFromInt(1600)))

	b.Discount = decimal.NewFromInt(5000)
	assert.True(t, b.Total().Equal(decimal.NewFromInt(-3300)))
	assert.False(t, b.Billed())
}

func TestWorkOrderPatch_StatusOnlyKeepsOtherFields(t *testing.T) {
	billed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	w := WorkOrder{
		ID:        "id-1",
		ServiceID: 7,
		Notes:     "check brakes",
		Status:    StatusPending,
		Items:     []LineItemSelection{{Name: "Engine Tune", Category: CategoryService}},
		Billing:   BillingRecord{LaborCost: decimal.NewFromInt(1500), PaymentStatus: PaymentStatusUnpaid, BilledAt: &billed},
	}
	ready := StatusReady
	p := WorkOrderPatch{Status: &ready}
	require.NoError(t, p.Validate())
	assert.False(t, p.IsEmpty())

	got := p.Apply(w)
	assert.Equal(t, StatusReady, got.Status)
	assert.Equal(t, w.Notes, got.Notes)
	assert.Equal(t, w.Items, got.Items)
	assert.Equal(t, w.Billing, got.Billing)
}

func TestBillingPatch(t *testing.T) {
	first := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)
	paid := PaymentStatusPaid
	notes := "wheel alignment"

	b := NewBillingRecord()
	b = BillingPatch{PartsCost: dec(1000), BilledAt: &first}.Apply(b)
	b = BillingPatch{ExtraServiceNotes: &notes, PaymentStatus: &paid, BilledAt: &later}.Apply(b)

	assert.True(t, b.PartsCost.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "wheel alignment", b.ExtraServiceNotes)
	assert.Equal(t, PaymentStatusPaid, b.PaymentStatus)
	require.NotNil(t, b.BilledAt)
	assert.Equal(t, first, *b.BilledAt)

	assert.True(t, errs.IsValidation(BillingPatch{Discount: dec(-1)}.Validate()))
	bogus := PaymentStatus("Refunded")
	assert.True(t, errs.IsValidation(BillingPatch{PaymentStatus: &bogus}.Validate()))
	assert.True(t, BillingPatch{}.IsEmpty())
	assert.True(t, WorkOrderPatch{Billing: &BillingPatch{}}.IsEmpty())
}

func TestWorkOrderPatch_Validate(t *testing.T) {
	empty := " "
	assert.True(t, errs.IsValidation(WorkOrderPatch{VehicleName: &empty}.Validate()))
	assert.True(t, errs.IsValidation(WorkOrderPatch{CustomerName: &empty}.Validate()))
	none := []LineItemSelection{}
	assert.True(t, errs.IsValidation(WorkOrderPatch{Items: &none}.Validate()))
	bad := WorkOrderStatus("Archived")
	assert.True(t, errs.IsValidation(WorkOrderPatch{Status: &bad}.Validate()))
}

func TestCatalogEntry_Validate(t *testing.T) {
	ok := CatalogEntry{Name: "Engine Oil", Category: CategoryConsumable, Price: decimal.NewFromInt(800)}
	assert.NoError(t, ok.Validate())
	assert.True(t, errs.IsValidation(CatalogEntry{Category: CategoryService}.Validate()))
	assert.True(t, errs.IsValidation(CatalogEntry{Name: "x", Category: "Tyre"}.Validate()))
	assert.True(t, errs.IsValidation(CatalogEntry{Name: "x", Category: CategoryService, Price: decimal.NewFromInt(-5)}.Validate()))
}
