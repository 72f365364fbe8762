// Package invoice is the billing computation engine. Everything here is a pure
// function of its inputs: no I/O, no clock, no randomness.
package invoice

import (
	"fmt"

	"workshop_xpto/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DisplayPlaces is the number of decimal places used for rendered amounts.
const DisplayPlaces = 2

// Catalog resolves a catalog entry by its current name.
type Catalog interface {
	Lookup(name string) (entities.CatalogEntry, bool)
}

// CatalogIndex is a name-keyed snapshot of the catalog.
type CatalogIndex map[string]entities.CatalogEntry

func NewCatalogIndex(entries []entities.CatalogEntry) CatalogIndex {
	return lo.KeyBy(entries, func(e entities.CatalogEntry) string { return e.Name })
}

func (c CatalogIndex) Lookup(name string) (entities.CatalogEntry, bool) {
	e, ok := c[name]
	return e, ok
}

// PricedLine is a selection re-priced against the live catalog.
type PricedLine struct {
	Selection entities.LineItemSelection
	Category  entities.Category
	UnitPrice decimal.Decimal
	Amount    decimal.Decimal
	Resolved  bool
}

// RepriceSelections resolves every selection by name against the current
// catalog. The price copied at selection time is ignored. A name missing from
// the catalog resolves to a zero price.
func RepriceSelections(selections []entities.LineItemSelection, catalog Catalog) []PricedLine {
	return lo.Map(selections, func(sel entities.LineItemSelection, _ int) PricedLine {
		line := PricedLine{Selection: sel, Category: sel.Category, UnitPrice: decimal.Zero}
		if entry, ok := catalog.Lookup(sel.Name); ok {
			line.Resolved = true
			line.Category = entry.Category
			line.UnitPrice = entry.Price
		}
		line.Amount = LineAmount(line.Category, line.UnitPrice, sel.Quantity)
		return line
	})
}

// LineAmount is unitPrice*quantity for consumables and unitPrice for services,
// whatever quantity was stored.
func LineAmount(category entities.Category, unitPrice, quantity decimal.Decimal) decimal.Decimal {
	if category != entities.CategoryConsumable {
		return unitPrice
	}
	if quantity.IsZero() {
		quantity = decimal.NewFromInt(1)
	}
	return unitPrice.Mul(quantity)
}

// PrefillBilling returns billing with LaborCost set to the sum of the service
// line amounts when the work order has not been billed yet. PartsCost is
// always left to the operator.
func PrefillBilling(selections []entities.LineItemSelection, catalog Catalog, billing entities.BillingRecord) entities.BillingRecord {
	if billing.Billed() {
		return billing
	}
	billing.LaborCost = ServiceLaborTotal(RepriceSelections(selections, catalog))
	return billing
}

// ServiceLaborTotal sums the amounts of service lines.
func ServiceLaborTotal(lines []PricedLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l.Category == entities.CategoryService {
			total = total.Add(l.Amount)
		}
	}
	return total
}

type RowKind string

const (
	RowItem     RowKind = "item"
	RowParts    RowKind = "parts"
	RowExtra    RowKind = "extra"
	RowDiscount RowKind = "discount"
)

// Row is one printable invoice line.
type Row struct {
	Kind        RowKind
	Description string
	Amount      decimal.Decimal
}

// Display is the amount rounded for printing.
func (r Row) Display() string {
	return Format(r.Amount)
}

// Breakdown is the computed, renderable invoice of one work order.
type Breakdown struct {
	Rows          []Row
	Lines         []PricedLine
	PartsCost     decimal.Decimal
	LaborCost     decimal.Decimal
	ExtraCost     decimal.Decimal
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Total         decimal.Decimal
	PaymentStatus entities.PaymentStatus
}

// ComputeInvoice turns selections, the live catalog and the billing record
// into an invoice breakdown.
//
// Item rows reflect the live catalog; Subtotal and Total come from the billing
// record only: parts + labor + extra - discount, with no floor at zero.
func ComputeInvoice(selections []entities.LineItemSelection, catalog Catalog, billing entities.BillingRecord) Breakdown {
	lines := RepriceSelections(selections, catalog)

	rows := lo.Map(lines, func(l PricedLine, _ int) Row {
		return Row{Kind: RowItem, Description: describe(l), Amount: l.Amount}
	})
	rows = append(rows, Row{Kind: RowParts, Description: "Parts & Materials", Amount: billing.PartsCost})
	if billing.ExtraServiceCost.IsPositive() {
		desc := "Extra Services"
		if billing.ExtraServiceNotes != "" {
			desc += ": " + billing.ExtraServiceNotes
		}
		rows = append(rows, Row{Kind: RowExtra, Description: desc, Amount: billing.ExtraServiceCost})
	}
	if billing.Discount.IsPositive() {
		rows = append(rows, Row{Kind: RowDiscount, Description: "Discount", Amount: billing.Discount.Neg()})
	}

	status := billing.PaymentStatus
	if status == "" {
		status = entities.PaymentStatusUnpaid
	}

	return Breakdown{
		Rows:          rows,
		Lines:         lines,
		PartsCost:     billing.PartsCost,
		LaborCost:     billing.LaborCost,
		ExtraCost:     billing.ExtraServiceCost,
		Subtotal:      billing.Subtotal(),
		Discount:      billing.Discount,
		Total:         billing.Total(),
		PaymentStatus: status,
	}
}

// Format renders an amount with two decimal places, half away from zero.
func Format(d decimal.Decimal) string {
	return d.StringFixed(DisplayPlaces)
}

func describe(l PricedLine) string {
	if l.Category == entities.CategoryConsumable {
		return fmt.Sprintf("%s (%s @ %s)", l.Selection.Name, quantityOf(l.Selection).String(), Format(l.UnitPrice))
	}
	return fmt.Sprintf("%s (Labor)", l.Selection.Name)
}

func quantityOf(sel entities.LineItemSelection) decimal.Decimal {
	if sel.Quantity.IsZero() {
		return decimal.NewFromInt(1)
	}
	return sel.Quantity
}
