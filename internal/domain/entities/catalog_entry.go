package entities

import (
	"strings"

	"workshop_xpto/internal/domain/errs"

	"github.com/shopspring/decimal"
)

// Category distinguishes flat-priced labor from quantified consumables.
type Category string

const (
	CategoryService    Category = "Service"
	CategoryConsumable Category = "Consumable"
)

// ParseCategory accepts the canonical names case-insensitively. "Lubricant"
// is the legacy name for consumables.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "service", "labor":
		return CategoryService, true
	case "consumable", "lubricant":
		return CategoryConsumable, true
	}
	return "", false
}

// CatalogEntry is a named, priced offering. Names are unique.
type CatalogEntry struct {
	ID       string
	Name     string
	Category Category
	Price    decimal.Decimal
}

func (c CatalogEntry) Exists() bool {
	return c.ID != ""
}

func (c CatalogEntry) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errs.Validation("catalog entry name is required")
	}
	if c.Category != CategoryService && c.Category != CategoryConsumable {
		return errs.Validation("invalid catalog category %q", c.Category)
	}
	if c.Price.IsNegative() {
		return errs.Validation("catalog price must not be negative")
	}
	return nil
}
