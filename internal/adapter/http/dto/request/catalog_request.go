package request

import (
	"strings"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"

	"github.com/shopspring/decimal"
)

type CatalogEntryRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Price    decimal.Decimal `json:"price"`
}

func (r CatalogEntryRequest) ToEntity() (entities.CatalogEntry, error) {
	c, ok := entities.ParseCategory(r.Category)
	if !ok {
		return entities.CatalogEntry{}, errs.Validation("invalid category %q", r.Category)
	}
	return entities.CatalogEntry{Name: strings.TrimSpace(r.Name), Category: c, Price: r.Price}, nil
}
