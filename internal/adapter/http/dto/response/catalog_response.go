package response

import (
	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/invoice"

	"github.com/samber/lo"
)

type CatalogEntryResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
}

func FromCatalogEntry(e entities.CatalogEntry) CatalogEntryResponse {
	return CatalogEntryResponse{
		ID:       e.ID,
		Name:     e.Name,
		Category: string(e.Category),
		Price:    invoice.Format(e.Price),
	}
}

func FromCatalogEntries(entries []entities.CatalogEntry) []CatalogEntryResponse {
	return lo.Map(entries, func(e entities.CatalogEntry, _ int) CatalogEntryResponse {
		return FromCatalogEntry(e)
	})
}
