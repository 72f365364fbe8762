package interfaces

import (
	"context"

	"workshop_xpto/internal/domain/entities"
)

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/mock_catalog_repository.go -package=mock_interfaces

// ICatalogRepository abstracts persistence of CatalogEntry.
//
// Create reports a name collision as errs.ErrDuplicateCatalogName. Lookups
// return the zero entry when nothing matches.
type ICatalogRepository interface {
	List(ctx context.Context) ([]entities.CatalogEntry, error)
	FindByName(ctx context.Context, name string) (entities.CatalogEntry, error)
	GetByID(ctx context.Context, id string) (entities.CatalogEntry, error)
	Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
	Delete(ctx context.Context, id string) (bool, error)
}
