package usecase

import (
	"context"
	"sort"
	"strings"

	"workshop_xpto/internal/auth"
	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ICatalogUseCase manages the priced offerings a work order can select from.
type ICatalogUseCase interface {
	List(ctx context.Context) ([]entities.CatalogEntry, error)
	Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error)
	Delete(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
	log  *logger.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, log *logger.Logger) *CatalogUseCase {
	if log == nil {
		log = logger.L
	}
	return &CatalogUseCase{repo: repo, log: log}
}

// List returns the catalog ordered by name.
func (u *CatalogUseCase) List(ctx context.Context) ([]entities.CatalogEntry, error) {
	entries, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func (u *CatalogUseCase) Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	e.Name = strings.TrimSpace(e.Name)
	if c, ok := entities.ParseCategory(string(e.Category)); ok {
		e.Category = c
	}
	if err := e.Validate(); err != nil {
		return entities.CatalogEntry{}, err
	}

	existing, err := u.repo.FindByName(ctx, e.Name)
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	if existing.Exists() {
		return entities.CatalogEntry{}, errs.DuplicateCatalogName(e.Name)
	}

	e.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		u.log.Errorf("[catalog][usecase] create failed name=%q err=%v", e.Name, err)
		return entities.CatalogEntry{}, err
	}
	u.log.Infof("[catalog][usecase] created id=%s name=%q category=%s", created.ID, created.Name, created.Category)
	return created, nil
}

// Delete removes a catalog entry. Work orders that selected it keep the name
// and price to zero from then on.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	if !auth.FromContext(ctx).IsAdmin() {
		return errs.PermissionDenied("deleting catalog entries requires admin access")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.Validation("invalid catalog id")
	}
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		u.log.Errorf("[catalog][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if !deleted {
		return errs.NotFound("catalog entry %s not found", id)
	}
	u.log.Infof("[catalog][usecase] deleted id=%s", id)
	return nil
}
