package memory

import (
	"context"
	"sync"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/samber/lo"
)

type CatalogRepository struct {
	mu      sync.RWMutex
	entries map[string]entities.CatalogEntry
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(seed ...entities.CatalogEntry) *CatalogRepository {
	r := &CatalogRepository{entries: map[string]entities.CatalogEntry{}}
	for _, e := range seed {
		r.entries[e.ID] = e
	}
	return r
}

func (r *CatalogRepository) List(_ context.Context) ([]entities.CatalogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Values(r.entries), nil
}

func (r *CatalogRepository) FindByName(_ context.Context, name string) (entities.CatalogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, _ := r.findByName(name)
	return e, nil
}

func (r *CatalogRepository) GetByID(_ context.Context, id string) (entities.CatalogEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[id], nil
}

func (r *CatalogRepository) Create(_ context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.findByName(e.Name); ok {
		return entities.CatalogEntry{}, errs.DuplicateCatalogName(e.Name)
	}
	r.entries[e.ID] = e
	return e, nil
}

func (r *CatalogRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[id]; !ok {
		return false, nil
	}
	delete(r.entries, id)
	return true, nil
}

func (r *CatalogRepository) findByName(name string) (entities.CatalogEntry, bool) {
	return lo.Find(lo.Values(r.entries), func(e entities.CatalogEntry) bool { return e.Name == name })
}
