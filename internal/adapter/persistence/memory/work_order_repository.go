package memory

import (
	"context"
	"sort"
	"sync"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/usecase/interfaces"
)

type WorkOrderRepository struct {
	mu     sync.RWMutex
	orders map[int64]entities.WorkOrder
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderRepository)(nil)

func NewWorkOrderRepository() *WorkOrderRepository {
	return &WorkOrderRepository{orders: map[int64]entities.WorkOrder{}}
}

func (r *WorkOrderRepository) Create(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w.Items = cloneItems(w.Items)
	r.orders[w.ServiceID] = w
	return cloneWorkOrder(w), nil
}

func (r *WorkOrderRepository) GetByServiceID(_ context.Context, serviceID int64) (entities.WorkOrder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.orders[serviceID]
	if !ok {
		return entities.WorkOrder{}, nil
	}
	return cloneWorkOrder(w), nil
}

func (r *WorkOrderRepository) UpdatePartial(_ context.Context, serviceID int64, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.orders[serviceID]
	if !ok {
		return entities.WorkOrder{}, nil
	}
	w = patch.Apply(w)
	r.orders[serviceID] = w
	return cloneWorkOrder(w), nil
}

func (r *WorkOrderRepository) Delete(_ context.Context, serviceID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[serviceID]; !ok {
		return false, nil
	}
	delete(r.orders, serviceID)
	return true, nil
}

func (r *WorkOrderRepository) ListAll(_ context.Context) ([]entities.WorkOrder, error) {
	r.mu.RLock()
	out := make([]entities.WorkOrder, 0, len(r.orders))
	for _, w := range r.orders {
		out = append(out, cloneWorkOrder(w))
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ServiceID > out[j].ServiceID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func cloneWorkOrder(w entities.WorkOrder) entities.WorkOrder {
	w.Items = cloneItems(w.Items)
	if w.Billing.BilledAt != nil {
		t := *w.Billing.BilledAt
		w.Billing.BilledAt = &t
	}
	return w
}

func cloneItems(items []entities.LineItemSelection) []entities.LineItemSelection {
	if items == nil {
		return nil
	}
	return append([]entities.LineItemSelection(nil), items...)
}
