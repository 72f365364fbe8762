package usecase

import (
	"context"
	"time"

	"workshop_xpto/internal/auth"
	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// IWorkOrderUseCase exposes the work order lifecycle.
//
//   - Create issues the next service id and persists the draft as Pending
//   - Update applies a partial patch; untouched fields keep their values
//   - Delete is restricted to admin principals
type IWorkOrderUseCase interface {
	Create(ctx context.Context, draft entities.WorkOrder) (entities.WorkOrder, error)
	GetByServiceID(ctx context.Context, serviceID int64) (entities.WorkOrder, error)
	List(ctx context.Context) ([]entities.WorkOrder, error)
	Update(ctx context.Context, serviceID int64, patch entities.WorkOrderPatch) (entities.WorkOrder, error)
	Delete(ctx context.Context, serviceID int64) error
}

type WorkOrderUseCase struct {
	repo    interfaces.IWorkOrderRepository
	issuer  interfaces.ISequenceIssuer
	catalog interfaces.ICatalogRepository
	log     *logger.Logger
	now     func() time.Time
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository, issuer interfaces.ISequenceIssuer, catalog interfaces.ICatalogRepository, log *logger.Logger) *WorkOrderUseCase {
	if log == nil {
		log = logger.L
	}
	return &WorkOrderUseCase{repo: repo, issuer: issuer, catalog: catalog, log: log, now: func() time.Time { return time.Now().UTC() }}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, draft entities.WorkOrder) (entities.WorkOrder, error) {
	draft.Items = lo.Map(draft.Items, func(it entities.LineItemSelection, _ int) entities.LineItemSelection {
		return entities.NormalizeSelection(it)
	})
	if err := draft.ValidateDraft(); err != nil {
		return entities.WorkOrder{}, err
	}

	items, err := u.attachCatalog(ctx, draft.Items)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	serviceID, err := u.issuer.NextID(ctx, entities.CounterServiceID)
	if err != nil {
		u.log.Errorf("[work-order][usecase] next id failed err=%v", err)
		return entities.WorkOrder{}, err
	}

	w := entities.WorkOrder{
		ID:        uuid.NewString(),
		ServiceID: serviceID,
		Vehicle:   draft.Vehicle,
		Customer:  draft.Customer,
		Items:     items,
		Notes:     draft.Notes,
		Status:    entities.StatusPending,
		CreatedAt: u.now(),
		Billing:   entities.NewBillingRecord(),
	}

	created, err := u.repo.Create(ctx, w)
	if err != nil {
		// The issued id is burned; sequence gaps are expected.
		u.log.Errorf("[work-order][usecase] create failed service_id=%d err=%v", serviceID, err)
		return entities.WorkOrder{}, err
	}
	u.log.Infof("[work-order][usecase] created service_id=%d items=%d", created.ServiceID, len(created.Items))
	return created, nil
}

func (u *WorkOrderUseCase) GetByServiceID(ctx context.Context, serviceID int64) (entities.WorkOrder, error) {
	if serviceID <= 0 {
		return entities.WorkOrder{}, errs.Validation("invalid service id %d", serviceID)
	}
	w, err := u.repo.GetByServiceID(ctx, serviceID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !w.Exists() {
		return entities.WorkOrder{}, errs.NotFound("work order %d not found", serviceID)
	}
	return w, nil
}

func (u *WorkOrderUseCase) List(ctx context.Context) ([]entities.WorkOrder, error) {
	return u.repo.ListAll(ctx)
}

func (u *WorkOrderUseCase) Update(ctx context.Context, serviceID int64, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	if serviceID <= 0 {
		return entities.WorkOrder{}, errs.Validation("invalid service id %d", serviceID)
	}
	if patch.Status != nil {
		s, ok := entities.ParseWorkOrderStatus(string(*patch.Status))
		if !ok {
			return entities.WorkOrder{}, errs.Validation("invalid status %q", *patch.Status)
		}
		patch.Status = &s
	}
	if patch.Billing != nil {
		return entities.WorkOrder{}, errs.Validation("billing is updated through the billing endpoint")
	}
	if patch.Items != nil {
		items := lo.Map(*patch.Items, func(it entities.LineItemSelection, _ int) entities.LineItemSelection {
			return entities.NormalizeSelection(it)
		})
		patch.Items = &items
	}
	if patch.IsEmpty() {
		return entities.WorkOrder{}, errs.Validation("nothing to update")
	}
	if err := patch.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	if patch.Items != nil {
		items, err := u.attachCatalog(ctx, *patch.Items)
		if err != nil {
			return entities.WorkOrder{}, err
		}
		patch.Items = &items
	}
	updated, err := u.repo.UpdatePartial(ctx, serviceID, patch)
	if err != nil {
		u.log.Errorf("[work-order][usecase] update failed service_id=%d err=%v", serviceID, err)
		return entities.WorkOrder{}, err
	}
	if !updated.Exists() {
		return entities.WorkOrder{}, errs.NotFound("work order %d not found", serviceID)
	}
	u.log.Infof("[work-order][usecase] updated service_id=%d status=%s", serviceID, updated.Status)
	return updated, nil
}

func (u *WorkOrderUseCase) Delete(ctx context.Context, serviceID int64) error {
	if !auth.FromContext(ctx).IsAdmin() {
		return errs.PermissionDenied("deleting work orders requires admin access")
	}
	if serviceID <= 0 {
		return errs.Validation("invalid service id %d", serviceID)
	}
	deleted, err := u.repo.Delete(ctx, serviceID)
	if err != nil {
		u.log.Errorf("[work-order][usecase] delete failed service_id=%d err=%v", serviceID, err)
		return err
	}
	if !deleted {
		return errs.NotFound("work order %d not found", serviceID)
	}
	u.log.Infof("[work-order][usecase] deleted service_id=%d", serviceID)
	return nil
}

// attachCatalog records the catalog id, category and current price of every
// selection whose name is in the catalog. Unknown names are kept as given and
// price to zero on the invoice.
func (u *WorkOrderUseCase) attachCatalog(ctx context.Context, items []entities.LineItemSelection) ([]entities.LineItemSelection, error) {
	out := make([]entities.LineItemSelection, 0, len(items))
	for _, it := range items {
		entry, err := u.catalog.FindByName(ctx, it.Name)
		if err != nil {
			return nil, err
		}
		if entry.Exists() {
			it.CatalogID = entry.ID
			it.Category = entry.Category
			it.UnitPrice = entry.Price
		} else {
			u.log.Warnf("[work-order][usecase] selection not in catalog name=%q", it.Name)
		}
		out = append(out, it)
	}
	return out, nil
}
