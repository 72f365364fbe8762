package usecase

import (
	"context"
	"time"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"
	"workshop_xpto/internal/domain/invoice"
	"workshop_xpto/internal/logger"
	"workshop_xpto/internal/usecase/interfaces"
)

// Invoice is a computed breakdown together with the work order it bills.
//
// Prefilled is true while the work order has not been billed: LaborCost in
// the breakdown then comes from the live catalog rather than the store.
type Invoice struct {
	WorkOrder entities.WorkOrder
	Breakdown invoice.Breakdown
	Currency  string
	Prefilled bool
}

// IInvoiceUseCase turns stored work orders into invoices and records the
// operator's billing adjustments.
type IInvoiceUseCase interface {
	GetInvoice(ctx context.Context, serviceID int64) (Invoice, error)
	Prefill(ctx context.Context, serviceID int64) (entities.BillingRecord, error)
	UpdateBilling(ctx context.Context, serviceID int64, patch entities.BillingPatch) (entities.WorkOrder, error)
}

type InvoiceUseCase struct {
	workOrders interfaces.IWorkOrderRepository
	catalog    interfaces.ICatalogRepository
	currency   string
	log        *logger.Logger
	now        func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(workOrders interfaces.IWorkOrderRepository, catalog interfaces.ICatalogRepository, currency string, log *logger.Logger) *InvoiceUseCase {
	if log == nil {
		log = logger.L
	}
	return &InvoiceUseCase{
		workOrders: workOrders,
		catalog:    catalog,
		currency:   currency,
		log:        log,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *InvoiceUseCase) GetInvoice(ctx context.Context, serviceID int64) (Invoice, error) {
	w, idx, err := u.load(ctx, serviceID)
	if err != nil {
		return Invoice{}, err
	}
	billing := invoice.PrefillBilling(w.Items, idx, w.Billing)
	breakdown := invoice.ComputeInvoice(w.Items, idx, billing)
	u.log.Debugf("[invoice][usecase] computed service_id=%d total=%s", serviceID, invoice.Format(breakdown.Total))
	return Invoice{
		WorkOrder: w,
		Breakdown: breakdown,
		Currency:  u.currency,
		Prefilled: !w.Billing.Billed(),
	}, nil
}

// Prefill returns the billing record the billing form should start from.
func (u *InvoiceUseCase) Prefill(ctx context.Context, serviceID int64) (entities.BillingRecord, error) {
	w, idx, err := u.load(ctx, serviceID)
	if err != nil {
		return entities.BillingRecord{}, err
	}
	return invoice.PrefillBilling(w.Items, idx, w.Billing), nil
}

// UpdateBilling applies a partial billing update. The first save stamps
// BilledAt and, when the caller leaves labor out, persists the pre-filled
// labor cost so the invoice does not change once billing is recorded.
func (u *InvoiceUseCase) UpdateBilling(ctx context.Context, serviceID int64, patch entities.BillingPatch) (entities.WorkOrder, error) {
	if patch.PaymentStatus != nil {
		s, ok := entities.ParsePaymentStatus(string(*patch.PaymentStatus))
		if !ok {
			return entities.WorkOrder{}, errs.Validation("invalid payment status %q", *patch.PaymentStatus)
		}
		patch.PaymentStatus = &s
	}
	patch.BilledAt = nil
	if patch.IsEmpty() {
		return entities.WorkOrder{}, errs.Validation("nothing to update")
	}
	if err := patch.Validate(); err != nil {
		return entities.WorkOrder{}, err
	}
	return u.applyBilling(ctx, serviceID, patch)
}

func (u *InvoiceUseCase) applyBilling(ctx context.Context, serviceID int64, patch entities.BillingPatch) (entities.WorkOrder, error) {
	w, idx, err := u.load(ctx, serviceID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if !w.Billing.Billed() {
		now := u.now()
		patch.BilledAt = &now
		if patch.LaborCost == nil {
			labor := invoice.PrefillBilling(w.Items, idx, w.Billing).LaborCost
			patch.LaborCost = &labor
		}
	}

	updated, err := u.workOrders.UpdatePartial(ctx, serviceID, entities.WorkOrderPatch{Billing: &patch})
	if err != nil {
		u.log.Errorf("[invoice][usecase] billing update failed service_id=%d err=%v", serviceID, err)
		return entities.WorkOrder{}, err
	}
	if !updated.Exists() {
		return entities.WorkOrder{}, errs.NotFound("work order %d not found", serviceID)
	}
	u.log.Infof("[invoice][usecase] billing saved service_id=%d total=%s payment_status=%s",
		serviceID, invoice.Format(updated.Billing.Total()), updated.Billing.PaymentStatus)
	return updated, nil
}

func (u *InvoiceUseCase) load(ctx context.Context, serviceID int64) (entities.WorkOrder, invoice.CatalogIndex, error) {
	if serviceID <= 0 {
		return entities.WorkOrder{}, nil, errs.Validation("invalid service id %d", serviceID)
	}
	w, err := u.workOrders.GetByServiceID(ctx, serviceID)
	if err != nil {
		return entities.WorkOrder{}, nil, err
	}
	if !w.Exists() {
		return entities.WorkOrder{}, nil, errs.NotFound("work order %d not found", serviceID)
	}
	entries, err := u.catalog.List(ctx)
	if err != nil {
		return entities.WorkOrder{}, nil, err
	}
	return w, invoice.NewCatalogIndex(entries), nil
}
