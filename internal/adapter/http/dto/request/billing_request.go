package request

import (
	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"

	"github.com/shopspring/decimal"
)

// BillingPatchRequest carries the operator's billing adjustments. Amounts may
// be JSON numbers or strings.
type BillingPatchRequest struct {
	PartsCost         *decimal.Decimal `json:"parts_cost"`
	LaborCost         *decimal.Decimal `json:"labor_cost"`
	Discount          *decimal.Decimal `json:"discount"`
	ExtraServiceCost  *decimal.Decimal `json:"extra_service_cost"`
	ExtraServiceNotes *string          `json:"extra_service_notes"`
	PaymentStatus     *string          `json:"payment_status"`
}

func (r BillingPatchRequest) ToPatch() (entities.BillingPatch, error) {
	p := entities.BillingPatch{
		PartsCost:         r.PartsCost,
		LaborCost:         r.LaborCost,
		Discount:          r.Discount,
		ExtraServiceCost:  r.ExtraServiceCost,
		ExtraServiceNotes: r.ExtraServiceNotes,
	}
	if r.PaymentStatus != nil {
		s, ok := entities.ParsePaymentStatus(*r.PaymentStatus)
		if !ok {
			return entities.BillingPatch{}, errs.Validation("invalid payment status %q", *r.PaymentStatus)
		}
		p.PaymentStatus = &s
	}
	return p, nil
}
