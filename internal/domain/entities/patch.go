package entities

import (
	"strings"
	"time"

	"workshop_xpto/internal/domain/errs"

	"github.com/shopspring/decimal"
)

// BillingPatch is a partial billing update. Nil fields are left untouched.
//
// BilledAt only takes effect when the stored record has not been billed yet,
// so the first-save timestamp is never overwritten.
type BillingPatch struct {
	PartsCost         *decimal.Decimal
	LaborCost         *decimal.Decimal
	Discount          *decimal.Decimal
	ExtraServiceCost  *decimal.Decimal
	ExtraServiceNotes *string
	PaymentStatus     *PaymentStatus
	BilledAt          *time.Time
}

func (p BillingPatch) IsEmpty() bool {
	return p.PartsCost == nil && p.LaborCost == nil && p.Discount == nil &&
		p.ExtraServiceCost == nil && p.ExtraServiceNotes == nil &&
		p.PaymentStatus == nil && p.BilledAt == nil
}

func (p BillingPatch) Validate() error {
	for name, v := range map[string]*decimal.Decimal{
		"partsCost":        p.PartsCost,
		"laborCost":        p.LaborCost,
		"discount":         p.Discount,
		"extraServiceCost": p.ExtraServiceCost,
	} {
		if v != nil && v.IsNegative() {
			return errs.Validation("%s must not be negative", name)
		}
	}
	if p.PaymentStatus != nil {
		if _, ok := ParsePaymentStatus(string(*p.PaymentStatus)); !ok {
			return errs.Validation("invalid payment status %q", *p.PaymentStatus)
		}
	}
	return nil
}

// Apply merges p into b.
func (p BillingPatch) Apply(b BillingRecord) BillingRecord {
	if p.PartsCost != nil {
		b.PartsCost = *p.PartsCost
	}
	if p.LaborCost != nil {
		b.LaborCost = *p.LaborCost
	}
	if p.Discount != nil {
		b.Discount = *p.Discount
	}
	if p.ExtraServiceCost != nil {
		b.ExtraServiceCost = *p.ExtraServiceCost
	}
	if p.ExtraServiceNotes != nil {
		b.ExtraServiceNotes = *p.ExtraServiceNotes
	}
	if p.PaymentStatus != nil {
		b.PaymentStatus = *p.PaymentStatus
	}
	if p.BilledAt != nil && b.BilledAt == nil {
		t := *p.BilledAt
		b.BilledAt = &t
	}
	return b
}

// WorkOrderPatch is a partial work order update with field-mask semantics:
// every field is optional and nil means "keep the stored value".
type WorkOrderPatch struct {
	Status          *WorkOrderStatus
	Notes           *string
	VehicleName     *string
	VehiclePlate    *string
	CustomerName    *string
	CustomerContact *string
	Items           *[]LineItemSelection
	Billing         *BillingPatch
}

func (p WorkOrderPatch) IsEmpty() bool {
	return p.Status == nil && p.Notes == nil && p.VehicleName == nil &&
		p.VehiclePlate == nil && p.CustomerName == nil && p.CustomerContact == nil &&
		p.Items == nil && (p.Billing == nil || p.Billing.IsEmpty())
}

func (p WorkOrderPatch) Validate() error {
	if p.Status != nil {
		if _, ok := ParseWorkOrderStatus(string(*p.Status)); !ok {
			return errs.Validation("invalid status %q", *p.Status)
		}
	}
	if p.VehicleName != nil && strings.TrimSpace(*p.VehicleName) == "" {
		return errs.Validation("vehicle name must not be empty")
	}
	if p.CustomerName != nil && strings.TrimSpace(*p.CustomerName) == "" {
		return errs.Validation("owner name must not be empty")
	}
	if p.Items != nil {
		if err := ValidateSelections(*p.Items); err != nil {
			return err
		}
	}
	if p.Billing != nil {
		return p.Billing.Validate()
	}
	return nil
}

// Apply merges p into w and returns the result. Stores that cannot express the
// merge natively (the in-memory store) use this directly.
func (p WorkOrderPatch) Apply(w WorkOrder) WorkOrder {
	if p.Status != nil {
		w.Status = *p.Status
	}
	if p.Notes != nil {
		w.Notes = *p.Notes
	}
	if p.VehicleName != nil {
		w.Vehicle.Name = *p.VehicleName
	}
	if p.VehiclePlate != nil {
		w.Vehicle.Plate = *p.VehiclePlate
	}
	if p.CustomerName != nil {
		w.Customer.Name = *p.CustomerName
	}
	if p.CustomerContact != nil {
		w.Customer.Contact = *p.CustomerContact
	}
	if p.Items != nil {
		w.Items = append([]LineItemSelection(nil), (*p.Items)...)
	}
	if p.Billing != nil {
		w.Billing = p.Billing.Apply(w.Billing)
	}
	return w
}
