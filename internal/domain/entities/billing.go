package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
	PaymentStatusPaid   PaymentStatus = "Paid"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unpaid":
		return PaymentStatusUnpaid, true
	case "paid":
		return PaymentStatusPaid, true
	}
	return "", false
}

// BillingRecord holds the manual billing adjustments of a work order.
//
// BilledAt is set by the first billing save. While it is nil the work order
// counts as not yet billed and LaborCost is pre-filled from the selections.
type BillingRecord struct {
	PartsCost         decimal.Decimal
	LaborCost         decimal.Decimal
	Discount          decimal.Decimal
	ExtraServiceCost  decimal.Decimal
	ExtraServiceNotes string
	PaymentStatus     PaymentStatus
	BilledAt          *time.Time
}

// NewBillingRecord returns the all-zero, unpaid record of a new work order.
func NewBillingRecord() BillingRecord {
	return BillingRecord{
		PartsCost:        decimal.Zero,
		LaborCost:        decimal.Zero,
		Discount:         decimal.Zero,
		ExtraServiceCost: decimal.Zero,
		PaymentStatus:    PaymentStatusUnpaid,
	}
}

func (b BillingRecord) Billed() bool {
	return b.BilledAt != nil
}

// Subtotal is parts + labor + extra services.
func (b BillingRecord) Subtotal() decimal.Decimal {
	return b.PartsCost.Add(b.LaborCost).Add(b.ExtraServiceCost)
}

// Total is Subtotal - Discount. It is allowed to go negative.
func (b BillingRecord) Total() decimal.Decimal {
	return b.Subtotal().Sub(b.Discount)
}
