package entities

import (
	"strings"
	"time"

	"workshop_xpto/internal/domain/errs"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CounterServiceID is the sequence counter that numbers work orders.
const CounterServiceID = "serviceId"

// WorkOrderStatus is the operator-driven lifecycle of a work order.
//
// Any status may be assigned from any other status; there is no enforced
// ordering and no terminal state.
type WorkOrderStatus string

const (
	StatusPending    WorkOrderStatus = "Pending"
	StatusInProgress WorkOrderStatus = "InProgress"
	StatusReady      WorkOrderStatus = "Ready"
	StatusCompleted  WorkOrderStatus = "Completed"
)

// ParseWorkOrderStatus accepts the canonical names, case-insensitively, plus
// the legacy "In Progress" spelling.
func ParseWorkOrderStatus(s string) (WorkOrderStatus, bool) {
	switch strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "")) {
	case "pending":
		return StatusPending, true
	case "inprogress":
		return StatusInProgress, true
	case "ready":
		return StatusReady, true
	case "completed":
		return StatusCompleted, true
	}
	return "", false
}

type Vehicle struct {
	Name  string `json:"name"`
	Plate string `json:"plate,omitempty"`
}

type Customer struct {
	Name    string `json:"name"`
	Contact string `json:"contact,omitempty"`
}

// LineItemSelection is a catalog item chosen for a work order.
//
// Name is the lookup key into the catalog; CatalogID is recorded for
// traceability only, so renaming a catalog entry breaks the link.
// UnitPrice is the price at selection time and is not used for invoicing.
type LineItemSelection struct {
	CatalogID string          `json:"catalog_id,omitempty"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// WorkOrder is a vehicle-service job.
//
// Storage model:
//   - ServiceID: sequential integer issued once at creation, the public key
//   - ID: storage-internal uuid, never exposed as an identifier for lookups
type WorkOrder struct {
	ID        string
	ServiceID int64
	Vehicle   Vehicle
	Customer  Customer
	Items     []LineItemSelection
	Notes     string
	Status    WorkOrderStatus
	CreatedAt time.Time
	Billing   BillingRecord
}

// Exists reports whether w was loaded from the store. Repositories return the
// zero value for absent work orders.
func (w WorkOrder) Exists() bool {
	return w.ID != ""
}

// ValidateDraft checks the fields a client must supply on creation.
func (w WorkOrder) ValidateDraft() error {
	if strings.TrimSpace(w.Vehicle.Name) == "" {
		return errs.Validation("vehicle name is required")
	}
	if strings.TrimSpace(w.Customer.Name) == "" {
		return errs.Validation("owner name is required")
	}
	return ValidateSelections(w.Items)
}

// ValidateSelections enforces a non-empty selection set with unique names and
// positive quantities.
func ValidateSelections(items []LineItemSelection) error {
	if len(items) == 0 {
		return errs.Validation("at least one line item is required")
	}
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return errs.Validation("line item name is required")
		}
		if it.Quantity.IsNegative() {
			return errs.Validation("line item %q has a negative quantity", it.Name)
		}
		if it.UnitPrice.IsNegative() {
			return errs.Validation("line item %q has a negative unit price", it.Name)
		}
	}
	dups := lo.FindDuplicatesBy(items, func(it LineItemSelection) string {
		return strings.TrimSpace(it.Name)
	})
	if len(dups) > 0 {
		return errs.Validation("line item %q selected more than once", dups[0].Name)
	}
	return nil
}

// NormalizeSelection trims the name and applies the default quantity of 1.
func NormalizeSelection(it LineItemSelection) LineItemSelection {
	it.Name = strings.TrimSpace(it.Name)
	if it.Quantity.IsZero() {
		it.Quantity = decimal.NewFromInt(1)
	}
	if it.Category == "" {
		it.Category = CategoryService
	}
	return it
}
