package request

import (
	"strings"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"

	"github.com/shopspring/decimal"
)

// LineItemRequest selects a catalog item by name. Category is only used when
// the name is not in the catalog; "Lubricant" is accepted for consumables.
type LineItemRequest struct {
	CatalogID string           `json:"catalog_id"`
	Name      string           `json:"name" binding:"required"`
	Category  string           `json:"category"`
	Quantity  *decimal.Decimal `json:"quantity"`
}

type WorkOrderCreateRequest struct {
	VehicleName  string            `json:"vehicle_name" binding:"required"`
	VehiclePlate string            `json:"vehicle_plate"`
	OwnerName    string            `json:"owner_name" binding:"required"`
	OwnerContact string            `json:"owner_contact"`
	Items        []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Notes        string            `json:"notes"`
}

func (r WorkOrderCreateRequest) ToEntity() (entities.WorkOrder, error) {
	items, err := toSelections(r.Items)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	return entities.WorkOrder{
		Vehicle:  entities.Vehicle{Name: strings.TrimSpace(r.VehicleName), Plate: strings.TrimSpace(r.VehiclePlate)},
		Customer: entities.Customer{Name: strings.TrimSpace(r.OwnerName), Contact: strings.TrimSpace(r.OwnerContact)},
		Items:    items,
		Notes:    r.Notes,
	}, nil
}

// WorkOrderPatchRequest is a partial update: absent fields are left as stored.
type WorkOrderPatchRequest struct {
	Status       *string            `json:"status"`
	Notes        *string            `json:"notes"`
	VehicleName  *string            `json:"vehicle_name"`
	VehiclePlate *string            `json:"vehicle_plate"`
	OwnerName    *string            `json:"owner_name"`
	OwnerContact *string            `json:"owner_contact"`
	Items        *[]LineItemRequest `json:"items"`
}

func (r WorkOrderPatchRequest) ToPatch() (entities.WorkOrderPatch, error) {
	p := entities.WorkOrderPatch{
		Notes:           r.Notes,
		VehicleName:     r.VehicleName,
		VehiclePlate:    r.VehiclePlate,
		CustomerName:    r.OwnerName,
		CustomerContact: r.OwnerContact,
	}
	if r.Status != nil {
		s, ok := entities.ParseWorkOrderStatus(*r.Status)
		if !ok {
			return entities.WorkOrderPatch{}, errs.Validation("invalid status %q", *r.Status)
		}
		p.Status = &s
	}
	if r.Items != nil {
		items, err := toSelections(*r.Items)
		if err != nil {
			return entities.WorkOrderPatch{}, err
		}
		p.Items = &items
	}
	return p, nil
}

func toSelections(in []LineItemRequest) ([]entities.LineItemSelection, error) {
	out := make([]entities.LineItemSelection, 0, len(in))
	for _, it := range in {
		sel := entities.LineItemSelection{
			CatalogID: strings.TrimSpace(it.CatalogID),
			Name:      strings.TrimSpace(it.Name),
		}
		if it.Category != "" {
			c, ok := entities.ParseCategory(it.Category)
			if !ok {
				return nil, errs.Validation("invalid category %q", it.Category)
			}
			sel.Category = c
		}
		if it.Quantity != nil {
			sel.Quantity = *it.Quantity
		}
		out = append(out, sel)
	}
	return out, nil
}
