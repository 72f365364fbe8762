package response

import (
	"time"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/invoice"
)

type LineItemResponse struct {
	CatalogID string `json:"catalog_id,omitempty"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

type BillingResponse struct {
	PartsCost         string     `json:"parts_cost"`
	LaborCost         string     `json:"labor_cost"`
	Discount          string     `json:"discount"`
	ExtraServiceCost  string     `json:"extra_service_cost"`
	ExtraServiceNotes string     `json:"extra_service_notes,omitempty"`
	PaymentStatus     string     `json:"payment_status"`
	Total             string     `json:"total"`
	BilledAt          *time.Time `json:"billed_at,omitempty"`
}

type WorkOrderResponse struct {
	ServiceID    int64              `json:"service_id"`
	Status       string             `json:"status"`
	VehicleName  string             `json:"vehicle_name"`
	VehiclePlate string             `json:"vehicle_plate,omitempty"`
	OwnerName    string             `json:"owner_name"`
	OwnerContact string             `json:"owner_contact,omitempty"`
	Items        []LineItemResponse `json:"items"`
	Notes        string             `json:"notes,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	Billing      BillingResponse    `json:"billing"`
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	items := make([]LineItemResponse, 0, len(w.Items))
	for _, it := range w.Items {
		items = append(items, LineItemResponse{
			CatalogID: it.CatalogID,
			Name:      it.Name,
			Category:  string(it.Category),
			Quantity:  it.Quantity.String(),
			UnitPrice: invoice.Format(it.UnitPrice),
		})
	}
	return WorkOrderResponse{
		ServiceID:    w.ServiceID,
		Status:       string(w.Status),
		VehicleName:  w.Vehicle.Name,
		VehiclePlate: w.Vehicle.Plate,
		OwnerName:    w.Customer.Name,
		OwnerContact: w.Customer.Contact,
		Items:        items,
		Notes:        w.Notes,
		CreatedAt:    w.CreatedAt,
		Billing:      FromBilling(w.Billing),
	}
}

func FromWorkOrders(list []entities.WorkOrder) []WorkOrderResponse {
	out := make([]WorkOrderResponse, 0, len(list))
	for _, w := range list {
		out = append(out, FromWorkOrder(w))
	}
	return out
}

func FromBilling(b entities.BillingRecord) BillingResponse {
	return BillingResponse{
		PartsCost:         invoice.Format(b.PartsCost),
		LaborCost:         invoice.Format(b.LaborCost),
		Discount:          invoice.Format(b.Discount),
		ExtraServiceCost:  invoice.Format(b.ExtraServiceCost),
		ExtraServiceNotes: b.ExtraServiceNotes,
		PaymentStatus:     string(b.PaymentStatus),
		Total:             invoice.Format(b.Total()),
		BilledAt:          b.BilledAt,
	}
}
