package response

import (
	"workshop_xpto/internal/domain/invoice"
	"workshop_xpto/internal/usecase"

	"github.com/samber/lo"
)

type InvoiceRowResponse struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
}

type InvoiceLineResponse struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  string `json:"quantity"`
	UnitPrice string `json:"unit_price"`
	Amount    string `json:"amount"`
	InCatalog bool   `json:"in_catalog"`
}

// InvoiceResponse is the rendered invoice. Amounts are strings rounded to two
// decimal places.
type InvoiceResponse struct {
	ServiceID     int64                 `json:"service_id"`
	VehicleName   string                `json:"vehicle_name"`
	OwnerName     string                `json:"owner_name"`
	Currency      string                `json:"currency"`
	Rows          []InvoiceRowResponse  `json:"rows"`
	Lines         []InvoiceLineResponse `json:"lines"`
	PartsCost     string                `json:"parts_cost"`
	LaborCost     string                `json:"labor_cost"`
	ExtraCost     string                `json:"extra_service_cost"`
	Subtotal      string                `json:"subtotal"`
	Discount      string                `json:"discount"`
	Total         string                `json:"total"`
	PaymentStatus string                `json:"payment_status"`
	Prefilled     bool                  `json:"prefilled"`
}

func FromInvoice(inv usecase.Invoice) InvoiceResponse {
	b := inv.Breakdown
	return InvoiceResponse{
		ServiceID:   inv.WorkOrder.ServiceID,
		VehicleName: inv.WorkOrder.Vehicle.Name,
		OwnerName:   inv.WorkOrder.Customer.Name,
		Currency:    inv.Currency,
		Rows: lo.Map(b.Rows, func(r invoice.Row, _ int) InvoiceRowResponse {
			return InvoiceRowResponse{Kind: string(r.Kind), Description: r.Description, Amount: r.Display()}
		}),
		Lines: lo.Map(b.Lines, func(l invoice.PricedLine, _ int) InvoiceLineResponse {
			return InvoiceLineResponse{
				Name:      l.Selection.Name,
				Category:  string(l.Category),
				Quantity:  l.Selection.Quantity.String(),
				UnitPrice: invoice.Format(l.UnitPrice),
				Amount:    invoice.Format(l.Amount),
				InCatalog: l.Resolved,
			}
		}),
		PartsCost:     invoice.Format(b.PartsCost),
		LaborCost:     invoice.Format(b.LaborCost),
		ExtraCost:     invoice.Format(b.ExtraCost),
		Subtotal:      invoice.Format(b.Subtotal),
		Discount:      invoice.Format(b.Discount),
		Total:         invoice.Format(b.Total),
		PaymentStatus: string(b.PaymentStatus),
		Prefilled:     inv.Prefilled,
	}
}
