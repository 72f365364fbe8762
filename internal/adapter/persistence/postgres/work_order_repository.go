package postgres

import (
	"context"
	"encoding/json"
	"time"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const workOrderColumns = `
	service_id, id::text, vehicle_name, vehicle_plate, customer_name, customer_contact,
	items, notes, status, created_at,
	parts_cost::text, labor_cost::text, discount::text, extra_service_cost::text,
	extra_service_notes, payment_status, billed_at
`

// WorkOrderRepository persists work orders in the work_orders table. Items
// are kept as a JSONB array; billing fields are plain columns.
type WorkOrderRepository struct {
	db DB
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderRepository)(nil)

func NewWorkOrderRepository(db DB) *WorkOrderRepository {
	return &WorkOrderRepository{db: db}
}

func (r *WorkOrderRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	items, err := json.Marshal(itemsOrEmpty(w.Items))
	if err != nil {
		return entities.WorkOrder{}, err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO work_orders (
			service_id, id, vehicle_name, vehicle_plate, customer_name, customer_contact,
			items, notes, status, created_at,
			parts_cost, labor_cost, discount, extra_service_cost,
			extra_service_notes, payment_status, billed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7::jsonb, $8, $9, $10,
			$11::numeric, $12::numeric, $13::numeric, $14::numeric, $15, $16, $17)
	`,
		w.ServiceID, w.ID, w.Vehicle.Name, w.Vehicle.Plate, w.Customer.Name, w.Customer.Contact,
		string(items), w.Notes, string(w.Status), w.CreatedAt,
		w.Billing.PartsCost.String(), w.Billing.LaborCost.String(), w.Billing.Discount.String(), w.Billing.ExtraServiceCost.String(),
		w.Billing.ExtraServiceNotes, string(w.Billing.PaymentStatus), w.Billing.BilledAt,
	)
	if err != nil {
		return entities.WorkOrder{}, storeErr(err, "insert work order")
	}
	return w, nil
}

func (r *WorkOrderRepository) GetByServiceID(ctx context.Context, serviceID int64) (entities.WorkOrder, error) {
	row := r.db.QueryRow(ctx, `SELECT `+workOrderColumns+` FROM work_orders WHERE service_id = $1`, serviceID)
	w, err := scanWorkOrder(row)
	if err != nil {
		if isNoRows(err) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, storeErr(err, "get work order")
	}
	return w, nil
}

// UpdatePartial writes only the fields set in patch. billed_at keeps its
// first value once set.
func (r *WorkOrderRepository) UpdatePartial(ctx context.Context, serviceID int64, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	var items *string
	if patch.Items != nil {
		b, err := json.Marshal(itemsOrEmpty(*patch.Items))
		if err != nil {
			return entities.WorkOrder{}, err
		}
		s := string(b)
		items = &s
	}
	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}
	bp := entities.BillingPatch{}
	if patch.Billing != nil {
		bp = *patch.Billing
	}
	var payment *string
	if bp.PaymentStatus != nil {
		s := string(*bp.PaymentStatus)
		payment = &s
	}
	var billedAt *time.Time
	if bp.BilledAt != nil {
		t := bp.BilledAt.UTC()
		billedAt = &t
	}

	row := r.db.QueryRow(ctx, `
		UPDATE work_orders SET
			status              = COALESCE($2, status),
			notes               = COALESCE($3, notes),
			vehicle_name        = COALESCE($4, vehicle_name),
			vehicle_plate       = COALESCE($5, vehicle_plate),
			customer_name       = COALESCE($6, customer_name),
			customer_contact    = COALESCE($7, customer_contact),
			items               = COALESCE($8::jsonb, items),
			parts_cost          = COALESCE($9::numeric, parts_cost),
			labor_cost          = COALESCE($10::numeric, labor_cost),
			discount            = COALESCE($11::numeric, discount),
			extra_service_cost  = COALESCE($12::numeric, extra_service_cost),
			extra_service_notes = COALESCE($13, extra_service_notes),
			payment_status      = COALESCE($14, payment_status),
			billed_at           = COALESCE(billed_at, $15)
		WHERE service_id = $1
		RETURNING `+workOrderColumns,
		serviceID, status, patch.Notes, patch.VehicleName, patch.VehiclePlate, patch.CustomerName, patch.CustomerContact,
		items, decimalArg(bp.PartsCost), decimalArg(bp.LaborCost), decimalArg(bp.Discount), decimalArg(bp.ExtraServiceCost),
		bp.ExtraServiceNotes, payment, billedAt,
	)
	w, err := scanWorkOrder(row)
	if err != nil {
		if isNoRows(err) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, storeErr(err, "update work order")
	}
	return w, nil
}

func (r *WorkOrderRepository) Delete(ctx context.Context, serviceID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM work_orders WHERE service_id = $1`, serviceID)
	if err != nil {
		return false, storeErr(err, "delete work order")
	}
	return tag.RowsAffected() > 0, nil
}

func (r *WorkOrderRepository) ListAll(ctx context.Context) ([]entities.WorkOrder, error) {
	rows, err := r.db.Query(ctx, `SELECT `+workOrderColumns+` FROM work_orders ORDER BY created_at DESC, service_id DESC`)
	if err != nil {
		return nil, storeErr(err, "list work orders")
	}
	defer rows.Close()

	var out []entities.WorkOrder
	for rows.Next() {
		w, err := scanWorkOrder(rows)
		if err != nil {
			return nil, storeErr(err, "scan work order")
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "list work orders")
	}
	return out, nil
}

func scanWorkOrder(row pgx.Row) (entities.WorkOrder, error) {
	var (
		w                             entities.WorkOrder
		items                         []byte
		status, payment               string
		parts, labor, discount, extra string
		billedAt                      *time.Time
	)
	err := row.Scan(
		&w.ServiceID, &w.ID, &w.Vehicle.Name, &w.Vehicle.Plate, &w.Customer.Name, &w.Customer.Contact,
		&items, &w.Notes, &status, &w.CreatedAt,
		&parts, &labor, &discount, &extra,
		&w.Billing.ExtraServiceNotes, &payment, &billedAt,
	)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &w.Items); err != nil {
			return entities.WorkOrder{}, err
		}
	}
	w.Status = entities.WorkOrderStatus(status)
	if s, ok := entities.ParseWorkOrderStatus(status); ok {
		w.Status = s
	}
	w.Billing.PaymentStatus = entities.PaymentStatusUnpaid
	if p, ok := entities.ParsePaymentStatus(payment); ok {
		w.Billing.PaymentStatus = p
	}
	w.Billing.PartsCost = parseDecimal(parts)
	w.Billing.LaborCost = parseDecimal(labor)
	w.Billing.Discount = parseDecimal(discount)
	w.Billing.ExtraServiceCost = parseDecimal(extra)
	if billedAt != nil {
		t := billedAt.UTC()
		w.Billing.BilledAt = &t
	}
	w.CreatedAt = w.CreatedAt.UTC()
	return w, nil
}

func itemsOrEmpty(items []entities.LineItemSelection) []entities.LineItemSelection {
	if items == nil {
		return []entities.LineItemSelection{}
	}
	return items
}
