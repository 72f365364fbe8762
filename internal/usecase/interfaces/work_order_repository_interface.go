package interfaces

import (
	"context"

	"workshop_xpto/internal/domain/entities"
)

//go:generate mockgen -source=work_order_repository_interface.go -destination=mocks/mock_work_order_repository.go -package=mock_interfaces

// IWorkOrderRepository abstracts persistence of WorkOrder.
//
// Lookups by service id return the zero WorkOrder (Exists() == false) and a
// nil error when nothing matches.
type IWorkOrderRepository interface {
	Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	GetByServiceID(ctx context.Context, serviceID int64) (entities.WorkOrder, error)
	UpdatePartial(ctx context.Context, serviceID int64, patch entities.WorkOrderPatch) (entities.WorkOrder, error)
	Delete(ctx context.Context, serviceID int64) (bool, error)
	// ListAll returns every work order, newest first.
	ListAll(ctx context.Context) ([]entities.WorkOrder, error)
}
