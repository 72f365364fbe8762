package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"workshop_xpto/internal/adapter/http/handlers/mocks"
	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func storedWorkOrder(serviceID int64) entities.WorkOrder {
	return entities.WorkOrder{
		ID:        "uuid-1",
		ServiceID: serviceID,
		Vehicle:   entities.Vehicle{Name: "Corolla"},
		Customer:  entities.Customer{Name: "Nimal"},
		Items: []entities.LineItemSelection{
			{Name: "Engine Tune", Category: entities.CategoryService, Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1500)},
		},
		Status:    entities.StatusPending,
		CreatedAt: time.Now().UTC(),
		Billing:   entities.NewBillingRecord(),
	}
}

func newWorkOrderRouter(h *WorkOrderHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/work-orders", h.CreateWorkOrder)
	r.GET("/v1/work-orders", h.ListWorkOrders)
	r.GET("/v1/work-orders/:service_id", h.GetWorkOrder)
	r.PATCH("/v1/work-orders/:service_id", h.UpdateWorkOrder)
	r.DELETE("/v1/work-orders/:service_id", h.DeleteWorkOrder)
	return r
}

func TestWorkOrderHandler_CreateWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWorkOrderRouter(NewWorkOrderHandler(mocks.NewMockIWorkOrderUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWorkOrderRouter(NewWorkOrderHandler(mocks.NewMockIWorkOrderUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(`{"vehicle_name":"Corolla","owner_name":"Nimal","items":[]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, draft entities.WorkOrder) (entities.WorkOrder, error) {
			if draft.Vehicle.Name != "Corolla" || len(draft.Items) != 1 || draft.Items[0].Name != "Engine Tune" {
				t.Fatalf("unexpected draft: %+v", draft)
			}
			return storedWorkOrder(1), nil
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(`{"vehicle_name":"Corolla","owner_name":"Nimal","items":[{"name":"Engine Tune"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body["service_id"] != float64(1) || body["status"] != "Pending" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("store unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.WorkOrder{}, errs.StoreUnavailable(http.ErrHandlerTimeout, "put work order"))

		req := httptest.NewRequest(http.MethodPost, "/v1/work-orders", bytes.NewBufferString(`{"vehicle_name":"Corolla","owner_name":"Nimal","items":[{"name":"Engine Tune"}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_GetWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("non numeric id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWorkOrderRouter(NewWorkOrderHandler(mocks.NewMockIWorkOrderUseCase(ctrl)))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/work-orders/abc", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().GetByServiceID(gomock.Any(), int64(42)).Return(entities.WorkOrder{}, errs.NotFound("work order 42 not found"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/work-orders/42", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().List(gomock.Any()).Return([]entities.WorkOrder{storedWorkOrder(2), storedWorkOrder(1)}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/work-orders", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || len(body) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestWorkOrderHandler_UpdateWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).DoAndReturn(func(_ any, _ int64, p entities.WorkOrderPatch) (entities.WorkOrder, error) {
			if p.Status == nil || *p.Status != entities.StatusReady || p.Items != nil || p.Notes != nil {
				t.Fatalf("unexpected patch: %+v", p)
			}
			w := storedWorkOrder(5)
			w.Status = entities.StatusReady
			return w, nil
		})

		req := httptest.NewRequest(http.MethodPatch, "/v1/work-orders/5", bytes.NewBufferString(`{"status":"ready"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("validation hint is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkOrderUseCase(ctrl)
		r := newWorkOrderRouter(NewWorkOrderHandler(uc))

		uc.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(entities.WorkOrder{}, errs.Validation("nothing to update"))

		req := httptest.NewRequest(http.MethodPatch, "/v1/work-orders/5", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "nothing to update" {
			t.Fatalf("unexpected message: %v", body)
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWorkOrderRouter(NewWorkOrderHandler(mocks.NewMockIWorkOrderUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPatch, "/v1/work-orders/5", bytes.NewBufferString(`{"status":"Archived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestWorkOrderHandler_DeleteWorkOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{name: "deleted", err: nil, want: http.StatusNoContent},
		{name: "forbidden", err: errs.PermissionDenied("admin only"), want: http.StatusForbidden},
		{name: "missing", err: errs.NotFound("work order 3 not found"), want: http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIWorkOrderUseCase(ctrl)
			r := newWorkOrderRouter(NewWorkOrderHandler(uc))

			uc.EXPECT().Delete(gomock.Any(), int64(3)).Return(tc.err)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/work-orders/3", nil))

			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
