package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

type fakeDynamo struct {
	getItem    func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem    func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	deleteItem func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error)
	query      func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan       func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	return f.updateItem(in)
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	return f.deleteItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	return f.query(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	return f.scan(in)
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func TestSequenceDynamoIssuer_NextID(t *testing.T) {
	t.Run("single atomic add", func(t *testing.T) {
		calls := 0
		f := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			calls++
			if aws.ToString(in.TableName) != "counters" {
				t.Fatalf("unexpected table %q", aws.ToString(in.TableName))
			}
			if aws.ToString(in.UpdateExpression) != "ADD #seq :one" {
				t.Fatalf("unexpected update expression %q", aws.ToString(in.UpdateExpression))
			}
			if in.ReturnValues != types.ReturnValueUpdatedNew {
				t.Fatalf("expected UPDATED_NEW, got %s", in.ReturnValues)
			}
			key := in.Key["name"].(*types.AttributeValueMemberS)
			if key.Value != entities.CounterServiceID {
				t.Fatalf("unexpected counter %q", key.Value)
			}
			return &dynamodb.UpdateItemOutput{Attributes: map[string]types.AttributeValue{
				"seq": &types.AttributeValueMemberN{Value: "42"},
			}}, nil
		}}

		id, err := NewSequenceDynamoIssuer(f, "counters").NextID(context.Background(), entities.CounterServiceID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != 42 || calls != 1 {
			t.Fatalf("expected id 42 from one call, got id=%d calls=%d", id, calls)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, errors.New("connection refused")
		}}
		_, err := NewSequenceDynamoIssuer(f, "counters").NextID(context.Background(), "serviceId")
		if !errs.IsStoreUnavailable(err) {
			t.Fatalf("expected store unavailable, got %v", err)
		}
	})
}

func TestBuildWorkOrderUpdate(t *testing.T) {
	t.Run("status only", func(t *testing.T) {
		ready := entities.StatusReady
		b, err := buildWorkOrderUpdate(entities.WorkOrderPatch{Status: &ready})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.expression() != "SET #status = :status" {
			t.Fatalf("unexpected expression %q", b.expression())
		}
		if len(b.values) != 1 {
			t.Fatalf("expected 1 value, got %d", len(b.values))
		}
	})

	t.Run("nested billing fields", func(t *testing.T) {
		labor := decimal.NewFromInt(1500)
		billed := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		b, err := buildWorkOrderUpdate(entities.WorkOrderPatch{Billing: &entities.BillingPatch{LaborCost: &labor, BilledAt: &billed}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expr := b.expression()
		if !strings.Contains(expr, "#billing.#labor_cost = :labor_cost") {
			t.Fatalf("missing labor clause: %q", expr)
		}
		if !strings.Contains(expr, "#billing.#billed_at = if_not_exists(#billing.#billed_at, :billed_at)") {
			t.Fatalf("missing billed_at clause: %q", expr)
		}
		if strings.Contains(expr, "parts_cost") {
			t.Fatalf("untouched field in expression: %q", expr)
		}
		v := b.values[":labor_cost"].(*types.AttributeValueMemberS)
		if v.Value != "1500" {
			t.Fatalf("unexpected labor value %q", v.Value)
		}
	})
}

func TestWorkOrderDynamoRepository(t *testing.T) {
	ctx := context.Background()
	billed := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	stored := entities.WorkOrder{
		ID:        "3c1f",
		ServiceID: 7,
		Vehicle:   entities.Vehicle{Name: "Corolla", Plate: "CAB-1234"},
		Customer:  entities.Customer{Name: "Nimal"},
		Items: []entities.LineItemSelection{
			{CatalogID: "c2", Name: "Engine Oil", Category: entities.CategoryConsumable, Quantity: decimal.NewFromInt(4), UnitPrice: decimal.NewFromInt(800)},
		},
		Status:    entities.StatusInProgress,
		CreatedAt: billed.Add(-time.Hour),
		Billing: entities.BillingRecord{
			PartsCost:     decimal.RequireFromString("1000.50"),
			LaborCost:     decimal.NewFromInt(500),
			Discount:      decimal.Zero,
			PaymentStatus: entities.PaymentStatusUnpaid,
			BilledAt:      &billed,
		},
	}

	t.Run("get decodes stored item", func(t *testing.T) {
		av, err := attributevalue.MarshalMap(toWorkOrderItem(stored))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		f := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			key := in.Key["service_id"].(*types.AttributeValueMemberN)
			if key.Value != "7" {
				t.Fatalf("unexpected key %q", key.Value)
			}
			return &dynamodb.GetItemOutput{Item: av}, nil
		}}

		got, err := NewWorkOrderDynamoRepository(f, "work_orders").GetByServiceID(ctx, 7)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "3c1f" || got.Status != entities.StatusInProgress || got.Vehicle.Plate != "CAB-1234" {
			t.Fatalf("unexpected work order %+v", got)
		}
		if !got.Billing.PartsCost.Equal(decimal.RequireFromString("1000.5")) {
			t.Fatalf("unexpected parts cost %s", got.Billing.PartsCost)
		}
		if got.Billing.BilledAt == nil || !got.Billing.BilledAt.Equal(billed) {
			t.Fatalf("unexpected billed at %v", got.Billing.BilledAt)
		}
		if len(got.Items) != 1 || !got.Items[0].Quantity.Equal(decimal.NewFromInt(4)) {
			t.Fatalf("unexpected items %+v", got.Items)
		}
	})

	t.Run("get missing returns zero value", func(t *testing.T) {
		f := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		}}
		got, err := NewWorkOrderDynamoRepository(f, "work_orders").GetByServiceID(ctx, 8)
		if err != nil || got.Exists() {
			t.Fatalf("expected zero work order, got %+v err=%v", got, err)
		}
	})

	t.Run("update on missing item", func(t *testing.T) {
		f := &fakeDynamo{updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_exists(#service_id)" {
				t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
			}
			return nil, conditionFailed()
		}}
		ready := entities.StatusReady
		got, err := NewWorkOrderDynamoRepository(f, "work_orders").UpdatePartial(ctx, 9, entities.WorkOrderPatch{Status: &ready})
		if err != nil || got.Exists() {
			t.Fatalf("expected zero work order, got %+v err=%v", got, err)
		}
	})

	t.Run("delete on missing item", func(t *testing.T) {
		f := &fakeDynamo{deleteItem: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			return nil, conditionFailed()
		}}
		ok, err := NewWorkOrderDynamoRepository(f, "work_orders").Delete(ctx, 9)
		if err != nil || ok {
			t.Fatalf("expected not deleted, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("delete store failure", func(t *testing.T) {
		f := &fakeDynamo{deleteItem: func(*dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
			return nil, errors.New("timeout")
		}}
		_, err := NewWorkOrderDynamoRepository(f, "work_orders").Delete(ctx, 9)
		if !errs.IsStoreUnavailable(err) {
			t.Fatalf("expected store unavailable, got %v", err)
		}
	})

	t.Run("list sorts newest first", func(t *testing.T) {
		older := stored
		older.ServiceID = 1
		older.CreatedAt = stored.CreatedAt.Add(-24 * time.Hour)
		a1, _ := attributevalue.MarshalMap(toWorkOrderItem(older))
		a2, _ := attributevalue.MarshalMap(toWorkOrderItem(stored))
		f := &fakeDynamo{scan: func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{a1, a2}}, nil
		}}
		got, err := NewWorkOrderDynamoRepository(f, "work_orders").ListAll(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ServiceID != 7 || got[1].ServiceID != 1 {
			t.Fatalf("unexpected order %+v", got)
		}
	})
}

func TestCatalogDynamoRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate name", func(t *testing.T) {
		f := &fakeDynamo{putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if aws.ToString(in.ConditionExpression) != "attribute_not_exists(#name)" {
				t.Fatalf("unexpected condition %q", aws.ToString(in.ConditionExpression))
			}
			return nil, conditionFailed()
		}}
		_, err := NewCatalogDynamoRepository(f, "catalog").Create(ctx, entities.CatalogEntry{ID: "c1", Name: "Engine Tune", Category: entities.CategoryService})
		if !errs.IsDuplicateCatalogName(err) {
			t.Fatalf("expected duplicate name, got %v", err)
		}
	})

	t.Run("delete resolves name through id index", func(t *testing.T) {
		av, _ := attributevalue.MarshalMap(catalogItem{Name: "Engine Oil", ID: "c2", Category: "Lubricant", Price: "800"})
		f := &fakeDynamo{
			query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
				if aws.ToString(in.IndexName) != catalogIDIndex {
					t.Fatalf("unexpected index %q", aws.ToString(in.IndexName))
				}
				return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
			},
			deleteItem: func(in *dynamodb.DeleteItemInput) (*dynamodb.DeleteItemOutput, error) {
				key := in.Key["name"].(*types.AttributeValueMemberS)
				if key.Value != "Engine Oil" {
					t.Fatalf("unexpected key %q", key.Value)
				}
				return &dynamodb.DeleteItemOutput{}, nil
			},
		}
		ok, err := NewCatalogDynamoRepository(f, "catalog").Delete(ctx, "c2")
		if err != nil || !ok {
			t.Fatalf("expected deleted, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("delete unknown id", func(t *testing.T) {
		f := &fakeDynamo{query: func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			return &dynamodb.QueryOutput{}, nil
		}}
		ok, err := NewCatalogDynamoRepository(f, "catalog").Delete(ctx, "nope")
		if err != nil || ok {
			t.Fatalf("expected not deleted, got ok=%v err=%v", ok, err)
		}
	})

	t.Run("legacy category decodes as consumable", func(t *testing.T) {
		av, _ := attributevalue.MarshalMap(catalogItem{Name: "Engine Oil", ID: "c2", Category: "Lubricant", Price: "800"})
		f := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{Item: av}, nil
		}}
		e, err := NewCatalogDynamoRepository(f, "catalog").FindByName(ctx, "Engine Oil")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Category != entities.CategoryConsumable || !e.Price.Equal(decimal.NewFromInt(800)) {
			t.Fatalf("unexpected entry %+v", e)
		}
	})
}
