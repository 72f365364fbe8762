package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
)

type lineItem struct {
	CatalogID string `dynamodbav:"catalog_id,omitempty"`
	Name      string `dynamodbav:"name"`
	Category  string `dynamodbav:"category"`
	Quantity  string `dynamodbav:"quantity"`
	UnitPrice string `dynamodbav:"unit_price"`
}

type billingItem struct {
	PartsCost         string `dynamodbav:"parts_cost"`
	LaborCost         string `dynamodbav:"labor_cost"`
	Discount          string `dynamodbav:"discount"`
	ExtraServiceCost  string `dynamodbav:"extra_service_cost"`
	ExtraServiceNotes string `dynamodbav:"extra_service_notes"`
	PaymentStatus     string `dynamodbav:"payment_status"`
	BilledAt          string `dynamodbav:"billed_at,omitempty"`
}

type workOrderItem struct {
	ServiceID       int64       `dynamodbav:"service_id"`
	ID              string      `dynamodbav:"id"`
	VehicleName     string      `dynamodbav:"vehicle_name"`
	VehiclePlate    string      `dynamodbav:"vehicle_plate"`
	CustomerName    string      `dynamodbav:"customer_name"`
	CustomerContact string      `dynamodbav:"customer_contact"`
	Items           []lineItem  `dynamodbav:"items"`
	Notes           string      `dynamodbav:"notes"`
	Status          string      `dynamodbav:"status"`
	CreatedAt       string      `dynamodbav:"created_at"`
	Billing         billingItem `dynamodbav:"billing"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: service_id (number)
//
// Billing lives in a nested "billing" map so partial updates can SET single
// billing fields without rewriting the record.
type WorkOrderDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoDBAPI, tableName string) *WorkOrderDynamoRepository {
	return &WorkOrderDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(w))
	if err != nil {
		return entities.WorkOrder{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#service_id)"),
		ExpressionAttributeNames: map[string]string{
			"#service_id": "service_id",
		},
	})
	if err != nil {
		return entities.WorkOrder{}, storeErr(err, "put work order")
	}
	return w, nil
}

func (r *WorkOrderDynamoRepository) GetByServiceID(ctx context.Context, serviceID int64) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            serviceKey(serviceID),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, storeErr(err, "get work order")
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) UpdatePartial(ctx context.Context, serviceID int64, patch entities.WorkOrderPatch) (entities.WorkOrder, error) {
	u, err := buildWorkOrderUpdate(patch)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(u.sets) == 0 {
		return r.GetByServiceID(ctx, serviceID)
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       serviceKey(serviceID),
		ConditionExpression:       aws.String("attribute_exists(#service_id)"),
		UpdateExpression:          aws.String(u.expression()),
		ExpressionAttributeValues: u.values,
		ExpressionAttributeNames:  mergeNames(u.names, map[string]string{"#service_id": "service_id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, storeErr(err, "update work order")
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) Delete(ctx context.Context, serviceID int64) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                aws.String(r.tableName),
		Key:                      serviceKey(serviceID),
		ConditionExpression:      aws.String("attribute_exists(#service_id)"),
		ExpressionAttributeNames: map[string]string{"#service_id": "service_id"},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, storeErr(err, "delete work order")
	}
	return true, nil
}

func (r *WorkOrderDynamoRepository) ListAll(ctx context.Context) ([]entities.WorkOrder, error) {
	var items []workOrderItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storeErr(err, "scan work orders")
		}
		var batch []workOrderItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}

	out := lo.Map(items, func(it workOrderItem, _ int) entities.WorkOrder { return fromWorkOrderItem(it) })
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ServiceID > out[j].ServiceID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// updateBuilder accumulates SET clauses of an UpdateItem call.
type updateBuilder struct {
	sets   []string
	names  map[string]string
	values map[string]types.AttributeValue
}

func newUpdateBuilder() *updateBuilder {
	return &updateBuilder{names: map[string]string{}, values: map[string]types.AttributeValue{}}
}

func (b *updateBuilder) set(attr string, v types.AttributeValue) {
	b.names["#"+attr] = attr
	b.values[":"+attr] = v
	b.sets = append(b.sets, "#"+attr+" = :"+attr)
}

func (b *updateBuilder) setNested(parent, attr string, v types.AttributeValue) {
	b.names["#"+parent] = parent
	b.names["#"+attr] = attr
	b.values[":"+attr] = v
	b.sets = append(b.sets, "#"+parent+".#"+attr+" = :"+attr)
}

// setNestedOnce only writes the attribute when it is absent.
func (b *updateBuilder) setNestedOnce(parent, attr string, v types.AttributeValue) {
	b.names["#"+parent] = parent
	b.names["#"+attr] = attr
	b.values[":"+attr] = v
	path := "#" + parent + ".#" + attr
	b.sets = append(b.sets, path+" = if_not_exists("+path+", :"+attr+")")
}

func (b *updateBuilder) expression() string {
	return "SET " + strings.Join(b.sets, ", ")
}

func str(s string) types.AttributeValue {
	return &types.AttributeValueMemberS{Value: s}
}

func buildWorkOrderUpdate(p entities.WorkOrderPatch) (*updateBuilder, error) {
	b := newUpdateBuilder()
	if p.Status != nil {
		b.set("status", str(string(*p.Status)))
	}
	if p.Notes != nil {
		b.set("notes", str(*p.Notes))
	}
	if p.VehicleName != nil {
		b.set("vehicle_name", str(*p.VehicleName))
	}
	if p.VehiclePlate != nil {
		b.set("vehicle_plate", str(*p.VehiclePlate))
	}
	if p.CustomerName != nil {
		b.set("customer_name", str(*p.CustomerName))
	}
	if p.CustomerContact != nil {
		b.set("customer_contact", str(*p.CustomerContact))
	}
	if p.Items != nil {
		av, err := attributevalue.Marshal(toLineItems(*p.Items))
		if err != nil {
			return nil, err
		}
		b.set("items", av)
	}
	if bp := p.Billing; bp != nil {
		if bp.PartsCost != nil {
			b.setNested("billing", "parts_cost", str(decimalString(*bp.PartsCost)))
		}
		if bp.LaborCost != nil {
			b.setNested("billing", "labor_cost", str(decimalString(*bp.LaborCost)))
		}
		if bp.Discount != nil {
			b.setNested("billing", "discount", str(decimalString(*bp.Discount)))
		}
		if bp.ExtraServiceCost != nil {
			b.setNested("billing", "extra_service_cost", str(decimalString(*bp.ExtraServiceCost)))
		}
		if bp.ExtraServiceNotes != nil {
			b.setNested("billing", "extra_service_notes", str(*bp.ExtraServiceNotes))
		}
		if bp.PaymentStatus != nil {
			b.setNested("billing", "payment_status", str(string(*bp.PaymentStatus)))
		}
		if bp.BilledAt != nil {
			b.setNestedOnce("billing", "billed_at", str(formatTime(*bp.BilledAt)))
		}
	}
	return b, nil
}

func serviceKey(serviceID int64) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"service_id": &types.AttributeValueMemberN{Value: strconv.FormatInt(serviceID, 10)},
	}
}

func toLineItems(items []entities.LineItemSelection) []lineItem {
	return lo.Map(items, func(it entities.LineItemSelection, _ int) lineItem {
		return lineItem{
			CatalogID: it.CatalogID,
			Name:      it.Name,
			Category:  string(it.Category),
			Quantity:  decimalString(it.Quantity),
			UnitPrice: decimalString(it.UnitPrice),
		}
	})
}

func toWorkOrderItem(w entities.WorkOrder) workOrderItem {
	it := workOrderItem{
		ServiceID:       w.ServiceID,
		ID:              w.ID,
		VehicleName:     w.Vehicle.Name,
		VehiclePlate:    w.Vehicle.Plate,
		CustomerName:    w.Customer.Name,
		CustomerContact: w.Customer.Contact,
		Items:           toLineItems(w.Items),
		Notes:           w.Notes,
		Status:          string(w.Status),
		CreatedAt:       formatTime(w.CreatedAt),
		Billing: billingItem{
			PartsCost:         decimalString(w.Billing.PartsCost),
			LaborCost:         decimalString(w.Billing.LaborCost),
			Discount:          decimalString(w.Billing.Discount),
			ExtraServiceCost:  decimalString(w.Billing.ExtraServiceCost),
			ExtraServiceNotes: w.Billing.ExtraServiceNotes,
			PaymentStatus:     string(w.Billing.PaymentStatus),
		},
	}
	if w.Billing.BilledAt != nil {
		it.Billing.BilledAt = formatTime(*w.Billing.BilledAt)
	}
	return it
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	status, ok := entities.ParseWorkOrderStatus(it.Status)
	if !ok {
		status = entities.WorkOrderStatus(it.Status)
	}
	payment, ok := entities.ParsePaymentStatus(it.Billing.PaymentStatus)
	if !ok {
		payment = entities.PaymentStatusUnpaid
	}
	w := entities.WorkOrder{
		ID:        it.ID,
		ServiceID: it.ServiceID,
		Vehicle:   entities.Vehicle{Name: it.VehicleName, Plate: it.VehiclePlate},
		Customer:  entities.Customer{Name: it.CustomerName, Contact: it.CustomerContact},
		Items: lo.Map(it.Items, func(li lineItem, _ int) entities.LineItemSelection {
			category, ok := entities.ParseCategory(li.Category)
			if !ok {
				category = entities.CategoryService
			}
			return entities.LineItemSelection{
				CatalogID: li.CatalogID,
				Name:      li.Name,
				Category:  category,
				Quantity:  parseDecimal(li.Quantity),
				UnitPrice: parseDecimal(li.UnitPrice),
			}
		}),
		Notes:     it.Notes,
		Status:    status,
		CreatedAt: parseTime(it.CreatedAt),
		Billing: entities.BillingRecord{
			PartsCost:         parseDecimal(it.Billing.PartsCost),
			LaborCost:         parseDecimal(it.Billing.LaborCost),
			Discount:          parseDecimal(it.Billing.Discount),
			ExtraServiceCost:  parseDecimal(it.Billing.ExtraServiceCost),
			ExtraServiceNotes: it.Billing.ExtraServiceNotes,
			PaymentStatus:     payment,
		},
	}
	if it.Billing.BilledAt != "" {
		t := parseTime(it.Billing.BilledAt)
		w.Billing.BilledAt = &t
	}
	return w
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
