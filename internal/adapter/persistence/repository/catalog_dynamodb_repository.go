package repository

import (
	"context"

	"workshop_xpto/internal/domain/entities"
	"workshop_xpto/internal/domain/errs"
	"workshop_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/samber/lo"
)

const catalogIDIndex = "id-index"

type catalogItem struct {
	Name     string `dynamodbav:"name"`
	ID       string `dynamodbav:"id"`
	Category string `dynamodbav:"category"`
	Price    string `dynamodbav:"price"`
}

// CatalogDynamoRepository persists CatalogEntry entities in DynamoDB.
//
// Table requirements:
//   - PK: name (string)
//   - GSI: id-index (PK: id)
//
// Keying by name lets PutItem enforce name uniqueness with a condition.
type CatalogDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb DynamoDBAPI, tableName string) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogEntry, error) {
	var items []catalogItem
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, storeErr(err, "scan catalog")
		}
		var batch []catalogItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, err
		}
		items = append(items, batch...)
	}
	return lo.Map(items, func(it catalogItem, _ int) entities.CatalogEntry { return fromCatalogItem(it) }), nil
}

func (r *CatalogDynamoRepository) FindByName(ctx context.Context, name string) (entities.CatalogEntry, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogEntry{}, storeErr(err, "get catalog entry")
	}
	if len(out.Item) == 0 {
		return entities.CatalogEntry{}, nil
	}
	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogEntry{}, err
	}
	return fromCatalogItem(it), nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogEntry, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(catalogIDIndex),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.CatalogEntry{}, storeErr(err, "query catalog by id")
	}
	if len(out.Items) == 0 {
		return entities.CatalogEntry{}, nil
	}
	var it catalogItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.CatalogEntry{}, err
	}
	return fromCatalogItem(it), nil
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, e entities.CatalogEntry) (entities.CatalogEntry, error) {
	av, err := attributevalue.MarshalMap(toCatalogItem(e))
	if err != nil {
		return entities.CatalogEntry{}, err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#name)"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.CatalogEntry{}, errs.DuplicateCatalogName(e.Name)
		}
		return entities.CatalogEntry{}, storeErr(err, "put catalog entry")
	}
	return e, nil
}

// Delete resolves the entry through the id index, then deletes it by name
// on condition that the id still matches.
func (r *CatalogDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	e, err := r.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	if !e.Exists() {
		return false, nil
	}
	_, err = r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: e.Name},
		},
		ConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		if isConditionFailed(err) {
			return false, nil
		}
		return false, storeErr(err, "delete catalog entry")
	}
	return true, nil
}

func toCatalogItem(e entities.CatalogEntry) catalogItem {
	return catalogItem{
		Name:     e.Name,
		ID:       e.ID,
		Category: string(e.Category),
		Price:    decimalString(e.Price),
	}
}

func fromCatalogItem(it catalogItem) entities.CatalogEntry {
	category, ok := entities.ParseCategory(it.Category)
	if !ok {
		category = entities.CategoryService
	}
	return entities.CatalogEntry{
		ID:       it.ID,
		Name:     it.Name,
		Category: category,
		Price:    parseDecimal(it.Price),
	}
}
