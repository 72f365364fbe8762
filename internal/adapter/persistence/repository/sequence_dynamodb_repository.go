package repository

import (
	"context"
	"strconv"

	"workshop_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/cockroachdb/errors"
)

// SequenceDynamoIssuer issues ids from the counters table.
//
// Table requirements:
//   - PK: name (string)
//   - seq (number) holds the last issued value
type SequenceDynamoIssuer struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.ISequenceIssuer = (*SequenceDynamoIssuer)(nil)

func NewSequenceDynamoIssuer(ddb DynamoDBAPI, tableName string) *SequenceDynamoIssuer {
	return &SequenceDynamoIssuer{ddb: ddb, tableName: tableName}
}

// NextID increments the counter in a single UpdateItem. ADD creates the item
// with seq=1 when the counter does not exist yet.
func (r *SequenceDynamoIssuer) NextID(ctx context.Context, counterName string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: counterName},
		},
		UpdateExpression:         aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{"#seq": "seq"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, storeErr(err, "next id")
	}
	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, storeErr(errors.Newf("counter %q returned no seq", counterName), "next id")
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	if err != nil {
		return 0, storeErr(err, "next id")
	}
	return v, nil
}
