package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	clientIDIndex = "client_id-index"
	// BatchWriteItem accepts at most 25 requests.
	batchWriteLimit = 25
)

var ErrUnprocessedItems = errors.New("dynamodb left unprocessed items")

// dynamodbAPI is the subset of *dynamodb.Client the repositories use.
type dynamodbAPI interface {
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, in *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	BatchWriteItem(ctx context.Context, in *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

func idKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

// putNew inserts item and fails if the id is already taken.
func putNew(ctx context.Context, api dynamodbAPI, table string, item any) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

// getByID unmarshals the item into out and reports whether it existed.
func getByID(ctx context.Context, api dynamodbAPI, table, id string, out any) (bool, error) {
	res, err := api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	return true, attributevalue.UnmarshalMap(res.Item, out)
}

func deleteByID(ctx context.Context, api dynamodbAPI, table, id string) error {
	_, err := api.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key:       idKey(id),
	})
	return err
}

// scanAll reads every page of a table scan.
func scanAll(ctx context.Context, api dynamodbAPI, in *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := api.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// queryByClientID reads every page of the client_id-index for one client.
func queryByClientID(ctx context.Context, api dynamodbAPI, table, clientID string) ([]map[string]types.AttributeValue, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(table),
		IndexName:              aws.String(clientIDIndex),
		KeyConditionExpression: aws.String("client_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: clientID},
		},
	}
	var items []map[string]types.AttributeValue
	for {
		out, err := api.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// listItems loads a whole table, or one client's rows when clientID is set.
func listItems(ctx context.Context, api dynamodbAPI, table, clientID string) ([]map[string]types.AttributeValue, error) {
	if clientID == "" {
		return scanAll(ctx, api, &dynamodb.ScanInput{TableName: aws.String(table)})
	}
	return queryByClientID(ctx, api, table, clientID)
}

// batchDelete removes ids in chunks of 25. Unprocessed items are reported,
// not retried.
func batchDelete(ctx context.Context, api dynamodbAPI, table string, ids []string) error {
	for start := 0; start < len(ids); start += batchWriteLimit {
		end := min(start+batchWriteLimit, len(ids))
		reqs := make([]types.WriteRequest, 0, end-start)
		for _, id := range ids[start:end] {
			reqs = append(reqs, types.WriteRequest{DeleteRequest: &types.DeleteRequest{Key: idKey(id)}})
		}
		out, err := api.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{table: reqs},
		})
		if err != nil {
			return err
		}
		if n := len(out.UnprocessedItems[table]); n > 0 {
			return fmt.Errorf("%w: %d", ErrUnprocessedItems, n)
		}
	}
	return nil
}

// idsOf extracts the id attribute of each item.
func idsOf(items []map[string]types.AttributeValue) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if s, ok := it["id"].(*types.AttributeValueMemberS); ok {
			ids = append(ids, s.Value)
		}
	}
	return ids
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("attribute %s: %w", field, err)
	}
	return v, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(field, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("attribute %s: %w", field, err)
	}
	return t, nil
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("repository: %s: %w", op, err)
}
