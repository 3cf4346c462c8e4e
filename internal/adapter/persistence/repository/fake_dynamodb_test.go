package repository

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type item = map[string]types.AttributeValue

// fakeDynamo is a single-table store good enough for repository tests. Scan
// and Query return pages of pageSize items.
type fakeDynamo struct {
	items    map[string]item
	pageSize int

	putErr   error
	scanErr  error
	batchErr error

	lastQuery   *dynamodb.QueryInput
	batchSizes  []int
	unprocessed bool
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]item{}, pageSize: 2}
}

func idOf(it item) string {
	if s, ok := it["id"].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[idOf(in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	id := idOf(in.Item)
	if _, exists := f.items[id]; exists && strings.Contains(aws.ToString(in.ConditionExpression), "attribute_not_exists") {
		return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	delete(f.items, idOf(in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamo) sorted(keep func(item) bool) []item {
	ids := make([]string, 0, len(f.items))
	for id := range f.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	var out []item
	for _, id := range ids {
		if keep(f.items[id]) {
			out = append(out, f.items[id])
		}
	}
	return out
}

func (f *fakeDynamo) page(all []item, start map[string]types.AttributeValue) ([]item, map[string]types.AttributeValue) {
	from := 0
	if start != nil {
		for i, it := range all {
			if idOf(it) == idOf(start) {
				from = i + 1
			}
		}
	}
	to := min(from+f.pageSize, len(all))
	var next map[string]types.AttributeValue
	if to < len(all) {
		next = map[string]types.AttributeValue{"id": all[to-1]["id"]}
	}
	return all[from:to], next
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scanErr != nil {
		return nil, f.scanErr
	}
	items, next := f.page(f.sorted(func(item) bool { return true }), in.ExclusiveStartKey)
	return &dynamodb.ScanOutput{Items: items, LastEvaluatedKey: next}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	want := in.ExpressionAttributeValues[":cid"].(*types.AttributeValueMemberS).Value
	all := f.sorted(func(it item) bool {
		s, ok := it["client_id"].(*types.AttributeValueMemberS)
		return ok && s.Value == want
	})
	items, next := f.page(all, in.ExclusiveStartKey)
	return &dynamodb.QueryOutput{Items: items, LastEvaluatedKey: next}, nil
}

func (f *fakeDynamo) BatchWriteItem(_ context.Context, in *dynamodb.BatchWriteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error) {
	if f.batchErr != nil {
		return nil, f.batchErr
	}
	out := &dynamodb.BatchWriteItemOutput{}
	for table, reqs := range in.RequestItems {
		if len(reqs) > batchWriteLimit {
			return nil, errors.New("too many requests in batch")
		}
		f.batchSizes = append(f.batchSizes, len(reqs))
		for _, r := range reqs {
			delete(f.items, idOf(r.DeleteRequest.Key))
		}
		if f.unprocessed {
			out.UnprocessedItems = map[string][]types.WriteRequest{table: reqs[:1]}
		}
	}
	return out, nil
}
