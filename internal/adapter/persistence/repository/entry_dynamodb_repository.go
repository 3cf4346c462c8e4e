package repository

import (
	"cmp"
	"context"
	"slices"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type entryItem struct {
	ID      string `dynamodbav:"id"`
	When    string `dynamodbav:"when"`
	Name    string `dynamodbav:"name"`
	Palette string `dynamodbav:"palette"`
	Code    string `dynamodbav:"code"`
}

// EntryDynamoRepository persists color log entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type EntryDynamoRepository struct {
	ddb       dynamodbAPI
	tableName string
}

var _ interfaces.IEntryRepository = (*EntryDynamoRepository)(nil)

func NewEntryDynamoRepository(ddb dynamodbAPI, tableName string) *EntryDynamoRepository {
	return &EntryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EntryDynamoRepository) Create(ctx context.Context, e entities.Entry) (entities.Entry, error) {
	if err := putNew(ctx, r.ddb, r.tableName, entryItem(e)); err != nil {
		return entities.Entry{}, wrap("create entry", err)
	}
	return e, nil
}

// List returns every entry, newest first.
func (r *EntryDynamoRepository) List(ctx context.Context) ([]entities.Entry, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, wrap("list entries", err)
	}
	out := make([]entities.Entry, 0, len(raw))
	for _, av := range raw {
		var it entryItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, wrap("list entries", err)
		}
		out = append(out, entities.Entry(it))
	}
	slices.SortStableFunc(out, func(a, b entities.Entry) int { return cmp.Compare(b.When, a.When) })
	return out, nil
}

func (r *EntryDynamoRepository) Delete(ctx context.Context, id string) error {
	return wrap("delete entry", deleteByID(ctx, r.ddb, r.tableName, id))
}

func (r *EntryDynamoRepository) DeleteAll(ctx context.Context) error {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		ProjectionExpression:     aws.String("#id"),
		ExpressionAttributeNames: map[string]string{"#id": "id"},
	})
	if err != nil {
		return wrap("delete all entries", err)
	}
	return wrap("delete all entries", batchDelete(ctx, r.ddb, r.tableName, idsOf(raw)))
}
