package repository

import (
	"context"
	"fmt"
	"slices"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type clientItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	Email     string `dynamodbav:"email,omitempty"`
	Phone     string `dynamodbav:"phone,omitempty"`
	Notes     string `dynamodbav:"notes,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

// ClientDynamoRepository persists tracker clients in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type ClientDynamoRepository struct {
	ddb       dynamodbAPI
	tableName string
}

var _ interfaces.IClientRepository = (*ClientDynamoRepository)(nil)

func NewClientDynamoRepository(ddb dynamodbAPI, tableName string) *ClientDynamoRepository {
	return &ClientDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ClientDynamoRepository) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toClientItem(c)); err != nil {
		return entities.Client{}, wrap("create client", err)
	}
	return c, nil
}

func (r *ClientDynamoRepository) GetByID(ctx context.Context, id string) (entities.Client, error) {
	var it clientItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil {
		return entities.Client{}, wrap("get client", err)
	}
	if !found {
		return entities.Client{}, nil
	}
	c, err := fromClientItem(it)
	if err != nil {
		return entities.Client{}, wrap("get client", err)
	}
	return c, nil
}

// List returns every client, most recently created first.
func (r *ClientDynamoRepository) List(ctx context.Context) ([]entities.Client, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
	if err != nil {
		return nil, wrap("list clients", err)
	}
	out := make([]entities.Client, 0, len(raw))
	for _, av := range raw {
		var it clientItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, wrap("list clients", err)
		}
		c, err := fromClientItem(it)
		if err != nil {
			return nil, wrap("list clients", err)
		}
		out = append(out, c)
	}
	slices.SortStableFunc(out, func(a, b entities.Client) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return out, nil
}

func (r *ClientDynamoRepository) Delete(ctx context.Context, id string) error {
	return wrap("delete client", deleteByID(ctx, r.ddb, r.tableName, id))
}

func toClientItem(c entities.Client) clientItem {
	return clientItem{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Notes:     c.Notes,
		CreatedAt: formatTime(c.CreatedAt),
	}
}

func fromClientItem(it clientItem) (entities.Client, error) {
	createdAt, err := parseTime("created_at", it.CreatedAt)
	if err != nil {
		return entities.Client{}, fmt.Errorf("client %s: %w", it.ID, err)
	}
	return entities.Client{
		ID:        it.ID,
		Name:      it.Name,
		Email:     it.Email,
		Phone:     it.Phone,
		Notes:     it.Notes,
		CreatedAt: createdAt,
	}, nil
}
