package repository

import (
	"context"
	"fmt"
	"slices"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type offerItem struct {
	ID          string `dynamodbav:"id"`
	ClientID    string `dynamodbav:"client_id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	Amount      string `dynamodbav:"amount"`
	Currency    string `dynamodbav:"currency"`
	Status      string `dynamodbav:"status"`
	DateOffered string `dynamodbav:"date_offered"`
}

// OfferDynamoRepository persists tracked offers in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
type OfferDynamoRepository struct {
	ddb       dynamodbAPI
	tableName string
}

var _ interfaces.IOfferRepository = (*OfferDynamoRepository)(nil)

func NewOfferDynamoRepository(ddb dynamodbAPI, tableName string) *OfferDynamoRepository {
	return &OfferDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *OfferDynamoRepository) Create(ctx context.Context, o entities.Offer) (entities.Offer, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toOfferItem(o)); err != nil {
		return entities.Offer{}, wrap("create offer", err)
	}
	return o, nil
}

func (r *OfferDynamoRepository) GetByID(ctx context.Context, id string) (entities.Offer, error) {
	var it offerItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil {
		return entities.Offer{}, wrap("get offer", err)
	}
	if !found {
		return entities.Offer{}, nil
	}
	o, err := fromOfferItem(it)
	if err != nil {
		return entities.Offer{}, wrap("get offer", err)
	}
	return o, nil
}

// List returns offers by date offered, newest first.
func (r *OfferDynamoRepository) List(ctx context.Context, clientID string) ([]entities.Offer, error) {
	raw, err := listItems(ctx, r.ddb, r.tableName, clientID)
	if err != nil {
		return nil, wrap("list offers", err)
	}
	out := make([]entities.Offer, 0, len(raw))
	for _, av := range raw {
		var it offerItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, wrap("list offers", err)
		}
		o, err := fromOfferItem(it)
		if err != nil {
			return nil, wrap("list offers", err)
		}
		out = append(out, o)
	}
	slices.SortStableFunc(out, func(a, b entities.Offer) int { return b.DateOffered.Compare(a.DateOffered) })
	return out, nil
}

func (r *OfferDynamoRepository) Delete(ctx context.Context, id string) error {
	return wrap("delete offer", deleteByID(ctx, r.ddb, r.tableName, id))
}

func (r *OfferDynamoRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	raw, err := queryByClientID(ctx, r.ddb, r.tableName, clientID)
	if err != nil {
		return wrap("delete offers by client", err)
	}
	return wrap("delete offers by client", batchDelete(ctx, r.ddb, r.tableName, idsOf(raw)))
}

func toOfferItem(o entities.Offer) offerItem {
	return offerItem{
		ID:          o.ID,
		ClientID:    o.ClientID,
		Title:       o.Title,
		Description: o.Description,
		Amount:      floatToString(o.Amount),
		Currency:    o.Currency,
		Status:      string(o.Status),
		DateOffered: formatTime(o.DateOffered),
	}
}

func fromOfferItem(it offerItem) (entities.Offer, error) {
	amount, err := parseFloat("amount", it.Amount)
	if err != nil {
		return entities.Offer{}, fmt.Errorf("offer %s: %w", it.ID, err)
	}
	offered, err := parseTime("date_offered", it.DateOffered)
	if err != nil {
		return entities.Offer{}, fmt.Errorf("offer %s: %w", it.ID, err)
	}
	return entities.Offer{
		ID:          it.ID,
		ClientID:    it.ClientID,
		Title:       it.Title,
		Description: it.Description,
		Amount:      amount,
		Currency:    it.Currency,
		Status:      entities.OfferStatus(it.Status),
		DateOffered: offered,
	}, nil
}
