package repository

import (
	"context"
	"fmt"
	"slices"

	"palettepad/internal/domain/entities"
	"palettepad/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	ClientID          string `dynamodbav:"client_id"`
	OfferID           string `dynamodbav:"offer_id,omitempty"`
	Amount            string `dynamodbav:"amount"`
	Method            string `dynamodbav:"method,omitempty"`
	PaidAt            string `dynamodbav:"paid_at"`
	Notes             string `dynamodbav:"notes,omitempty"`
	ProviderPaymentID string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderStatus    string `dynamodbav:"provider_status,omitempty"`
}

// PaymentDynamoRepository persists received payments in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: client_id-index (PK: client_id)
type PaymentDynamoRepository struct {
	ddb       dynamodbAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb dynamodbAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toPaymentItem(p)); err != nil {
		return entities.Payment{}, wrap("create payment", err)
	}
	return p, nil
}

// List returns payments by payment date, newest first.
func (r *PaymentDynamoRepository) List(ctx context.Context, clientID string) ([]entities.Payment, error) {
	raw, err := listItems(ctx, r.ddb, r.tableName, clientID)
	if err != nil {
		return nil, wrap("list payments", err)
	}
	out := make([]entities.Payment, 0, len(raw))
	for _, av := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, wrap("list payments", err)
		}
		pay, err := fromPaymentItem(it)
		if err != nil {
			return nil, wrap("list payments", err)
		}
		out = append(out, pay)
	}
	slices.SortStableFunc(out, func(a, b entities.Payment) int { return b.PaidAt.Compare(a.PaidAt) })
	return out, nil
}

func (r *PaymentDynamoRepository) Delete(ctx context.Context, id string) error {
	return wrap("delete payment", deleteByID(ctx, r.ddb, r.tableName, id))
}

func (r *PaymentDynamoRepository) DeleteMany(ctx context.Context, ids []string) error {
	return wrap("delete payments", batchDelete(ctx, r.ddb, r.tableName, ids))
}

func (r *PaymentDynamoRepository) DeleteByClientID(ctx context.Context, clientID string) error {
	raw, err := queryByClientID(ctx, r.ddb, r.tableName, clientID)
	if err != nil {
		return wrap("delete payments by client", err)
	}
	return wrap("delete payments by client", batchDelete(ctx, r.ddb, r.tableName, idsOf(raw)))
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		ClientID:          p.ClientID,
		OfferID:           p.OfferID,
		Amount:            floatToString(p.Amount),
		Method:            string(p.Method),
		PaidAt:            formatTime(p.PaidAt),
		Notes:             p.Notes,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderStatus:    p.ProviderStatus,
	}
}

func fromPaymentItem(it paymentItem) (entities.Payment, error) {
	amount, err := parseFloat("amount", it.Amount)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("payment %s: %w", it.ID, err)
	}
	paidAt, err := parseTime("paid_at", it.PaidAt)
	if err != nil {
		return entities.Payment{}, fmt.Errorf("payment %s: %w", it.ID, err)
	}
	return entities.Payment{
		ID:                it.ID,
		ClientID:          it.ClientID,
		OfferID:           it.OfferID,
		Amount:            amount,
		Method:            entities.PaymentMethod(it.Method),
		PaidAt:            paidAt,
		Notes:             it.Notes,
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderStatus:    it.ProviderStatus,
	}, nil
}
