package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"palettepad/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEntryDynamoRepository_CreateListDelete(t *testing.T) {
	ctx := context.Background()
	db := newFakeDynamo()
	r := NewEntryDynamoRepository(db, "entries")

	for i := 1; i <= 5; i++ {
		_, err := r.Create(ctx, entities.Entry{
			ID:   fmt.Sprintf("en_%d", i),
			When: fmt.Sprintf("2024-01-0%dT00:00:00Z", i),
			Name: "A", Palette: "P", Code: "C",
		})
		require.NoError(t, err)
	}

	_, err := r.Create(ctx, entities.Entry{ID: "en_1"})
	var cfe *types.ConditionalCheckFailedException
	require.True(t, errors.As(err, &cfe), "expected conditional failure, got %v", err)

	got, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 5)
	require.Equal(t, "en_5", got[0].ID)
	require.Equal(t, "en_1", got[4].ID)

	require.NoError(t, r.Delete(ctx, "en_3"))
	require.NoError(t, r.DeleteAll(ctx))
	require.Empty(t, db.items)
}

func TestEntryDynamoRepository_ListError(t *testing.T) {
	db := newFakeDynamo()
	db.scanErr = errors.New("ResourceNotFoundException")
	_, err := NewEntryDynamoRepository(db, "entries").List(context.Background())
	require.ErrorIs(t, err, db.scanErr)
	require.Contains(t, err.Error(), "repository: list entries")
}

func TestClientDynamoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewClientDynamoRepository(newFakeDynamo(), "clients")
	c := entities.Client{
		ID:        "cl_1",
		Name:      "Maria",
		Email:     "m@example.com",
		CreatedAt: time.Date(2024, 2, 3, 4, 5, 6, 7, time.UTC),
	}
	_, err := r.Create(ctx, c)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, "cl_1")
	require.NoError(t, err)
	if diff := cmp.Diff(c, got); diff != "" {
		t.Fatalf("client mismatch (-want +got):\n%s", diff)
	}

	missing, err := r.GetByID(ctx, "cl_x")
	require.NoError(t, err)
	require.Empty(t, missing.ID)
}

func TestOfferDynamoRepository_ListByClientUsesIndex(t *testing.T) {
	ctx := context.Background()
	db := newFakeDynamo()
	r := NewOfferDynamoRepository(db, "offers")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		client := "cl_a"
		if i%2 == 1 {
			client = "cl_b"
		}
		_, err := r.Create(ctx, entities.Offer{
			ID: fmt.Sprintf("of_%d", i), ClientID: client, Title: "T",
			Amount: 10.5, Currency: "EUR", Status: entities.OfferStatusSent,
			DateOffered: base.AddDate(0, 0, i),
		})
		require.NoError(t, err)
	}

	got, err := r.List(ctx, "cl_a")
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "of_4", got[0].ID)
	require.Equal(t, 10.5, got[0].Amount)
	require.Equal(t, clientIDIndex, aws.ToString(db.lastQuery.IndexName))

	all, err := r.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 5)

	require.NoError(t, r.DeleteByClientID(ctx, "cl_a"))
	left, err := r.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, left, 2)
}

func TestPaymentDynamoRepository_DeleteManyChunks(t *testing.T) {
	ctx := context.Background()
	db := newFakeDynamo()
	r := NewPaymentDynamoRepository(db, "payments")

	ids := make([]string, 0, 60)
	for i := 0; i < 60; i++ {
		id := fmt.Sprintf("pay_%02d", i)
		ids = append(ids, id)
		_, err := r.Create(ctx, entities.Payment{ID: id, ClientID: "cl_a", Amount: 1, PaidAt: time.Now()})
		require.NoError(t, err)
	}

	require.NoError(t, r.DeleteMany(ctx, ids))
	require.Equal(t, []int{25, 25, 10}, db.batchSizes)
	require.Empty(t, db.items)
}

func TestPaymentDynamoRepository_UnprocessedItems(t *testing.T) {
	ctx := context.Background()
	db := newFakeDynamo()
	db.unprocessed = true
	r := NewPaymentDynamoRepository(db, "payments")

	err := r.DeleteMany(ctx, []string{"pay_1", "pay_2"})
	require.ErrorIs(t, err, ErrUnprocessedItems)
}

func TestPaymentDynamoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	r := NewPaymentDynamoRepository(newFakeDynamo(), "payments")
	p := entities.Payment{
		ID: "pay_1", ClientID: "cl_1", OfferID: "of_1", Amount: 99.99,
		Method: entities.PaymentMethodCard, PaidAt: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		ProviderPaymentID: "123", ProviderStatus: "approved",
	}
	_, err := r.Create(ctx, p)
	require.NoError(t, err)

	got, err := r.List(ctx, "cl_1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	if diff := cmp.Diff(p, got[0]); diff != "" {
		t.Fatalf("payment mismatch (-want +got):\n%s", diff)
	}
}

func TestDynamoRepositories_CorruptAttributesFail(t *testing.T) {
	ctx := context.Background()
	s := func(v string) types.AttributeValue { return &types.AttributeValueMemberS{Value: v} }

	offers := newFakeDynamo()
	offers.items["of_1"] = item{
		"id": s("of_1"), "client_id": s("cl_1"), "title": s("Facade"),
		"amount": s("12,5"), "currency": s("EUR"), "status": s("sent"),
		"date_offered": s("2024-03-01T00:00:00Z"),
	}
	_, err := NewOfferDynamoRepository(offers, "offers").List(ctx, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "repository: list offers: offer of_1: attribute amount")
	_, err = NewOfferDynamoRepository(offers, "offers").GetByID(ctx, "of_1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "repository: get offer")

	payments := newFakeDynamo()
	payments.items["pa_1"] = item{
		"id": s("pa_1"), "client_id": s("cl_1"), "amount": s("40"),
		"paid_at": s("yesterday"),
	}
	_, err = NewPaymentDynamoRepository(payments, "payments").List(ctx, "")
	var perr *time.ParseError
	require.ErrorAs(t, err, &perr)
	require.Contains(t, err.Error(), "repository: list payments: payment pa_1: attribute paid_at")

	clients := newFakeDynamo()
	clients.items["cl_1"] = item{"id": s("cl_1"), "name": s("Maria"), "created_at": s("")}
	_, err = NewClientDynamoRepository(clients, "clients").List(ctx)
	require.Error(t, err)
	require.Contains(t, err.Error(), "repository: list clients: client cl_1: attribute created_at")
}
