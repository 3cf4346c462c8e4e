package interfaces

import (
	"context"

	"palettepad/internal/domain/entities"
)

// IPaymentRepository abstracts persistence of received payments.
//
// List with an empty clientID returns every payment.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	List(ctx context.Context, clientID string) ([]entities.Payment, error)
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	DeleteByClientID(ctx context.Context, clientID string) error
}
