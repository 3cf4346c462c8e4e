package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Card payments recorded with a provider payload are charged through it; the
// provider id and status are kept on the stored payment.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
