package usecase

import "github.com/google/uuid"

const (
	idPrefixEntry   = "en"
	idPrefixClient  = "cl"
	idPrefixOffer   = "of"
	idPrefixPayment = "pay"
)

// newID returns a client-generated record id such as "cl_6f1c...".
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
