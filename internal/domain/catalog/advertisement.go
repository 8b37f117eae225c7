package catalog

import (
	"bytes"
	"encoding/json"

	"github.com/recyclezone/marketplace/internal/domain/shared"
)

// Advertisement is a seller-promoted payload shown on the storefront.
// The payload is opaque to the backend and stored verbatim.
type Advertisement struct {
	shared.BaseEntity
	SellerEmail string
	Payload     json.RawMessage
}

// NewAdvertisement creates an advertisement. payload must be a JSON object.
func NewAdvertisement(sellerEmail string, payload json.RawMessage) (*Advertisement, error) {
	sellerEmail = shared.CanonicalEmail(sellerEmail)
	if sellerEmail == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Seller email cannot be empty")
	}
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, shared.NewDomainError("INVALID_INPUT", "Advertisement payload must be a JSON object")
	}
	return &Advertisement{
		BaseEntity:  shared.NewBaseEntity(),
		SellerEmail: sellerEmail,
		Payload:     json.RawMessage(trimmed),
	}, nil
}
