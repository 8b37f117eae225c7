package trade

import "context"

// IntentRequest describes a card charge to be confirmed by the client
type IntentRequest struct {
	AmountMinor int64
	Currency    string
	Metadata    map[string]string
}

// PaymentIntent is the processor's handle for a pending charge
type PaymentIntent struct {
	ID           string
	ClientSecret string
	AmountMinor  int64
	Currency     string
}

// IntentGateway creates payment intents with an external card processor.
// Implementations return shared.ErrPaymentsDisabled when no processor is
// configured.
type IntentGateway interface {
	CreateIntent(ctx context.Context, req IntentRequest) (*PaymentIntent, error)
}
