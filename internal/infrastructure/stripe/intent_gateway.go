// Package stripe creates card payment intents through the Stripe API.
package stripe

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/recyclezone/marketplace/internal/domain/trade"
	stripego "github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
	"go.uber.org/zap"
)

// IntentGateway implements trade.IntentGateway on top of Stripe PaymentIntents
type IntentGateway struct {
	config *Config
	logger *zap.Logger
}

var _ trade.IntentGateway = (*IntentGateway)(nil)

// NewIntentGateway creates a new gateway. A disabled config yields a gateway
// that answers every request with shared.ErrPaymentsDisabled.
func NewIntentGateway(config *Config, logger *zap.Logger) (*IntentGateway, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Enabled {
		config.initClient()
		logger.Info("Stripe payments enabled", zap.Bool("test_mode", config.IsTestMode()))
	} else {
		logger.Info("Stripe payments disabled")
	}

	return &IntentGateway{
		config: config,
		logger: logger,
	}, nil
}

// CreateIntent creates a card-only PaymentIntent for the requested amount
func (g *IntentGateway) CreateIntent(ctx context.Context, req trade.IntentRequest) (*trade.PaymentIntent, error) {
	if !g.config.Enabled {
		return nil, shared.ErrPaymentsDisabled
	}

	currency := strings.ToLower(req.Currency)
	if currency == "" {
		currency = strings.ToLower(g.config.Currency)
	}

	params := &stripego.PaymentIntentParams{
		Amount:             stripego.Int64(req.AmountMinor),
		Currency:           stripego.String(currency),
		PaymentMethodTypes: stripego.StringSlice([]string{"card"}),
	}
	params.Context = ctx
	if len(req.Metadata) > 0 {
		params.Metadata = make(map[string]string, len(req.Metadata))
		maps.Copy(params.Metadata, req.Metadata)
	}

	g.logger.Debug("Creating Stripe payment intent",
		zap.Int64("amount_minor", req.AmountMinor),
		zap.String("currency", currency))

	pi, err := paymentintent.New(params)
	if err != nil {
		g.logger.Error("Failed to create Stripe payment intent",
			zap.Int64("amount_minor", req.AmountMinor),
			zap.Error(err))
		return nil, fmt.Errorf("stripe: failed to create payment intent: %w", err)
	}

	return &trade.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		AmountMinor:  pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
