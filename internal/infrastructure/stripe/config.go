package stripe

import (
	"fmt"
	"strings"

	stripego "github.com/stripe/stripe-go/v81"
)

// Config holds configuration for the Stripe integration
type Config struct {
	// Enabled turns card payments on. When false the gateway refuses every intent.
	Enabled bool

	// SecretKey is the Stripe secret API key (sk_test_xxx or sk_live_xxx)
	SecretKey string

	// Currency is the ISO currency code charged for every intent
	Currency string
}

// Validate validates the Stripe configuration
func (c *Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.SecretKey == "" {
		return fmt.Errorf("stripe: secret key is required")
	}
	if !strings.HasPrefix(c.SecretKey, "sk_test_") && !strings.HasPrefix(c.SecretKey, "sk_live_") {
		return fmt.Errorf("stripe: secret key must be a test or live key")
	}
	if c.Currency == "" {
		return fmt.Errorf("stripe: currency is required")
	}
	return nil
}

// IsTestMode reports whether the configured key is a test key
func (c *Config) IsTestMode() bool {
	return strings.HasPrefix(c.SecretKey, "sk_test_")
}

// initClient installs the API key on the global Stripe client
func (c *Config) initClient() {
	stripego.Key = c.SecretKey
}
