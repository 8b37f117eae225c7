package trade

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/recyclezone/marketplace/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// MaxChargeMinorUnits is the processor's ceiling for a single USD charge.
const MaxChargeMinorUnits int64 = 99_999_999

var hundred = decimal.NewFromInt(100)

// ParseAmount reads a price sent either as a JSON number or a JSON string.
// Anything else is ErrInvalidAmount.
func ParseAmount(raw json.RawMessage) (decimal.Decimal, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Zero, shared.ErrInvalidAmount
	}

	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return decimal.Zero, shared.ErrInvalidAmount
		}
		text = strings.TrimSpace(text)
	}

	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, shared.ErrInvalidAmount
	}
	return amount, nil
}

// ToMinorUnits converts a decimal price to whole cents, rounding half away
// from zero. Zero, negative and oversized results are ErrInvalidAmount.
func ToMinorUnits(price decimal.Decimal) (int64, error) {
	cents := price.Mul(hundred).Round(0)
	if !cents.IsPositive() || cents.GreaterThan(decimal.NewFromInt(MaxChargeMinorUnits)) {
		return 0, shared.ErrInvalidAmount
	}
	return cents.IntPart(), nil
}
