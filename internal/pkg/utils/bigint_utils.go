package utils

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseRawBalance parses an unscaled token amount as reported by the indexing
// API: either a 0x-prefixed hex string (possibly zero-padded to 32 bytes) or a
// base-10 integer.
func ParseRawBalance(raw string) (*big.Int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, fmt.Errorf("empty balance")
	}

	base := 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		s = s[2:]
		base = 16
		if s == "" {
			return new(big.Int), nil
		}
	}

	amount, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf("invalid balance %q", raw)
	}
	if amount.Sign() < 0 {
		return nil, fmt.Errorf("negative balance %q", raw)
	}
	return amount, nil
}

// MaxTokenDecimals is the largest value an ERC-20 decimals() uint8 can hold.
const MaxTokenDecimals = 255

// ValidTokenDecimals reports whether d fits the ERC-20 uint8 decimals range.
func ValidTokenDecimals(d int) bool {
	return d >= 0 && d <= MaxTokenDecimals
}

// FormatUnitsFixed scales amount by 10^-decimals with exact decimal arithmetic
// and renders it with exactly places fractional digits.
// decimals outside 0..MaxTokenDecimals yield "".
// Example: amount=1500000, decimals=6, places=2 => "1.50"
func FormatUnitsFixed(amount *big.Int, decimals int32, places int32) string {
	if decimals < 0 || decimals > MaxTokenDecimals {
		return ""
	}
	if amount == nil {
		return decimal.Zero.StringFixed(places)
	}
	return decimal.NewFromBigInt(amount, -decimals).StringFixed(places)
}
