package service

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// isAddressSyntax reports whether s is "0x" followed by 40 hex digits.
func isAddressSyntax(s string) bool {
	return len(s) == 2+2*common.AddressLength && (s[:2] == "0x" || s[:2] == "0X") && common.IsHexAddress(s)
}

// hasValidChecksum accepts single-case addresses and exact EIP-55 mixed case.
func hasValidChecksum(s string) bool {
	digits := s[2:]
	if digits == strings.ToLower(digits) || digits == strings.ToUpper(digits) {
		return true
	}
	return common.HexToAddress(s).Hex() == "0x"+digits
}

func checksummed(s string) string {
	return common.HexToAddress(s).Hex()
}
