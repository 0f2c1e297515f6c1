package entity

// AddressSource tells how a resolved address was obtained.
type AddressSource string

const (
	AddressSourceNone AddressSource = ""
	AddressSourceHex  AddressSource = "hex"
	AddressSourceENS  AddressSource = "ens"
)

// FailureReason classifies why user input could not be turned into an address.
type FailureReason string

const (
	FailureNone                FailureReason = ""
	FailureEmptyInput          FailureReason = "empty_input"
	FailureMalformedAddress    FailureReason = "malformed_address"
	FailureBadChecksum         FailureReason = "bad_checksum"
	FailureMalformedName       FailureReason = "malformed_name"
	FailureUnresolvableName    FailureReason = "unresolvable_name"
	FailureResolverUnavailable FailureReason = "resolver_unavailable"
	FailureResolverError       FailureReason = "resolver_error"
)

// InvalidAddressMessage is the single notification shown for any validation failure.
const InvalidAddressMessage = "Invalid Ethereum or ENS address"

// AddressResult is the outcome of resolving or validating one piece of user input.
// Address is either empty or an EIP-55 checksummed hex address.
type AddressResult struct {
	Input   string        `json:"input"`
	Address string        `json:"address,omitempty"`
	Source  AddressSource `json:"source,omitempty"`
	Failure FailureReason `json:"failure,omitempty"`
}

// Valid reports whether the result carries a usable address.
func (r AddressResult) Valid() bool {
	return r.Failure == FailureNone && r.Address != ""
}

// ResolvedAddress builds a successful result.
func ResolvedAddress(input, address string, source AddressSource) AddressResult {
	return AddressResult{Input: input, Address: address, Source: source}
}

// FailedAddress builds a failed result with an empty address.
func FailedAddress(input string, reason FailureReason) AddressResult {
	return AddressResult{Input: input, Failure: reason}
}
