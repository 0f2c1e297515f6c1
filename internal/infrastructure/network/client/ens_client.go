package client

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"erc20_indexer/internal/app/port"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Minimal ENS ABI: registry resolver(bytes32) and resolver addr(bytes32).
const ensABI = `[
{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"resolver","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[{"name":"node","type":"bytes32"}],"name":"addr","outputs":[{"name":"","type":"address"}],"payable":false,"stateMutability":"view","type":"function"}
]`

var (
	parsedENSABI  abi.ABI
	parsedENSOnce sync.Once
)

func initParsedENSABI() {
	parsedENSOnce.Do(func() {
		var err error
		parsedENSABI, err = abi.JSON(strings.NewReader(ensABI))
		if err != nil {
			panic(fmt.Sprintf("failed to parse ENS ABI: %v", err))
		}
	})
}

// ENSClient resolves names through the ENS registry of one network.
type ENSClient struct {
	caller         port.ContractCaller
	registry       common.Address
	rpcCallTimeout time.Duration
}

// NewENSClient creates an ENS client reading the registry at registry through caller.
func NewENSClient(caller port.ContractCaller, registry common.Address, rpcCallTimeout time.Duration) *ENSClient {
	initParsedENSABI()
	return &ENSClient{caller: caller, registry: registry, rpcCallTimeout: rpcCallTimeout}
}

// NormalizeName lower-cases and trims a name. Full UTS-46 mapping is not applied.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NameHash computes the EIP-137 namehash of a normalized name.
func NameHash(name string) (common.Hash, error) {
	var node common.Hash
	if name == "" {
		return node, fmt.Errorf("%w: empty name", port.ErrMalformedName)
	}
	labels := strings.Split(name, ".")
	for i := len(labels) - 1; i >= 0; i-- {
		if labels[i] == "" {
			return common.Hash{}, fmt.Errorf("%w: empty label in %q", port.ErrMalformedName, name)
		}
		labelHash := crypto.Keccak256([]byte(labels[i]))
		node = crypto.Keccak256Hash(node.Bytes(), labelHash)
	}
	return node, nil
}

// ResolveName implements port.NameBackend.
func (c *ENSClient) ResolveName(ctx context.Context, name string) (common.Address, error) {
	normalized := NormalizeName(name)
	node, err := NameHash(normalized)
	if err != nil {
		return common.Address{}, err
	}

	if c.rpcCallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.rpcCallTimeout)
		defer cancel()
	}

	resolver, err := c.callAddress(ctx, c.registry, "resolver", node)
	if err != nil {
		return common.Address{}, fmt.Errorf("registry lookup for %s failed: %w", normalized, err)
	}
	if resolver == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %s", port.ErrNoResolver, normalized)
	}

	addr, err := c.callAddress(ctx, resolver, "addr", node)
	if err != nil {
		return common.Address{}, fmt.Errorf("resolver %s lookup for %s failed: %w", resolver.Hex(), normalized, err)
	}
	if addr == (common.Address{}) {
		return common.Address{}, fmt.Errorf("%w: %s", port.ErrNoAddress, normalized)
	}
	return addr, nil
}

func (c *ENSClient) callAddress(ctx context.Context, to common.Address, method string, node common.Hash) (common.Address, error) {
	data, err := parsedENSABI.Pack(method, node)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to pack %s call: %w", method, err)
	}

	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return common.Address{}, err
	}
	if len(out) == 0 {
		// No code at the target: treat as unset.
		return common.Address{}, nil
	}

	unpacked, err := parsedENSABI.Unpack(method, out)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	if len(unpacked) == 0 {
		return common.Address{}, fmt.Errorf("%s unpack returned no data", method)
	}
	addr, ok := unpacked[0].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("failed to assert %s result to address. Got: %T", method, unpacked[0])
	}
	return addr, nil
}
