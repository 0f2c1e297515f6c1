package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchError(t *testing.T) {
	cause := errors.New("status 503")

	tests := []struct {
		name string
		err  *FetchError
		want string
	}{
		{
			name: "balances",
			err:  &FetchError{Stage: StageBalances, WalletAddress: "0xabc", Err: cause},
			want: "balances fetch for 0xabc failed: status 503",
		},
		{
			name: "metadata for one contract",
			err:  &FetchError{Stage: StageMetadata, WalletAddress: "0xabc", ContractAddress: "0xdef", Err: cause},
			want: "metadata fetch for 0xabc (contract 0xdef) failed: status 503",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
			assert.ErrorIs(t, tt.err, cause)
		})
	}
}
