package tradevault

import (
	"context"
	"testing"

	"github.com/iov-one/tradevault/tradetest/assert"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextHeight(t *testing.T) {
	ctx := context.Background()

	_, ok := GetHeight(ctx)
	if ok {
		t.Fatal("height must not be set")
	}

	ctx = WithHeight(ctx, 7)
	h, ok := GetHeight(ctx)
	assert.Equal(t, true, ok)
	assert.Equal(t, int64(7), h)

	assert.Panics(t, func() { WithHeight(ctx, 8) })
}

func TestContextChainID(t *testing.T) {
	ctx := context.Background()
	assert.Panics(t, func() { GetChainID(ctx) })
	assert.Panics(t, func() { WithChainID(ctx, "no") })

	ctx = WithChainID(ctx, "trade-vault-1")
	assert.Equal(t, "trade-vault-1", GetChainID(ctx))
	assert.Panics(t, func() { WithChainID(ctx, "trade-vault-2") })
}

func TestContextLogger(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(ctx))

	logger := log.NewNopLogger().With("module", "test")
	ctx = WithLogger(ctx, logger)
	assert.Equal(t, logger, GetLogger(ctx))

	ctx = WithLogInfo(ctx, "escrow", "A1")
	if GetLogger(ctx) == nil {
		t.Fatal("logger must be set")
	}
}

func TestIsValidChainID(t *testing.T) {
	cases := map[string]bool{
		"":                      false,
		"short":                 false,
		"trade-vault":           true,
		"trade_vault_42":        true,
		"with space in it":      false,
		"way-too-long-chain-id": false,
	}
	for chainID, want := range cases {
		if got := IsValidChainID(chainID); got != want {
			t.Errorf("%q: want %v, got %v", chainID, want, got)
		}
	}
}
