package app

import (
	"encoding/json"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/app"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/x/token"
)

// DevSupply is the amount of every dev mint credited to the owner.
const DevSupply = 1000000

// DevTickers are the mints created by DevGenesis.
var DevTickers = []string{"ALPHA", "BETA"}

// DevMintAddress returns the address DevGenesis assigns to the mint of
// given ticker.
func DevMintAddress(ticker string) tradevault.Address {
	return tradevault.NewAddress([]byte("tradevault/mint/" + ticker))
}

// DevGenesis produces a genesis with one mint per DevTickers entry. Owner is
// the authority of every mint and holds DevSupply of each.
func DevGenesis(chainID string, owner tradevault.Address) (*app.Genesis, error) {
	if !tradevault.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "chain id %q", chainID)
	}
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}

	mints := make([]token.GenesisMint, 0, len(DevTickers))
	for _, ticker := range DevTickers {
		mints = append(mints, token.GenesisMint{
			Address:   DevMintAddress(ticker),
			Authority: owner,
			Decimals:  6,
			Ticker:    ticker,
			Balances: []token.GenesisBalance{
				{Owner: owner, Amount: DevSupply},
			},
		})
	}
	raw, err := json.Marshal(mints)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return &app.Genesis{
		ChainID:  chainID,
		AppState: tradevault.Options{"token": raw},
	}, nil
}
