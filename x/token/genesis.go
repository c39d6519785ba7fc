package token

import (
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
)

const optKey = "token"

// GenesisMint describes a mint created at chain start, together with the
// initial balances of its holders.
type GenesisMint struct {
	Address   tradevault.Address `json:"address"`
	Authority tradevault.Address `json:"authority"`
	Decimals  uint32             `json:"decimals"`
	Ticker    string             `json:"ticker"`
	Balances  []GenesisBalance   `json:"balances"`
}

// GenesisBalance funds the associated account of Owner.
type GenesisBalance struct {
	Owner  tradevault.Address `json:"owner"`
	Amount uint64             `json:"amount"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ tradevault.Initializer = (*Initializer)(nil)

// FromGenesis will parse initial mints and balances from genesis
// and save them to the database
func (Initializer) FromGenesis(opts tradevault.Options, db tradevault.KVStore) error {
	var mints []GenesisMint
	if err := opts.ReadOptions(optKey, &mints); err != nil {
		return err
	}
	ctrl := NewController()
	for i, gm := range mints {
		m := Mint{
			Metadata:  &tradevault.Metadata{Schema: 1},
			Authority: gm.Authority,
			Decimals:  gm.Decimals,
			Ticker:    gm.Ticker,
		}
		if err := ctrl.CreateMint(db, gm.Address, &m); err != nil {
			return errors.Wrapf(err, "mint #%d", i)
		}
		for j, b := range gm.Balances {
			if err := ctrl.MintTo(db, gm.Authority, gm.Address, b.Owner, b.Amount); err != nil {
				return errors.Wrapf(err, "mint #%d balance #%d", i, j)
			}
		}
	}
	return nil
}
