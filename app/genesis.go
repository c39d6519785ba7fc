package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
)

// Genesis file format, designed to be overlayed with tendermint genesis
type Genesis struct {
	ChainID  string             `json:"chain_id"`
	AppState tradevault.Options `json:"app_state"`
}

// LoadGenesis tries to load a given file into a Genesis struct
func LoadGenesis(filePath string) (*Genesis, error) {
	raw, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot read genesis file: %s", err)
	}
	var gen Genesis
	if err := json.Unmarshal(raw, &gen); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "cannot parse genesis file: %s", err)
	}
	if !tradevault.IsValidChainID(gen.ChainID) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "chain id %q", gen.ChainID)
	}
	return &gen, nil
}
