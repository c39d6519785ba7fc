package client

import (
	abci "github.com/tendermint/tendermint/abci/types"
)

// RequestQuery is used for the query interface to mirror the abci query interface
type RequestQuery = abci.RequestQuery

// ResponseQuery is used for the query interface to mirror the abci query interface
type ResponseQuery = abci.ResponseQuery

// CommitResult is returned from the block (DeliverTx)
// Data and Log are only set on success codes, Err is set if it was a failure code
type CommitResult struct {
	Height int64
	Data   []byte
	Log    string
	Err    error
}

// Status is the current status of the application.
type Status struct {
	Name    string
	Version string
	Height  int64
	AppHash []byte
}
