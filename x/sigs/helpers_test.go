package sigs

import (
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/tradetest"
)

// StdTx is a minimal signed transaction. The payload is signed as is.
type StdTx struct {
	Payload    []byte
	Signatures []*StdSignature
}

var _ SignedTx = (*StdTx)(nil)
var _ tradevault.Tx = (*StdTx)(nil)

func NewStdTx(payload []byte) *StdTx {
	return &StdTx{Payload: payload}
}

func (tx *StdTx) GetSignatures() []*StdSignature {
	return tx.Signatures
}

func (tx *StdTx) GetSignBytes() ([]byte, error) {
	return tx.Payload, nil
}

func (tx *StdTx) GetMsg() (tradevault.Msg, error) {
	return &tradetest.Msg{RoutePath: "sigs/test"}, nil
}

// SigCheckHandler stores the seen signers on each call
type SigCheckHandler struct {
	Signers []tradevault.Address
}

var _ tradevault.Handler = (*SigCheckHandler)(nil)

func (s *SigCheckHandler) Check(ctx tradevault.Context, store tradevault.KVStore, tx tradevault.Tx) (*tradevault.CheckResult, error) {
	s.Signers = Authenticate{}.GetSigners(ctx)
	return &tradevault.CheckResult{}, nil
}

func (s *SigCheckHandler) Deliver(ctx tradevault.Context, store tradevault.KVStore, tx tradevault.Tx) (*tradevault.DeliverResult, error) {
	s.Signers = Authenticate{}.GetSigners(ctx)
	return &tradevault.DeliverResult{}, nil
}
