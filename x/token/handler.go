package token

import (
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/x"
)

const (
	transferCost = 100
	mintCost     = 100
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r tradevault.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(pathTransferMsg, NewTransferHandler(auth, ctrl))
	r.Handle(pathMintMsg, NewMintHandler(auth, ctrl))
}

// RegisterQuery exposes accounts under "/accounts" and mints under "/mints".
func RegisterQuery(qr tradevault.QueryRouter) {
	NewAccountBucket().Register("accounts", qr)
	NewMintBucket().Register("mints", qr)
}

// TransferHandler moves funds between associated accounts.
type TransferHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ tradevault.Handler = TransferHandler{}

// NewTransferHandler creates a handler for TransferMsg
func NewTransferHandler(auth x.Authenticator, ctrl Controller) TransferHandler {
	return TransferHandler{auth: auth, ctrl: ctrl}
}

// Check just verifies it is properly formed and returns
// the cost of executing it
func (h TransferHandler) Check(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.CheckResult, error) {
	if _, err := h.validate(ctx, tx); err != nil {
		return nil, err
	}
	return &tradevault.CheckResult{GasAllocated: transferCost}, nil
}

// Deliver moves the funds if all preconditions are met. The destination
// account is created if missing.
func (h TransferHandler) Deliver(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.DeliverResult, error) {
	msg, err := h.validate(ctx, tx)
	if err != nil {
		return nil, err
	}
	from, err := AssociatedAddress(msg.Source, msg.Mint)
	if err != nil {
		return nil, err
	}
	to, err := h.ctrl.EnsureAssociated(db, msg.Destination, msg.Mint)
	if err != nil {
		return nil, errors.Wrap(err, "destination account")
	}
	if err := h.ctrl.Transfer(db, msg.Source, from, to, msg.Amount); err != nil {
		return nil, err
	}
	return &tradevault.DeliverResult{Data: to}, nil
}

func (h TransferHandler) validate(ctx tradevault.Context, tx tradevault.Tx) (*TransferMsg, error) {
	var msg TransferMsg
	if err := tradevault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "source signature missing")
	}
	if err := requireKeyOwner(msg.Destination); err != nil {
		return nil, errors.Wrap(err, "destination")
	}
	return &msg, nil
}

// MintHandler lets the mint authority create new supply.
type MintHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ tradevault.Handler = MintHandler{}

// NewMintHandler creates a handler for MintMsg
func NewMintHandler(auth x.Authenticator, ctrl Controller) MintHandler {
	return MintHandler{auth: auth, ctrl: ctrl}
}

func (h MintHandler) Check(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tradevault.CheckResult{GasAllocated: mintCost}, nil
}

func (h MintHandler) Deliver(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.DeliverResult, error) {
	msg, mint, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.MintTo(db, mint.Authority, msg.Mint, msg.Owner, msg.Amount); err != nil {
		return nil, err
	}
	return &tradevault.DeliverResult{}, nil
}

func (h MintHandler) validate(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*MintMsg, *Mint, error) {
	var msg MintMsg
	if err := tradevault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	if err := requireKeyOwner(msg.Owner); err != nil {
		return nil, nil, errors.Wrap(err, "owner")
	}
	mint, err := h.ctrl.GetMint(db, msg.Mint)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, mint.Authority) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "mint authority signature missing")
	}
	return &msg, mint, nil
}

// requireKeyOwner rejects owners that are not ed25519 public keys. Accounts
// owned by program derived addresses are only opened and funded by the
// owning program.
func requireKeyOwner(owner tradevault.Address) error {
	if !tradevault.IsOnCurve(owner) {
		return errors.Wrapf(errors.ErrInvalidInput, "%s is not a key address", owner)
	}
	return nil
}
