package escrow

import (
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/orm"
	"github.com/iov-one/tradevault/x"
	"github.com/iov-one/tradevault/x/token"
)

// Gas allocated on check. Refund and take only release what make stored.
const (
	makeEscrowCost   int64 = 300
	refundEscrowCost int64 = 0
	takeEscrowCost   int64 = 0
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r tradevault.Registry, auth x.Authenticator, ctrl token.Controller) {
	bucket := NewBucket()

	r.Handle(pathMakeMsg, MakeEscrowHandler{auth, bucket, ctrl})
	r.Handle(pathRefundMsg, RefundEscrowHandler{auth, bucket, ctrl})
	r.Handle(pathTakeMsg, TakeEscrowHandler{auth, bucket, ctrl})
}

// RegisterQuery will register this bucket as "/escrows"
func RegisterQuery(qr tradevault.QueryRouter) {
	NewBucket().Register("escrows", qr)
}

// MakeEscrowHandler opens a new escrow.
type MakeEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   token.Controller
}

var _ tradevault.Handler = MakeEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h MakeEscrowHandler) Check(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tradevault.CheckResult{GasAllocated: makeEscrowCost}, nil
}

// Deliver creates the vault and the escrow record and moves the deposit
// into the vault. The escrow address is returned as the result data.
func (h MakeEscrowHandler) Deliver(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.DeliverResult, error) {
	p, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	msg := p.msg

	if err := h.ctrl.CreateAccount(db, p.vault, p.escrow, msg.MintA); err != nil {
		return nil, errors.Wrap(err, "cannot create vault")
	}
	escrow := &Escrow{
		Metadata:     &tradevault.Metadata{Schema: 1},
		Seed:         msg.Seed,
		Maker:        msg.Maker,
		MintA:        msg.MintA,
		MintB:        msg.MintB,
		Receive:      msg.Receive,
		Bump:         uint32(p.bump),
		Counterparty: msg.Counterparty,
	}
	if err := h.bucket.Create(db, p.escrow, escrow); err != nil {
		return nil, errors.Wrap(err, "cannot store escrow")
	}
	if err := h.ctrl.Transfer(db, msg.Maker, p.source, p.vault, msg.Deposit); err != nil {
		return nil, errors.Wrap(err, "cannot deposit")
	}

	tradevault.GetLogger(ctx).Debug("escrow opened", "escrow", p.escrow, "maker", msg.Maker, "seed", msg.Seed)
	return &tradevault.DeliverResult{Data: p.escrow}, nil
}

// makePlan holds everything make needs, computed before any write.
type makePlan struct {
	msg    *MakeMsg
	escrow tradevault.Address
	bump   uint8
	vault  tradevault.Address
	source tradevault.Address
}

// validate does all common pre-processing between Check and Deliver. It
// never writes to the store.
func (h MakeEscrowHandler) validate(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*makePlan, error) {
	var msg MakeMsg
	if err := tradevault.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Maker) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "maker signature missing")
	}
	if _, err := h.ctrl.GetMint(db, msg.MintA); err != nil {
		return nil, errors.Wrap(err, "mint a")
	}
	if _, err := h.ctrl.GetMint(db, msg.MintB); err != nil {
		return nil, errors.Wrap(err, "mint b")
	}

	escrow, bump, err := EscrowAddress(msg.Maker, msg.Seed)
	if err != nil {
		return nil, err
	}
	switch ok, err := h.bucket.Has(db, escrow); {
	case err != nil:
		return nil, err
	case ok:
		return nil, errors.Wrapf(errors.ErrAlreadyExists, "escrow %s", escrow)
	}

	vault, err := VaultAddress(escrow, msg.MintA)
	if err != nil {
		return nil, err
	}
	switch _, err := h.ctrl.GetAccount(db, vault); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrAlreadyExists, "vault %s", vault)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	source, err := token.AssociatedAddress(msg.Maker, msg.MintA)
	if err != nil {
		return nil, err
	}
	balance, err := h.ctrl.Balance(db, source)
	if err != nil {
		return nil, err
	}
	if balance < msg.Deposit {
		return nil, errors.Wrapf(errors.ErrInsufficientBalance, "maker has %d, deposit is %d", balance, msg.Deposit)
	}

	plan := makePlan{
		msg:    &msg,
		escrow: escrow,
		bump:   bump,
		vault:  vault,
		source: source,
	}
	return &plan, nil
}

// RefundEscrowHandler returns the deposit to the maker.
type RefundEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   token.Controller
}

var _ tradevault.Handler = RefundEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h RefundEscrowHandler) Check(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tradevault.CheckResult{GasAllocated: refundEscrowCost}, nil
}

// Deliver moves the whole vault balance back to the maker, closes the vault
// and deletes the escrow.
func (h RefundEscrowHandler) Deliver(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.DeliverResult, error) {
	addr, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := release(db, h.ctrl, h.bucket, addr, escrow, escrow.Maker); err != nil {
		return nil, err
	}
	tradevault.GetLogger(ctx).Debug("escrow refunded", "escrow", addr, "maker", escrow.Maker)
	return &tradevault.DeliverResult{Data: addr}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h RefundEscrowHandler) validate(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (tradevault.Address, *Escrow, error) {
	var msg RefundMsg
	if err := tradevault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	addr, escrow, err := loadEscrow(db, h.bucket, msg.Maker, msg.Seed)
	if err != nil {
		return nil, nil, err
	}
	if !h.auth.HasAddress(ctx, escrow.Maker) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "maker signature missing")
	}
	if err := verifyAddress(addr, escrow); err != nil {
		return nil, nil, err
	}
	return addr, escrow, nil
}

// TakeEscrowHandler settles the escrow.
type TakeEscrowHandler struct {
	auth   x.Authenticator
	bucket orm.ModelBucket
	ctrl   token.Controller
}

var _ tradevault.Handler = TakeEscrowHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h TakeEscrowHandler) Check(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &tradevault.CheckResult{GasAllocated: takeEscrowCost}, nil
}

// Deliver pays the maker, hands the vault content to the taker, closes the
// vault and deletes the escrow.
func (h TakeEscrowHandler) Deliver(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.DeliverResult, error) {
	msg, addr, escrow, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	payer, err := token.AssociatedAddress(msg.Taker, escrow.MintB)
	if err != nil {
		return nil, err
	}
	payee, err := h.ctrl.EnsureAssociated(db, escrow.Maker, escrow.MintB)
	if err != nil {
		return nil, errors.Wrap(err, "maker account")
	}
	if err := h.ctrl.Transfer(db, msg.Taker, payer, payee, escrow.Receive); err != nil {
		return nil, errors.Wrap(err, "cannot pay maker")
	}
	if err := release(db, h.ctrl, h.bucket, addr, escrow, msg.Taker); err != nil {
		return nil, err
	}

	tradevault.GetLogger(ctx).Debug("escrow taken", "escrow", addr, "taker", msg.Taker)
	return &tradevault.DeliverResult{Data: addr}, nil
}

// validate does all common pre-processing between Check and Deliver.
func (h TakeEscrowHandler) validate(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*TakeMsg, tradevault.Address, *Escrow, error) {
	var msg TakeMsg
	if err := tradevault.LoadMsg(tx, &msg); err != nil {
		return nil, nil, nil, errors.Wrap(err, "load msg")
	}
	addr, escrow, err := loadEscrow(db, h.bucket, msg.Maker, msg.Seed)
	if err != nil {
		return nil, nil, nil, err
	}
	if !h.auth.HasAddress(ctx, msg.Taker) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "taker signature missing")
	}
	if len(escrow.Counterparty) != 0 && !escrow.Counterparty.Equals(msg.Taker) {
		return nil, nil, nil, errors.Wrap(errors.ErrUnauthorized, "reserved for another counterparty")
	}
	if err := verifyAddress(addr, escrow); err != nil {
		return nil, nil, nil, err
	}

	payer, err := token.AssociatedAddress(msg.Taker, escrow.MintB)
	if err != nil {
		return nil, nil, nil, err
	}
	balance, err := h.ctrl.Balance(db, payer)
	if err != nil {
		return nil, nil, nil, err
	}
	if balance < escrow.Receive {
		return nil, nil, nil, errors.Wrapf(errors.ErrInsufficientBalance, "taker has %d, receive is %d", balance, escrow.Receive)
	}
	return &msg, addr, escrow, nil
}

// loadEscrow derives the escrow address and loads the record stored there.
func loadEscrow(db tradevault.ReadOnlyKVStore, bucket orm.ModelBucket, maker tradevault.Address, seed uint64) (tradevault.Address, *Escrow, error) {
	addr, _, err := EscrowAddress(maker, seed)
	if err != nil {
		return nil, nil, err
	}
	var escrow Escrow
	if err := bucket.One(db, addr, &escrow); err != nil {
		return nil, nil, errors.Wrap(err, "cannot load escrow from the store")
	}
	return addr, &escrow, nil
}

// release moves the whole vault balance to the associated account of
// recipient, closes the vault and deletes the escrow record. The escrow
// address authorizes the vault operations.
func release(db tradevault.KVStore, ctrl token.Controller, bucket orm.ModelBucket, addr tradevault.Address, escrow *Escrow, recipient tradevault.Address) error {
	vault, err := VaultAddress(addr, escrow.MintA)
	if err != nil {
		return err
	}
	amount, err := ctrl.Balance(db, vault)
	if err != nil {
		return err
	}
	dst, err := ctrl.EnsureAssociated(db, recipient, escrow.MintA)
	if err != nil {
		return errors.Wrap(err, "recipient account")
	}
	if err := ctrl.Transfer(db, addr, vault, dst, amount); err != nil {
		return errors.Wrap(err, "cannot empty vault")
	}
	if err := ctrl.CloseAccount(db, addr, vault); err != nil {
		return errors.Wrap(err, "cannot close vault")
	}
	if err := bucket.Delete(db, addr); err != nil {
		return errors.Wrap(err, "cannot delete escrow")
	}
	return nil
}
