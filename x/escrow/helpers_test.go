package escrow

import (
	"context"
	"testing"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/store"
	"github.com/iov-one/tradevault/tradetest"
	"github.com/iov-one/tradevault/x/token"
)

// fixture is a store with two mints and two funded parties.
type fixture struct {
	db    store.CacheableKVStore
	ctrl  token.BaseController
	mintA tradevault.Address
	mintB tradevault.Address
	maker tradevault.Address
	taker tradevault.Address
}

func newFixture(t testing.TB, makerA, takerB uint64) *fixture {
	t.Helper()
	f := &fixture{
		db:    store.MemStore(),
		ctrl:  token.NewController(),
		mintA: tradetest.NewMint(),
		mintB: tradetest.NewMint(),
		maker: tradetest.NewSigner(),
		taker: tradetest.NewSigner(),
	}
	authority := tradetest.NewSigner()
	for _, mint := range []tradevault.Address{f.mintA, f.mintB} {
		m := token.Mint{
			Metadata:  &tradevault.Metadata{Schema: 1},
			Authority: authority,
			Ticker:    "TKN",
		}
		if err := f.ctrl.CreateMint(f.db, mint, &m); err != nil {
			t.Fatalf("cannot create mint: %s", err)
		}
	}
	if makerA > 0 {
		if err := f.ctrl.MintTo(f.db, authority, f.mintA, f.maker, makerA); err != nil {
			t.Fatalf("cannot fund maker: %s", err)
		}
	}
	if takerB > 0 {
		if err := f.ctrl.MintTo(f.db, authority, f.mintB, f.taker, takerB); err != nil {
			t.Fatalf("cannot fund taker: %s", err)
		}
	}
	return f
}

func (f *fixture) balance(t testing.TB, owner, mint tradevault.Address) uint64 {
	t.Helper()
	addr, err := token.AssociatedAddress(owner, mint)
	if err != nil {
		t.Fatalf("associated address: %s", err)
	}
	bal, err := f.ctrl.Balance(f.db, addr)
	if err != nil {
		t.Fatalf("balance: %s", err)
	}
	return bal
}

func (f *fixture) makeMsg(seed, deposit, receive uint64) *MakeMsg {
	return &MakeMsg{
		Metadata: &tradevault.Metadata{Schema: 1},
		Maker:    f.maker,
		Seed:     seed,
		Deposit:  deposit,
		Receive:  receive,
		MintA:    f.mintA,
		MintB:    f.mintB,
	}
}

func (f *fixture) refundMsg(seed uint64) *RefundMsg {
	return &RefundMsg{
		Metadata: &tradevault.Metadata{Schema: 1},
		Maker:    f.maker,
		Seed:     seed,
	}
}

func (f *fixture) takeMsg(taker tradevault.Address, seed uint64) *TakeMsg {
	return &TakeMsg{
		Metadata: &tradevault.Metadata{Schema: 1},
		Taker:    taker,
		Maker:    f.maker,
		Seed:     seed,
	}
}

// deliver runs the message through the escrow routes, authenticated as
// signer.
func (f *fixture) deliver(signer tradevault.Address, msg tradevault.Msg) (*tradevault.DeliverResult, error) {
	h := handlerFor(msg, &tradetest.Auth{Signer: signer}, f.ctrl)
	return h.Deliver(context.Background(), f.db, &tradetest.Tx{Msg: msg})
}

func (f *fixture) check(signer tradevault.Address, msg tradevault.Msg) (*tradevault.CheckResult, error) {
	h := handlerFor(msg, &tradetest.Auth{Signer: signer}, f.ctrl)
	return h.Check(context.Background(), f.db, &tradetest.Tx{Msg: msg})
}

// routes collects registered handlers by path.
type routes map[string]tradevault.Handler

func (r routes) Handle(path string, h tradevault.Handler) {
	r[path] = h
}

func handlerFor(msg tradevault.Msg, auth *tradetest.Auth, ctrl token.Controller) tradevault.Handler {
	r := make(routes)
	RegisterRoutes(r, auth, ctrl)
	return r[msg.Path()]
}

// escrowExists returns true if both the record and the vault are stored.
// It fails the test if only one of them exists.
func (f *fixture) escrowExists(t testing.TB, seed uint64) bool {
	t.Helper()
	addr, _, err := EscrowAddress(f.maker, seed)
	if err != nil {
		t.Fatalf("escrow address: %s", err)
	}
	record, err := NewBucket().Has(f.db, addr)
	if err != nil {
		t.Fatalf("escrow lookup: %s", err)
	}
	vaultAddr, err := VaultAddress(addr, f.mintA)
	if err != nil {
		t.Fatalf("vault address: %s", err)
	}
	var vault bool
	switch _, err := f.ctrl.GetAccount(f.db, vaultAddr); {
	case err == nil:
		vault = true
	case !errors.ErrNotFound.Is(err):
		t.Fatalf("vault lookup: %s", err)
	}
	if record != vault {
		t.Fatalf("record exists %v while vault exists %v", record, vault)
	}
	return record
}
