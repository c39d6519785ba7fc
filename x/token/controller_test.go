package token

import (
	"math"
	"testing"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/store"
	"github.com/iov-one/tradevault/tradetest"
	"github.com/iov-one/tradevault/tradetest/assert"
)

// createMint registers a fresh mint controlled by authority.
func createMint(t testing.TB, db tradevault.KVStore, ctrl Controller, authority tradevault.Address) tradevault.Address {
	t.Helper()
	mint := tradetest.NewMint()
	m := Mint{
		Metadata:  &tradevault.Metadata{Schema: 1},
		Authority: authority,
		Decimals:  6,
		Ticker:    "TKN",
	}
	if err := ctrl.CreateMint(db, mint, &m); err != nil {
		t.Fatalf("cannot create mint: %s", err)
	}
	return mint
}

func TestAssociatedAddress(t *testing.T) {
	owner := tradetest.NewSigner()
	mint := tradetest.NewMint()

	a1, err := AssociatedAddress(owner, mint)
	assert.Nil(t, err)
	a2, err := AssociatedAddress(owner, mint)
	assert.Nil(t, err)
	assert.Equal(t, a1, a2)
	if tradevault.IsOnCurve(a1) {
		t.Fatal("associated address must not be a valid public key")
	}

	other, err := AssociatedAddress(tradetest.NewSigner(), mint)
	assert.Nil(t, err)
	if other.Equals(a1) {
		t.Fatal("different owners must have different accounts")
	}

	_, err = AssociatedAddress(nil, mint)
	assert.IsErr(t, errors.ErrEmpty, err)
}

func TestMintTo(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	authority := tradetest.NewSigner()
	owner := tradetest.NewSigner()
	mint := createMint(t, db, ctrl, authority)

	assert.Nil(t, ctrl.MintTo(db, authority, mint, owner, 500))
	assert.Nil(t, ctrl.MintTo(db, authority, mint, owner, 250))

	addr, err := AssociatedAddress(owner, mint)
	assert.Nil(t, err)
	bal, err := ctrl.Balance(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, uint64(750), bal)

	m, err := ctrl.GetMint(db, mint)
	assert.Nil(t, err)
	assert.Equal(t, uint64(750), m.Supply)

	err = ctrl.MintTo(db, owner, mint, owner, 1)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	err = ctrl.MintTo(db, authority, mint, owner, math.MaxUint64)
	assert.IsErr(t, errors.ErrOverflow, err)

	err = ctrl.MintTo(db, authority, tradetest.NewMint(), owner, 1)
	assert.IsErr(t, errors.ErrNotFound, err)
}

func TestCreateAccount(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	owner := tradetest.NewSigner()
	mint := createMint(t, db, ctrl, tradetest.NewSigner())

	addr := tradetest.NewMint()
	assert.Nil(t, ctrl.CreateAccount(db, addr, owner, mint))

	err := ctrl.CreateAccount(db, addr, owner, mint)
	assert.IsErr(t, errors.ErrAlreadyExists, err)

	err = ctrl.CreateAccount(db, tradetest.NewMint(), owner, tradetest.NewMint())
	assert.IsErr(t, errors.ErrNotFound, err)

	acc, err := ctrl.GetAccount(db, addr)
	assert.Nil(t, err)
	assert.Equal(t, owner, acc.Owner)
	assert.Equal(t, mint, acc.Mint)
	assert.Equal(t, uint64(0), acc.Amount)

	// Balance of a missing account is zero, not an error.
	bal, err := ctrl.Balance(db, tradetest.NewMint())
	assert.Nil(t, err)
	assert.Equal(t, uint64(0), bal)

	assoc, err := ctrl.EnsureAssociated(db, owner, mint)
	assert.Nil(t, err)
	again, err := ctrl.EnsureAssociated(db, owner, mint)
	assert.Nil(t, err)
	assert.Equal(t, assoc, again)
}

func TestTransfer(t *testing.T) {
	authority := tradetest.NewSigner()
	alice := tradetest.NewSigner()
	bob := tradetest.NewSigner()

	cases := map[string]struct {
		authority func(alice tradevault.Address) tradevault.Address
		// otherMint sends to a bob account of a different mint.
		otherMint bool
		// missingDst sends to an account that was never created.
		missingDst bool
		amount     uint64
		wantErr    *errors.Error
		wantAlice  uint64
		wantBob    uint64
	}{
		"full balance": {
			authority: func(a tradevault.Address) tradevault.Address { return a },
			amount:    1000,
			wantAlice: 0,
			wantBob:   1000,
		},
		"partial": {
			authority: func(a tradevault.Address) tradevault.Address { return a },
			amount:    300,
			wantAlice: 700,
			wantBob:   300,
		},
		"not the owner": {
			authority: func(tradevault.Address) tradevault.Address { return bob },
			amount:    1,
			wantErr:   errors.ErrUnauthorized,
			wantAlice: 1000,
		},
		"insufficient funds": {
			authority: func(a tradevault.Address) tradevault.Address { return a },
			amount:    1001,
			wantErr:   errors.ErrInsufficientBalance,
			wantAlice: 1000,
		},
		"mint mismatch": {
			authority: func(a tradevault.Address) tradevault.Address { return a },
			otherMint: true,
			amount:    1,
			wantErr:   errors.ErrInvalidInput,
			wantAlice: 1000,
		},
		"missing destination": {
			authority:  func(a tradevault.Address) tradevault.Address { return a },
			missingDst: true,
			amount:     1,
			wantErr:    errors.ErrNotFound,
			wantAlice:  1000,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController()
			mint := createMint(t, db, ctrl, authority)
			assert.Nil(t, ctrl.MintTo(db, authority, mint, alice, 1000))

			from, err := AssociatedAddress(alice, mint)
			assert.Nil(t, err)
			to, err := ctrl.EnsureAssociated(db, bob, mint)
			assert.Nil(t, err)
			dst := to
			if tc.otherMint {
				other := createMint(t, db, ctrl, authority)
				dst, err = ctrl.EnsureAssociated(db, bob, other)
				assert.Nil(t, err)
			}
			if tc.missingDst {
				dst = tradetest.NewMint()
			}

			err = ctrl.Transfer(db, tc.authority(alice), from, dst, tc.amount)
			if tc.wantErr != nil {
				assert.IsErr(t, tc.wantErr, err)
			} else {
				assert.Nil(t, err)
			}

			got, err := ctrl.Balance(db, from)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantAlice, got)
			got, err = ctrl.Balance(db, to)
			assert.Nil(t, err)
			assert.Equal(t, tc.wantBob, got)

			// Transfers never change the supply.
			m, err := ctrl.GetMint(db, mint)
			assert.Nil(t, err)
			assert.Equal(t, uint64(1000), m.Supply)
		})
	}
}

func TestCloseAccount(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController()
	authority := tradetest.NewSigner()
	owner := tradetest.NewSigner()
	mint := createMint(t, db, ctrl, authority)
	assert.Nil(t, ctrl.MintTo(db, authority, mint, owner, 10))
	addr, err := AssociatedAddress(owner, mint)
	assert.Nil(t, err)

	err = ctrl.CloseAccount(db, tradetest.NewSigner(), addr)
	assert.IsErr(t, errors.ErrUnauthorized, err)

	err = ctrl.CloseAccount(db, owner, addr)
	assert.IsErr(t, errors.ErrInvalidState, err)

	sink, err := ctrl.EnsureAssociated(db, authority, mint)
	assert.Nil(t, err)
	assert.Nil(t, ctrl.Transfer(db, owner, addr, sink, 10))
	assert.Nil(t, ctrl.CloseAccount(db, owner, addr))

	_, err = ctrl.GetAccount(db, addr)
	assert.IsErr(t, errors.ErrNotFound, err)
	err = ctrl.CloseAccount(db, owner, addr)
	assert.IsErr(t, errors.ErrNotFound, err)
}
