package token

import (
	"math"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/orm"
)

// Controller is the functionality needed by other extensions to hold and
// move funds. Every method that moves funds out of an account requires the
// caller to name the account owner as the authority.
type Controller interface {
	// GetMint returns the mint stored at given address.
	GetMint(db tradevault.ReadOnlyKVStore, mint tradevault.Address) (*Mint, error)
	// CreateMint registers a new mint. The mint starts with zero supply.
	CreateMint(db tradevault.KVStore, addr tradevault.Address, m *Mint) error
	// MintTo creates amount of new tokens in the associated account of
	// the owner. Only the mint authority can do this.
	MintTo(db tradevault.KVStore, authority, mint, owner tradevault.Address, amount uint64) error

	// GetAccount returns the account stored at given address.
	GetAccount(db tradevault.ReadOnlyKVStore, addr tradevault.Address) (*Account, error)
	// CreateAccount creates an empty account at given address. It fails
	// if the address is taken or the mint does not exist.
	CreateAccount(db tradevault.KVStore, addr, owner, mint tradevault.Address) error
	// EnsureAssociated returns the associated account address of owner
	// for given mint, creating an empty account if none exists.
	EnsureAssociated(db tradevault.KVStore, owner, mint tradevault.Address) (tradevault.Address, error)
	// Balance returns the amount held by the account at given address.
	// A missing account holds nothing.
	Balance(db tradevault.ReadOnlyKVStore, addr tradevault.Address) (uint64, error)
	// Transfer moves amount between two accounts of the same mint.
	Transfer(db tradevault.KVStore, authority, from, to tradevault.Address, amount uint64) error
	// CloseAccount deletes an empty account.
	CloseAccount(db tradevault.KVStore, authority, addr tradevault.Address) error
}

// BaseController is the default Controller implementation, storing mints
// and accounts in model buckets.
type BaseController struct {
	mints    orm.ModelBucket
	accounts orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller using the default buckets.
func NewController() BaseController {
	return BaseController{
		mints:    NewMintBucket(),
		accounts: NewAccountBucket(),
	}
}

func (c BaseController) GetMint(db tradevault.ReadOnlyKVStore, mint tradevault.Address) (*Mint, error) {
	var m Mint
	if err := c.mints.One(db, mint, &m); err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	return &m, nil
}

func (c BaseController) CreateMint(db tradevault.KVStore, addr tradevault.Address, m *Mint) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "mint address")
	}
	if m.Supply != 0 {
		return errors.Wrap(errors.ErrInvalidModel, "new mint must have no supply")
	}
	return c.mints.Create(db, addr, m)
}

func (c BaseController) MintTo(db tradevault.KVStore, authority, mint, owner tradevault.Address, amount uint64) error {
	m, err := c.GetMint(db, mint)
	if err != nil {
		return err
	}
	if !m.Authority.Equals(authority) {
		return errors.Wrap(errors.ErrUnauthorized, "not the mint authority")
	}
	if amount > math.MaxUint64-m.Supply {
		return errors.Wrap(errors.ErrOverflow, "supply")
	}
	addr, err := c.EnsureAssociated(db, owner, mint)
	if err != nil {
		return err
	}
	acc, err := c.GetAccount(db, addr)
	if err != nil {
		return err
	}
	// Account amount never exceeds the supply, so it cannot overflow here.
	acc.Amount += amount
	m.Supply += amount
	if err := c.accounts.Put(db, addr, acc); err != nil {
		return errors.Wrap(err, "cannot save account")
	}
	if err := c.mints.Put(db, mint, m); err != nil {
		return errors.Wrap(err, "cannot save mint")
	}
	return nil
}

func (c BaseController) GetAccount(db tradevault.ReadOnlyKVStore, addr tradevault.Address) (*Account, error) {
	var acc Account
	if err := c.accounts.One(db, addr, &acc); err != nil {
		return nil, errors.Wrap(err, "account")
	}
	return &acc, nil
}

func (c BaseController) CreateAccount(db tradevault.KVStore, addr, owner, mint tradevault.Address) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "account address")
	}
	switch ok, err := c.mints.Has(db, mint); {
	case err != nil:
		return err
	case !ok:
		return errors.Wrapf(errors.ErrNotFound, "mint %s", mint)
	}
	acc := Account{
		Metadata: &tradevault.Metadata{Schema: 1},
		Mint:     mint,
		Owner:    owner,
	}
	return c.accounts.Create(db, addr, &acc)
}

func (c BaseController) EnsureAssociated(db tradevault.KVStore, owner, mint tradevault.Address) (tradevault.Address, error) {
	addr, err := AssociatedAddress(owner, mint)
	if err != nil {
		return nil, err
	}
	switch ok, err := c.accounts.Has(db, addr); {
	case err != nil:
		return nil, err
	case ok:
		return addr, nil
	}
	if err := c.CreateAccount(db, addr, owner, mint); err != nil {
		return nil, err
	}
	return addr, nil
}

func (c BaseController) Balance(db tradevault.ReadOnlyKVStore, addr tradevault.Address) (uint64, error) {
	switch acc, err := c.GetAccount(db, addr); {
	case err == nil:
		return acc.Amount, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}

func (c BaseController) Transfer(db tradevault.KVStore, authority, from, to tradevault.Address, amount uint64) error {
	src, err := c.GetAccount(db, from)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if !src.Owner.Equals(authority) {
		return errors.Wrap(errors.ErrUnauthorized, "not the source owner")
	}
	dst, err := c.GetAccount(db, to)
	if err != nil {
		return errors.Wrap(err, "destination")
	}
	if !src.Mint.Equals(dst.Mint) {
		return errors.Wrapf(errors.ErrInvalidInput, "mint mismatch %s != %s", src.Mint, dst.Mint)
	}
	if src.Amount < amount {
		return errors.Wrapf(errors.ErrInsufficientBalance, "has %d, needs %d", src.Amount, amount)
	}
	if from.Equals(to) {
		return nil
	}
	if dst.Amount > math.MaxUint64-amount {
		return errors.Wrap(errors.ErrOverflow, "destination amount")
	}

	src.Amount -= amount
	dst.Amount += amount
	if err := c.accounts.Put(db, from, src); err != nil {
		return errors.Wrap(err, "cannot save source")
	}
	if err := c.accounts.Put(db, to, dst); err != nil {
		return errors.Wrap(err, "cannot save destination")
	}
	return nil
}

func (c BaseController) CloseAccount(db tradevault.KVStore, authority, addr tradevault.Address) error {
	acc, err := c.GetAccount(db, addr)
	if err != nil {
		return err
	}
	if !acc.Owner.Equals(authority) {
		return errors.Wrap(errors.ErrUnauthorized, "not the account owner")
	}
	if acc.Amount != 0 {
		return errors.Wrapf(errors.ErrInvalidState, "account holds %d", acc.Amount)
	}
	return c.accounts.Delete(db, addr)
}
