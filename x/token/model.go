package token

import (
	"regexp"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/orm"
)

const (
	// MintBucketName is where mints are stored, by mint address.
	MintBucketName = "mints"
	// AccountBucketName is where accounts are stored, by account address.
	AccountBucketName = "accounts"

	maxDecimals = 18
)

var isTicker = regexp.MustCompile(`^[A-Z0-9]{3,8}$`).MatchString

// Mint describes an asset.
type Mint struct {
	Metadata *tradevault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	// Authority is the only address allowed to create new supply.
	Authority tradevault.Address `protobuf:"bytes,2,opt,name=authority,proto3,casttype=github.com/iov-one/tradevault.Address" json:"authority,omitempty"`
	Decimals  uint32             `protobuf:"varint,3,opt,name=decimals,proto3" json:"decimals,omitempty"`
	// Supply is the sum of all account balances of this mint.
	Supply uint64 `protobuf:"varint,4,opt,name=supply,proto3" json:"supply,omitempty"`
	Ticker string `protobuf:"bytes,5,opt,name=ticker,proto3" json:"ticker,omitempty"`
}

func (m *Mint) Reset()         { *m = Mint{} }
func (m *Mint) String() string { return proto.CompactTextString(m) }
func (*Mint) ProtoMessage()    {}

// Validate returns an error if the mint is malformed.
func (m *Mint) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Authority.Validate(); err != nil {
		return errors.Wrap(err, "authority")
	}
	if m.Decimals > maxDecimals {
		return errors.Wrapf(errors.ErrInvalidModel, "decimals %d", m.Decimals)
	}
	if !isTicker(m.Ticker) {
		return errors.Wrapf(errors.ErrInvalidModel, "ticker %q", m.Ticker)
	}
	return nil
}

// Account holds a balance of a single mint.
type Account struct {
	Metadata *tradevault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Mint     tradevault.Address   `protobuf:"bytes,2,opt,name=mint,proto3,casttype=github.com/iov-one/tradevault.Address" json:"mint,omitempty"`
	// Owner is the only address that can move funds out of the account.
	Owner  tradevault.Address `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/tradevault.Address" json:"owner,omitempty"`
	Amount uint64             `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *Account) Reset()         { *m = Account{} }
func (m *Account) String() string { return proto.CompactTextString(m) }
func (*Account) ProtoMessage()    {}

// Validate returns an error if the account is malformed.
func (a *Account) Validate() error {
	if err := a.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := a.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := a.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	return nil
}

// NewMintBucket returns a bucket storing mints.
func NewMintBucket() orm.ModelBucket {
	return orm.NewModelBucket(MintBucketName, &Mint{})
}

// NewAccountBucket returns a bucket storing accounts.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket(AccountBucketName, &Account{})
}
