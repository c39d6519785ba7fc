package escrow

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/orm"
)

// BucketName is where escrows are stored, by escrow address.
const BucketName = "escrow"

// Escrow is the record of an open escrow.
type Escrow struct {
	Metadata *tradevault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Seed     uint64               `protobuf:"varint,2,opt,name=seed,proto3" json:"seed,omitempty"`
	// Maker opened the escrow and is the only one allowed to refund it.
	Maker tradevault.Address `protobuf:"bytes,3,opt,name=maker,proto3,casttype=github.com/iov-one/tradevault.Address" json:"maker,omitempty"`
	// MintA is the asset held in the vault.
	MintA tradevault.Address `protobuf:"bytes,4,opt,name=mint_a,json=mintA,proto3,casttype=github.com/iov-one/tradevault.Address" json:"mint_a,omitempty"`
	// MintB is the asset the maker wants in return.
	MintB tradevault.Address `protobuf:"bytes,5,opt,name=mint_b,json=mintB,proto3,casttype=github.com/iov-one/tradevault.Address" json:"mint_b,omitempty"`
	// Receive is the amount of MintB required to take the escrow.
	Receive uint64 `protobuf:"varint,6,opt,name=receive,proto3" json:"receive,omitempty"`
	// Bump recreates the escrow address without searching.
	Bump uint32 `protobuf:"varint,7,opt,name=bump,proto3" json:"bump,omitempty"`
	// Counterparty if set is the only one allowed to take the escrow.
	Counterparty tradevault.Address `protobuf:"bytes,8,opt,name=counterparty,proto3,casttype=github.com/iov-one/tradevault.Address" json:"counterparty,omitempty"`
}

func (m *Escrow) Reset()         { *m = Escrow{} }
func (m *Escrow) String() string { return proto.CompactTextString(m) }
func (*Escrow) ProtoMessage()    {}

// Validate ensures the escrow is valid.
func (e *Escrow) Validate() error {
	if err := e.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := e.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if err := e.MintA.Validate(); err != nil {
		return errors.Wrap(err, "mint a")
	}
	if err := e.MintB.Validate(); err != nil {
		return errors.Wrap(err, "mint b")
	}
	if e.Receive == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "receive")
	}
	if e.Bump > 255 {
		return errors.Wrapf(errors.ErrInvalidModel, "bump %d", e.Bump)
	}
	if len(e.Counterparty) != 0 {
		if err := e.Counterparty.Validate(); err != nil {
			return errors.Wrap(err, "counterparty")
		}
	}
	return nil
}

// NewBucket returns a bucket for storing escrows.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Escrow{})
}
