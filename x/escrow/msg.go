package escrow

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
)

const (
	pathMakeMsg   = "escrow/make"
	pathRefundMsg = "escrow/refund"
	pathTakeMsg   = "escrow/take"
)

var (
	_ tradevault.Msg = (*MakeMsg)(nil)
	_ tradevault.Msg = (*RefundMsg)(nil)
	_ tradevault.Msg = (*TakeMsg)(nil)
)

// MakeMsg opens a new escrow, locking Deposit of MintA and asking for
// Receive of MintB.
type MakeMsg struct {
	Metadata     *tradevault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Maker        tradevault.Address   `protobuf:"bytes,2,opt,name=maker,proto3,casttype=github.com/iov-one/tradevault.Address" json:"maker,omitempty"`
	Seed         uint64               `protobuf:"varint,3,opt,name=seed,proto3" json:"seed,omitempty"`
	Deposit      uint64               `protobuf:"varint,4,opt,name=deposit,proto3" json:"deposit,omitempty"`
	Receive      uint64               `protobuf:"varint,5,opt,name=receive,proto3" json:"receive,omitempty"`
	MintA        tradevault.Address   `protobuf:"bytes,6,opt,name=mint_a,json=mintA,proto3,casttype=github.com/iov-one/tradevault.Address" json:"mint_a,omitempty"`
	MintB        tradevault.Address   `protobuf:"bytes,7,opt,name=mint_b,json=mintB,proto3,casttype=github.com/iov-one/tradevault.Address" json:"mint_b,omitempty"`
	Counterparty tradevault.Address   `protobuf:"bytes,8,opt,name=counterparty,proto3,casttype=github.com/iov-one/tradevault.Address" json:"counterparty,omitempty"`
}

func (m *MakeMsg) Reset()         { *m = MakeMsg{} }
func (m *MakeMsg) String() string { return proto.CompactTextString(m) }
func (*MakeMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (MakeMsg) Path() string {
	return pathMakeMsg
}

// Validate makes sure that this is sensible.
func (m *MakeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	if err := m.MintA.Validate(); err != nil {
		return errors.Wrap(err, "mint a")
	}
	if err := m.MintB.Validate(); err != nil {
		return errors.Wrap(err, "mint b")
	}
	if m.Deposit == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "deposit must be positive")
	}
	if m.Receive == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "receive must be positive")
	}
	if len(m.Counterparty) != 0 {
		if err := m.Counterparty.Validate(); err != nil {
			return errors.Wrap(err, "counterparty")
		}
	}
	return nil
}

// RefundMsg returns the deposit to the maker and closes the escrow.
type RefundMsg struct {
	Metadata *tradevault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Maker    tradevault.Address   `protobuf:"bytes,2,opt,name=maker,proto3,casttype=github.com/iov-one/tradevault.Address" json:"maker,omitempty"`
	Seed     uint64               `protobuf:"varint,3,opt,name=seed,proto3" json:"seed,omitempty"`
}

func (m *RefundMsg) Reset()         { *m = RefundMsg{} }
func (m *RefundMsg) String() string { return proto.CompactTextString(m) }
func (*RefundMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (RefundMsg) Path() string {
	return pathRefundMsg
}

// Validate makes sure that this is sensible.
func (m *RefundMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	return nil
}

// TakeMsg pays the requested amount to the maker in exchange for the
// deposit and closes the escrow.
type TakeMsg struct {
	Metadata *tradevault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Taker    tradevault.Address   `protobuf:"bytes,2,opt,name=taker,proto3,casttype=github.com/iov-one/tradevault.Address" json:"taker,omitempty"`
	Maker    tradevault.Address   `protobuf:"bytes,3,opt,name=maker,proto3,casttype=github.com/iov-one/tradevault.Address" json:"maker,omitempty"`
	Seed     uint64               `protobuf:"varint,4,opt,name=seed,proto3" json:"seed,omitempty"`
}

func (m *TakeMsg) Reset()         { *m = TakeMsg{} }
func (m *TakeMsg) String() string { return proto.CompactTextString(m) }
func (*TakeMsg) ProtoMessage()    {}

// Path returns the routing path for this message.
func (TakeMsg) Path() string {
	return pathTakeMsg
}

// Validate makes sure that this is sensible.
func (m *TakeMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Taker.Validate(); err != nil {
		return errors.Wrap(err, "taker")
	}
	if err := m.Maker.Validate(); err != nil {
		return errors.Wrap(err, "maker")
	}
	return nil
}
