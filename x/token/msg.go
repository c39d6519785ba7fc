package token

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
)

const (
	pathTransferMsg = "token/transfer"
	pathMintMsg     = "token/mint"
)

// TransferMsg moves funds of a mint from the associated account of the
// source to the associated account of the destination. The source must
// sign. The destination account is created when missing.
type TransferMsg struct {
	Metadata    *tradevault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Mint        tradevault.Address   `protobuf:"bytes,2,opt,name=mint,proto3,casttype=github.com/iov-one/tradevault.Address" json:"mint,omitempty"`
	Source      tradevault.Address   `protobuf:"bytes,3,opt,name=source,proto3,casttype=github.com/iov-one/tradevault.Address" json:"source,omitempty"`
	Destination tradevault.Address   `protobuf:"bytes,4,opt,name=destination,proto3,casttype=github.com/iov-one/tradevault.Address" json:"destination,omitempty"`
	Amount      uint64               `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *TransferMsg) Reset()         { *m = TransferMsg{} }
func (m *TransferMsg) String() string { return proto.CompactTextString(m) }
func (*TransferMsg) ProtoMessage()    {}

var _ tradevault.Msg = (*TransferMsg)(nil)

// Path returns the routing path for this message.
func (TransferMsg) Path() string {
	return pathTransferMsg
}

// Validate makes sure that this is sensible.
func (m *TransferMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := m.Source.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := m.Destination.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "non-positive transfer")
	}
	return nil
}

// MintMsg creates new tokens in the associated account of the owner. The
// mint authority must sign.
type MintMsg struct {
	Metadata *tradevault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Mint     tradevault.Address   `protobuf:"bytes,2,opt,name=mint,proto3,casttype=github.com/iov-one/tradevault.Address" json:"mint,omitempty"`
	Owner    tradevault.Address   `protobuf:"bytes,3,opt,name=owner,proto3,casttype=github.com/iov-one/tradevault.Address" json:"owner,omitempty"`
	Amount   uint64               `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

func (m *MintMsg) Reset()         { *m = MintMsg{} }
func (m *MintMsg) String() string { return proto.CompactTextString(m) }
func (*MintMsg) ProtoMessage()    {}

var _ tradevault.Msg = (*MintMsg)(nil)

// Path returns the routing path for this message.
func (MintMsg) Path() string {
	return pathMintMsg
}

// Validate makes sure that this is sensible.
func (m *MintMsg) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if err := m.Mint.Validate(); err != nil {
		return errors.Wrap(err, "mint")
	}
	if err := m.Owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if m.Amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "non-positive amount")
	}
	return nil
}
