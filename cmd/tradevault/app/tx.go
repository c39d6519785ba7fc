package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/crypto"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/x/escrow"
	"github.com/iov-one/tradevault/x/sigs"
	"github.com/iov-one/tradevault/x/token"
)

// Tx is the transaction envelope of the tradevault chain. Exactly one of the
// message fields must be set.
type Tx struct {
	Signatures  []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`
	MakeMsg     *escrow.MakeMsg      `protobuf:"bytes,10,opt,name=make_msg,json=makeMsg,proto3" json:"make_msg,omitempty"`
	RefundMsg   *escrow.RefundMsg    `protobuf:"bytes,11,opt,name=refund_msg,json=refundMsg,proto3" json:"refund_msg,omitempty"`
	TakeMsg     *escrow.TakeMsg      `protobuf:"bytes,12,opt,name=take_msg,json=takeMsg,proto3" json:"take_msg,omitempty"`
	TransferMsg *token.TransferMsg   `protobuf:"bytes,20,opt,name=transfer_msg,json=transferMsg,proto3" json:"transfer_msg,omitempty"`
	MintMsg     *token.MintMsg       `protobuf:"bytes,21,opt,name=mint_msg,json=mintMsg,proto3" json:"mint_msg,omitempty"`
}

func (m *Tx) Reset()         { *m = Tx{} }
func (m *Tx) String() string { return proto.CompactTextString(m) }
func (*Tx) ProtoMessage()    {}

// make sure tx fulfills all interfaces
var _ tradevault.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(bz []byte) (tradevault.Tx, error) {
	tx := new(Tx)
	if err := proto.Unmarshal(bz, tx); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return tx, nil
}

// NewTx wraps given message into a transaction envelope.
func NewTx(msg tradevault.Msg) (*Tx, error) {
	tx := new(Tx)
	switch m := msg.(type) {
	case *escrow.MakeMsg:
		tx.MakeMsg = m
	case *escrow.RefundMsg:
		tx.RefundMsg = m
	case *escrow.TakeMsg:
		tx.TakeMsg = m
	case *token.TransferMsg:
		tx.TransferMsg = m
	case *token.MintMsg:
		tx.MintMsg = m
	default:
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "unsupported message %T", msg)
	}
	return tx, nil
}

// GetMsg returns the single message carried by this transaction.
func (tx *Tx) GetMsg() (tradevault.Msg, error) {
	var found []tradevault.Msg
	if tx.MakeMsg != nil {
		found = append(found, tx.MakeMsg)
	}
	if tx.RefundMsg != nil {
		found = append(found, tx.RefundMsg)
	}
	if tx.TakeMsg != nil {
		found = append(found, tx.TakeMsg)
	}
	if tx.TransferMsg != nil {
		found = append(found, tx.TransferMsg)
	}
	if tx.MintMsg != nil {
		found = append(found, tx.MintMsg)
	}

	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		return nil, errors.Wrap(errors.ErrInvalidMsg, "no message")
	default:
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "%d messages in one transaction", len(found))
	}
}

// GetSignatures returns the signatures on the tx
func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the bytes to sign...
func (tx *Tx) GetSignBytes() ([]byte, error) {
	// temporarily unset the signatures, as the sign bytes
	// should only come from the data itself, not previous signatures
	sigs := tx.Signatures
	tx.Signatures = nil

	bz, err := proto.Marshal(tx)

	// reset the signatures after calculating the bytes
	tx.Signatures = sigs
	return bz, err
}

// Sign appends the signature of signer for the given sequence.
func (tx *Tx) Sign(signer crypto.Signer, chainID string, seq int64) error {
	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	if err != nil {
		return errors.Wrap(err, "sign")
	}
	tx.Signatures = append(tx.Signatures, sig)
	return nil
}
