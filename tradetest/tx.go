package tradetest

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
)

// Tx represents a transaction carrying a single message.
type Tx struct {
	// Msg is the message that is to be processed by this transaction.
	Msg tradevault.Msg
	// Err if set is returned by any method call.
	Err error
}

var _ tradevault.Tx = (*Tx)(nil)

func (tx *Tx) GetMsg() (tradevault.Msg, error) {
	return tx.Msg, tx.Err
}

// Msg is a message that routes to any configured path.
type Msg struct {
	// RoutePath returned by the path method, consumed by the router.
	RoutePath string `protobuf:"bytes,1,opt,name=route_path,proto3" json:"route_path,omitempty"`
	// Err if set is returned by Validate. It is never serialized, so a
	// Msg with an error can be encoded but not decoded.
	Err error `json:"-"`
}

var _ tradevault.Msg = (*Msg)(nil)

func (m *Msg) Reset()         { *m = Msg{} }
func (m *Msg) String() string { return proto.CompactTextString(m) }
func (*Msg) ProtoMessage()    {}

func (m *Msg) Path() string {
	return m.RoutePath
}

func (m *Msg) Validate() error {
	return m.Err
}
