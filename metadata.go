package tradevault

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault/errors"
)

// Metadata is carried by every model and message. Schema is the version of
// the entity format and must be set.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

func (m *Metadata) Reset()         { *m = Metadata{} }
func (m *Metadata) String() string { return proto.CompactTextString(m) }
func (*Metadata) ProtoMessage()    {}

// Validate returns an error if the metadata is missing or has no schema.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrEmpty, "metadata")
	}
	if m.Schema == 0 {
		return errors.Wrap(errors.ErrInvalidModel, "schema is required")
	}
	return nil
}

// Copy returns a copy of this object. This method is helpful when
// implementing a model Copy to make a copy of the header.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}
