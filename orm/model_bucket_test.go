package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/store"
	"github.com/iov-one/tradevault/tradetest/assert"
)

type counter struct {
	Metadata *tradevault.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Count    uint64               `protobuf:"varint,2,opt,name=count,proto3" json:"count,omitempty"`
}

func (m *counter) Reset()         { *m = counter{} }
func (m *counter) String() string { return proto.CompactTextString(m) }
func (*counter) ProtoMessage()    {}

func (m *counter) Validate() error {
	if err := m.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if m.Count == 0 {
		return errors.Wrap(errors.ErrInvalidModel, "count")
	}
	return nil
}

type other struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
}

func (m *other) Reset()         { *m = other{} }
func (m *other) String() string { return proto.CompactTextString(m) }
func (*other) ProtoMessage()    {}

func (m *other) Validate() error { return nil }

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counters", &counter{})

	key := []byte("one")
	c := &counter{Metadata: &tradevault.Metadata{Schema: 1}, Count: 7}

	var got counter
	assert.IsErr(t, errors.ErrNotFound, b.One(db, key, &got))
	assert.IsErr(t, errors.ErrNotFound, b.Delete(db, key))

	assert.Nil(t, b.Create(db, key, c))
	assert.IsErr(t, errors.ErrAlreadyExists, b.Create(db, key, c))

	ok, err := b.Has(db, key)
	assert.Nil(t, err)
	assert.Equal(t, true, ok)

	assert.Nil(t, b.One(db, key, &got))
	assert.Equal(t, c.Count, got.Count)
	assert.Equal(t, uint32(1), got.Metadata.Schema)

	c.Count = 8
	assert.Nil(t, b.Put(db, key, c))
	assert.Nil(t, b.One(db, key, &got))
	assert.Equal(t, uint64(8), got.Count)

	assert.IsErr(t, errors.ErrInvalidModel, b.Put(db, key, &counter{Metadata: &tradevault.Metadata{Schema: 1}}))
	assert.IsErr(t, errors.ErrInvalidType, b.One(db, key, &other{}))
	assert.IsErr(t, errors.ErrInvalidType, b.Put(db, key, &other{Name: "x"}))

	assert.Nil(t, b.Delete(db, key))
	ok, err = b.Has(db, key)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)
}

func TestModelBucketPrefix(t *testing.T) {
	db := store.MemStore()
	a := NewModelBucket("counters", &counter{})
	b := NewModelBucket("others", &other{})

	key := []byte("shared")
	assert.Nil(t, a.Put(db, key, &counter{Metadata: &tradevault.Metadata{Schema: 1}, Count: 1}))

	ok, err := b.Has(db, key)
	assert.Nil(t, err)
	assert.Equal(t, false, ok)

	raw, err := db.Get([]byte("counters:shared"))
	assert.Nil(t, err)
	if raw == nil {
		t.Fatal("model not stored under the bucket prefix")
	}
}

func TestModelBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("counters", &counter{})
	assert.Nil(t, b.Put(db, []byte("a"), &counter{Metadata: &tradevault.Metadata{Schema: 1}, Count: 3}))

	qr := tradevault.NewQueryRouter()
	b.Register("counters", qr)
	h := qr.Handler("/counters")
	if h == nil {
		t.Fatal("query handler not registered")
	}

	res, err := h.Query(db, tradevault.KeyQueryMod, []byte("a"))
	assert.Nil(t, err)
	if len(res) != 1 {
		t.Fatalf("want one result, got %d", len(res))
	}
	assert.Equal(t, []byte("counters:a"), res[0].Key)
	var c counter
	assert.Nil(t, proto.Unmarshal(res[0].Value, &c))
	assert.Equal(t, uint64(3), c.Count)

	res, err = h.Query(db, tradevault.KeyQueryMod, []byte("missing"))
	assert.Nil(t, err)
	assert.Equal(t, 0, len(res))

	_, err = h.Query(db, "prefix", []byte("a"))
	assert.IsErr(t, errors.ErrInvalidInput, err)
}

func TestInvalidBucketName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("X", &counter{}) })
	assert.Panics(t, func() { NewModelBucket("with:colon", &counter{}) })
}
