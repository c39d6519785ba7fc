package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/tradetest"
)

// writeHandler stores the message path under a fixed key.
type writeHandler struct {
	key []byte
}

func (h writeHandler) Check(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.CheckResult, error) {
	return &tradevault.CheckResult{GasAllocated: 10}, nil
}

func (h writeHandler) Deliver(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.DeliverResult, error) {
	if err := db.Set(h.key, []byte(tradevault.GetPath(tx))); err != nil {
		return nil, err
	}
	return &tradevault.DeliverResult{Data: h.key}, nil
}

// rawQuery returns the value stored under the exact key.
type rawQuery struct{}

func (rawQuery) Query(db tradevault.ReadOnlyKVStore, mod string, data []byte) ([]tradevault.Model, error) {
	val, err := db.Get(data)
	if err != nil || val == nil {
		return nil, err
	}
	return []tradevault.Model{tradevault.Pair(data, val)}, nil
}

// genesisWriter stores every app state key it is given.
type genesisWriter struct{}

func (genesisWriter) FromGenesis(opts tradevault.Options, db tradevault.KVStore) error {
	for k, v := range opts {
		if err := db.Set([]byte(k), v); err != nil {
			return err
		}
	}
	return nil
}

// decodeMsg decodes a raw tradetest.Msg into a transaction.
func decodeMsg(raw []byte) (tradevault.Tx, error) {
	var msg tradetest.Msg
	if err := proto.Unmarshal(raw, &msg); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	return &tradetest.Tx{Msg: &msg}, nil
}

func encodeMsg(path string) []byte {
	raw, err := proto.Marshal(&tradetest.Msg{RoutePath: path})
	if err != nil {
		panic(err)
	}
	return raw
}
