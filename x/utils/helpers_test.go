package utils

import "github.com/iov-one/tradevault"

// writeHandler stores a key value pair and then returns configured error.
type writeHandler struct {
	key   []byte
	value []byte
	err   error
}

var _ tradevault.Handler = writeHandler{}

func (h writeHandler) Check(ctx tradevault.Context, store tradevault.KVStore, tx tradevault.Tx) (*tradevault.CheckResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &tradevault.CheckResult{}, nil
}

func (h writeHandler) Deliver(ctx tradevault.Context, store tradevault.KVStore, tx tradevault.Tx) (*tradevault.DeliverResult, error) {
	if err := store.Set(h.key, h.value); err != nil {
		return nil, err
	}
	if h.err != nil {
		return nil, h.err
	}
	return &tradevault.DeliverResult{}, nil
}

// panicHandler always panics.
type panicHandler struct{}

func (panicHandler) Check(tradevault.Context, tradevault.KVStore, tradevault.Tx) (*tradevault.CheckResult, error) {
	panic("check panic")
}

func (panicHandler) Deliver(tradevault.Context, tradevault.KVStore, tradevault.Tx) (*tradevault.DeliverResult, error) {
	panic("deliver panic")
}
