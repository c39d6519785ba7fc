package tradetest

import "github.com/iov-one/tradevault"

// Handler is a mock implementation of the tradevault.Handler interface.
//
// Both methods return the configured result and error. Each call is counted.
type Handler struct {
	checkCall   int
	CheckResult tradevault.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult tradevault.DeliverResult
	DeliverErr    error
}

var _ tradevault.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.CheckResult, error) {
	h.checkCall++
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx tradevault.Context, db tradevault.KVStore, tx tradevault.Tx) (*tradevault.DeliverResult, error) {
	h.deliverCall++
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
