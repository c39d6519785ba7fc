package utils

import (
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
)

// Recovery is a decorator that turns a panic raised while processing a
// transaction into an ErrPanic result. The panic is logged together with the
// message path and block height, so a failing make or take can be traced back
// to its block.
type Recovery struct{}

var _ tradevault.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx tradevault.Context, store tradevault.KVStore, tx tradevault.Tx, next tradevault.Checker) (res *tradevault.CheckResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			res, err = nil, panicError(ctx, tx, "check", p)
		}
	}()
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx tradevault.Context, store tradevault.KVStore, tx tradevault.Tx, next tradevault.Deliverer) (res *tradevault.DeliverResult, err error) {
	defer func() {
		if p := recover(); p != nil {
			res, err = nil, panicError(ctx, tx, "deliver", p)
		}
	}()
	return next.Deliver(ctx, store, tx)
}

func panicError(ctx tradevault.Context, tx tradevault.Tx, phase string, p interface{}) error {
	path := tradevault.GetPath(tx)
	height, _ := tradevault.GetHeight(ctx)
	tradevault.GetLogger(ctx).Error("transaction panic",
		"phase", phase,
		"path", path,
		"height", height,
		"panic", p,
	)
	return errors.Wrapf(errors.ErrPanic, "%s %s: %v", phase, path, p)
}
