package utils

import (
	"time"

	"github.com/iov-one/tradevault"
)

// Logging is a decorator to log messages as they pass through
type Logging struct{}

var _ tradevault.Decorator = Logging{}

// NewLogging creates a Logging decorator
func NewLogging() Logging {
	return Logging{}
}

// Check logs error -> info, success -> debug
func (r Logging) Check(ctx tradevault.Context, store tradevault.KVStore, tx tradevault.Tx, next tradevault.Checker) (*tradevault.CheckResult, error) {
	start := time.Now()
	res, err := next.Check(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, true)
	return res, err
}

// Deliver logs error -> error, success -> info
func (r Logging) Deliver(ctx tradevault.Context, store tradevault.KVStore, tx tradevault.Tx, next tradevault.Deliverer) (*tradevault.DeliverResult, error) {
	start := time.Now()
	res, err := next.Deliver(ctx, store, tx)
	var resLog string
	if err == nil {
		resLog = res.Log
	}
	logDuration(ctx, tx, start, resLog, err, false)
	return res, err
}

// logDuration writes information about the time and result to the logger
func logDuration(ctx tradevault.Context, tx tradevault.Tx, start time.Time, msg string, err error, lowPrio bool) {
	delta := time.Since(start)
	logger := tradevault.GetLogger(ctx).With(
		"path", tradevault.GetPath(tx),
		"duration", delta/time.Microsecond,
	)

	// An empty message is still logged, the key values carry the
	// relevant information.
	switch {
	case err != nil:
		logger.Error(msg, "err", err)
	case lowPrio:
		logger.Debug(msg)
	default:
		logger.Info(msg)
	}
}
