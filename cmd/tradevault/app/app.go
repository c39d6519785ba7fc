/*
Package app links together all the various components
to construct the tradevault application.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/app"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/store/iavl"
	"github.com/iov-one/tradevault/x"
	"github.com/iov-one/tradevault/x/escrow"
	"github.com/iov-one/tradevault/x/sigs"
	"github.com/iov-one/tradevault/x/token"
	"github.com/iov-one/tradevault/x/utils"
	"github.com/tendermint/tendermint/libs/log"
)

// Name is reported by the abci Info call.
const Name = "tradevault"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// logging, and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment the nonce
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to the token and escrow handlers.
func Router(authFn x.Authenticator, ctrl token.Controller) *app.Router {
	r := app.NewRouter()
	token.RegisterRoutes(r, authFn, ctrl)
	escrow.RegisterRoutes(r, authFn, ctrl)
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/escrows", "/accounts", "/mints" and "/auth"
func QueryRouter() tradevault.QueryRouter {
	r := tradevault.NewQueryRouter()
	r.RegisterAll(
		escrow.RegisterQuery,
		token.RegisterQuery,
		sigs.RegisterQuery,
	)
	return r
}

// Initializer loads every extension from the genesis app state.
func Initializer() tradevault.Initializer {
	return tradevault.ChainInitializers(
		token.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() tradevault.Handler {
	authFn := Authenticator()
	return Chain().WithHandler(Router(authFn, token.NewController()))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
//
// An empty dbPath keeps the state in memory.
func Application(name string, h tradevault.Handler, tx tradevault.TxDecoder,
	dbPath string, logger log.Logger, debug bool) (app.BaseApp, error) {

	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, err
	}
	return NewApplication(name, h, tx, kv, logger, debug)
}

// NewApplication is like Application, over an already opened store.
func NewApplication(name string, h tradevault.Handler, tx tradevault.TxDecoder,
	kv tradevault.CommitKVStore, logger log.Logger, debug bool) (base app.BaseApp, err error) {

	// loading a broken store panics
	defer errors.Recover(&err)
	store := app.NewStoreApp(name, kv, QueryRouter(), context.Background()).
		WithInit(Initializer()).
		WithLogger(logger).
		WithDebug(debug)
	return app.NewBaseApp(store, tx, h), nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (kv tradevault.CommitKVStore, err error) {
	// opening the database panics on failure
	defer errors.Recover(&err)

	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "invalid database name %q: %s", dbPath, err)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
