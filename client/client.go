package client

import (
	"context"
	"encoding/json"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/app"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/x/sigs"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Client provides simple access to an abci application running in the same
// process.
type Client struct {
	app abci.Application
}

// NewClient wraps a Client around an application.
func NewClient(app abci.Application) *Client {
	return &Client{app: app}
}

// Status returns current height and hash of the application.
func (c *Client) Status() Status {
	info := c.app.Info(abci.RequestInfo{})
	return Status{
		Name:    info.Data,
		Version: info.Version,
		Height:  info.LastBlockHeight,
		AppHash: info.LastBlockAppHash,
	}
}

// Genesis initializes the chain state and commits it as the first block.
func (c *Client) Genesis(gen *app.Genesis) (*Status, error) {
	appState, err := json.Marshal(gen.AppState)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if err := c.initChain(gen.ChainID, appState); err != nil {
		return nil, err
	}
	c.app.Commit()
	s := c.Status()
	return &s, nil
}

// initChain passes the genesis to the application, turning a panic into an
// error.
func (c *Client) initChain(chainID string, appState []byte) (err error) {
	defer errors.Recover(&err)
	c.app.InitChain(abci.RequestInitChain{
		ChainId:       chainID,
		AppStateBytes: appState,
	})
	return nil
}

// CommitTx checks the transaction and, if accepted, delivers and commits it in
// a new block. A transaction rejected by the check never reaches a block and
// results in an error. A transaction failing on delivery still produces a
// block and its error is returned in the CommitResult.
func (c *Client) CommitTx(ctx context.Context, tx proto.Message) (*CommitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bz, err := proto.Marshal(tx)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidMsg, "marshaling: %s", err.Error())
	}

	// a checktx error is handled like any other error... didn't make it into mempool... will not make it into block
	if check := c.app.CheckTx(bz); check.Code != errors.SuccessABCICode {
		return nil, errors.ABCIError(check.Code, check.Log)
	}

	height := c.Status().Height + 1
	c.app.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{Height: height},
	})
	res := c.app.DeliverTx(bz)
	c.app.EndBlock(abci.RequestEndBlock{Height: height})
	c.app.Commit()

	return &CommitResult{
		Height: height,
		Data:   res.Data,
		Log:    res.Log,
		Err:    errors.ABCIError(res.Code, res.Log),
	}, nil
}

// Query is meant to mirror the abci query interface exactly.
func (c *Client) Query(query RequestQuery) ResponseQuery {
	return c.app.Query(query)
}

// QueryOne loads the single model stored under key in the bucket served at
// path. ErrNotFound is returned if there is none.
func (c *Client) QueryOne(path string, key []byte, dest proto.Message) error {
	res := c.Query(RequestQuery{Path: path, Data: key})
	if err := errors.ABCIError(res.Code, res.Log); err != nil {
		return err
	}
	return app.UnmarshalOneResult(res.Value, dest)
}

// NextSequence returns the sequence the next signature of given address must
// use.
func (c *Client) NextSequence(addr tradevault.Address) (int64, error) {
	var user sigs.UserData
	switch err := c.QueryOne("/auth", addr, &user); {
	case err == nil:
		return user.Sequence, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}
