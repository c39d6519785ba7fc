package app

import (
	"context"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/client"
	"github.com/iov-one/tradevault/crypto"
	"github.com/iov-one/tradevault/errors"
)

// Submit wraps msg into a transaction signed by signer with its next
// sequence, and commits it in a new block.
func Submit(ctx context.Context, c *client.Client, chainID string, signer crypto.Signer, msg tradevault.Msg) (*client.CommitResult, error) {
	tx, err := NewTx(msg)
	if err != nil {
		return nil, err
	}
	seq, err := c.NextSequence(signer.PublicKey().Address())
	if err != nil {
		return nil, errors.Wrap(err, "sequence")
	}
	if err := tx.Sign(signer, chainID, seq); err != nil {
		return nil, err
	}
	return c.CommitTx(ctx, tx)
}
