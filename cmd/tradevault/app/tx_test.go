package app

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/crypto"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/tradetest"
	"github.com/iov-one/tradevault/x/escrow"
	"github.com/iov-one/tradevault/x/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMsg(t *testing.T) {
	refund := &escrow.RefundMsg{
		Metadata: &tradevault.Metadata{Schema: 1},
		Maker:    tradetest.NewSigner(),
		Seed:     3,
	}
	mint := &token.MintMsg{
		Metadata: &tradevault.Metadata{Schema: 1},
		Mint:     tradetest.NewMint(),
		Owner:    tradetest.NewSigner(),
		Amount:   1,
	}

	cases := map[string]struct {
		tx      *Tx
		wantMsg tradevault.Msg
		wantErr *errors.Error
	}{
		"single message": {
			tx:      &Tx{RefundMsg: refund},
			wantMsg: refund,
		},
		"no message": {
			tx:      &Tx{},
			wantErr: errors.ErrInvalidMsg,
		},
		"two messages": {
			tx:      &Tx{RefundMsg: refund, MintMsg: mint},
			wantErr: errors.ErrInvalidMsg,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			msg, err := tc.tx.GetMsg()
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			assert.Equal(t, tc.wantMsg, msg)
		})
	}
}

func TestNewTx(t *testing.T) {
	take := &escrow.TakeMsg{
		Metadata: &tradevault.Metadata{Schema: 1},
		Taker:    tradetest.NewSigner(),
		Maker:    tradetest.NewSigner(),
		Seed:     1,
	}
	tx, err := NewTx(take)
	require.NoError(t, err)
	assert.Equal(t, take, tx.TakeMsg)

	_, err = NewTx(&tradetest.Msg{RoutePath: "test/msg"})
	assert.True(t, errors.ErrInvalidMsg.Is(err))
}

func TestTxRoundTrip(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	tx, err := NewTx(&token.TransferMsg{
		Metadata:    &tradevault.Metadata{Schema: 1},
		Mint:        tradetest.NewMint(),
		Source:      key.PublicKey().Address(),
		Destination: tradetest.NewSigner(),
		Amount:      10,
	})
	require.NoError(t, err)

	unsigned, err := tx.GetSignBytes()
	require.NoError(t, err)
	require.NoError(t, tx.Sign(key, "test-chain", 4))
	signed, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, unsigned, signed, "signatures must not be signed")

	raw, err := proto.Marshal(tx)
	require.NoError(t, err)
	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	dtx := decoded.(*Tx)
	require.Len(t, dtx.GetSignatures(), 1)
	assert.Equal(t, int64(4), dtx.GetSignatures()[0].Sequence)
	msg, err := dtx.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, "token/transfer", msg.Path())

	_, err = TxDecoder([]byte{0xff, 0x01, 0x02})
	assert.True(t, errors.ErrInvalidInput.Is(err))
}
