package crypto

import (
	"bytes"
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/tradetest/assert"
)

func TestEd25519Signing(t *testing.T) {
	private := GenPrivKeyEd25519()
	public := private.PublicKey()

	msg := []byte("make escrow")
	msg2 := []byte("take escrow")

	sig, err := private.Sign(msg)
	assert.Nil(t, err)
	sig2, err := private.Sign(msg2)
	assert.Nil(t, err)

	if bytes.Equal(sig.Ed25519, sig2.Ed25519) {
		t.Fatal("different messages produce the same signature")
	}

	if !public.Verify(msg, sig) {
		t.Fatal("cannot verify a message signed with this public key")
	}
	if !public.Verify(msg2, sig2) {
		t.Fatal("cannot verify a message signed with this public key")
	}
	if public.Verify(msg, sig2) {
		t.Fatal("verified message signature of the wrong message")
	}
	if public.Verify(msg, &Signature{}) {
		t.Fatal("verified an empty signature of a message")
	}
	if public.Verify(msg, nil) {
		t.Fatal("verified a nil signature of a message")
	}

	var empty PublicKey
	if empty.Verify(msg, sig) {
		t.Fatal("empty public key must not pass verification")
	}
}

func TestEmptyPrivateKeySign(t *testing.T) {
	var empty PrivateKey
	if sig, err := empty.Sign([]byte("foo bar")); err == nil {
		t.Fatalf("want an error, got %q", sig)
	}
}

func TestPublicKeyAddress(t *testing.T) {
	pub := GenPrivKeyEd25519().PublicKey()
	pub2 := GenPrivKeyEd25519().PublicKey()

	addr := pub.Address()
	assert.Nil(t, addr.Validate())
	assert.Equal(t, tradevault.Address(pub.Ed25519), addr)
	if addr.Equals(pub2.Address()) {
		t.Fatal("different public keys produce the same address")
	}
	if !tradevault.IsOnCurve(addr) {
		t.Fatal("signer address must be a curve point")
	}

	var empty PublicKey
	assert.Nil(t, empty.Address())

	bz, err := proto.Marshal(pub)
	assert.Nil(t, err)
	var read PublicKey
	assert.Nil(t, proto.Unmarshal(bz, &read))
	assert.Equal(t, addr, read.Address())
}

func TestPrivKeyEd25519FromSeed(t *testing.T) {
	cases := map[string]struct {
		seed      []byte
		wantPanic bool
	}{
		"zero seed":      {seed: make([]byte, 32)},
		"non zero seed":  {seed: bytes.Repeat([]byte{31}, 32)},
		"no seed":        {seed: nil, wantPanic: true},
		"seed too short": {seed: []byte{0}, wantPanic: true},
		"seed too long":  {seed: make([]byte, 33), wantPanic: true},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if tc.wantPanic {
				assert.Panics(t, func() { PrivKeyEd25519FromSeed(tc.seed) })
				return
			}
			a := PrivKeyEd25519FromSeed(tc.seed)
			b := PrivKeyEd25519FromSeed(tc.seed)
			assert.Equal(t, a.Ed25519, b.Ed25519)
			assert.Equal(t, tc.seed, a.Ed25519[:32])
			assert.Equal(t, a.Ed25519[32:], a.PublicKey().Ed25519)
		})
	}
}
