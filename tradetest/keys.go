package tradetest

import (
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/crypto"
)

// NewKey returns a random private key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewSigner returns the address of a random key.
func NewSigner() tradevault.Address {
	return NewKey().PublicKey().Address()
}

// NewMint returns a random address usable as a mint identifier. It is not
// backed by any key.
func NewMint() tradevault.Address {
	return tradevault.NewAddress(NewKey().PublicKey().Ed25519)
}
