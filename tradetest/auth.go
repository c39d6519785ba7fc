package tradetest

import (
	"context"
	"fmt"

	"github.com/iov-one/tradevault"
)

// Auth authenticates a fixed set of signers, regardless of the context.
//
// You can use either Signer or Signers (or both) attributes to reference
// addresses. Each time all signers (regardless which attribute) are
// considered.
type Auth struct {
	// Signer represents an authentication of a single signer.
	Signer tradevault.Address

	// Signers represents an authentication of multiple signers.
	Signers []tradevault.Address
}

func (a *Auth) GetSigners(tradevault.Context) []tradevault.Address {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx tradevault.Context, addr tradevault.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}

// CtxAuth uses the context to store and retrieve signers.
type CtxAuth struct {
	// Key used to set and retrieve signers from the context. For
	// convenience only string type keys are allowed.
	Key string
}

func (a *CtxAuth) SetSigners(ctx tradevault.Context, signers ...tradevault.Address) tradevault.Context {
	return context.WithValue(ctx, a.Key, signers)
}

func (a *CtxAuth) GetSigners(ctx tradevault.Context) []tradevault.Address {
	val := ctx.Value(a.Key)
	if val == nil {
		return nil
	}
	signers, ok := val.([]tradevault.Address)
	if !ok {
		panic(fmt.Sprintf("instead of []tradevault.Address got %T", val))
	}
	return signers
}

func (a *CtxAuth) HasAddress(ctx tradevault.Context, addr tradevault.Address) bool {
	for _, s := range a.GetSigners(ctx) {
		if addr.Equals(s) {
			return true
		}
	}
	return false
}
