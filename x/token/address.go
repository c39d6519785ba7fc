package token

import (
	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
)

var (
	// ProgramID identifies the token extension.
	ProgramID = tradevault.NewAddress([]byte("tradevault/token"))

	// AssociatedProgramID owns all associated account addresses.
	AssociatedProgramID = tradevault.NewAddress([]byte("tradevault/associated-account"))
)

// AssociatedAddress returns the address of the canonical account of owner
// for given mint.
func AssociatedAddress(owner, mint tradevault.Address) (tradevault.Address, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	if err := mint.Validate(); err != nil {
		return nil, errors.Wrap(err, "mint")
	}
	addr, _, err := tradevault.FindProgramAddress(AssociatedProgramID, owner, ProgramID, mint)
	if err != nil {
		return nil, errors.Wrap(err, "associated address")
	}
	return addr, nil
}
