package escrow

import (
	"encoding/binary"

	"github.com/iov-one/tradevault"
	"github.com/iov-one/tradevault/errors"
	"github.com/iov-one/tradevault/x/token"
)

// ProgramID identifies the escrow extension. All escrow addresses are
// derived from it.
var ProgramID = tradevault.NewAddress([]byte("tradevault/escrow"))

var escrowSeedPrefix = []byte("escrow")

func seedBytes(seed uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, seed)
	return b
}

// EscrowAddress returns the address of the escrow opened by maker with
// given seed, together with the bump used to derive it.
func EscrowAddress(maker tradevault.Address, seed uint64) (tradevault.Address, uint8, error) {
	if err := maker.Validate(); err != nil {
		return nil, 0, errors.Wrap(err, "maker")
	}
	addr, bump, err := tradevault.FindProgramAddress(ProgramID, escrowSeedPrefix, maker, seedBytes(seed))
	if err != nil {
		return nil, 0, errors.Wrap(err, "escrow address")
	}
	return addr, bump, nil
}

// VaultAddress returns the address of the account holding the deposit of
// the escrow.
func VaultAddress(escrow, mintA tradevault.Address) (tradevault.Address, error) {
	return token.AssociatedAddress(escrow, mintA)
}

// verifyAddress recreates the escrow address from the stored bump and
// makes sure it is the address the escrow was loaded from.
func verifyAddress(addr tradevault.Address, e *Escrow) error {
	got, err := tradevault.CreateProgramAddress(ProgramID, escrowSeedPrefix, e.Maker, seedBytes(e.Seed), []byte{uint8(e.Bump)})
	if err != nil {
		return errors.Wrapf(errors.ErrInvalidState, "cannot recreate escrow address: %s", err)
	}
	if !got.Equals(addr) {
		return errors.Wrap(errors.ErrInvalidState, "bump does not match escrow address")
	}
	return nil
}
