package tradevault

import (
	"crypto/sha256"

	"github.com/agl/ed25519/edwards25519"
	"github.com/iov-one/tradevault/errors"
)

const (
	// MaxSeeds is the maximum number of seeds, including the bump, that
	// can be used to derive a program address.
	MaxSeeds = 16
	// MaxSeedLength is the maximum length of a single seed.
	MaxSeedLength = 32
)

var pdaMarker = []byte("ProgramDerivedAddress")

// CreateProgramAddress computes the address owned by program for the given
// seeds. It fails if the digest happens to be a valid ed25519 public key,
// because such an address could be claimed by whoever holds the matching
// private key.
func CreateProgramAddress(program Address, seeds ...[]byte) (Address, error) {
	if err := validateSeeds(seeds); err != nil {
		return nil, err
	}
	addr := programAddress(program, seeds)
	if IsOnCurve(addr) {
		return nil, errors.Wrap(errors.ErrInvalidInput, "address on ed25519 curve")
	}
	return addr, nil
}

// FindProgramAddress searches for a bump that, appended to the seeds as a
// single byte, yields an address that is not on the ed25519 curve. Bumps are
// tried from 255 down to 0 and the first viable one is returned, so the
// result is a pure function of the input.
func FindProgramAddress(program Address, seeds ...[]byte) (Address, uint8, error) {
	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)
	if err := validateSeeds(withBump); err != nil {
		return nil, 0, err
	}

	for bump := 255; bump >= 0; bump-- {
		withBump[len(seeds)] = []byte{uint8(bump)}
		addr := programAddress(program, withBump)
		if !IsOnCurve(addr) {
			return addr, uint8(bump), nil
		}
	}
	return nil, 0, errors.Wrap(errors.ErrInvalidState, "no viable bump")
}

// IsOnCurve returns true if given bytes decode into a point of the ed25519
// curve.
func IsOnCurve(b []byte) bool {
	if len(b) != 32 {
		return false
	}
	var key [32]byte
	copy(key[:], b)
	var p edwards25519.ExtendedGroupElement
	return p.FromBytes(&key)
}

func programAddress(program Address, seeds [][]byte) Address {
	h := sha256.New()
	for _, s := range seeds {
		_, _ = h.Write(s)
	}
	_, _ = h.Write(program)
	_, _ = h.Write(pdaMarker)
	return h.Sum(nil)
}

func validateSeeds(seeds [][]byte) error {
	if len(seeds) > MaxSeeds {
		return errors.Wrapf(errors.ErrInvalidInput, "too many seeds: %d", len(seeds))
	}
	for i, s := range seeds {
		if len(s) > MaxSeedLength {
			return errors.Wrapf(errors.ErrInvalidInput, "seed %d too long: %d", i, len(s))
		}
	}
	return nil
}
