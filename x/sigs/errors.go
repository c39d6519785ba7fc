package sigs

import "github.com/iov-one/tradevault/errors"

// ErrInvalidSequence is returned when a signature sequence does not match
// the next expected sequence of the signer. Codes 20 to 29 are reserved
// for this extension.
var ErrInvalidSequence = errors.Register(20, "invalid sequence number")
