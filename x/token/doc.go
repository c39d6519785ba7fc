/*
Package token implements fungible assets held in accounts.

A Mint describes an asset. An Account holds a balance of a single mint and
belongs to a single owner. The canonical account of an owner for a mint lives
at the associated address derived from both, so any party can compute where
to send funds without a lookup. Owners can be signers or program derived
addresses, such as an escrow.

Funds only leave an account when the caller names the account owner as the
authority of the operation. Handlers pass signers as authority, other
extensions pass the derived address they control.
*/
package token
