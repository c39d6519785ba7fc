/*
Package crypto provides the ed25519 keys used to sign transactions.

A signer is identified on chain by its raw public key, so the address of a
public key is the key itself. Addresses derived for programs are never valid
public keys and therefore can never sign.
*/
package crypto
