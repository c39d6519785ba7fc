/*
Package escrow implements an escrow for a two asset exchange.

A maker opens an escrow by locking a deposit of mint A in a vault and naming
the amount of mint B they want in return. The escrow record lives at an
address derived from the maker and a maker chosen seed, so no index of open
escrows is kept. The vault is the associated token account of the escrow
address for mint A. Because the escrow address is off the ed25519 curve, only
this extension can authorize movements out of the vault.

While the escrow is open the maker can take the deposit back with a refund.
Anyone, or only the counterparty named at make time, can take the escrow by
paying the requested amount of mint B to the maker and receiving the vault
content. Refund and take both close the vault and delete the record.
*/
package escrow
