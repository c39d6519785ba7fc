/*
Package tradevault defines interfaces used throughout the app, such as:
addresses, storage, transactions, handlers etc.

An escrow lives at an address that anybody can compute from the maker and a
maker-chosen seed (see FindProgramAddress). The escrow extension (x/escrow)
keeps the trade terms under that address and holds the deposit in a vault
account owned by the escrow itself. Every transaction is processed as a single
unit: handlers write into a cache wrap that is either written as a whole or
discarded.

Look into this package to get a brief overview of design decisions made
around interfaces and extension building blocks.
*/
package tradevault
