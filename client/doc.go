/*
Package client drives an abci application in process.

It mirrors what a node does for every transaction: the transaction is checked,
delivered in a block of its own and committed. Queries read the last
committed state.
*/
package client
