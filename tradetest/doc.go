/*
Package tradetest provides helpers for testing tradevault extensions: fake
authenticators, key generation and disk backed stores.
*/
package tradetest
