/*
Package x contains the extensions that make up tradevault.

Extensions implement common functionality (Handler, Decorator,
Initializer) and are combined together in the app package to
construct the application.

Note that protobuf types in exported code will be prefixed by
the package, so follow standard go naming conventions and avoid
stutter. Use eg. `escrow.MakeMsg` in place of `escrow.EscrowMakeMsg`.
*/
package x
