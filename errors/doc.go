/*
Package errors implements custom error interfaces for tradevault.

The idea is to reuse as many errors from this package as possible and define
custom package errors only when absolutely necessary.

If you want to register a custom error - use Register(code, description).
For reusing errors - use Errxxx.New and Errxxx.Newf.
Code stands for the ABCI error code, which allows to distinguish types of
errors on the client side and act accordingly. The escrow state machine
surfaces exactly five kinds to its callers:

	ErrAlreadyExists        make for a (maker, seed) that is still open
	ErrNotFound             refund/take for an escrow that was resolved
	ErrUnauthorized         signer does not match the stored parties
	ErrInsufficientBalance  deposit or payment exceeds the holding
	ErrInvalidAmount        zero deposit or receive amount

There is also support for stacktraces. Please ensure you create the custom
error using ErrXyz.New("...") or errors.Wrap(err, "...") at the point of
creation to ensure we attach a stacktrace. If you wrap multiple times, we only
record the first wrap with the stacktrace.

Once you have an error, you can use `fmt.Printf/Sprintf` to get more context
for the error
	%s is just the error message
	%+v is the full stack trace
*/
package errors
