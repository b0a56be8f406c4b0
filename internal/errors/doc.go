// Package errors provides error handling conventions for the backman CLI.
//
// It defines exit code constants following standard Unix conventions, an
// ExitError type that carries an exit code and an optional suggestion, and
// thin re-exports over cockroachdb/errors so the rest of the codebase needs
// a single errors import.
//
// Domain-specific sentinel errors live in their domain packages (for
// example list.ErrIndexOutOfRange or engine.ErrNotFoundInSource) and are
// checked with [Is]:
//
//	if errors.Is(err, list.ErrNoListSelected) {
//	    // prompt the user to select a list first
//	}
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. The root command unwraps it via [As] to decide the process
// exit code and whether to print a suggestion:
//
//	err := errors.NewUserError(err, "Run 'backman list show' to see valid indices")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
