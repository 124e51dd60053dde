// Package errors provides error handling conventions for the appdirs CLI.
//
// It defines exit code constants following Unix conventions, sentinel
// errors for flag validation, and an [ExitError] type carrying an exit
// code and an optional suggestion:
//
//	err := clierrors.NewUserError(clierrors.ErrUnknownFormat, "use one of: text, json, yaml, toml")
//	var exitErr *clierrors.ExitError
//	if errors.As(err, &exitErr) {
//	    fmt.Fprintln(os.Stderr, exitErr.Suggestion)
//	    os.Exit(exitErr.Code)
//	}
//
// Library-level resolution errors live in the root appdirs package; this
// package only shapes how the CLI reports them.
package errors
