package appdirs

import "github.com/cockroachdb/errors"

// Sentinel errors for directory resolution.
var (
	// ErrUnsupportedPlatform indicates the target operating system matches
	// none of the supported conventions (Windows, macOS, Unix/XDG).
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrMissingAuthor indicates a Windows path required an application
	// author qualifier that was not supplied.
	ErrMissingAuthor = errors.New("app author is required on windows")

	// ErrInvalidKind indicates an unrecognized directory kind. It is not
	// reachable through the exported accessors.
	ErrInvalidKind = errors.New("invalid directory kind")

	// ErrHomeDirNotFound indicates the user's home directory could not be
	// determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrFolderNotSet indicates a Windows special folder could not be
	// resolved because its environment variable is not set.
	ErrFolderNotSet = errors.New("known folder not set")
)
