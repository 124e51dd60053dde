// Package appdirs resolves per-application directories (data, config,
// state, cache, logs) following each operating system's convention.
//
// # Conventions
//
// On Windows, user directories live under the roaming or local application
// data folder, qualified by the application author. On macOS they live under
// ~/Library. On Linux and the other Unixes the XDG Base Directory
// Specification applies, honoring the XDG_* environment variables with their
// documented fallbacks.
//
//	dir, err := appdirs.UserConfigDir("myapp", appdirs.WithVersion("1.2"))
//	// Linux:  ~/.config/myapp/1.2
//	// macOS:  ~/Library/Application Support/myapp/1.2
//
// Site directories (system-wide, shared by all users of a machine) are
// multi-valued on Unix: every entry of XDG_DATA_DIRS / XDG_CONFIG_DIRS is
// returned in priority order.
//
//	dirs, err := appdirs.SiteDataDirs("myapp", appdirs.WithCreate(false))
//	// Linux:  [/usr/local/share/myapp /usr/share/myapp]
//
// # Isolated runtime environments
//
// When the process runs inside an isolated runtime environment (for example
// an activated virtualenv, detected through VIRTUAL_ENV), user directories
// short-circuit to a subdirectory of the environment root instead of the OS
// convention. Site directories are inherently system-wide and never do.
// Disable the behavior per call with WithSandbox(false).
//
// # Directory creation
//
// User accessors create the resolved directory by default, since the
// application is expected to write into it immediately. Site accessors do
// not, since write access must not be assumed. Override either default with
// WithCreate. Creation is idempotent; an existing directory is success.
//
// # Testability
//
// The zero value of [Resolver] resolves for the current process. Every
// collaborator is injectable: the target GOOS, the environment lookup, the
// home directory, the Windows special-folder query ([WindowsFolders]), the
// isolated-environment detector ([Sandbox]), and the filesystem used for
// creation (afero.Fs). Tests can therefore simulate any platform without
// mutating process state.
package appdirs
