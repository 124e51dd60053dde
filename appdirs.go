package appdirs

// Resolve returns the ordered directories for the given kind using the
// default resolver. See Resolver.Resolve.
func Resolve(kind Kind, name string, opts ...Option) ([]string, error) {
	return Default.Resolve(kind, name, opts...)
}

// UserDataDir returns the per-user data directory for the application.
//
// Typical locations:
//
//	macOS:   ~/Library/Application Support/<name>
//	Unix:    ~/.local/share/<name>, or $XDG_DATA_HOME/<name> if set
//	Windows: %LOCALAPPDATA%\<author>\<name> (%APPDATA% when roaming)
func UserDataDir(name string, opts ...Option) (string, error) {
	return Default.UserDataDir(name, opts...)
}

// UserConfigDir returns the per-user configuration directory for the
// application.
//
// Typical locations:
//
//	macOS:   ~/Library/Application Support/<name>
//	Unix:    ~/.config/<name>, or $XDG_CONFIG_HOME/<name> if set
//	Windows: same as UserDataDir
func UserConfigDir(name string, opts ...Option) (string, error) {
	return Default.UserConfigDir(name, opts...)
}

// UserStateDir returns the per-user state directory for the application.
//
// Typical locations:
//
//	macOS:   ~/Library/Application Support/<name>
//	Unix:    ~/.local/state/<name>, or $XDG_STATE_HOME/<name> if set
//	Windows: same as UserDataDir
func UserStateDir(name string, opts ...Option) (string, error) {
	return Default.UserStateDir(name, opts...)
}

// UserCacheDir returns the per-user cache directory for the application.
//
// Typical locations:
//
//	macOS:   ~/Library/Caches/<name>
//	Unix:    ~/.cache/<name>, or $XDG_CACHE_HOME/<name> if set
//	Windows: %LOCALAPPDATA%\<author>\Caches\<name>
func UserCacheDir(name string, opts ...Option) (string, error) {
	return Default.UserCacheDir(name, opts...)
}

// UserLogDir returns the per-user log directory for the application.
//
// Typical locations:
//
//	macOS:   ~/Library/Logs/<name>
//	Unix:    ~/.local/state/<name>, or $XDG_STATE_HOME/<name> if set
//	Windows: %LOCALAPPDATA%\<author>\Logs\<name>
func UserLogDir(name string, opts ...Option) (string, error) {
	return Default.UserLogDir(name, opts...)
}

// SiteDataDirs returns the system-wide data directories for the
// application, highest priority first.
//
// Typical locations:
//
//	macOS:   /Library/Application Support/<name>
//	Unix:    /usr/local/share/<name> and /usr/share/<name>, or every entry
//	         of $XDG_DATA_DIRS if set
//	Windows: %ProgramData%\<author>\<name>
func SiteDataDirs(name string, opts ...Option) ([]string, error) {
	return Default.SiteDataDirs(name, opts...)
}

// SiteConfigDirs returns the system-wide configuration directories for the
// application, highest priority first.
//
// Typical locations:
//
//	macOS:   /Library/Application Support/<name>
//	Unix:    /etc/xdg/<name>, or every entry of $XDG_CONFIG_DIRS if set
//	Windows: %ProgramData%\<author>\<name>
func SiteConfigDirs(name string, opts ...Option) ([]string, error) {
	return Default.SiteConfigDirs(name, opts...)
}
