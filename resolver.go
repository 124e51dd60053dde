package appdirs

import (
	"os"
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
)

// DirPerm is the permission applied to directories created during
// resolution, before the process umask.
const DirPerm os.FileMode = 0o755

// unixLike lists the GOOS values resolved through the XDG convention.
var unixLike = map[string]bool{
	"linux":     true,
	"freebsd":   true,
	"openbsd":   true,
	"netbsd":    true,
	"dragonfly": true,
	"solaris":   true,
	"illumos":   true,
	"aix":       true,
}

// Resolver computes application directories. The zero value resolves for
// the current process; every field overrides one collaborator so tests can
// simulate any platform without touching process-wide state.
type Resolver struct {
	// GOOS is the target operating system. Defaults to runtime.GOOS.
	GOOS string

	// Env looks up environment variables. Defaults to os.Getenv.
	Env func(key string) string

	// Home returns the user's home directory. Defaults to os.UserHomeDir.
	Home func() (string, error)

	// Windows answers the native special-folder query on Windows targets.
	// Defaults to EnvFolders backed by Env.
	Windows WindowsFolders

	// Sandbox detects an isolated runtime environment. Defaults to
	// EnvSandbox backed by Env.
	Sandbox Sandbox

	// FS is the filesystem used for directory creation. Defaults to the
	// operating system filesystem.
	FS afero.Fs
}

// Default is the resolver behind the package-level accessor functions.
var Default = &Resolver{}

// Resolve returns the ordered directories for the given kind, with the
// application name and optional version appended to each base. User kinds
// always yield exactly one directory; site kinds yield one per configured
// search location, highest priority first. With creation enabled (the user
// kind default) every returned directory exists when the call returns;
// creation fails fast on the first error.
func (r *Resolver) Resolve(kind Kind, name string, opts ...Option) ([]string, error) {
	if !kind.valid() {
		return nil, errors.Wrapf(ErrInvalidKind, "%d", int(kind))
	}
	req := newRequest(kind, opts)

	bases, err := r.baseDirs(kind, req)
	if err != nil {
		return nil, err
	}

	dirs := make([]string, 0, len(bases))
	for _, base := range bases {
		dir := base
		if name != "" {
			dir = r.join(dir, name)
			if req.version != "" {
				dir = r.join(dir, req.version)
			}
		}
		if req.create {
			if err := r.fs().MkdirAll(dir, DirPerm); err != nil {
				return nil, errors.Wrapf(err, "creating %s directory", kind)
			}
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

// UserDataDir returns the per-user data directory for the application.
func (r *Resolver) UserDataDir(name string, opts ...Option) (string, error) {
	return r.first(KindUserData, name, opts)
}

// UserConfigDir returns the per-user configuration directory for the
// application.
func (r *Resolver) UserConfigDir(name string, opts ...Option) (string, error) {
	return r.first(KindUserConfig, name, opts)
}

// UserStateDir returns the per-user state directory for the application.
func (r *Resolver) UserStateDir(name string, opts ...Option) (string, error) {
	return r.first(KindUserState, name, opts)
}

// UserCacheDir returns the per-user cache directory for the application.
func (r *Resolver) UserCacheDir(name string, opts ...Option) (string, error) {
	return r.first(KindUserCache, name, opts)
}

// UserLogDir returns the per-user log directory for the application.
func (r *Resolver) UserLogDir(name string, opts ...Option) (string, error) {
	return r.first(KindUserLog, name, opts)
}

// SiteDataDirs returns the system-wide data directories for the
// application, highest priority first.
func (r *Resolver) SiteDataDirs(name string, opts ...Option) ([]string, error) {
	return r.Resolve(KindSiteData, name, opts...)
}

// SiteConfigDirs returns the system-wide configuration directories for the
// application, highest priority first.
func (r *Resolver) SiteConfigDirs(name string, opts ...Option) ([]string, error) {
	return r.Resolve(KindSiteConfig, name, opts...)
}

func (r *Resolver) first(kind Kind, name string, opts []Option) (string, error) {
	dirs, err := r.Resolve(kind, name, opts...)
	if err != nil {
		return "", err
	}
	return dirs[0], nil
}

// baseDirs selects the base search locations for a kind before the
// application name is appended.
func (r *Resolver) baseDirs(kind Kind, req request) ([]string, error) {
	// Site kinds are inherently system-wide and never honor an isolated
	// environment.
	if req.sandbox && !kind.Site() {
		if root, ok := r.sandbox().Root(); ok {
			return []string{r.join(root, kind.segment())}, nil
		}
	}

	goos := r.goos()
	switch {
	case goos == "windows":
		return r.windowsBase(kind, req)
	case goos == "darwin":
		return r.darwinBase(kind)
	case unixLike[goos]:
		return r.unixBase(kind)
	default:
		return nil, errors.Wrapf(ErrUnsupportedPlatform, "%s", goos)
	}
}

func (r *Resolver) windowsBase(kind Kind, req request) ([]string, error) {
	if req.author == "" {
		return nil, errors.Wrapf(ErrMissingAuthor, "resolving %s", kind)
	}

	folder := FolderLocalAppData
	switch {
	case kind.Site():
		folder = FolderCommonAppData
	case req.roaming && kind != KindUserCache && kind != KindUserLog:
		folder = FolderRoamingAppData
	}

	base, err := r.winFolders().Path(folder)
	if err != nil {
		return nil, err
	}
	base = r.join(base, req.author)

	// There is no native convention for caches or logs; keep them under
	// the local application data tree.
	switch kind {
	case KindUserCache:
		base = r.join(base, "Caches")
	case KindUserLog:
		base = r.join(base, "Logs")
	}
	return []string{base}, nil
}

func (r *Resolver) darwinBase(kind Kind) ([]string, error) {
	if kind.Site() {
		return []string{"/Library/Application Support"}, nil
	}
	home, err := r.home()
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindUserCache:
		return []string{r.join(home, "Library", "Caches")}, nil
	case KindUserLog:
		return []string{r.join(home, "Library", "Logs")}, nil
	default:
		return []string{r.join(home, "Library", "Application Support")}, nil
	}
}

func (r *Resolver) unixBase(kind Kind) ([]string, error) {
	switch kind {
	case KindUserData:
		return r.xdgHome("XDG_DATA_HOME", ".local/share")
	case KindUserConfig:
		return r.xdgHome("XDG_CONFIG_HOME", ".config")
	case KindUserState, KindUserLog:
		// The XDG spec files logs under state; there is no XDG_LOG_HOME.
		return r.xdgHome("XDG_STATE_HOME", ".local/state")
	case KindUserCache:
		return r.xdgHome("XDG_CACHE_HOME", ".cache")
	case KindSiteData:
		return r.xdgDirs("XDG_DATA_DIRS", "/usr/local/share:/usr/share")
	case KindSiteConfig:
		return r.xdgDirs("XDG_CONFIG_DIRS", "/etc/xdg")
	}
	return nil, errors.Wrapf(ErrInvalidKind, "%d", int(kind))
}

// xdgHome resolves a single-valued XDG variable, falling back to the given
// home-relative default when the variable is unset or empty.
func (r *Resolver) xdgHome(key, fallback string) ([]string, error) {
	if value := r.env(key); value != "" {
		dir, err := r.expand(value)
		if err != nil {
			return nil, err
		}
		return []string{dir}, nil
	}
	home, err := r.home()
	if err != nil {
		return nil, err
	}
	return []string{r.join(home, fallback)}, nil
}

// xdgDirs resolves a colon-separated XDG search list, preserving order.
// Empty entries are skipped; if nothing remains the documented default
// applies.
func (r *Resolver) xdgDirs(key, fallback string) ([]string, error) {
	value := r.env(key)
	if value == "" {
		value = fallback
	}
	entries := splitSearchPath(value)
	if len(entries) == 0 {
		entries = splitSearchPath(fallback)
	}
	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		dir, err := r.expand(entry)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
	}
	return dirs, nil
}

func splitSearchPath(value string) []string {
	var entries []string
	for _, entry := range strings.Split(value, ":") {
		if entry != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// expand replaces a leading tilde with the user's home directory.
func (r *Resolver) expand(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := r.home()
	if err != nil {
		return "", err
	}
	return r.join(home, strings.TrimPrefix(path[1:], "/")), nil
}

// join joins path elements with the separator of the target platform, which
// may differ from the host's. Trailing separators are trimmed from each
// element.
func (r *Resolver) join(elems ...string) string {
	sep := "/"
	if r.goos() == "windows" {
		sep = `\`
	}
	parts := make([]string, 0, len(elems))
	for i, elem := range elems {
		trimmed := strings.TrimRight(elem, sep)
		if trimmed == "" {
			if i == 0 && elem != "" {
				// Keep a bare root such as "/".
				parts = append(parts, "")
			}
			continue
		}
		parts = append(parts, trimmed)
	}
	return strings.Join(parts, sep)
}

func (r *Resolver) goos() string {
	if r.GOOS != "" {
		return r.GOOS
	}
	return runtime.GOOS
}

func (r *Resolver) env(key string) string {
	if r.Env != nil {
		return r.Env(key)
	}
	return os.Getenv(key)
}

func (r *Resolver) home() (string, error) {
	resolve := r.Home
	if resolve == nil {
		resolve = os.UserHomeDir
	}
	home, err := resolve()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

func (r *Resolver) winFolders() WindowsFolders {
	if r.Windows != nil {
		return r.Windows
	}
	return EnvFolders{Env: r.Env}
}

func (r *Resolver) sandbox() Sandbox {
	if r.Sandbox != nil {
		return r.Sandbox
	}
	return EnvSandbox{Env: r.Env}
}

func (r *Resolver) fs() afero.Fs {
	if r.FS != nil {
		return r.FS
	}
	return afero.NewOsFs()
}
