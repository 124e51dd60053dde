package appdirs

import "github.com/cockroachdb/errors"

// Kind selects which application directory to resolve.
type Kind int

const (
	// KindUserData is the per-user data directory.
	KindUserData Kind = iota

	// KindUserConfig is the per-user configuration directory.
	KindUserConfig

	// KindUserState is the per-user state directory (logs excluded).
	KindUserState

	// KindUserCache is the per-user cache directory.
	KindUserCache

	// KindUserLog is the per-user log directory.
	KindUserLog

	// KindSiteData is the system-wide data directory, shared by all users.
	KindSiteData

	// KindSiteConfig is the system-wide configuration directory.
	KindSiteConfig
)

var kindNames = [...]string{
	KindUserData:   "user_data",
	KindUserConfig: "user_config",
	KindUserState:  "user_state",
	KindUserCache:  "user_cache",
	KindUserLog:    "user_log",
	KindSiteData:   "site_data",
	KindSiteConfig: "site_config",
}

// String returns the canonical snake_case name of the kind.
func (k Kind) String() string {
	if !k.valid() {
		return "unknown"
	}
	return kindNames[k]
}

// Site reports whether the kind is system-wide rather than per-user.
func (k Kind) Site() bool {
	return k == KindSiteData || k == KindSiteConfig
}

// Multi reports whether the kind resolves to an ordered list of directories
// rather than a single one.
func (k Kind) Multi() bool {
	return k.Site()
}

func (k Kind) valid() bool {
	return k >= KindUserData && k <= KindSiteConfig
}

// segment returns the directory name used for the kind under an isolated
// environment root: data, config, state, cache or log.
func (k Kind) segment() string {
	switch k {
	case KindUserData, KindSiteData:
		return "data"
	case KindUserConfig, KindSiteConfig:
		return "config"
	case KindUserState:
		return "state"
	case KindUserCache:
		return "cache"
	case KindUserLog:
		return "log"
	}
	return "unknown"
}

// Kinds returns every kind in a stable order: user kinds first, then site
// kinds.
func Kinds() []Kind {
	return []Kind{
		KindUserData,
		KindUserConfig,
		KindUserState,
		KindUserCache,
		KindUserLog,
		KindSiteData,
		KindSiteConfig,
	}
}

// ParseKind converts a canonical snake_case name back into a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidKind, "%q", s)
}
