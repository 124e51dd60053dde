package appdirs

import (
	"os"

	"github.com/cockroachdb/errors"
)

// KnownFolder identifies a Windows special folder consulted during
// resolution.
type KnownFolder int

const (
	// FolderRoamingAppData is the per-user application data folder that
	// roams with the user's profile (%APPDATA%).
	FolderRoamingAppData KnownFolder = iota

	// FolderLocalAppData is the per-user, machine-local application data
	// folder (%LOCALAPPDATA%).
	FolderLocalAppData

	// FolderCommonAppData is the machine-wide application data folder
	// shared by all users (%ProgramData%).
	FolderCommonAppData
)

// folderEnvVars maps known folders to the environment variables Windows
// exports for them.
var folderEnvVars = map[KnownFolder]string{
	FolderRoamingAppData: "APPDATA",
	FolderLocalAppData:   "LOCALAPPDATA",
	FolderCommonAppData:  "ProgramData",
}

// String returns the environment variable name backing the folder.
func (f KnownFolder) String() string {
	if name, ok := folderEnvVars[f]; ok {
		return name
	}
	return "unknown"
}

// WindowsFolders answers the native special-folder query the resolver
// depends on when targeting Windows. The resolver treats it as an opaque
// collaborator so resolution stays testable off Windows.
type WindowsFolders interface {
	// Path returns the absolute path of the given special folder.
	Path(folder KnownFolder) (string, error)
}

// EnvFolders resolves known folders from the environment variables Windows
// sets for every process, the same source the Go runtime consults for
// os.UserConfigDir and os.UserCacheDir.
type EnvFolders struct {
	// Env looks up environment variables. Defaults to os.Getenv.
	Env func(key string) string
}

// Path implements WindowsFolders.
func (e EnvFolders) Path(folder KnownFolder) (string, error) {
	key, ok := folderEnvVars[folder]
	if !ok {
		return "", errors.Newf("unknown folder %d", int(folder))
	}
	env := e.Env
	if env == nil {
		env = os.Getenv
	}
	dir := env(key)
	if dir == "" {
		return "", errors.Wrapf(ErrFolderNotSet, "%%%s%%", key)
	}
	return dir, nil
}

// StaticFolders is a fixed-path WindowsFolders for tests.
type StaticFolders map[KnownFolder]string

// Path implements WindowsFolders.
func (s StaticFolders) Path(folder KnownFolder) (string, error) {
	dir, ok := s[folder]
	if !ok || dir == "" {
		return "", errors.Wrapf(ErrFolderNotSet, "%s", folder)
	}
	return dir, nil
}
