package appdirs

import "os"

// Sandbox answers whether the current process executes inside an isolated
// runtime environment, a self-contained root distinct from the system
// installation.
type Sandbox interface {
	// Root returns the environment root and true when the process runs
	// inside an isolated environment, or "" and false otherwise.
	Root() (string, bool)
}

// EnvSandbox detects an isolated environment through the VIRTUAL_ENV
// variable, which activation scripts export as the environment root.
type EnvSandbox struct {
	// Env looks up environment variables. Defaults to os.Getenv.
	Env func(key string) string
}

// Root implements Sandbox.
func (s EnvSandbox) Root() (string, bool) {
	env := s.Env
	if env == nil {
		env = os.Getenv
	}
	root := env("VIRTUAL_ENV")
	return root, root != ""
}

// StaticSandbox is a fixed-answer Sandbox for tests. An empty Path means no
// isolated environment is active.
type StaticSandbox struct {
	Path string
}

// Root implements Sandbox.
func (s StaticSandbox) Root() (string, bool) {
	return s.Path, s.Path != ""
}
