package appdirs

import "testing"

func TestEnvSandbox(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantRoot string
		wantOK   bool
	}{
		{
			name:     "active virtualenv",
			env:      map[string]string{"VIRTUAL_ENV": "/opt/venv"},
			wantRoot: "/opt/venv",
			wantOK:   true,
		},
		{
			name:   "no virtualenv",
			env:    nil,
			wantOK: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sandbox := EnvSandbox{Env: envFrom(tt.env)}
			root, ok := sandbox.Root()
			if ok != tt.wantOK {
				t.Fatalf("Root() ok = %v, want %v", ok, tt.wantOK)
			}
			if root != tt.wantRoot {
				t.Errorf("Root() = %q, want %q", root, tt.wantRoot)
			}
		})
	}
}

func TestStaticSandbox(t *testing.T) {
	if root, ok := (StaticSandbox{Path: "/venv"}).Root(); !ok || root != "/venv" {
		t.Errorf("Root() = %q, %v; want /venv, true", root, ok)
	}
	if _, ok := (StaticSandbox{}).Root(); ok {
		t.Error("empty StaticSandbox reported an active environment")
	}
}
