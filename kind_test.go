package appdirs

import (
	"testing"

	"github.com/cockroachdb/errors"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUserData, "user_data"},
		{KindUserConfig, "user_config"},
		{KindUserState, "user_state"},
		{KindUserCache, "user_cache"},
		{KindUserLog, "user_log"},
		{KindSiteData, "site_data"},
		{KindSiteConfig, "site_config"},
		{Kind(42), "unknown"},
		{Kind(-1), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	for _, kind := range Kinds() {
		got, err := ParseKind(kind.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", kind, err)
		}
		if got != kind {
			t.Errorf("ParseKind(%q) = %v, want %v", kind, got, kind)
		}
	}
}

func TestParseKindUnknown(t *testing.T) {
	_, err := ParseKind("user_junk")
	if !errors.Is(err, ErrInvalidKind) {
		t.Errorf("expected ErrInvalidKind, got %v", err)
	}
}

func TestKindSite(t *testing.T) {
	for _, kind := range Kinds() {
		want := kind == KindSiteData || kind == KindSiteConfig
		if got := kind.Site(); got != want {
			t.Errorf("%s.Site() = %v, want %v", kind, got, want)
		}
		if got := kind.Multi(); got != want {
			t.Errorf("%s.Multi() = %v, want %v", kind, got, want)
		}
	}
}

func TestKindSegment(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindUserData, "data"},
		{KindUserConfig, "config"},
		{KindUserState, "state"},
		{KindUserCache, "cache"},
		{KindUserLog, "log"},
	}
	for _, tt := range tests {
		if got := tt.kind.segment(); got != tt.want {
			t.Errorf("%s.segment() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
