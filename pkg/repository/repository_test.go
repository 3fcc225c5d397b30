package repository

import (
	"net/url"
	"testing"

	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/optional"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func TestResolve(t *testing.T) {
	release := mustURL(t, SonatypeRelease)
	snapshot := mustURL(t, SonatypeSnapshot)

	tests := []struct {
		version string
		want    *url.URL
	}{
		{"1.0.0-SNAPSHOT", snapshot},
		{"1.0.0.SNAPSHOT", snapshot},
		{"SNAPSHOT", snapshot},
		{"0.1.4-SNAPSHOT", snapshot},
		{"1.0.0", release},
		{"1.0.0-SNAPSHOTX", release},
		{"1.0.0-snapshot", release},
		{"SNAPSHOT-1.0.0", release},
		{"", release},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			if got := Resolve(tt.version, release, snapshot); got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.version, got, tt.want)
			}
		})
	}
}

func TestResolveIsPure(t *testing.T) {
	release := mustURL(t, SonatypeRelease)
	snapshot := mustURL(t, SonatypeSnapshot)
	for i := 0; i < 3; i++ {
		if Resolve("2.0.0", release, snapshot) != release {
			t.Fatal("Resolve() changed its answer between calls")
		}
	}
	if release.String() != SonatypeRelease || snapshot.String() != SonatypeSnapshot {
		t.Error("Resolve() must not modify its inputs")
	}
}

func TestNew(t *testing.T) {
	release := mustURL(t, SonatypeRelease)
	snapshot := mustURL(t, SonatypeSnapshot)

	repo := New("2.0.0-SNAPSHOT", release, snapshot, optional.None[Credentials]())
	if repo.Name != DefaultName {
		t.Errorf("Name = %q, want %q", repo.Name, DefaultName)
	}
	if repo.URL != snapshot {
		t.Errorf("URL = %v, want %v", repo.URL, snapshot)
	}
	if repo.Credentials.IsSome() {
		t.Error("Credentials should be absent")
	}
}

func TestCredentialsFrom(t *testing.T) {
	tests := []struct {
		name   string
		user   optional.Option[string]
		pass   optional.Option[string]
		wantOK bool
	}{
		{"both", optional.Some("ci"), optional.Some("pw"), true},
		{"no user", optional.None[string](), optional.Some("pw"), false},
		{"no password", optional.Some("ci"), optional.None[string](), false},
		{"neither", optional.None[string](), optional.None[string](), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CredentialsFrom(tt.user, tt.pass)
			if got.IsSome() != tt.wantOK {
				t.Fatalf("CredentialsFrom().IsSome() = %v, want %v", got.IsSome(), tt.wantOK)
			}
			if c, ok := got.Get(); ok && (c.Username != "ci" || c.Password != "pw") {
				t.Errorf("Credentials = %+v, want ci/pw", c)
			}
		})
	}
}

func TestParseURL(t *testing.T) {
	u, err := ParseURL("releaseRepo", SonatypeRelease)
	if err != nil {
		t.Fatalf("ParseURL() error: %v", err)
	}
	if u.Host != "s01.oss.sonatype.org" {
		t.Errorf("Host = %q, want %q", u.Host, "s01.oss.sonatype.org")
	}

	if _, err := ParseURL("releaseRepo", "not a url"); !errors.Is(err, errors.ErrCodeInvalidURL) {
		t.Errorf("ParseURL() error = %v, want INVALID_URL", err)
	}
	if _, err := ParseURL("releaseRepo", ""); !errors.Is(err, errors.ErrCodeMissingField) {
		t.Errorf("ParseURL(\"\") error = %v, want MISSING_FIELD", err)
	}
}
