package repository

import (
	"net/url"
	"strings"

	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/optional"
)

// SnapshotSuffix marks a version as a snapshot.
const SnapshotSuffix = "SNAPSHOT"

// DefaultName is the name given to the registered repository.
const DefaultName = "Maven"

// Well-known Sonatype OSSRH endpoints.
const (
	SonatypeRelease  = "https://s01.oss.sonatype.org/service/local/staging/deploy/maven2/"
	SonatypeSnapshot = "https://s01.oss.sonatype.org/content/repositories/snapshots/"
)

// Credentials authenticate against a repository.
type Credentials struct {
	Username string
	Password string
}

// Repository is a publish destination.
type Repository struct {
	Name        string
	URL         *url.URL
	Credentials optional.Option[Credentials]
}

// IsSnapshot reports whether version ends with "SNAPSHOT".
func IsSnapshot(version string) bool {
	return strings.HasSuffix(version, SnapshotSuffix)
}

// Resolve returns snapshot if version ends with "SNAPSHOT", release otherwise.
func Resolve(version string, release, snapshot *url.URL) *url.URL {
	if IsSnapshot(version) {
		return snapshot
	}
	return release
}

// New builds the repository for version, choosing between release and snapshot.
func New(version string, release, snapshot *url.URL, creds optional.Option[Credentials]) *Repository {
	return &Repository{
		Name:        DefaultName,
		URL:         Resolve(version, release, snapshot),
		Credentials: creds,
	}
}

// CredentialsFrom pairs username and password. Either one missing yields None.
func CredentialsFrom(username, password optional.Option[string]) optional.Option[Credentials] {
	return optional.Zip(username, password, func(u, p string) optional.Option[Credentials] {
		return optional.Some(Credentials{Username: u, Password: p})
	})
}

// ParseURL parses and validates a repository URL.
// field names the setting in error messages.
func ParseURL(field, raw string) (*url.URL, error) {
	if err := errors.ValidateURL(field, raw); err != nil {
		return nil, err
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidURL, err, "%s is malformed", field)
	}
	return u, nil
}
