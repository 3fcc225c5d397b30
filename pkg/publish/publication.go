package publish

import (
	"github.com/Masterminds/semver/v3"

	"github.com/matzehuels/mavenpub/pkg/artifact"
	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/pom"
	"github.com/matzehuels/mavenpub/pkg/signing"
)

// Publication is one Maven publication: a coordinate, the artifacts attached
// to it, its POM metadata and, once signed, its signatures.
type Publication struct {
	Name        string
	Coordinate  pom.Coordinate
	DisplayName string // POM <name>; defaults to the artifact id
	Artifacts   []*artifact.Artifact
	Metadata    *pom.Metadata
	Signatures  []signing.Signature
}

// Attach adds a to the publication. Attaching the same descriptor again is
// a no-op; a different descriptor with an already used classifier fails
// with ALREADY_EXISTS.
func (p *Publication) Attach(a *artifact.Artifact) error {
	if a == nil {
		return errors.New(errors.ErrCodeInvalidInput, "cannot attach nil artifact to %s", p.Name)
	}
	if err := errors.ValidateClassifier(a.Classifier); err != nil {
		return err
	}
	for _, existing := range p.Artifacts {
		if existing == a {
			return nil
		}
		if existing.Classifier == a.Classifier && existing.Ext() == a.Ext() {
			return errors.New(errors.ErrCodeAlreadyExists,
				"publication %s already has a %q artifact", p.Name, a.Classifier)
		}
	}
	p.Artifacts = append(p.Artifacts, a)
	return nil
}

// Artifact returns the attached artifact with the given classifier.
func (p *Publication) Artifact(classifier string) (*artifact.Artifact, bool) {
	for _, a := range p.Artifacts {
		if a.Classifier == classifier {
			return a, true
		}
	}
	return nil, false
}

// POMFileName returns "<artifactId>-<version>.pom".
func (p *Publication) POMFileName() string {
	return p.Coordinate.ArtifactID + "-" + p.Coordinate.Version + ".pom"
}

// POM renders the publication's POM document.
func (p *Publication) POM() ([]byte, error) {
	if p.Metadata == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "publication %s has no metadata", p.Name)
	}
	return pom.Marshal(p.Coordinate, p.Metadata)
}

// Signed reports whether at least one signature is attached.
func (p *Publication) Signed() bool {
	return len(p.Signatures) > 0
}

// Semver parses the version as a semantic version. Maven versions need not
// be semantic; ok is false when parsing fails. Routing never uses this.
func (p *Publication) Semver() (*semver.Version, bool) {
	v, err := semver.NewVersion(p.Coordinate.Version)
	if err != nil {
		return nil, false
	}
	return v, true
}
