package artifact

import (
	"fmt"

	"github.com/matzehuels/mavenpub/pkg/errors"
)

// Well-known task names and classifiers.
const (
	JavadocTask = "javadocJar"
	SourcesTask = "sourcesJar"
	JarTask     = "jar"

	ClassifierJavadoc = "javadoc"
	ClassifierSources = "sources"

	defaultExtension = "jar"
)

// Artifact is a named, classified archive attached to a coordinate.
// The publication references it; it does not own the bytes at Path.
type Artifact struct {
	Name       string // Registry key (e.g. "javadocJar")
	Classifier string // "javadoc", "sources", or empty for the main archive
	Extension  string // File extension without dot (default "jar")
	Path       string // Location of the built archive, empty if not built yet
}

// Ext returns the extension, defaulting to "jar".
func (a *Artifact) Ext() string {
	if a.Extension == "" {
		return defaultExtension
	}
	return a.Extension
}

// FileName returns the Maven repository file name for this artifact,
// e.g. "saga-1.0.0-javadoc.jar".
func (a *Artifact) FileName(artifactID, version string) string {
	if a.Classifier == "" {
		return fmt.Sprintf("%s-%s.%s", artifactID, version, a.Ext())
	}
	return fmt.Sprintf("%s-%s-%s.%s", artifactID, version, a.Classifier, a.Ext())
}

// Validate checks the name and classifier.
func (a *Artifact) Validate() error {
	if err := errors.Required("artifact name", a.Name); err != nil {
		return err
	}
	return errors.ValidateClassifier(a.Classifier)
}
