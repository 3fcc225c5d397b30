package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/repository"
)

// DefaultPublication is declared when the file lists no publications.
const DefaultPublication = "mavenJava"

// FileNames are the project file names Find looks for, in order.
var FileNames = []string{"mavenpub.toml", "mavenpub.yaml", "mavenpub.yml"}

// Project is the contents of a project file.
type Project struct {
	Group       string `toml:"group" yaml:"group"`
	Artifact    string `toml:"artifact" yaml:"artifact"`
	Version     string `toml:"version" yaml:"version"`
	Name        string `toml:"name,omitempty" yaml:"name,omitempty"`
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`
	URL         string `toml:"url" yaml:"url"`
	GitURL      string `toml:"git_url,omitempty" yaml:"git_url,omitempty"`

	Developer    Developer    `toml:"developer" yaml:"developer"`
	License      License      `toml:"license" yaml:"license"`
	Repositories Repositories `toml:"repositories" yaml:"repositories"`

	Publications []Publication `toml:"publications" yaml:"publications"`
	JavadocDir   string        `toml:"javadoc_dir,omitempty" yaml:"javadoc_dir,omitempty"`
	SourcesDir   string        `toml:"sources_dir,omitempty" yaml:"sources_dir,omitempty"`

	path string
}

// Publication is one publication to declare. Artifact defaults to the
// project artifact; publications of one project need distinct artifacts.
type Publication struct {
	Name     string `toml:"name" yaml:"name"`
	Artifact string `toml:"artifact,omitempty" yaml:"artifact,omitempty"`
}

// Developer is the single developer listed in the POM.
type Developer struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`
}

// License overrides the default Apache-2.0 license.
type License struct {
	Name string `toml:"name,omitempty" yaml:"name,omitempty"`
	URL  string `toml:"url,omitempty" yaml:"url,omitempty"`
}

// Repositories are the two candidate destinations.
type Repositories struct {
	Release  string `toml:"release" yaml:"release"`
	Snapshot string `toml:"snapshot" yaml:"snapshot"`
}

// Path returns the file the project was loaded from, if any.
func (p *Project) Path() string { return p.path }

// Find returns the first project file present in dir.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", errors.New(errors.ErrCodeNotFound,
		"no project file in %s (looked for %s)", dir, strings.Join(FileNames, ", "))
}

// Load reads, defaults and validates the project file at path. The format
// follows the extension: .yaml and .yml are YAML, everything else is TOML.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "project file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	p, err := Parse(data, formatOf(path))
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	p.path = path
	return p, nil
}

// Format is a project file syntax.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	default:
		return TOML
	}
}

// Parse decodes data, applies defaults and validates the result.
func Parse(data []byte, format Format) (*Project, error) {
	var p Project
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&p); err != nil && err != io.EOF {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse yaml")
		}
	case TOML:
		md, err := toml.Decode(string(data), &p)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported format %q", format)
	}

	p.applyDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Project) applyDefaults() {
	if p.Repositories.Release == "" {
		p.Repositories.Release = repository.SonatypeRelease
	}
	if p.Repositories.Snapshot == "" {
		p.Repositories.Snapshot = repository.SonatypeSnapshot
	}
	if len(p.Publications) == 0 {
		p.Publications = []Publication{{Name: DefaultPublication}}
	}
	for i := range p.Publications {
		if p.Publications[i].Artifact == "" {
			p.Publications[i].Artifact = p.Artifact
		}
	}
}

// Validate checks required fields and URLs. All failures are fatal.
func (p *Project) Validate() error {
	for _, part := range []struct{ field, value string }{
		{"group", p.Group},
		{"artifact", p.Artifact},
		{"version", p.Version},
	} {
		if err := errors.ValidateCoordinatePart(part.field, part.value); err != nil {
			return err
		}
	}
	if err := errors.ValidateURL("url", p.URL); err != nil {
		return err
	}
	if p.GitURL != "" {
		if err := errors.ValidateSCMConnection("git_url", p.GitURL); err != nil {
			return err
		}
	}
	if _, err := repository.ParseURL("repositories.release", p.Repositories.Release); err != nil {
		return err
	}
	if _, err := repository.ParseURL("repositories.snapshot", p.Repositories.Snapshot); err != nil {
		return err
	}

	names := make(map[string]bool, len(p.Publications))
	artifacts := make(map[string]string, len(p.Publications))
	for _, pub := range p.Publications {
		if err := errors.Required("publication name", pub.Name); err != nil {
			return err
		}
		if names[pub.Name] {
			return errors.New(errors.ErrCodeInvalidConfig, "publication %q listed twice", pub.Name)
		}
		names[pub.Name] = true

		artifact := pub.Artifact
		if artifact == "" {
			artifact = p.Artifact
		}
		if err := errors.ValidateCoordinatePart("artifact of publication "+pub.Name, artifact); err != nil {
			return err
		}
		if other, ok := artifacts[artifact]; ok {
			return errors.New(errors.ErrCodeInvalidConfig,
				"publications %q and %q both publish artifact %q", other, pub.Name, artifact)
		}
		artifacts[artifact] = pub.Name
	}
	return nil
}
