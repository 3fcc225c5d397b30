package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/repository"
)

// Starter returns a project populated with placeholder values for init.
func Starter(group, artifact string) *Project {
	if group == "" {
		group = "io.github.example"
	}
	if artifact == "" {
		artifact = "library"
	}
	return &Project{
		Group:       group,
		Artifact:    artifact,
		Version:     "0.1.0-SNAPSHOT",
		Description: "A short description of " + artifact,
		URL:         "https://github.com/example/" + artifact,
		Developer:   Developer{ID: "example", Name: "Example Developer"},
		Repositories: Repositories{
			Release:  repository.SonatypeRelease,
			Snapshot: repository.SonatypeSnapshot,
		},
		Publications: []Publication{{Name: DefaultPublication}},
		JavadocDir:   "build/docs/javadoc",
	}
}

// Write encodes p as TOML at path. It refuses to overwrite an existing file
// unless force is set.
func Write(path string, p *Project, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		if os.IsExist(err) {
			return errors.New(errors.ErrCodeAlreadyExists, "%s already exists", path)
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := toml.NewEncoder(f).Encode(p); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "encode %s", path)
	}
	return f.Close()
}
