package publish

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/optional"
	"github.com/matzehuels/mavenpub/pkg/pom"
	"github.com/matzehuels/mavenpub/pkg/repository"
)

// ManifestFile is the name of the manifest WriteBundle writes.
const ManifestFile = "publication.json"

// Manifest describes a bundle for the uploader. Passwords are never written.
type Manifest struct {
	RunID        string                `json:"run_id"`
	Repository   *ManifestRepository   `json:"repository,omitempty"`
	Signed       bool                  `json:"signed"`
	KeyID        string                `json:"key_id,omitempty"`
	Publications []ManifestPublication `json:"publications"`
}

// ManifestRepository is the destination of the run.
type ManifestRepository struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Username string `json:"username,omitempty"`
	Snapshot bool   `json:"snapshot"`
}

// ManifestPublication lists the files of one publication, relative to the
// bundle root.
type ManifestPublication struct {
	Name       string         `json:"name"`
	Coordinate pom.Coordinate `json:"coordinate"`
	Metadata   *pom.Metadata  `json:"metadata,omitempty"`
	Files      []string       `json:"files"`
	Signatures []string       `json:"signatures,omitempty"`
}

// RepositoryPath returns the Maven repository layout directory for c,
// e.g. "io/github/nomisrev/saga/0.1.4".
func RepositoryPath(c pom.Coordinate) string {
	return filepath.Join(strings.ReplaceAll(c.GroupID, ".", "/"), c.ArtifactID, c.Version)
}

// WriteBundle lays res out under dir in Maven repository layout: POM files,
// built artifacts, their signatures, and a publication.json manifest.
// Publications must have distinct coordinates; nothing is written otherwise.
func WriteBundle(dir string, res *Result) (*Manifest, error) {
	if err := checkDistinct(res.Publications); err != nil {
		return nil, err
	}

	m := &Manifest{
		RunID:  res.RunID,
		Signed: res.Signed,
		KeyID:  res.KeyID,
	}
	if r := res.Repository; r != nil {
		m.Repository = &ManifestRepository{
			Name:     r.Name,
			URL:      r.URL.String(),
			Username: optional.Map(r.Credentials, username).OrElse(""),
			Snapshot: res.Snapshot(),
		}
	}

	for _, pub := range res.Publications {
		mp, err := writePublication(dir, pub)
		if err != nil {
			return nil, err
		}
		m.Publications = append(m.Publications, mp)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode manifest")
	}
	if err := writeFile(filepath.Join(dir, ManifestFile), data); err != nil {
		return nil, err
	}
	return m, nil
}

func username(c repository.Credentials) string { return c.Username }

// checkDistinct fails with ALREADY_EXISTS when two publications share a
// coordinate and would overwrite each other's files.
func checkDistinct(pubs []*Publication) error {
	seen := make(map[pom.Coordinate]string, len(pubs))
	for _, pub := range pubs {
		if other, ok := seen[pub.Coordinate]; ok {
			return errors.New(errors.ErrCodeAlreadyExists,
				"publications %q and %q both resolve to %s", other, pub.Name, pub.Coordinate)
		}
		seen[pub.Coordinate] = pub.Name
	}
	return nil
}

func writePublication(dir string, pub *Publication) (ManifestPublication, error) {
	rel := RepositoryPath(pub.Coordinate)
	mp := ManifestPublication{
		Name:       pub.Name,
		Coordinate: pub.Coordinate,
		Metadata:   pub.Metadata,
	}

	if pub.Metadata != nil {
		data, err := pub.POM()
		if err != nil {
			return mp, err
		}
		name := filepath.Join(rel, pub.POMFileName())
		if err := writeFile(filepath.Join(dir, name), data); err != nil {
			return mp, err
		}
		mp.Files = append(mp.Files, filepath.ToSlash(name))
	}

	for _, a := range pub.Artifacts {
		if a.Path == "" {
			continue
		}
		name := filepath.Join(rel, a.FileName(pub.Coordinate.ArtifactID, pub.Coordinate.Version))
		if err := copyFile(filepath.Join(dir, name), a.Path); err != nil {
			return mp, err
		}
		mp.Files = append(mp.Files, filepath.ToSlash(name))
	}

	for _, sig := range pub.Signatures {
		name := filepath.Join(rel, sig.Name)
		if err := writeFile(filepath.Join(dir, name), sig.Data); err != nil {
			return mp, err
		}
		mp.Signatures = append(mp.Signatures, filepath.ToSlash(name))
	}
	return mp, nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", filepath.Dir(path))
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

func copyFile(dst, src string) error {
	in, err := os.Open(src)
	if err != nil {
		return errors.Wrap(errors.ErrCodeNotFound, err, "open artifact %s", src)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", filepath.Dir(dst))
	}
	out, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return errors.Wrap(errors.ErrCodeInternal, err, "copy %s", src)
	}
	return out.Close()
}
