package publish

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/mavenpub/pkg/artifact"
	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/optional"
	"github.com/matzehuels/mavenpub/pkg/pom"
	"github.com/matzehuels/mavenpub/pkg/repository"
	"github.com/matzehuels/mavenpub/pkg/signing/signingtest"
)

func TestRepositoryPath(t *testing.T) {
	c := pom.Coordinate{GroupID: "io.github.nomisrev", ArtifactID: "saga", Version: "0.1.4"}
	want := filepath.Join("io", "github", "nomisrev", "saga", "0.1.4")
	if got := RepositoryPath(c); got != want {
		t.Errorf("RepositoryPath() = %q, want %q", got, want)
	}
}

func TestWriteBundle(t *testing.T) {
	work := t.TempDir()
	jar := filepath.Join(work, "javadoc.jar")
	if _, err := artifact.WriteJar(jar, ""); err != nil {
		t.Fatal(err)
	}

	key := signingtest.NewKey(t, "pw")
	p := newTestProject("1.0.0-SNAPSHOT")
	_ = p.Artifacts.Register(&artifact.Artifact{Name: artifact.JavadocTask, Classifier: artifact.ClassifierJavadoc, Path: jar})
	_, _ = p.Declare("mavenJava")

	s := testSettings()
	s.SigningKey = optional.Some(key.Armored)
	s.SigningPassword = optional.Some("pw")
	s.Credentials = repository.CredentialsFrom(optional.Some("deployer"), optional.Some("s3cret"))
	if err := Setup(p, s); err != nil {
		t.Fatal(err)
	}
	res, err := p.Finalize(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	m, err := WriteBundle(out, res)
	if err != nil {
		t.Fatalf("WriteBundle() error: %v", err)
	}

	if m.RunID != res.RunID || !m.Signed {
		t.Errorf("manifest = %+v, want run %s signed", m, res.RunID)
	}
	if m.Repository == nil || !m.Repository.Snapshot || m.Repository.Username != "deployer" {
		t.Errorf("manifest repository = %+v, want snapshot repo for deployer", m.Repository)
	}
	if len(m.Publications) != 1 {
		t.Fatalf("len(Publications) = %d, want 1", len(m.Publications))
	}

	mp := m.Publications[0]
	wantFiles := []string{
		"io/github/nomisrev/saga/1.0.0-SNAPSHOT/saga-1.0.0-SNAPSHOT.pom",
		"io/github/nomisrev/saga/1.0.0-SNAPSHOT/saga-1.0.0-SNAPSHOT-javadoc.jar",
	}
	if strings.Join(mp.Files, ",") != strings.Join(wantFiles, ",") {
		t.Errorf("Files = %v, want %v", mp.Files, wantFiles)
	}
	if len(mp.Signatures) != 2 {
		t.Errorf("len(Signatures) = %d, want 2", len(mp.Signatures))
	}
	for _, f := range append(mp.Files, mp.Signatures...) {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(f))); err != nil {
			t.Errorf("bundle file %s missing: %v", f, err)
		}
	}

	pomData, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(wantFiles[0])))
	if err != nil {
		t.Fatal(err)
	}
	sigData, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(wantFiles[0])+".asc"))
	if err != nil {
		t.Fatal(err)
	}
	if err := key.Verify(pomData, sigData); err != nil {
		t.Errorf("bundled POM signature does not verify: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(out, ManifestFile))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "s3cret") {
		t.Error("manifest must not contain the repository password")
	}
	var decoded Manifest
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("manifest is not valid JSON: %v", err)
	}
	if decoded.RunID != res.RunID {
		t.Errorf("decoded RunID = %q, want %q", decoded.RunID, res.RunID)
	}
}

func TestWriteBundleSkipsUnbuiltArtifacts(t *testing.T) {
	p := newTestProject("1.0.0")
	_, _ = p.Declare("mavenJava")
	if err := Setup(p, testSettings()); err != nil {
		t.Fatal(err)
	}
	res, err := p.Finalize(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	m, err := WriteBundle(t.TempDir(), res)
	if err != nil {
		t.Fatal(err)
	}
	mp := m.Publications[0]
	if len(mp.Files) != 1 || !strings.HasSuffix(mp.Files[0], ".pom") {
		t.Errorf("Files = %v, want only the POM", mp.Files)
	}
	if len(mp.Signatures) != 0 {
		t.Errorf("Signatures = %v, want none", mp.Signatures)
	}
	if m.Repository.Username != "" {
		t.Errorf("Username = %q, want empty", m.Repository.Username)
	}
}

func TestWriteBundleMultiplePublications(t *testing.T) {
	p := newTestProject("2.0.0")
	jvm, _ := p.Declare("jvm")
	jvm.Coordinate.ArtifactID = "saga-jvm"
	js, _ := p.Declare("js")
	js.Coordinate.ArtifactID = "saga-js"

	s := testSettings()
	s.StagingDir = t.TempDir()
	if err := Setup(p, s); err != nil {
		t.Fatal(err)
	}
	res, err := p.Finalize(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	m, err := WriteBundle(out, res)
	if err != nil {
		t.Fatalf("WriteBundle() error: %v", err)
	}

	want := map[string][]string{
		"jvm": {
			"io/github/nomisrev/saga-jvm/2.0.0/saga-jvm-2.0.0.pom",
			"io/github/nomisrev/saga-jvm/2.0.0/saga-jvm-2.0.0-javadoc.jar",
		},
		"js": {
			"io/github/nomisrev/saga-js/2.0.0/saga-js-2.0.0.pom",
			"io/github/nomisrev/saga-js/2.0.0/saga-js-2.0.0-javadoc.jar",
		},
	}
	seen := map[string]string{}
	for _, mp := range m.Publications {
		if strings.Join(mp.Files, ",") != strings.Join(want[mp.Name], ",") {
			t.Errorf("%s: Files = %v, want %v", mp.Name, mp.Files, want[mp.Name])
		}
		for _, f := range mp.Files {
			if other, ok := seen[f]; ok {
				t.Errorf("%s and %s both write %s", other, mp.Name, f)
			}
			seen[f] = mp.Name
			if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(f))); err != nil {
				t.Errorf("bundle file %s missing: %v", f, err)
			}
		}
	}

	data, err := os.ReadFile(filepath.Join(out, filepath.FromSlash(want["js"][0])))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<artifactId>saga-js</artifactId>") {
		t.Error("js POM should carry its own artifact id")
	}
}

func TestWriteBundleRejectsSharedCoordinate(t *testing.T) {
	p := newTestProject("2.0.0")
	_, _ = p.Declare("jvm")
	_, _ = p.Declare("js")
	if err := Setup(p, testSettings()); err != nil {
		t.Fatal(err)
	}
	res, err := p.Finalize(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	out := t.TempDir()
	_, err = WriteBundle(out, res)
	if !errors.Is(err, errors.ErrCodeAlreadyExists) {
		t.Fatalf("WriteBundle() error = %v, want ALREADY_EXISTS", err)
	}
	entries, err := os.ReadDir(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("WriteBundle() wrote %d entries before failing, want 0", len(entries))
	}
}
