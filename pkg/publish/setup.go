package publish

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/matzehuels/mavenpub/pkg/artifact"
	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/observability"
	"github.com/matzehuels/mavenpub/pkg/optional"
	"github.com/matzehuels/mavenpub/pkg/pom"
	"github.com/matzehuels/mavenpub/pkg/repository"
	"github.com/matzehuels/mavenpub/pkg/signing"
)

// Settings are the inputs to Setup.
type Settings struct {
	DevID        string
	DevName      string
	ProjectURL   string // Required
	Description  string
	ReleaseRepo  *url.URL // Required
	SnapshotRepo *url.URL // Required
	GitURL       string   // Defaults to ProjectURL + ".git"

	LicenseName string // Defaults to pom.DefaultLicenseName
	LicenseURL  string // Defaults to pom.DefaultLicenseURL

	SigningKey      optional.Option[string] // Armored private key
	SigningPassword optional.Option[string]
	Credentials     optional.Option[repository.Credentials]

	// StagingDir receives archives Setup has to build itself. When empty,
	// an unbuilt javadoc jar is left to the uploader.
	StagingDir string
}

// gitURL returns the configured git URL or the project URL with ".git".
func (s Settings) gitURL() string {
	if s.GitURL != "" {
		return s.GitURL
	}
	return s.ProjectURL + ".git"
}

func (s Settings) validate() error {
	if err := errors.ValidateURL("project url", s.ProjectURL); err != nil {
		return err
	}
	if s.ReleaseRepo == nil {
		return errors.New(errors.ErrCodeMissingField, "release repository is required")
	}
	if s.SnapshotRepo == nil {
		return errors.New(errors.ErrCodeMissingField, "snapshot repository is required")
	}
	return nil
}

// Setup validates s and registers the deferred configuration of p's
// publications. The work happens in Finalize. Setup can be applied to a
// project once.
func Setup(p *Project, s Settings) error {
	if err := s.validate(); err != nil {
		return err
	}
	if p.setup {
		return errors.New(errors.ErrCodeAlreadyExists, "publishing is already set up for %s", p.Name)
	}
	if err := p.AfterEvaluate(func(ctx context.Context, p *Project) error {
		return configure(ctx, p, s)
	}); err != nil {
		return err
	}
	p.setup = true
	return nil
}

func configure(ctx context.Context, p *Project, s Settings) error {
	hooks := observability.Publish()

	for _, pub := range p.publications {
		if err := configurePublication(p, pub, s); err != nil {
			return err
		}
		p.Logger.Debug("configured publication", "name", pub.Name, "coordinate", pub.Coordinate, "artifacts", len(pub.Artifacts))
		hooks.OnPublicationConfigured(ctx, pub.Name, len(pub.Artifacts))
	}
	if err := buildJavadoc(p, s.StagingDir); err != nil {
		return err
	}

	repo := repository.New(p.Version, s.ReleaseRepo, s.SnapshotRepo, s.Credentials)
	p.AddRepository(repo)
	snapshot := repository.IsSnapshot(p.Version)
	p.Logger.Info("selected repository", "url", repo.URL, "snapshot", snapshot, "credentials", repo.Credentials.IsSome())
	hooks.OnRepositorySelected(ctx, repo.URL.String(), snapshot)

	material, ok := signing.FromInputs(s.SigningKey, s.SigningPassword).Get()
	if !ok {
		p.Logger.Info("signing disabled: signing key or passphrase not set")
		hooks.OnSigningSkipped(ctx)
		return nil
	}
	return signPublications(ctx, p, material)
}

func configurePublication(p *Project, pub *Publication, s Settings) error {
	if err := pub.Attach(artifact.JavadocJar(p.Artifacts)); err != nil {
		return err
	}

	meta, err := pom.Build(pom.Inputs{
		ArtifactID:  pub.Coordinate.ArtifactID,
		Name:        pub.DisplayName,
		URL:         s.ProjectURL,
		Description: s.Description,
		GitURL:      s.gitURL(),
		DevID:       s.DevID,
		DevName:     s.DevName,
		LicenseName: s.LicenseName,
		LicenseURL:  s.LicenseURL,
	})
	if err != nil {
		return err
	}
	pub.Metadata = meta
	return nil
}

// buildJavadoc writes a manifest-only jar for a javadoc artifact that no
// collaborator built. Repositories such as Maven Central reject
// publications without one.
func buildJavadoc(p *Project, staging string) error {
	if staging == "" {
		return nil
	}
	a, ok := p.Artifacts.Named(artifact.JavadocTask)
	if !ok || a.Path != "" {
		return nil
	}
	path := filepath.Join(staging, a.FileName(p.Name, p.Version))
	if _, err := artifact.WriteJar(path, ""); err != nil {
		return err
	}
	a.Path = path
	p.Logger.Debug("built empty javadoc jar", "path", path)
	return nil
}

// signPublications signs every publication in p, not only the ones this
// Setup configured.
func signPublications(ctx context.Context, p *Project, m signing.Material) error {
	signer, err := signing.NewSigner(m)
	if err != nil {
		return err
	}
	p.keyID = signer.KeyID()
	p.Logger.Info("signing publications", "key", p.keyID, "publications", len(p.publications))

	for _, pub := range p.publications {
		sigs, err := signPublication(pub, signer)
		if err != nil {
			return err
		}
		pub.Signatures = sigs
		observability.Publish().OnSigned(ctx, pub.Name, len(sigs))
	}
	return nil
}

// signPublication signs the POM and every attached artifact that has been
// built. Artifacts without a path are left to the uploader.
func signPublication(pub *Publication, signer *signing.Signer) ([]signing.Signature, error) {
	var sigs []signing.Signature

	if pub.Metadata != nil {
		data, err := pub.POM()
		if err != nil {
			return nil, err
		}
		sig, err := signer.SignBytes(pub.POMFileName(), data)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}

	for _, a := range pub.Artifacts {
		if a.Path == "" {
			continue
		}
		sig, err := signFile(signer, a.FileName(pub.Coordinate.ArtifactID, pub.Coordinate.Version), a.Path)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, sig)
	}
	return sigs, nil
}

func signFile(signer *signing.Signer, name, path string) (signing.Signature, error) {
	f, err := os.Open(path)
	if err != nil {
		return signing.Signature{}, errors.Wrap(errors.ErrCodeNotFound, err, "open %s for signing", path)
	}
	defer f.Close()
	return signer.Sign(name, f)
}
