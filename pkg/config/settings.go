package config

import (
	"github.com/matzehuels/mavenpub/pkg/publish"
	"github.com/matzehuels/mavenpub/pkg/repository"
)

// Settings combines the project file with env into publishing settings.
func (p *Project) Settings(env Env) (publish.Settings, error) {
	release, err := repository.ParseURL("repositories.release", p.Repositories.Release)
	if err != nil {
		return publish.Settings{}, err
	}
	snapshot, err := repository.ParseURL("repositories.snapshot", p.Repositories.Snapshot)
	if err != nil {
		return publish.Settings{}, err
	}
	return publish.Settings{
		DevID:           p.Developer.ID,
		DevName:         p.Developer.Name,
		ProjectURL:      p.URL,
		Description:     p.Description,
		ReleaseRepo:     release,
		SnapshotRepo:    snapshot,
		GitURL:          p.GitURL,
		LicenseName:     p.License.Name,
		LicenseURL:      p.License.URL,
		SigningKey:      env.SigningKey,
		SigningPassword: env.SigningPassword,
		Credentials:     env.Credentials(),
	}, nil
}
