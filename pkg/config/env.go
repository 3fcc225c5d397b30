package config

import (
	"os"

	"github.com/matzehuels/mavenpub/pkg/optional"
	"github.com/matzehuels/mavenpub/pkg/repository"
	"github.com/matzehuels/mavenpub/pkg/signing"
)

// Environment variable names.
const (
	EnvSonatypeUser    = "SONATYPE_USER"
	EnvSonatypePwd     = "SONATYPE_PWD"
	EnvSigningKey      = "SIGNINGKEY"
	EnvSigningPassword = "SIGNINGPASSWORD"
)

// Env holds the optional secrets of a run.
type Env struct {
	SonatypeUser    optional.Option[string]
	SonatypePwd     optional.Option[string]
	SigningKey      optional.Option[string]
	SigningPassword optional.Option[string]
}

// LoadEnv reads the secrets through lookup, once. A nil lookup uses
// os.LookupEnv.
func LoadEnv(lookup func(string) (string, bool)) Env {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return Env{
		SonatypeUser:    optional.FromEnv(lookup, EnvSonatypeUser),
		SonatypePwd:     optional.FromEnv(lookup, EnvSonatypePwd),
		SigningKey:      optional.FromEnv(lookup, EnvSigningKey),
		SigningPassword: optional.FromEnv(lookup, EnvSigningPassword),
	}
}

// Credentials pairs the Sonatype user and password.
func (e Env) Credentials() optional.Option[repository.Credentials] {
	return repository.CredentialsFrom(e.SonatypeUser, e.SonatypePwd)
}

// Signing returns the signing capability of the run.
func (e Env) Signing() signing.Capability {
	return signing.FromInputs(e.SigningKey, e.SigningPassword)
}
