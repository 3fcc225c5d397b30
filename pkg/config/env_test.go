package config

import (
	"testing"

	"github.com/matzehuels/mavenpub/pkg/optional"
)

func lookupFrom(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name        string
		vars        map[string]string
		wantCreds   bool
		wantSigning bool
	}{
		{"none", map[string]string{}, false, false},
		{"all", map[string]string{
			EnvSonatypeUser: "u", EnvSonatypePwd: "p",
			EnvSigningKey: "k", EnvSigningPassword: "s",
		}, true, true},
		{"user only", map[string]string{EnvSonatypeUser: "u"}, false, false},
		{"empty password", map[string]string{
			EnvSonatypeUser: "u", EnvSonatypePwd: "",
			EnvSigningKey: "k", EnvSigningPassword: "",
		}, false, false},
		{"signing only", map[string]string{EnvSigningKey: "k", EnvSigningPassword: "s"}, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := LoadEnv(lookupFrom(tt.vars))
			if got := env.Credentials().IsSome(); got != tt.wantCreds {
				t.Errorf("Credentials().IsSome() = %v, want %v", got, tt.wantCreds)
			}
			if got := env.Signing().IsSome(); got != tt.wantSigning {
				t.Errorf("Signing().IsSome() = %v, want %v", got, tt.wantSigning)
			}
		})
	}
}

func TestLoadEnvReadsOnce(t *testing.T) {
	calls := map[string]int{}
	env := LoadEnv(func(key string) (string, bool) {
		calls[key]++
		return "value", true
	})
	_ = env.Credentials()
	_ = env.Signing()
	_ = env.Credentials()

	for _, key := range []string{EnvSonatypeUser, EnvSonatypePwd, EnvSigningKey, EnvSigningPassword} {
		if calls[key] != 1 {
			t.Errorf("lookup(%s) called %d times, want 1", key, calls[key])
		}
	}
}

func TestSettings(t *testing.T) {
	p, err := Parse([]byte(sagaTOML), TOML)
	if err != nil {
		t.Fatal(err)
	}
	env := Env{
		SonatypeUser:    optional.Some("deployer"),
		SonatypePwd:     optional.Some("pw"),
		SigningKey:      optional.Some("key"),
		SigningPassword: optional.None[string](),
	}

	s, err := p.Settings(env)
	if err != nil {
		t.Fatalf("Settings() error: %v", err)
	}
	if s.ProjectURL != p.URL || s.DevName != "Simon Vergauwen" {
		t.Errorf("Settings() = %+v, want project values", s)
	}
	if s.ReleaseRepo.String() != p.Repositories.Release {
		t.Errorf("ReleaseRepo = %v, want %s", s.ReleaseRepo, p.Repositories.Release)
	}
	c, ok := s.Credentials.Get()
	if !ok || c.Username != "deployer" {
		t.Errorf("Credentials = %+v, %v, want deployer", c, ok)
	}
	if !s.SigningKey.IsSome() || s.SigningPassword.IsSome() {
		t.Error("signing inputs should be passed through unchanged")
	}
}
