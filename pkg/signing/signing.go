package signing

import (
	"bytes"
	"io"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp"

	"github.com/matzehuels/mavenpub/pkg/errors"
	"github.com/matzehuels/mavenpub/pkg/optional"
)

// SignatureExtension is appended to a signed file's name.
const SignatureExtension = ".asc"

// Material is an armored private key and the passphrase protecting it.
// Both fields are always populated.
type Material struct {
	Key        string
	Passphrase string
}

// Capability is the signing state of a build: None means signing is disabled.
type Capability = optional.Option[Material]

// Disabled returns a capability with signing turned off.
func Disabled() Capability { return optional.None[Material]() }

// FromInputs enables signing only when both key and passphrase are present.
func FromInputs(key, passphrase optional.Option[string]) Capability {
	return optional.Zip(key, passphrase, func(k, p string) optional.Option[Material] {
		return optional.Some(Material{Key: k, Passphrase: p})
	})
}

// Signature is a detached armored signature for one file.
type Signature struct {
	Target string // Name of the signed file
	Name   string // Target + ".asc"
	Data   []byte // ASCII-armored signature
}

// Signer signs data with one decrypted private key.
type Signer struct {
	entity *openpgp.Entity
}

// NewSigner reads the armored key in m and decrypts it with m.Passphrase.
func NewSigner(m Material) (*Signer, error) {
	keyring, err := openpgp.ReadArmoredKeyRing(strings.NewReader(m.Key))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSigning, err, "read signing key")
	}

	var entity *openpgp.Entity
	for _, e := range keyring {
		if e.PrivateKey != nil {
			entity = e
			break
		}
	}
	if entity == nil {
		return nil, errors.New(errors.ErrCodeSigning, "signing key contains no private key")
	}

	if err := decrypt(entity, []byte(m.Passphrase)); err != nil {
		return nil, errors.Wrap(errors.ErrCodeSigning, err, "decrypt signing key")
	}
	return &Signer{entity: entity}, nil
}

func decrypt(e *openpgp.Entity, passphrase []byte) error {
	if e.PrivateKey.Encrypted {
		if err := e.PrivateKey.Decrypt(passphrase); err != nil {
			return err
		}
	}
	for _, sub := range e.Subkeys {
		if sub.PrivateKey != nil && sub.PrivateKey.Encrypted {
			if err := sub.PrivateKey.Decrypt(passphrase); err != nil {
				return err
			}
		}
	}
	return nil
}

// KeyID returns the signing key id in upper-case hex.
func (s *Signer) KeyID() string {
	return s.entity.PrimaryKey.KeyIdString()
}

// Sign produces a detached armored signature for the contents of r.
// name is the file name the signature belongs to.
func (s *Signer) Sign(name string, r io.Reader) (Signature, error) {
	var buf bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&buf, s.entity, r, nil); err != nil {
		return Signature{}, errors.Wrap(errors.ErrCodeSigning, err, "sign %s", name)
	}
	return Signature{
		Target: name,
		Name:   name + SignatureExtension,
		Data:   buf.Bytes(),
	}, nil
}

// SignBytes is Sign for in-memory content.
func (s *Signer) SignBytes(name string, data []byte) (Signature, error) {
	return s.Sign(name, bytes.NewReader(data))
}
