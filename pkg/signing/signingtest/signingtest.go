// Package signingtest generates throwaway PGP keys for tests.
package signingtest

import (
	"bytes"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// Key is a generated key pair.
type Key struct {
	Armored string          // Armored private key, encrypted with the passphrase
	Public  openpgp.KeyRing // Public half for verifying signatures
}

// NewKey generates an RSA key whose private parts are encrypted with passphrase.
func NewKey(tb testing.TB, passphrase string) Key {
	tb.Helper()

	e, err := openpgp.NewEntity("mavenpub test", "", "test@example.com", &packet.Config{RSABits: 2048})
	if err != nil {
		tb.Fatalf("generate key: %v", err)
	}
	public := openpgp.EntityList{e}

	if err := e.PrivateKey.Encrypt([]byte(passphrase)); err != nil {
		tb.Fatalf("encrypt key: %v", err)
	}
	for _, sub := range e.Subkeys {
		if err := sub.PrivateKey.Encrypt([]byte(passphrase)); err != nil {
			tb.Fatalf("encrypt subkey: %v", err)
		}
	}

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PrivateKeyType, nil)
	if err != nil {
		tb.Fatalf("armor key: %v", err)
	}
	if err := e.SerializePrivateWithoutSigning(w, nil); err != nil {
		tb.Fatalf("serialize key: %v", err)
	}
	if err := w.Close(); err != nil {
		tb.Fatalf("close armor: %v", err)
	}
	return Key{Armored: buf.String(), Public: public}
}

// Verify checks an armored detached signature over data against k.
func (k Key) Verify(data, signature []byte) error {
	_, err := openpgp.CheckArmoredDetachedSignature(k.Public, bytes.NewReader(data), bytes.NewReader(signature), nil)
	return err
}
