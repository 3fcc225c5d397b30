// Package signing produces detached PGP signatures for published files from
// an in-memory armored private key.
//
// # Capability
//
// Signing is either disabled or fully configured. A [Capability] is an
// [optional.Option] of [Material] and can only be built by [FromInputs],
// which requires both the armored key and its passphrase:
//
//	capability := signing.FromInputs(env.SigningKey, env.SigningPassword)
//	material, ok := capability.Get()
//	if !ok {
//	    // signing disabled, publish unsigned
//	}
//	signer, err := signing.NewSigner(material)
//
// Missing inputs are not errors. Key material that is present but cannot be
// read or decrypted is: [NewSigner] returns a SIGNING error.
//
// [optional.Option]: github.com/matzehuels/mavenpub/pkg/optional.Option
package signing
