package wallet

import (
	"github.com/mr-tron/base58"
)

// Scheme tags the supported signature algorithms. The set is closed on
// purpose: key custody code should not grow pluggable algorithms.
type Scheme string

const (
	// SchemeEd25519 signs the payload directly (Ed25519 hashes internally)
	SchemeEd25519 Scheme = "ed25519"

	// SchemeSchnorr is EC-Schnorr-DCRv0 over secp256k1; it signs the
	// sha256 digest of the payload, as the scheme mandates a 32-byte input
	SchemeSchnorr Scheme = "schnorr-secp256k1"
)

// Provider generates, exposes and uses one owner-keyed keypair under a
// single scheme. Callers never branch on the concrete scheme; only the
// Dispatcher resolves tags to providers.
type Provider interface {
	// Scheme returns the tag this provider signs under
	Scheme() Scheme

	// Generate creates a fresh keypair for owner and returns the public
	// key. The record is durably stored before the key is returned;
	// a keypair that failed to persist is never handed out.
	Generate(owner uint64, overwrite bool) ([]byte, error)

	// Public returns the stored public key; key_not_found when no
	// keypair exists for owner
	Public(owner uint64) ([]byte, error)

	// Sign signs payload exactly as given under the scheme's convention;
	// key_not_found without a keypair, key_decode_error on malformed
	// stored bytes
	Sign(owner uint64, payload []byte) ([]byte, error)
}

// Address derives the display address for a public key: base58 of the
// raw public key bytes, for either scheme.
func Address(pub []byte) string {
	return base58.Encode(pub)
}
