package wallet

import (
	"crypto/ed25519"
	"crypto/sha256"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
)

// Verify checks sig over payload against pub under the given scheme,
// mirroring each provider's signing convention. Malformed keys or
// signatures verify as false rather than erroring.
func Verify(scheme Scheme, pub, payload, sig []byte) bool {
	switch scheme {
	case SchemeEd25519:
		if len(pub) != ed25519.PublicKeySize {
			return false
		}
		return ed25519.Verify(ed25519.PublicKey(pub), payload, sig)
	case SchemeSchnorr:
		pubKey, err := secp256k1.ParsePubKey(pub)
		if err != nil {
			return false
		}
		sigObj, err := schnorr.ParseSignature(sig)
		if err != nil {
			return false
		}
		digest := sha256.Sum256(payload)
		return sigObj.Verify(digest[:], pubKey)
	default:
		return false
	}
}
