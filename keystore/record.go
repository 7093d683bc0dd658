package keystore

import (
	"encoding/hex"
	"fmt"
)

// Declare database key prefix for keystore objects
const (
	PrefixWallet = "wallet:"
)

// Record is the persisted key material for one owner. PrivKey holds the
// scheme-specific secret bytes; it must never travel outside the
// keystore/wallet boundary except as an opaque signing input.
type Record struct {
	Owner  uint64 `json:"owner"`
	Scheme string `json:"scheme"`
	PubKey []byte `json:"-"`
	// PrivKey is sealed at rest by the store; in memory it is the raw
	// scheme-specific secret
	PrivKey []byte `json:"-"`

	// hex forms used for at-rest serialization
	PubKeyHex  string `json:"pubkey"`
	PrivKeyHex string `json:"privkey"`
}

// dbKey returns the provider key for an owner's record
func dbKey(owner uint64) []byte {
	return []byte(fmt.Sprintf("%s%d", PrefixWallet, owner))
}

// encodeHex fills the hex fields from the byte fields before marshaling
func (r *Record) encodeHex(sealedPriv []byte) {
	r.PubKeyHex = hex.EncodeToString(r.PubKey)
	r.PrivKeyHex = hex.EncodeToString(sealedPriv)
}

// decodeHex fills the byte fields from the hex fields after unmarshaling,
// returning the still-sealed private bytes
func (r *Record) decodeHex() ([]byte, error) {
	pub, err := hex.DecodeString(r.PubKeyHex)
	if err != nil {
		return nil, fmt.Errorf("malformed pubkey hex: %w", err)
	}
	sealed, err := hex.DecodeString(r.PrivKeyHex)
	if err != nil {
		return nil, fmt.Errorf("malformed privkey hex: %w", err)
	}
	r.PubKey = pub
	return sealed, nil
}
