package wallet

import (
	"crypto/sha256"
	"fmt"

	"walletbot/errors"
	"walletbot/keystore"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/schnorr"
)

// SchnorrProvider implements Provider with EC-Schnorr-DCRv0 over
// secp256k1. Public keys are stored in 33-byte compressed form; the
// stored private material is the 32-byte scalar.
type SchnorrProvider struct {
	store keystore.Store
}

func NewSchnorrProvider(store keystore.Store) *SchnorrProvider {
	return &SchnorrProvider{store: store}
}

func (p *SchnorrProvider) Scheme() Scheme {
	return SchemeSchnorr
}

func (p *SchnorrProvider) Generate(owner uint64, overwrite bool) ([]byte, error) {
	privKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err)
	}

	pubKey := privKey.PubKey().SerializeCompressed()

	rec := &keystore.Record{
		Owner:   owner,
		Scheme:  string(SchemeSchnorr),
		PubKey:  pubKey,
		PrivKey: privKey.Serialize(),
	}
	// store first; only a durably stored keypair may be returned
	if err := p.store.Put(rec, overwrite); err != nil {
		return nil, err
	}

	return pubKey, nil
}

func (p *SchnorrProvider) Public(owner uint64) ([]byte, error) {
	rec, err := p.store.Get(owner)
	if err != nil {
		return nil, err
	}
	if rec.Scheme != string(SchemeSchnorr) {
		return nil, errors.NewError(errors.ErrCodeSchemeMismatch, errors.ErrMsgSchemeMismatch)
	}
	return rec.PubKey, nil
}

// Sign signs the sha256 digest of payload. EC-Schnorr-DCRv0 takes a
// 32-byte hash, so the digest step is part of the scheme convention, not
// extra framing.
func (p *SchnorrProvider) Sign(owner uint64, payload []byte) ([]byte, error) {
	rec, err := p.store.Get(owner)
	if err != nil {
		return nil, err
	}
	if rec.Scheme != string(SchemeSchnorr) {
		return nil, errors.NewError(errors.ErrCodeSchemeMismatch, errors.ErrMsgSchemeMismatch)
	}
	if len(rec.PrivKey) != 32 {
		return nil, errors.Wrap(errors.ErrCodeKeyDecode,
			fmt.Errorf("secp256k1 scalar has %d bytes, want 32", len(rec.PrivKey)))
	}

	privKey := secp256k1.PrivKeyFromBytes(rec.PrivKey)
	digest := sha256.Sum256(payload)
	sig, err := schnorr.Sign(privKey, digest[:])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err)
	}
	return sig.Serialize(), nil
}
