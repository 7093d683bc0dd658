package wallet

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"walletbot/errors"
	"walletbot/keystore"
)

// Ed25519Provider implements Provider over stdlib Ed25519. The stored
// private material is the 32-byte seed; the full private key is expanded
// per call and never persisted.
type Ed25519Provider struct {
	store keystore.Store
}

func NewEd25519Provider(store keystore.Store) *Ed25519Provider {
	return &Ed25519Provider{store: store}
}

func (p *Ed25519Provider) Scheme() Scheme {
	return SchemeEd25519
}

func (p *Ed25519Provider) Generate(owner uint64, overwrite bool) ([]byte, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := rand.Read(seed); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err)
	}

	privKey := ed25519.NewKeyFromSeed(seed)
	pubKey := privKey.Public().(ed25519.PublicKey)

	rec := &keystore.Record{
		Owner:   owner,
		Scheme:  string(SchemeEd25519),
		PubKey:  pubKey,
		PrivKey: seed,
	}
	// store first; only a durably stored keypair may be returned
	if err := p.store.Put(rec, overwrite); err != nil {
		return nil, err
	}

	return pubKey, nil
}

func (p *Ed25519Provider) Public(owner uint64) ([]byte, error) {
	rec, err := p.store.Get(owner)
	if err != nil {
		return nil, err
	}
	if rec.Scheme != string(SchemeEd25519) {
		return nil, errors.NewError(errors.ErrCodeSchemeMismatch, errors.ErrMsgSchemeMismatch)
	}
	return rec.PubKey, nil
}

func (p *Ed25519Provider) Sign(owner uint64, payload []byte) ([]byte, error) {
	rec, err := p.store.Get(owner)
	if err != nil {
		return nil, err
	}
	if rec.Scheme != string(SchemeEd25519) {
		return nil, errors.NewError(errors.ErrCodeSchemeMismatch, errors.ErrMsgSchemeMismatch)
	}
	if len(rec.PrivKey) != ed25519.SeedSize {
		return nil, errors.Wrap(errors.ErrCodeKeyDecode,
			fmt.Errorf("ed25519 seed has %d bytes, want %d", len(rec.PrivKey), ed25519.SeedSize))
	}

	privKey := ed25519.NewKeyFromSeed(rec.PrivKey)
	return ed25519.Sign(privKey, payload), nil
}
