package wallet

import (
	"walletbot/errors"
	"walletbot/keystore"
)

// Dispatcher resolves scheme tags to providers and routes key operations
// for owners whose scheme is already on record. It is the only component
// that branches on the concrete scheme.
type Dispatcher struct {
	store     keystore.Store
	providers map[Scheme]Provider
}

// NewDispatcher builds a dispatcher over the closed scheme set.
func NewDispatcher(store keystore.Store) *Dispatcher {
	return &Dispatcher{
		store: store,
		providers: map[Scheme]Provider{
			SchemeEd25519: NewEd25519Provider(store),
			SchemeSchnorr: NewSchnorrProvider(store),
		},
	}
}

// ForScheme maps a tag to its provider; unknown_scheme for anything
// outside the supported set, never a silent default.
func (d *Dispatcher) ForScheme(tag string) (Provider, error) {
	p, ok := d.providers[Scheme(tag)]
	if !ok {
		return nil, errors.NewError(errors.ErrCodeUnknownScheme, errors.ErrMsgUnknownScheme)
	}
	return p, nil
}

// ForOwner routes by the scheme recorded alongside owner's keys, so a
// sign call always uses the algorithm the keypair was generated with.
func (d *Dispatcher) ForOwner(owner uint64) (Provider, error) {
	rec, err := d.store.Get(owner)
	if err != nil {
		return nil, err
	}
	p, ok := d.providers[Scheme(rec.Scheme)]
	if !ok {
		// a record written by this code always carries a known tag
		return nil, errors.NewError(errors.ErrCodeSchemeMismatch, errors.ErrMsgSchemeMismatch)
	}
	return p, nil
}

// Generate creates a keypair for owner under the tagged scheme and
// returns the public key.
func (d *Dispatcher) Generate(tag string, owner uint64, overwrite bool) ([]byte, error) {
	p, err := d.ForScheme(tag)
	if err != nil {
		return nil, err
	}
	return p.Generate(owner, overwrite)
}

// Public returns owner's stored public key, routed by the stored scheme.
func (d *Dispatcher) Public(owner uint64) ([]byte, error) {
	p, err := d.ForOwner(owner)
	if err != nil {
		return nil, err
	}
	return p.Public(owner)
}

// Sign signs payload with owner's stored key, routed by the stored
// scheme. The scheme actually used is returned alongside the signature.
func (d *Dispatcher) Sign(owner uint64, payload []byte) ([]byte, Scheme, error) {
	p, err := d.ForOwner(owner)
	if err != nil {
		return nil, "", err
	}
	sig, err := p.Sign(owner, payload)
	if err != nil {
		return nil, "", err
	}
	return sig, p.Scheme(), nil
}

// SignAs signs with a caller-supplied tag. A tag that disagrees with the
// stored record is scheme_mismatch, not silently rerouted.
func (d *Dispatcher) SignAs(tag string, owner uint64, payload []byte) ([]byte, error) {
	p, err := d.ForScheme(tag)
	if err != nil {
		return nil, err
	}
	stored, err := d.ForOwner(owner)
	if err != nil {
		return nil, err
	}
	if stored.Scheme() != p.Scheme() {
		return nil, errors.NewError(errors.ErrCodeSchemeMismatch, errors.ErrMsgSchemeMismatch)
	}
	return p.Sign(owner, payload)
}

// Schemes lists the supported tags, for help text and prompts.
func (d *Dispatcher) Schemes() []string {
	return []string{string(SchemeEd25519), string(SchemeSchnorr)}
}
