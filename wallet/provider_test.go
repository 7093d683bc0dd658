package wallet

import (
	"bytes"
	"crypto/ed25519"
	"sync"
	"testing"

	"walletbot/db"
	"walletbot/errors"
	"walletbot/keystore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) keystore.Store {
	t.Helper()
	ks, err := keystore.NewGenericKeyStore(db.NewMemoryProvider(), nil)
	require.NoError(t, err)
	return ks
}

func TestGenerateThenPublicReturnsSameBytes(t *testing.T) {
	for _, scheme := range []Scheme{SchemeEd25519, SchemeSchnorr} {
		t.Run(string(scheme), func(t *testing.T) {
			d := NewDispatcher(testStore(t))

			pub, err := d.Generate(string(scheme), 1, false)
			require.NoError(t, err)

			got, err := d.Public(1)
			require.NoError(t, err)
			assert.Equal(t, pub, got)
		})
	}
}

func TestMissingOwnerIsNotFound(t *testing.T) {
	d := NewDispatcher(testStore(t))

	_, err := d.Public(42)
	assert.True(t, errors.IsCode(err, errors.ErrCodeKeyNotFound), "got %v", err)

	_, _, err = d.Sign(42, []byte("payload"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeKeyNotFound), "got %v", err)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	payload := []byte(`{"from":"alice","to":"bob","amount":42}`)

	for _, scheme := range []Scheme{SchemeEd25519, SchemeSchnorr} {
		t.Run(string(scheme), func(t *testing.T) {
			d := NewDispatcher(testStore(t))

			pub, err := d.Generate(string(scheme), 1, false)
			require.NoError(t, err)

			sig, used, err := d.Sign(1, payload)
			require.NoError(t, err)
			assert.Equal(t, scheme, used)

			assert.True(t, Verify(scheme, pub, payload, sig))
			assert.False(t, Verify(scheme, pub, []byte("tampered"), sig))
		})
	}
}

func TestSchemeIsolation(t *testing.T) {
	payload := []byte("same payload for both")

	edStore := testStore(t)
	schnorrStore := testStore(t)
	edProv := NewEd25519Provider(edStore)
	schnorrProv := NewSchnorrProvider(schnorrStore)

	edPub, err := edProv.Generate(1, false)
	require.NoError(t, err)
	schnorrPub, err := schnorrProv.Generate(1, false)
	require.NoError(t, err)

	// materially different key encodings
	assert.Equal(t, ed25519.PublicKeySize, len(edPub))
	assert.Equal(t, 33, len(schnorrPub))
	assert.False(t, bytes.Equal(edPub, schnorrPub))

	edSig, err := edProv.Sign(1, payload)
	require.NoError(t, err)
	schnorrSig, err := schnorrProv.Sign(1, payload)
	require.NoError(t, err)

	// each verifies under its own scheme
	assert.True(t, Verify(SchemeEd25519, edPub, payload, edSig))
	assert.True(t, Verify(SchemeSchnorr, schnorrPub, payload, schnorrSig))

	// and fails under the other, in both directions
	assert.False(t, Verify(SchemeSchnorr, schnorrPub, payload, edSig))
	assert.False(t, Verify(SchemeEd25519, edPub, payload, schnorrSig))
	assert.False(t, Verify(SchemeSchnorr, edPub, payload, edSig))
	assert.False(t, Verify(SchemeEd25519, schnorrPub, payload, schnorrSig))
}

func TestUnknownScheme(t *testing.T) {
	d := NewDispatcher(testStore(t))

	for _, tag := range []string{"", "rsa", "ED25519", "ed25519 "} {
		assert.NotPanics(t, func() {
			_, err := d.Generate(tag, 1, false)
			assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownScheme), "tag %q: got %v", tag, err)
		})
	}
}

func TestSignAsMismatch(t *testing.T) {
	d := NewDispatcher(testStore(t))

	_, err := d.Generate(string(SchemeEd25519), 1, false)
	require.NoError(t, err)

	// the stored scheme wins; a disagreeing tag is an error, not a reroute
	_, err = d.SignAs(string(SchemeSchnorr), 1, []byte("payload"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeSchemeMismatch), "got %v", err)

	// the agreeing tag signs
	sig, err := d.SignAs(string(SchemeEd25519), 1, []byte("payload"))
	require.NoError(t, err)
	assert.NotEmpty(t, sig)
}

func TestRecreateRejectIsDeterministic(t *testing.T) {
	d := NewDispatcher(testStore(t))

	first, err := d.Generate(string(SchemeEd25519), 1, false)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := d.Generate(string(SchemeEd25519), 1, false)
		assert.True(t, errors.IsCode(err, errors.ErrCodeAlreadyExists), "attempt %d: got %v", i, err)
	}

	// the original keypair survives every rejected attempt
	pub, err := d.Public(1)
	require.NoError(t, err)
	assert.Equal(t, first, pub)
}

func TestRecreateOverwriteReplacesKey(t *testing.T) {
	d := NewDispatcher(testStore(t))

	first, err := d.Generate(string(SchemeEd25519), 1, true)
	require.NoError(t, err)
	second, err := d.Generate(string(SchemeEd25519), 1, true)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	pub, err := d.Public(1)
	require.NoError(t, err)
	assert.Equal(t, second, pub)
}

func TestConcurrentGenerateSingleWinner(t *testing.T) {
	d := NewDispatcher(testStore(t))

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := d.Generate(string(SchemeEd25519), 1, false)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, errors.IsCode(err, errors.ErrCodeAlreadyExists), "got %v", err)
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent create may win")
}

func TestSignWithCorruptStoredKey(t *testing.T) {
	ks := testStore(t)
	require.NoError(t, ks.Put(&keystore.Record{
		Owner:   1,
		Scheme:  string(SchemeEd25519),
		PubKey:  []byte("irrelevant"),
		PrivKey: []byte("wrong-size-seed"),
	}, false))

	p := NewEd25519Provider(ks)
	_, err := p.Sign(1, []byte("payload"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeKeyDecode), "got %v", err)
}

func TestAddressIsBase58OfPub(t *testing.T) {
	d := NewDispatcher(testStore(t))

	pub, err := d.Generate(string(SchemeSchnorr), 1, false)
	require.NoError(t, err)

	addr := Address(pub)
	assert.NotEmpty(t, addr)
	assert.NotContains(t, addr, "0") // base58 alphabet excludes 0, O, I, l
}
