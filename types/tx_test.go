package types

import (
	"encoding/hex"
	"testing"
)

func TestCanonicalBytes(t *testing.T) {
	tx := UnsignedTx{From: "alice", To: "bob", Amount: 42}

	want := `{"from":"alice","to":"bob","amount":42}`
	if got := string(tx.CanonicalBytes()); got != want {
		t.Errorf("canonical bytes = %s, want %s", got, want)
	}

	// the encoding must be byte-for-byte stable across calls
	first := tx.CanonicalBytes()
	second := tx.CanonicalBytes()
	if string(first) != string(second) {
		t.Error("canonical bytes changed between calls")
	}
}

func TestWithSignature(t *testing.T) {
	tx := UnsignedTx{From: "alice", To: "bob", Amount: 7}
	sig := []byte{0xde, 0xad, 0xbe, 0xef}

	signed := tx.WithSignature(sig)
	if signed.Sign != hex.EncodeToString(sig) {
		t.Errorf("sign field = %s, want %s", signed.Sign, hex.EncodeToString(sig))
	}

	back := signed.Unsigned()
	if back != tx {
		t.Errorf("unsigned roundtrip = %+v, want %+v", back, tx)
	}
	if string(back.CanonicalBytes()) != string(tx.CanonicalBytes()) {
		t.Error("unsigned roundtrip changed the canonical bytes")
	}
}

func TestSignedTxHashStable(t *testing.T) {
	signed := SignedTx{From: "a", To: "b", Amount: 1, Sign: "00"}
	if signed.Hash() != signed.Hash() {
		t.Error("hash changed between calls")
	}

	other := SignedTx{From: "a", To: "b", Amount: 2, Sign: "00"}
	if signed.Hash() == other.Hash() {
		t.Error("distinct transactions share a hash")
	}
}
