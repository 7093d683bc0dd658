package types

import (
	"crypto/sha256"
	"encoding/hex"

	"walletbot/jsonx"
)

// UnsignedTx is the transfer record a user builds through the dialog flow.
//
// CanonicalBytes is the exact byte sequence that gets signed, so the field
// order below is part of the wire contract: from, to, amount.
type UnsignedTx struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
}

// SignedTx is an UnsignedTx plus the hex-encoded signature over its
// canonical bytes.
type SignedTx struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount uint64 `json:"amount"`
	Sign   string `json:"sign"`
}

// CanonicalBytes returns the one canonical encoding of the transaction:
// compact JSON with fields in declaration order and no whitespace, e.g.
//
//	{"from":"alice","to":"bob","amount":42}
//
// Signatures are only valid over these exact bytes. No compatibility with
// any other field ordering or spacing is promised.
func (tx *UnsignedTx) CanonicalBytes() []byte {
	b, err := jsonx.Marshal(tx)
	if err != nil {
		// Marshal of a flat struct of strings and an integer cannot fail;
		// treat it as a defect if it ever does.
		panic(err)
	}
	return b
}

// WithSignature attaches sig (raw bytes) as the hex sign field.
func (tx *UnsignedTx) WithSignature(sig []byte) SignedTx {
	return SignedTx{
		From:   tx.From,
		To:     tx.To,
		Amount: tx.Amount,
		Sign:   hex.EncodeToString(sig),
	}
}

// Unsigned strips the signature, recovering the payload that was signed.
func (tx *SignedTx) Unsigned() UnsignedTx {
	return UnsignedTx{From: tx.From, To: tx.To, Amount: tx.Amount}
}

func (tx *SignedTx) Bytes() []byte {
	b, _ := jsonx.Marshal(tx)
	return b
}

func (tx *SignedTx) Hash() string {
	sum256 := sha256.Sum256(tx.Bytes())
	return hex.EncodeToString(sum256[:])
}

func (tx *SignedTx) String() string {
	return string(tx.Bytes())
}
