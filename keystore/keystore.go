package keystore

// Store persists and retrieves per-owner key material. Implementations
// must be safe for concurrent use; per-owner serialization of
// read-modify-write sequences is the caller's job (the dialog layer holds
// a keyed lock across generate/sign).
type Store interface {
	// Put stores a record. Overwriting an existing owner's record only
	// happens when overwrite is set; otherwise an already_exists error
	// is returned. Either way the outcome is deterministic.
	Put(rec *Record, overwrite bool) error

	// Get returns the record for owner, with the private key unsealed.
	// Returns a key_not_found error when no record exists; never creates
	// one implicitly.
	Get(owner uint64) (*Record, error)

	// Has reports whether a record exists without unsealing anything.
	Has(owner uint64) (bool, error)

	// Delete removes the record for owner. Deleting a missing record is
	// not an error.
	Delete(owner uint64) error

	// MustClose releases the backing medium, logging on failure.
	MustClose()
}
