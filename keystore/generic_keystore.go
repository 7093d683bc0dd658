package keystore

import (
	"fmt"
	"sync"

	"walletbot/db"
	"walletbot/errors"
	"walletbot/jsonx"
	"walletbot/logx"
)

// GenericKeyStore persists records through any db.DatabaseProvider
// (memory, LevelDB, bbolt). Private keys are sealed before they touch the
// provider and unsealed on the way out; the provider only ever sees
// ciphertext when a sealer is configured.
type GenericKeyStore struct {
	mu         sync.RWMutex
	dbProvider db.DatabaseProvider
	sealer     *Sealer
}

// NewGenericKeyStore creates a keystore over the given provider. sealer
// may be nil, in which case keys are stored unsealed.
func NewGenericKeyStore(dbProvider db.DatabaseProvider, sealer *Sealer) (*GenericKeyStore, error) {
	if dbProvider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	return &GenericKeyStore{
		dbProvider: dbProvider,
		sealer:     sealer,
	}, nil
}

func (ks *GenericKeyStore) Put(rec *Record, overwrite bool) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	key := dbKey(rec.Owner)
	if !overwrite {
		exists, err := ks.dbProvider.Has(key)
		if err != nil {
			return errors.Wrap(errors.ErrCodeStorage, err)
		}
		if exists {
			return errors.NewError(errors.ErrCodeAlreadyExists, errors.ErrMsgAlreadyExists)
		}
	}

	sealed, err := ks.sealer.Seal(rec.PrivKey)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err)
	}

	stored := *rec
	stored.encodeHex(sealed)
	data, err := jsonx.Marshal(&stored)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err)
	}

	if err := ks.dbProvider.Put(key, data); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err)
	}

	return nil
}

func (ks *GenericKeyStore) Get(owner uint64) (*Record, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	data, err := ks.dbProvider.Get(dbKey(owner))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err)
	}
	if data == nil {
		return nil, errors.NewError(errors.ErrCodeKeyNotFound, errors.ErrMsgKeyNotFound)
	}

	var rec Record
	if err := jsonx.Unmarshal(data, &rec); err != nil {
		// a record this store wrote should always unmarshal; surface as
		// corruption, never retry
		return nil, errors.Wrap(errors.ErrCodeKeyDecode, err)
	}

	sealed, err := rec.decodeHex()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeKeyDecode, err)
	}

	priv, err := ks.sealer.Open(sealed)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeKeyDecode, err)
	}
	rec.PrivKey = priv

	return &rec, nil
}

func (ks *GenericKeyStore) Has(owner uint64) (bool, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()

	exists, err := ks.dbProvider.Has(dbKey(owner))
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeStorage, err)
	}
	return exists, nil
}

func (ks *GenericKeyStore) Delete(owner uint64) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()

	if err := ks.dbProvider.Delete(dbKey(owner)); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err)
	}
	return nil
}

func (ks *GenericKeyStore) MustClose() {
	if err := ks.dbProvider.Close(); err != nil {
		logx.Error("KEYSTORE", "Failed to close provider: ", err)
	}
}
