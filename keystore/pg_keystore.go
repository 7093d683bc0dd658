package keystore

import (
	"database/sql"
	stderrors "errors"

	"walletbot/errors"
	"walletbot/logx"

	_ "github.com/lib/pq"
)

// pgStore is the relational Store. Schema:
//
//	CREATE TABLE wallet_keys (
//	    id      SERIAL PRIMARY KEY,
//	    owner   BIGINT NOT NULL UNIQUE,
//	    scheme  VARCHAR NOT NULL,
//	    pubkey  BYTEA NOT NULL,
//	    privkey BYTEA NOT NULL
//	);
//
// privkey holds the sealed bytes when a sealer is configured.
type pgStore struct {
	db     *sql.DB
	sealer *Sealer
}

// NewPgKeyStore wraps an existing *sql.DB (lib/pq) as a Store. The caller
// owns the connection pool; MustClose closes it.
func NewPgKeyStore(db *sql.DB, sealer *Sealer) Store {
	return &pgStore{db: db, sealer: sealer}
}

func (p *pgStore) Put(rec *Record, overwrite bool) error {
	sealed, err := p.sealer.Seal(rec.PrivKey)
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err)
	}

	if overwrite {
		_, err = p.db.Exec(
			`INSERT INTO wallet_keys(owner,scheme,pubkey,privkey) VALUES($1,$2,$3,$4)
			 ON CONFLICT (owner) DO UPDATE SET scheme=$2, pubkey=$3, privkey=$4`,
			rec.Owner, rec.Scheme, rec.PubKey, sealed,
		)
	} else {
		var inserted bool
		err = p.db.QueryRow(
			`INSERT INTO wallet_keys(owner,scheme,pubkey,privkey) VALUES($1,$2,$3,$4)
			 ON CONFLICT (owner) DO NOTHING RETURNING true`,
			rec.Owner, rec.Scheme, rec.PubKey, sealed,
		).Scan(&inserted)
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.NewError(errors.ErrCodeAlreadyExists, errors.ErrMsgAlreadyExists)
		}
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err)
	}
	return nil
}

func (p *pgStore) Get(owner uint64) (*Record, error) {
	var (
		scheme string
		pubkey []byte
		sealed []byte
	)
	err := p.db.QueryRow(
		`SELECT scheme, pubkey, privkey FROM wallet_keys WHERE owner=$1`, owner,
	).Scan(&scheme, &pubkey, &sealed)
	if stderrors.Is(err, sql.ErrNoRows) {
		return nil, errors.NewError(errors.ErrCodeKeyNotFound, errors.ErrMsgKeyNotFound)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err)
	}

	priv, err := p.sealer.Open(sealed)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeKeyDecode, err)
	}

	return &Record{
		Owner:   owner,
		Scheme:  scheme,
		PubKey:  pubkey,
		PrivKey: priv,
	}, nil
}

func (p *pgStore) Has(owner uint64) (bool, error) {
	var exists bool
	err := p.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM wallet_keys WHERE owner=$1)`, owner,
	).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeStorage, err)
	}
	return exists, nil
}

func (p *pgStore) Delete(owner uint64) error {
	if _, err := p.db.Exec(`DELETE FROM wallet_keys WHERE owner=$1`, owner); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err)
	}
	return nil
}

func (p *pgStore) MustClose() {
	if err := p.db.Close(); err != nil {
		logx.Error("KEYSTORE", "Failed to close postgres pool: ", err)
	}
}
