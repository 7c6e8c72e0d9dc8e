package postgres

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/venmorph/attestor-svc/internal/data"
	"gitlab.com/distributed_lab/kit/pgdb"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

const ledgerTable = "last_ledgers"
const networkCol = "network"

type lastLedger struct {
	db      *pgdb.DB
	network string
}

func NewLastLedger(db *pgdb.DB, network string) (data.LastLedger, error) {
	q := lastLedger{db: db, network: network}
	if err := q.init(); err != nil {
		return lastLedger{}, errors.Wrap(err, "failed to initialize last ledger storage")
	}
	return q, nil
}

func (q lastLedger) init() error {
	seq, err := q.Get()
	if err != nil {
		return errors.Wrap(err, "failed to check ledger existence")
	}
	if seq != nil {
		return nil
	}

	stmt := squirrel.Insert(ledgerTable).Columns("seq", networkCol).Values(0, q.network)
	err = q.db.Exec(stmt)
	return errors.Wrap(err, "failed to insert last ledger")
}

func (q lastLedger) Set(seq uint32) error {
	stmt := squirrel.Update(ledgerTable).Set("seq", seq).Where(squirrel.Eq{networkCol: q.network})
	err := q.db.Exec(stmt)
	return errors.Wrap(err, "failed to update last ledger")
}

func (q lastLedger) Get() (*uint32, error) {
	var result struct {
		Seq uint32 `db:"seq"`
	}
	stmt := squirrel.Select("seq").From(ledgerTable).Where(squirrel.Eq{networkCol: q.network})

	if err := q.db.Get(&result, stmt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to select last ledger")
	}

	return &result.Seq, nil
}
