package postgres

import (
	"github.com/Masterminds/squirrel"
	"github.com/fatih/structs"
	"github.com/venmorph/attestor-svc/internal/data"
	"gitlab.com/distributed_lab/kit/pgdb"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

const attestationsTable = "attestations"

type attestations struct {
	db      *pgdb.DB
	network string
}

func NewAttestations(db *pgdb.DB, network string) data.Attestations {
	return attestations{db: db, network: network}
}

func (q attestations) Insert(row data.Attestation) error {
	err := q.db.Exec(q.insertStmt(row))
	return errors.Wrap(err, "failed to insert attestation")
}

func (q attestations) insertStmt(row data.Attestation) squirrel.InsertBuilder {
	// Columns/Values after SetMap would replace the mapped set, so the
	// network goes into the same map.
	m := structs.Map(row)
	m[networkCol] = q.network
	return squirrel.Insert(attestationsTable).SetMap(m)
}
