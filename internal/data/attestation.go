package data

import "time"

type Attestations interface {
	Insert(Attestation) error
}

// Attestation is an audit-log row for a successfully submitted attestation.
type Attestation struct {
	RequestID   uint64    `structs:"request_id" db:"request_id"`
	XRPLTxHash  string    `structs:"xrpl_tx_hash" db:"xrpl_tx_hash"`
	AmountDrops string    `structs:"amount_drops" db:"amount_drops"`
	PaidAt      time.Time `structs:"paid_at" db:"paid_at"`
	EVMTxHash   string    `structs:"evm_tx_hash" db:"evm_tx_hash"`
}
