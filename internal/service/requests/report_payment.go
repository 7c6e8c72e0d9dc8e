package requests

import (
	"time"

	"github.com/venmorph/attestor-svc/internal/data"
)

// ReportPayment tells the dApp backend that a request was settled, so the UI
// reflects payment without polling the chain.
type ReportPayment struct {
	RequestID   uint64    `json:"request_id"`
	XRPLTxHash  string    `json:"xrpl_tx_hash"`
	AmountDrops string    `json:"amount_drops"`
	PaidAt      time.Time `json:"paid_at"`
	EVMTxHash   string    `json:"evm_tx_hash"`
}

func NewReportPayment(record data.Attestation) ReportPayment {
	return ReportPayment{
		RequestID:   record.RequestID,
		XRPLTxHash:  record.XRPLTxHash,
		AmountDrops: record.AmountDrops,
		PaidAt:      record.PaidAt,
		EVMTxHash:   record.EVMTxHash,
	}
}
