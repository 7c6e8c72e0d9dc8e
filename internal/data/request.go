package data

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// RequestStatus mirrors the contract's status enum. Transitions are one-way:
// once a request leaves Pending it never returns.
type RequestStatus uint8

const (
	StatusPending RequestStatus = iota
	StatusPaid
	StatusCancelled
	StatusExpired
)

func (s RequestStatus) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusPaid:
		return "PAID"
	case StatusCancelled:
		return "CANCELLED"
	case StatusExpired:
		return "EXPIRED"
	}
	return "UNKNOWN"
}

// Request is a read-through copy of a payment request stored in the Venmorph
// contract. The contract owns the record; the attestor never mutates it
// directly.
type Request struct {
	ID          uint64
	Creator     common.Address
	XRPLAddress string
	AssetSymbol string
	// AssetAmount is denominated in the asset's native integer units.
	AssetAmount *big.Int
	Expiry      time.Time
	// SlippageBps is the acceptable underpayment in basis points (0-1000).
	SlippageBps uint16
	Status      RequestStatus

	// Populated by the contract only when Status is Paid.
	PaidTxHash string
	PaidAmount *big.Int
	PaidAt     time.Time
}
