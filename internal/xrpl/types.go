package xrpl

import (
	"math/big"
	"time"
)

// Payment is a validated XRP payment observed on the ledger. Payments are
// immutable once validated; IOU payments and other transaction types are
// filtered out by the client.
type Payment struct {
	Hash           string
	Account        string
	Destination    string
	DestinationTag *uint32
	// AmountDrops is the delivered amount in drops (1 XRP = 1,000,000 drops).
	AmountDrops *big.Int
	LedgerIndex uint32
}

type Ledger struct {
	Index     uint32
	CloseTime time.Time
	Payments  []Payment
}

// rippleEpoch is the offset of the XRPL time base (2000-01-01) from unix time.
const rippleEpoch int64 = 946684800
