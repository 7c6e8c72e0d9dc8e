package service

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/venmorph/attestor-svc/internal/data"
)

// EVMClient is the Venmorph contract surface the attestor consumes. The
// concrete implementation lives in internal/evm; tests substitute fakes.
type EVMClient interface {
	TotalRequests(ctx context.Context) (uint64, error)
	Request(ctx context.Context, id uint64) (data.Request, error)
	SubmitAttestation(ctx context.Context, id uint64, xrplTxHash string, amountDrops *big.Int, paidAt time.Time) (common.Hash, error)
}

// RateSource converts request asset amounts into drops at the current price.
// FTSO semantics stay behind this interface; the shipped implementation uses
// static configured rates.
type RateSource interface {
	RequiredDrops(ctx context.Context, symbol string, amount *big.Int) (*big.Int, error)
}
