package service

import (
	"context"
	"math/big"
	"time"

	"github.com/venmorph/attestor-svc/internal/data"
	"github.com/venmorph/attestor-svc/internal/xrpl"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

type matcher struct {
	rates RateSource
}

func newMatcher(rates RateSource) matcher {
	return matcher{rates: rates}
}

// match reports whether payment settles req, with closeTime taken as the
// payment's observation time. The required amount is priced at match time, so
// legitimate payments within the slippage band survive price movement between
// request creation and settlement.
func (m matcher) match(ctx context.Context, payment xrpl.Payment, closeTime time.Time, req data.Request) (bool, error) {
	if closeTime.After(req.Expiry) {
		return false, nil
	}

	// A destination tag is the primary correlation key; address and amount
	// remain as integrity checks.
	if payment.DestinationTag != nil && uint64(*payment.DestinationTag) != req.ID {
		return false, nil
	}
	if payment.Destination != req.XRPLAddress {
		return false, nil
	}

	required, err := m.rates.RequiredDrops(ctx, req.AssetSymbol, req.AssetAmount)
	if err != nil {
		return false, errors.Wrap(err, "failed to compute required amount")
	}

	return payment.AmountDrops.Cmp(minAcceptable(required, req.SlippageBps)) >= 0, nil
}

// minAcceptable floors required*(10000-slippageBps)/10000. Overpayment always
// matches; underpayment below the band never does.
func minAcceptable(required *big.Int, slippageBps uint16) *big.Int {
	if slippageBps > 1000 {
		slippageBps = 1000
	}
	min := new(big.Int).Mul(required, big.NewInt(int64(10000-slippageBps)))
	return min.Quo(min, big.NewInt(10000))
}
