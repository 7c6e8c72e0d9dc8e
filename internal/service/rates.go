package service

import (
	"context"
	"math/big"

	"github.com/venmorph/attestor-svc/internal/config"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

type staticRates struct {
	rates config.Rates
}

func NewStaticRates(rates config.Rates) RateSource {
	return staticRates{rates: rates}
}

func (s staticRates) RequiredDrops(_ context.Context, symbol string, amount *big.Int) (*big.Int, error) {
	rate, ok := s.rates[symbol]
	if !ok {
		return nil, errors.Errorf("no conversion rate for asset %q", symbol)
	}

	drops := new(big.Int).Mul(amount, rate.DropsPerUnit)
	return drops.Quo(drops, rate.UnitScale), nil
}
