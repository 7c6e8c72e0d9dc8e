package config

import (
	"math/big"

	"gitlab.com/distributed_lab/figure/v3"
	"gitlab.com/distributed_lab/kit/kv"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// Rates holds static asset/XRP conversion rates. The matcher consumes them
// through its rate source interface, so a live oracle adapter can replace this
// section without touching the matching logic.
type Rates map[string]AssetRate

type AssetRate struct {
	// DropsPerUnit is the number of drops one whole asset unit buys.
	DropsPerUnit *big.Int
	// UnitScale is 10^decimals of the asset's native integer amount.
	UnitScale *big.Int
}

func (c *config) Rates() Rates {
	return c.ratesOnce.Do(func() interface{} {
		raw := kv.MustGetStringMap(c.getter, "rates")

		rates := make(Rates, len(raw))
		for symbol, v := range raw {
			m, ok := v.(map[string]interface{})
			if !ok {
				panic(errors.Errorf("malformed rate entry for asset %q", symbol))
			}

			var cfg struct {
				DropsPerUnit string `fig:"drops_per_unit,required"`
				Decimals     uint   `fig:"decimals"`
			}
			err := figure.Out(&cfg).From(m).Please()
			if err != nil {
				panic(errors.Wrap(err, "failed to figure out rate", logan.F{"asset": symbol}))
			}

			drops, ok := new(big.Int).SetString(cfg.DropsPerUnit, 10)
			if !ok || drops.Sign() <= 0 {
				panic(errors.Errorf("invalid drops_per_unit for asset %q", symbol))
			}

			scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(cfg.Decimals)), nil)
			rates[symbol] = AssetRate{DropsPerUnit: drops, UnitScale: scale}
		}

		if len(rates) == 0 {
			panic("no conversion rates configured")
		}

		return rates
	}).(Rates)
}
