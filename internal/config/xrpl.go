package config

import (
	"time"

	"gitlab.com/distributed_lab/figure/v3"
	"gitlab.com/distributed_lab/kit/kv"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

type XRPL struct {
	Endpoint       string
	Network        string
	RequestTimeout time.Duration
}

// Public websocket endpoints of the XRPL clusters.
var xrplEndpoints = map[string]string{
	"mainnet": "wss://xrplcluster.com",
	"testnet": "wss://s.altnet.rippletest.net:51233",
	"devnet":  "wss://s.devnet.rippletest.net:51233",
}

func (c *config) XRPL() XRPL {
	return c.xrplOnce.Do(func() interface{} {
		var cfg struct {
			Network        string        `fig:"network"`
			Endpoint       string        `fig:"endpoint"`
			RequestTimeout time.Duration `fig:"request_timeout"`
		}

		err := figure.Out(&cfg).
			From(kv.MustGetStringMap(c.getter, "xrpl")).
			Please()
		if err != nil {
			panic(errors.Wrap(err, "failed to figure out xrpl"))
		}

		if cfg.Endpoint == "" {
			endpoint, ok := xrplEndpoints[cfg.Network]
			if !ok {
				panic(errors.Errorf("unknown xrpl network %q and no endpoint override", cfg.Network))
			}
			cfg.Endpoint = endpoint
		}
		if cfg.RequestTimeout == 0 {
			cfg.RequestTimeout = defaultRequestTimeout
		}

		return XRPL{
			Endpoint:       cfg.Endpoint,
			Network:        cfg.Network,
			RequestTimeout: cfg.RequestTimeout,
		}
	}).(XRPL)
}
