package config

import (
	"time"

	"gitlab.com/distributed_lab/figure/v3"
	"gitlab.com/distributed_lab/kit/kv"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

type Attestor struct {
	PollInterval    time.Duration
	RefreshInterval time.Duration
	BatchSize       uint64
	Confirmations   uint32
	StartLedger     uint32
}

const (
	defaultPollInterval    = 10 * time.Second
	defaultRefreshInterval = 30 * time.Second
	defaultBatchSize       = 50
	defaultConfirmations   = 1
)

func (c *config) Attestor() Attestor {
	return c.attestorOnce.Do(func() interface{} {
		var cfg struct {
			PollInterval    time.Duration `fig:"poll_interval"`
			RefreshInterval time.Duration `fig:"refresh_interval"`
			BatchSize       uint64        `fig:"batch_size"`
			Confirmations   uint32        `fig:"confirmations"`
			StartLedger     uint32        `fig:"start_ledger"`
		}

		err := figure.Out(&cfg).
			From(kv.MustGetStringMap(c.getter, "attestor")).
			Please()
		if err != nil {
			panic(errors.Wrap(err, "failed to figure out attestor"))
		}

		if cfg.PollInterval == 0 {
			cfg.PollInterval = defaultPollInterval
		}
		if cfg.RefreshInterval == 0 {
			cfg.RefreshInterval = defaultRefreshInterval
		}
		if cfg.BatchSize == 0 {
			cfg.BatchSize = defaultBatchSize
		}
		if cfg.Confirmations == 0 {
			cfg.Confirmations = defaultConfirmations
		}

		return Attestor{
			PollInterval:    cfg.PollInterval,
			RefreshInterval: cfg.RefreshInterval,
			BatchSize:       cfg.BatchSize,
			Confirmations:   cfg.Confirmations,
			StartLedger:     cfg.StartLedger,
		}
	}).(Attestor)
}

// PersistState reports whether a db section is configured. Watermark and
// audit rows go to Postgres when it is, to memory otherwise.
func (c *config) PersistState() bool {
	return len(kv.MustGetStringMap(c.getter, "db")) > 0
}

// ReportPayments reports whether a collector section is configured.
func (c *config) ReportPayments() bool {
	return len(kv.MustGetStringMap(c.getter, "collector")) > 0
}
