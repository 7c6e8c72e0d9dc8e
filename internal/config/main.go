package config

import (
	jsonapi "gitlab.com/distributed_lab/json-api-connector"
	"gitlab.com/distributed_lab/kit/comfig"
	"gitlab.com/distributed_lab/kit/kv"
	"gitlab.com/distributed_lab/kit/pgdb"
)

type Config interface {
	comfig.Logger
	pgdb.Databaser

	EVM() EVM
	XRPL() XRPL
	Attestor() Attestor
	Rates() Rates
	Collector() *jsonapi.Connector
	PersistState() bool
	ReportPayments() bool
}

type config struct {
	comfig.Logger
	pgdb.Databaser
	getter kv.Getter

	evmOnce       comfig.Once
	xrplOnce      comfig.Once
	attestorOnce  comfig.Once
	ratesOnce     comfig.Once
	collectorOnce comfig.Once
}

func New(getter kv.Getter) Config {
	return &config{
		getter:    getter,
		Databaser: pgdb.NewDatabaser(getter),
		Logger:    comfig.NewLogger(getter, comfig.LoggerOpts{}),
	}
}
