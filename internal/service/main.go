package service

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/venmorph/attestor-svc/internal/config"
	"github.com/venmorph/attestor-svc/internal/data"
	"github.com/venmorph/attestor-svc/internal/data/memory"
	"github.com/venmorph/attestor-svc/internal/data/postgres"
	"github.com/venmorph/attestor-svc/internal/evm"
	"github.com/venmorph/attestor-svc/internal/xrpl"
	jsonapi "gitlab.com/distributed_lab/json-api-connector"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
	"gitlab.com/distributed_lab/running"
)

type service struct {
	log *logan.Entry
	cfg config.Attestor

	evm        EVMClient
	ledger     *xrpl.Client
	source     xrpl.Source
	cache      *requestCache
	matcher    matcher
	submitter  *submitter
	lastLedger data.LastLedger

	mu        sync.Mutex
	processed map[string]struct{}
}

func newService(cfg config.Config) *service {
	log := cfg.Log()
	attCfg := cfg.Attestor()

	evmClient := evm.NewClient(cfg.EVM())
	ledgerClient := xrpl.NewClient(cfg.XRPL().Endpoint, cfg.XRPL().RequestTimeout, log)

	var lastLedger data.LastLedger
	var attestations data.Attestations
	if cfg.PersistState() {
		var err error
		lastLedger, err = postgres.NewLastLedger(cfg.DB(), cfg.XRPL().Network)
		if err != nil {
			panic(errors.Wrap(err, "failed to instantiate last ledger DB API"))
		}
		attestations = postgres.NewAttestations(cfg.DB(), cfg.XRPL().Network)
	} else {
		lastLedger = memory.NewLastLedger(attCfg.StartLedger)
		attestations = memory.NewAttestations()
	}

	var collector *jsonapi.Connector
	if cfg.ReportPayments() {
		collector = cfg.Collector()
	}

	return &service{
		log:        log,
		cfg:        attCfg,
		evm:        evmClient,
		ledger:     ledgerClient,
		source:     ledgerClient,
		cache:      newRequestCache(evmClient, log),
		matcher:    newMatcher(NewStaticRates(cfg.Rates())),
		submitter:  newSubmitter(evmClient, attestations, collector, log),
		lastLedger: lastLedger,
		processed:  make(map[string]struct{}),
	}
}

func (s *service) run(ctx context.Context) error {
	s.log.Info("service started")

	if err := s.init(ctx); err != nil {
		return errors.Wrap(err, "failed to initialize")
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		running.WithBackOff(ctx, s.log, "ledger-poller",
			s.pollTick, s.cfg.PollInterval, time.Second, time.Minute)
	}()
	go func() {
		defer wg.Done()
		running.WithBackOff(ctx, s.log, "cache-refresher",
			s.refreshTick, s.cfg.RefreshInterval, time.Second, time.Minute)
	}()
	wg.Wait()

	s.ledger.Close()
	s.log.Info("service stopped")
	return nil
}

// init loads the request cache and establishes the starting watermark. Any
// failure here is fatal: without a cache and a watermark the loops have
// nothing sound to work from.
func (s *service) init(ctx context.Context) error {
	if err := s.cache.load(ctx, s.cfg.BatchSize); err != nil {
		return errors.Wrap(err, "failed to load request cache")
	}

	last, err := s.lastLedger.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get last ledger")
	}
	if last != nil && *last != 0 {
		s.log.WithField("last_ledger", *last).Info("resuming from saved watermark")
		return nil
	}

	validated, err := s.source.ValidatedLedgerIndex(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get validated ledger index")
	}
	if err = s.lastLedger.Set(validated); err != nil {
		return errors.Wrap(err, "failed to save starting watermark")
	}
	s.log.WithField("last_ledger", validated).Info("starting from the currently validated ledger")
	return nil
}

func Run(cfg config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newService(cfg).run(ctx); err != nil {
		panic(errors.Wrap(err, "service run failed"))
	}
}
