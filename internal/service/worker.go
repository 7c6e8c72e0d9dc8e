package service

import (
	"context"
	"time"

	"github.com/venmorph/attestor-svc/internal/data"
	"github.com/venmorph/attestor-svc/internal/xrpl"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

func (s *service) refreshTick(ctx context.Context) error {
	return s.cache.refresh(ctx)
}

// pollTick walks validated ledgers from the watermark upwards. The watermark
// advances only after a ledger is fully evaluated, so a failed tick resumes
// from the last sound position and never skips a ledger.
func (s *service) pollTick(ctx context.Context) error {
	last, err := s.lastLedger.Get()
	if err != nil {
		return errors.Wrap(err, "failed to get last ledger")
	}
	var watermark uint32
	if last != nil {
		watermark = *last
	}

	stream := xrpl.NewStream(s.source, watermark, s.cfg.Confirmations)
	for ctx.Err() == nil {
		ledger, err := stream.Next(ctx)
		if err != nil {
			if errors.Cause(err) == xrpl.ErrNoNewLedgers {
				return nil
			}
			return errors.Wrap(err, "failed to pull next ledger")
		}

		if err = s.processLedger(ctx, ledger); err != nil {
			return errors.Wrap(err, "failed to process ledger", logan.F{"ledger_index": ledger.Index})
		}
		if err = s.lastLedger.Set(ledger.Index); err != nil {
			return errors.Wrap(err, "failed to save last ledger", logan.F{"ledger_index": ledger.Index})
		}
	}

	return nil
}

// processLedger evaluates every payment of the ledger exactly once logically:
// a hash enters the processed set only after its evaluation completed, and a
// hash in the set is never evaluated again.
func (s *service) processLedger(ctx context.Context, ledger xrpl.Ledger) error {
	for _, payment := range ledger.Payments {
		if s.alreadyProcessed(payment.Hash) {
			continue
		}
		if err := s.evaluate(ctx, payment, ledger.CloseTime); err != nil {
			return errors.Wrap(err, "failed to evaluate payment", logan.F{"tx_hash": payment.Hash})
		}
		s.markProcessed(payment.Hash)
	}

	s.log.WithFields(logan.F{"ledger_index": ledger.Index, "payments": len(ledger.Payments)}).
		Debug("ledger evaluated")
	return nil
}

// evaluate checks the payment against the full request cache and submits an
// attestation for the first (lowest-id) request it settles.
func (s *service) evaluate(ctx context.Context, payment xrpl.Payment, closeTime time.Time) error {
	for _, req := range s.cache.snapshot() {
		log := s.log.WithFields(logan.F{"request_id": req.ID, "tx_hash": payment.Hash})

		if closeTime.After(req.Expiry) {
			s.cache.remove(req.ID)
			log.Debug("evicting expired request")
			continue
		}

		ok, err := s.matcher.match(ctx, payment, closeTime, req)
		if err != nil {
			// Isolated per-request failure, e.g. a missing rate for one asset
			// must not block matching for the others.
			log.WithError(err).Error("failed to match payment against request")
			continue
		}
		if !ok {
			continue
		}

		submitted, err := s.submitter.submit(ctx, req, payment, closeTime)
		if err != nil {
			if s.evictNonPending(ctx, req.ID) {
				log.Warn("request left PENDING externally, attestation rejected, evicted")
				continue
			}
			return errors.Wrap(err, "failed to submit attestation", logan.F{"request_id": req.ID})
		}
		if submitted {
			s.cache.remove(req.ID)
			log.WithField("amount_drops", payment.AmountDrops.String()).
				Info("successfully attested payment")
		}
		return nil
	}

	return nil
}

// evictNonPending re-reads the request after a rejected submission: the cache
// never re-validates entries on its own, so a rejection is the moment an
// external cancellation becomes visible.
func (s *service) evictNonPending(ctx context.Context, id uint64) bool {
	cur, err := s.evm.Request(ctx, id)
	if err != nil || cur.Status == data.StatusPending {
		return false
	}
	s.cache.remove(id)
	return true
}

func (s *service) alreadyProcessed(hash string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.processed[hash]
	return ok
}

func (s *service) markProcessed(hash string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.processed[hash] = struct{}{}
}
