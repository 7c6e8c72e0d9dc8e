package xrpl

import (
	"context"

	"gitlab.com/distributed_lab/logan/v3/errors"
)

// ErrNoNewLedgers signals that the stream has caught up with the validated
// ledger (minus the confirmation margin).
var ErrNoNewLedgers = errors.New("no new validated ledgers")

// Source is the ledger read surface the stream pulls from.
type Source interface {
	ValidatedLedgerIndex(ctx context.Context) (uint32, error)
	Ledger(ctx context.Context, index uint32) (Ledger, error)
}

// Stream yields validated ledgers in strictly increasing index order. It is a
// pull-based replacement for the rippled subscription API: restartable from a
// watermark, with ordering and backpressure owned by the caller.
type Stream struct {
	source        Source
	next          uint32
	confirmations uint32

	limit    uint32
	limitSet bool
}

// NewStream starts after lastProcessed. A ledger is yielded only once
// confirmations ledgers (itself included) have been validated at or above it.
func NewStream(source Source, lastProcessed uint32, confirmations uint32) *Stream {
	if confirmations == 0 {
		confirmations = 1
	}
	return &Stream{
		source:        source,
		next:          lastProcessed + 1,
		confirmations: confirmations,
	}
}

// Next returns the next ledger or ErrNoNewLedgers once the stream has drained.
// The validated-ledger ceiling is sampled once per stream, so a drained stream
// stays drained; create a new one from the advanced watermark to poll again.
func (s *Stream) Next(ctx context.Context) (Ledger, error) {
	if !s.limitSet {
		validated, err := s.source.ValidatedLedgerIndex(ctx)
		if err != nil {
			return Ledger{}, errors.Wrap(err, "failed to get validated ledger index")
		}
		if validated < s.confirmations {
			return Ledger{}, ErrNoNewLedgers
		}
		s.limit = validated - (s.confirmations - 1)
		s.limitSet = true
	}

	if s.next > s.limit {
		return Ledger{}, ErrNoNewLedgers
	}

	ledger, err := s.source.Ledger(ctx, s.next)
	if err != nil {
		return Ledger{}, errors.Wrap(err, "failed to fetch ledger")
	}

	s.next++
	return ledger, nil
}
