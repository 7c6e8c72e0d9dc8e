package service

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/venmorph/attestor-svc/internal/data"
	"github.com/venmorph/attestor-svc/internal/service/requests"
	"github.com/venmorph/attestor-svc/internal/xrpl"
	jsonapi "gitlab.com/distributed_lab/json-api-connector"
	"gitlab.com/distributed_lab/json-api-connector/cerrors"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// submitter guards against duplicate attestation submission within a process
// run. The id is reserved before the chain call and released on failure, so a
// failed submission leaves exactly one future retry possible.
type submitter struct {
	evm          EVMClient
	attestations data.Attestations
	collector    *jsonapi.Connector
	log          *logan.Entry

	mu        sync.Mutex
	submitted map[uint64]struct{}
}

func newSubmitter(evm EVMClient, attestations data.Attestations, collector *jsonapi.Connector, log *logan.Entry) *submitter {
	return &submitter{
		evm:          evm,
		attestations: attestations,
		collector:    collector,
		log:          log,
		submitted:    make(map[uint64]struct{}),
	}
}

// submit sends one attestation for req settled by payment. It returns false
// without error when a submission for the request already happened in this
// process run.
func (s *submitter) submit(ctx context.Context, req data.Request, payment xrpl.Payment, paidAt time.Time) (bool, error) {
	s.mu.Lock()
	if _, ok := s.submitted[req.ID]; ok {
		s.mu.Unlock()
		return false, nil
	}
	s.submitted[req.ID] = struct{}{}
	s.mu.Unlock()

	evmTx, err := s.evm.SubmitAttestation(ctx, req.ID, payment.Hash, payment.AmountDrops, paidAt)
	if err != nil {
		s.mu.Lock()
		delete(s.submitted, req.ID)
		s.mu.Unlock()
		return false, errors.Wrap(err, "failed to submit attestation")
	}

	record := data.Attestation{
		RequestID:   req.ID,
		XRPLTxHash:  payment.Hash,
		AmountDrops: payment.AmountDrops.String(),
		PaidAt:      paidAt,
		EVMTxHash:   evmTx.Hex(),
	}
	// The submission already happened; bookkeeping failures must not undo it.
	if err := s.attestations.Insert(record); err != nil {
		s.log.WithError(err).WithField("request_id", req.ID).Error("failed to record attestation")
	}
	s.report(ctx, record)

	return true, nil
}

func (s *submitter) report(ctx context.Context, record data.Attestation) {
	if s.collector == nil {
		return
	}
	log := s.log.WithField("request_id", record.RequestID)

	body := requests.NewReportPayment(record)
	u, _ := url.Parse("/payments")
	err := s.collector.PostJSON(u, body, ctx, nil)
	if isConflict(err) {
		log.Warn("payment already recorded in collector, skipping it")
		return
	}
	if err != nil {
		log.WithError(err).Error("failed to report payment to collector")
	}
}

func isConflict(err error) bool {
	c, ok := err.(cerrors.Error)
	return ok && c.Status() == http.StatusConflict
}
