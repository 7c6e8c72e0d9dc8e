package service

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/venmorph/attestor-svc/internal/data"
	"github.com/venmorph/attestor-svc/internal/xrpl"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

func usdtRates() RateSource {
	return stubRates{drops: map[string]*big.Int{"USDT": xrpDrops("1000")}}
}

func paymentLedger(index uint32, payments ...xrpl.Payment) xrpl.Ledger {
	for i := range payments {
		payments[i].LedgerIndex = index
	}
	return xrpl.Ledger{
		Index:     index,
		CloseTime: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
		Payments:  payments,
	}
}

func matchingPayment(hash string, req data.Request) xrpl.Payment {
	id := uint32(req.ID)
	return xrpl.Payment{
		Hash:           hash,
		Account:        "rPayerAccount",
		Destination:    req.XRPLAddress,
		DestinationTag: &id,
		AmountDrops:    xrpDrops("990"),
	}
}

func TestPollTickSubmitsMatchingPayment(t *testing.T) {
	req := testRequest()
	fe := newFakeEVM(req)
	src := newFakeLedgerSource(11, paymentLedger(11, matchingPayment("AB01", req)))
	s := newTestService(t, fe, src, usdtRates(), 10)
	require.NoError(t, s.cache.load(context.Background(), s.cfg.BatchSize))

	require.NoError(t, s.pollTick(context.Background()))

	require.Equal(t, 1, fe.submissionCount())
	require.Equal(t, req.ID, fe.submissions[0].id)
	require.Equal(t, "AB01", fe.submissions[0].txHash)
	require.Empty(t, s.cache.snapshot(), "a paid request must leave the cache")
	require.Equal(t, uint32(11), s.watermark(t))
}

func TestPollTickDeduplicatesByHash(t *testing.T) {
	req := testRequest()
	fe := newFakeEVM(req)
	src := newFakeLedgerSource(11, paymentLedger(11, matchingPayment("AB01", req)))
	s := newTestService(t, fe, src, usdtRates(), 10)
	require.NoError(t, s.cache.load(context.Background(), s.cfg.BatchSize))

	require.NoError(t, s.pollTick(context.Background()))
	require.Equal(t, 1, fe.submissionCount())

	// Simulate a duplicate fetch of the same transaction in a later ledger,
	// with the request forced back into the cache: the processed set must
	// still prevent a second evaluation.
	s.cache.mu.Lock()
	s.cache.requests[req.ID] = req
	s.cache.mu.Unlock()
	src.add(paymentLedger(12, matchingPayment("AB01", req)))

	require.NoError(t, s.pollTick(context.Background()))
	require.Equal(t, 1, fe.submissionCount(), "reprocessing a known hash must be a no-op")
	require.Equal(t, uint32(12), s.watermark(t))
}

func TestPollTickRetriesFailedSubmission(t *testing.T) {
	req := testRequest()
	fe := newFakeEVM(req)
	fe.setSubmitErr(errors.New("network down"))
	src := newFakeLedgerSource(11, paymentLedger(11, matchingPayment("AB01", req)))
	s := newTestService(t, fe, src, usdtRates(), 10)
	require.NoError(t, s.cache.load(context.Background(), s.cfg.BatchSize))

	require.Error(t, s.pollTick(context.Background()))
	require.Equal(t, 0, fe.submissionCount())
	require.Len(t, s.cache.snapshot(), 1, "a failed submission must not drop the request")
	require.Equal(t, uint32(10), s.watermark(t), "the watermark must not advance past an unprocessed ledger")

	// the next tick retries the same ledger and succeeds
	fe.setSubmitErr(nil)
	require.NoError(t, s.pollTick(context.Background()))
	require.Equal(t, 1, fe.submissionCount())
	require.Empty(t, s.cache.snapshot())
	require.Equal(t, uint32(11), s.watermark(t))
}

func TestPollTickWatermarkMonotonic(t *testing.T) {
	fe := newFakeEVM()
	src := newFakeLedgerSource(13,
		paymentLedger(11), paymentLedger(12), paymentLedger(13))
	src.setFetchErr(12, errors.New("transient network error"))
	s := newTestService(t, fe, src, usdtRates(), 10)

	require.Error(t, s.pollTick(context.Background()))
	require.Equal(t, uint32(11), s.watermark(t))

	require.Error(t, s.pollTick(context.Background()))
	require.Equal(t, uint32(11), s.watermark(t), "a failing ledger must pin the watermark, not regress it")

	src.setFetchErr(12, nil)
	require.NoError(t, s.pollTick(context.Background()))
	require.Equal(t, uint32(13), s.watermark(t))
}

func TestPollTickEvictsExternallyCancelledRequest(t *testing.T) {
	req := testRequest()
	fe := newFakeEVM(req)
	src := newFakeLedgerSource(11, paymentLedger(11, matchingPayment("AB01", req)))
	s := newTestService(t, fe, src, usdtRates(), 10)
	require.NoError(t, s.cache.load(context.Background(), s.cfg.BatchSize))

	// cancelled behind the attestor's back: the submission gets rejected and
	// the rejection is when the staleness resolves
	fe.setStatus(req.ID, data.StatusCancelled)
	fe.setSubmitErr(errors.New("execution reverted: request is not pending"))

	require.NoError(t, s.pollTick(context.Background()))
	require.Equal(t, 0, fe.submissionCount())
	require.Empty(t, s.cache.snapshot(), "a rejected attestation must evict the stale request")
	require.Equal(t, uint32(11), s.watermark(t))
}

func TestPollTickEvictsExpiredRequest(t *testing.T) {
	req := testRequest()
	fe := newFakeEVM(req)
	ledger := paymentLedger(11, matchingPayment("AB01", req))
	ledger.CloseTime = req.Expiry.Add(time.Hour)
	src := newFakeLedgerSource(11, ledger)
	s := newTestService(t, fe, src, usdtRates(), 10)
	require.NoError(t, s.cache.load(context.Background(), s.cfg.BatchSize))

	require.NoError(t, s.pollTick(context.Background()))
	require.Equal(t, 0, fe.submissionCount())
	require.Empty(t, s.cache.snapshot())
}

func TestPollTickHonorsConfirmations(t *testing.T) {
	req := testRequest()
	fe := newFakeEVM(req)
	src := newFakeLedgerSource(12,
		paymentLedger(11, matchingPayment("AB01", req)), paymentLedger(12))
	s := newTestService(t, fe, src, usdtRates(), 10)
	s.cfg.Confirmations = 2
	require.NoError(t, s.cache.load(context.Background(), s.cfg.BatchSize))

	require.NoError(t, s.pollTick(context.Background()))
	require.Equal(t, uint32(11), s.watermark(t), "ledger 12 lacks the confirmation margin")
	require.Equal(t, 1, fe.submissionCount())
}

func TestRefreshTickPicksUpNewRequests(t *testing.T) {
	fe := newFakeEVM(pendingRequest(0))
	src := newFakeLedgerSource(10)
	s := newTestService(t, fe, src, usdtRates(), 10)
	require.NoError(t, s.cache.load(context.Background(), s.cfg.BatchSize))

	fe.mu.Lock()
	fe.requests[1] = pendingRequest(1)
	fe.total = 2
	fe.mu.Unlock()

	require.NoError(t, s.refreshTick(context.Background()))
	require.Len(t, s.cache.snapshot(), 2)
}
