package service

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/venmorph/attestor-svc/internal/config"
	"github.com/venmorph/attestor-svc/internal/data"
	"github.com/venmorph/attestor-svc/internal/data/memory"
	"github.com/venmorph/attestor-svc/internal/evm"
	"github.com/venmorph/attestor-svc/internal/xrpl"
	"gitlab.com/distributed_lab/logan/v3"
)

type submission struct {
	id     uint64
	txHash string
	amount *big.Int
	paidAt time.Time
}

type fakeEVM struct {
	mu          sync.Mutex
	total       uint64
	requests    map[uint64]data.Request
	loadErrs    map[uint64]error
	submitErr   error
	fetched     []uint64
	submissions []submission
}

func newFakeEVM(reqs ...data.Request) *fakeEVM {
	f := &fakeEVM{
		requests: make(map[uint64]data.Request),
		loadErrs: make(map[uint64]error),
	}
	for _, r := range reqs {
		f.requests[r.ID] = r
		if r.ID+1 > f.total {
			f.total = r.ID + 1
		}
	}
	return f
}

func (f *fakeEVM) TotalRequests(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.total, nil
}

func (f *fakeEVM) Request(_ context.Context, id uint64) (data.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, id)
	if err := f.loadErrs[id]; err != nil {
		return data.Request{}, err
	}
	r, ok := f.requests[id]
	if !ok {
		return data.Request{}, evm.ErrRequestNotFound
	}
	return r, nil
}

func (f *fakeEVM) SubmitAttestation(_ context.Context, id uint64, txHash string, amount *big.Int, paidAt time.Time) (common.Hash, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.submitErr != nil {
		return common.Hash{}, f.submitErr
	}

	f.submissions = append(f.submissions, submission{id: id, txHash: txHash, amount: amount, paidAt: paidAt})
	r := f.requests[id]
	r.Status = data.StatusPaid
	r.PaidTxHash = txHash
	r.PaidAmount = amount
	r.PaidAt = paidAt
	f.requests[id] = r
	return common.HexToHash("0xdead"), nil
}

func (f *fakeEVM) setSubmitErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitErr = err
}

func (f *fakeEVM) setStatus(id uint64, status data.RequestStatus) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.requests[id]
	r.Status = status
	f.requests[id] = r
}

func (f *fakeEVM) submissionCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.submissions)
}

type fakeLedgerSource struct {
	mu        sync.Mutex
	validated uint32
	ledgers   map[uint32]xrpl.Ledger
	fetchErrs map[uint32]error
}

func newFakeLedgerSource(validated uint32, ledgers ...xrpl.Ledger) *fakeLedgerSource {
	f := &fakeLedgerSource{
		validated: validated,
		ledgers:   make(map[uint32]xrpl.Ledger),
		fetchErrs: make(map[uint32]error),
	}
	for _, l := range ledgers {
		f.ledgers[l.Index] = l
	}
	return f
}

func (f *fakeLedgerSource) ValidatedLedgerIndex(context.Context) (uint32, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validated, nil
}

func (f *fakeLedgerSource) Ledger(_ context.Context, index uint32) (xrpl.Ledger, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.fetchErrs[index]; err != nil {
		return xrpl.Ledger{}, err
	}
	l, ok := f.ledgers[index]
	if !ok {
		return xrpl.Ledger{}, xrpl.ErrLedgerNotFound
	}
	return l, nil
}

func (f *fakeLedgerSource) add(l xrpl.Ledger) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ledgers[l.Index] = l
	if l.Index > f.validated {
		f.validated = l.Index
	}
}

func (f *fakeLedgerSource) setFetchErr(index uint32, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err == nil {
		delete(f.fetchErrs, index)
		return
	}
	f.fetchErrs[index] = err
}

func newTestService(t *testing.T, fe *fakeEVM, src xrpl.Source, rates RateSource, lastLedger uint32) *service {
	t.Helper()
	log := logan.New()

	return &service{
		log: log,
		cfg: config.Attestor{
			PollInterval:    time.Second,
			RefreshInterval: time.Second,
			BatchSize:       50,
			Confirmations:   1,
		},
		evm:        fe,
		source:     src,
		cache:      newRequestCache(fe, log),
		matcher:    newMatcher(rates),
		submitter:  newSubmitter(fe, memory.NewAttestations(), nil, log),
		lastLedger: memory.NewLastLedger(lastLedger),
		processed:  make(map[string]struct{}),
	}
}

func (s *service) watermark(t *testing.T) uint32 {
	t.Helper()
	last, err := s.lastLedger.Get()
	if err != nil {
		t.Fatal(err)
	}
	if last == nil {
		return 0
	}
	return *last
}
