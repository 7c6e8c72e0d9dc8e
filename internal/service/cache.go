package service

import (
	"context"
	"sort"
	"sync"

	"github.com/venmorph/attestor-svc/internal/data"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"
)

// requestCache mirrors PENDING requests from the contract. It is strictly
// additive and evictive: cached entries are never re-validated against chain
// state, so an externally cancelled request stays cached until an attestation
// attempt gets rejected.
type requestCache struct {
	evm EVMClient
	log *logan.Entry

	mu       sync.Mutex
	requests map[uint64]data.Request
	// known is the request count covered so far; ids are assigned
	// monotonically by the contract, so ids >= known are new.
	known uint64
}

func newRequestCache(evm EVMClient, log *logan.Entry) *requestCache {
	return &requestCache{
		evm:      evm,
		log:      log,
		requests: make(map[uint64]data.Request),
	}
}

// load seeds the cache with the most recent batchSize requests.
func (c *requestCache) load(ctx context.Context, batchSize uint64) error {
	total, err := c.evm.TotalRequests(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get total request count")
	}

	start := uint64(0)
	if total > batchSize {
		start = total - batchSize
	}
	c.fetchRange(ctx, start, total)

	c.mu.Lock()
	c.known = total
	c.mu.Unlock()

	c.log.WithFields(logan.F{"total": total, "cached": c.size()}).Info("request cache loaded")
	return nil
}

// refresh pulls requests created since the last load or refresh.
func (c *requestCache) refresh(ctx context.Context) error {
	total, err := c.evm.TotalRequests(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to get total request count")
	}

	c.mu.Lock()
	known := c.known
	c.mu.Unlock()
	if total <= known {
		return nil
	}

	c.fetchRange(ctx, known, total)

	c.mu.Lock()
	c.known = total
	c.mu.Unlock()
	return nil
}

// fetchRange inserts PENDING requests with ids in [from, to). A single request
// failing to load is logged and skipped so the rest of the batch survives.
func (c *requestCache) fetchRange(ctx context.Context, from, to uint64) {
	for id := from; id < to; id++ {
		req, err := c.evm.Request(ctx, id)
		if err != nil {
			c.log.WithError(err).WithField("request_id", id).Error("failed to load request, skipping it")
			continue
		}
		if req.Status != data.StatusPending {
			continue
		}

		c.mu.Lock()
		c.requests[req.ID] = req
		c.mu.Unlock()
	}
}

func (c *requestCache) remove(id uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.requests, id)
}

// snapshot returns the cached requests ordered by id, so matching is
// deterministic when a payment could settle several requests.
func (c *requestCache) snapshot() []data.Request {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]data.Request, 0, len(c.requests))
	for _, req := range c.requests {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (c *requestCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.requests)
}
