package memory

import (
	"sync"

	"github.com/venmorph/attestor-svc/internal/data"
)

type lastLedger struct {
	mu  sync.Mutex
	seq *uint32
}

// NewLastLedger returns an in-memory watermark seeded with start when it is
// non-zero. The value is lost on restart.
func NewLastLedger(start uint32) data.LastLedger {
	l := &lastLedger{}
	if start != 0 {
		l.seq = &start
	}
	return l
}

func (l *lastLedger) Set(seq uint32) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq = &seq
	return nil
}

func (l *lastLedger) Get() (*uint32, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.seq == nil {
		return nil, nil
	}
	seq := *l.seq
	return &seq, nil
}
