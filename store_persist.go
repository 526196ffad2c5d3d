package goodmoney

import (
	"context"
	"sync"
)

// Persistence is fire-and-forget: the in-memory mutation has already
// happened when an op is enqueued, and a failed write is logged, never
// rolled back. Ops for one key run strictly in order; distinct keys may be
// in flight concurrently.

type persistOp struct {
	key    string // full key, prefix applied
	value  []byte
	delete bool
}

type writeQueue struct {
	mu      sync.Mutex
	ops     []persistOp
	running bool
}

// persistSet enqueues a write of the encoded payload for a key suffix.
// A nil payload means encoding failed (already logged); the op is skipped.
func (s *Store) persistSet(suffix string, payload []byte) {
	if payload == nil {
		return
	}
	s.enqueue(suffix, persistOp{key: s.key(suffix), value: payload})
}

// persistDelete enqueues removal of the persisted key for a suffix.
func (s *Store) persistDelete(suffix string) {
	s.enqueue(suffix, persistOp{key: s.key(suffix), delete: true})
}

func (s *Store) enqueue(suffix string, op persistOp) {
	s.qmu.Lock()
	q, ok := s.queues[op.key]
	if !ok {
		q = &writeQueue{}
		s.queues[op.key] = q
	}
	s.qmu.Unlock()

	q.mu.Lock()
	q.ops = append(q.ops, op)
	if !q.running {
		q.running = true
		s.inflight.Add(1)
		go s.drain(q)
	}
	q.mu.Unlock()

	s.notify(suffix)
}

// drain applies queued ops for one key until the queue is empty, preserving
// enqueue order. A later write for a key can never overtake an earlier one.
func (s *Store) drain(q *writeQueue) {
	defer s.inflight.Done()
	for {
		q.mu.Lock()
		if len(q.ops) == 0 {
			q.running = false
			q.mu.Unlock()
			return
		}
		op := q.ops[0]
		q.ops = q.ops[1:]
		q.mu.Unlock()
		s.apply(op)
	}
}

func (s *Store) apply(op persistOp) {
	ctx := context.Background()
	var err error
	if op.delete {
		err = s.db.Delete(ctx, op.key)
	} else {
		err = s.db.Set(ctx, op.key, op.value)
	}
	if err != nil {
		// Accepted trade-off: memory stays mutated, the session stays
		// consistent, only a crash before a retryable write loses data.
		s.log.Error().Err(err).Str("key", op.key).Msg("persist failed, keeping in-memory state")
	}
}
