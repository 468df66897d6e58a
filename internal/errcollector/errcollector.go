// Package errcollector keeps a bounded record of remote-fetch failures so that
// fetch-client health can be reported later without changing the fallback
// values already returned to callers.
package errcollector

import (
	"context"
	"runtime/debug"
	"sync"
	"time"
)

// DefaultCapacity is the number of records kept by a Ring built with NewRing(0).
const DefaultCapacity = 1000

// Record describes a single exhausted remote call.
type Record struct {
	Operation string    `json:"operation"` // fetch operation name (e.g. "GetCode")
	Key       string    `json:"key"`       // lookup key, usually an address
	Message   string    `json:"message"`   // last error returned by the remote call
	Stack     string    `json:"stack"`     // goroutine stack captured when the record was built
	Time      time.Time `json:"time"`      // UTC time the record was built
}

// NewRecord builds a Record for the given operation and key, capturing the
// current goroutine stack.
func NewRecord(operation, key string, err error) Record {
	msg := ""
	if err != nil {
		msg = err.Error()
	}

	return Record{
		Operation: operation,
		Key:       key,
		Message:   msg,
		Stack:     string(debug.Stack()),
		Time:      time.Now().UTC(),
	}
}

// Sink receives error records.
type Sink interface {
	// Append stores a record. Implementations must be safe for concurrent use
	// and must never block the caller for long.
	Append(ctx context.Context, r Record) error
}

// Drainer hands out and forgets the records collected so far.
type Drainer interface {
	// Drain returns every stored record, oldest first, and empties the store.
	Drain(ctx context.Context) ([]Record, error)
}

// Collector is a Sink that can also be drained.
type Collector interface {
	Sink
	Drainer
}

// Ring is an in-memory Collector backed by a fixed-size ring buffer.
// Once full, each new record overwrites the oldest one.
type Ring struct {
	mu      sync.Mutex
	records []Record
	start   int // index of the oldest record
	size    int // number of stored records
}

var _ Collector = (*Ring)(nil)

// NewRing returns a Ring holding at most capacity records.
// A capacity lower than 1 falls back to DefaultCapacity.
func NewRing(capacity int) *Ring {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Ring{records: make([]Record, capacity)}
}

// Append implements Sink.
func (r *Ring) Append(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	capacity := len(r.records)
	if r.size < capacity {
		r.records[(r.start+r.size)%capacity] = rec
		r.size++
		return nil
	}

	r.records[r.start] = rec
	r.start = (r.start + 1) % capacity
	return nil
}

// Drain implements Drainer.
func (r *Ring) Drain(_ context.Context) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := r.snapshot()
	clear(r.records)
	r.start, r.size = 0, 0
	return out, nil
}

// Snapshot returns a copy of the stored records, oldest first, without removing them.
func (r *Ring) Snapshot() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot()
}

// Len returns the number of stored records.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.size
}

// Cap returns the maximum number of records the ring holds.
func (r *Ring) Cap() int {
	return len(r.records)
}

func (r *Ring) snapshot() []Record {
	out := make([]Record, r.size)
	for i := range r.size {
		out[i] = r.records[(r.start+i)%len(r.records)]
	}
	return out
}
