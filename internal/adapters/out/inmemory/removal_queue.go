// Package inmemory holds process local adapters used when no external store is
// configured. Their state is lost on restart.
package inmemory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

// RemovalQueue implements ports.RemovalQueue with a mutex guarded map.
type RemovalQueue struct {
	mu  sync.Mutex
	due map[kernel.ID]time.Time
}

func NewRemovalQueue() *RemovalQueue {
	return &RemovalQueue{due: make(map[kernel.ID]time.Time)}
}

func (q *RemovalQueue) Schedule(_ context.Context, id kernel.ID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.due[id] = at
	return nil
}

// ClaimDue hands out the earliest due orders first.
func (q *RemovalQueue) ClaimDue(_ context.Context, now time.Time, limit int) ([]kernel.ID, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, math.MaxInt)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	claimed := make([]kernel.ID, 0)
	for id, at := range q.due {
		if !at.After(now) {
			claimed = append(claimed, id)
		}
	}
	sort.Slice(claimed, func(i, j int) bool {
		a, b := q.due[claimed[i]], q.due[claimed[j]]
		if a.Equal(b) {
			return claimed[i].String() < claimed[j].String()
		}
		return a.Before(b)
	})
	if len(claimed) > limit {
		claimed = claimed[:limit]
	}

	for _, id := range claimed {
		delete(q.due, id)
	}
	return claimed, nil
}

// Len returns the number of scheduled orders.
func (q *RemovalQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.due)
}
