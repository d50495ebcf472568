// Package redis keeps the orders scheduled for automatic removal in a Redis
// sorted set scored by the due time in unix milliseconds.
package redis

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"

	goredis "github.com/redis/go-redis/v9"
)

// DefaultRemovalQueueKey is the sorted set used when no key is configured.
const DefaultRemovalQueueKey = "kitchen:orders:removal"

var ErrClientIsRequired = errors.New("redis client is required")

// RemovalQueue implements ports.RemovalQueue.
type RemovalQueue struct {
	client goredis.Cmdable
	key    string
}

// NewRemovalQueue creates a queue stored under key. An empty key selects
// DefaultRemovalQueueKey.
func NewRemovalQueue(client goredis.Cmdable, key string) (*RemovalQueue, error) {
	if client == nil {
		return nil, ErrClientIsRequired
	}
	if key == "" {
		key = DefaultRemovalQueueKey
	}
	return &RemovalQueue{client: client, key: key}, nil
}

func (q *RemovalQueue) Schedule(ctx context.Context, id kernel.ID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	err := q.client.ZAdd(ctx, q.key, goredis.Z{
		Score:  float64(at.UnixMilli()),
		Member: id.String(),
	}).Err()
	if err != nil {
		return errs.NewStorageUnavailableError("schedule removal", err)
	}
	return nil
}

// ClaimDue reads the due members and removes them one by one. A member that
// another worker removed first is skipped, so each id is claimed once.
func (q *RemovalQueue) ClaimDue(ctx context.Context, now time.Time, limit int) ([]kernel.ID, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, math.MaxInt)
	}

	members, err := q.client.ZRangeByScore(ctx, q.key, &goredis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(now.UnixMilli(), 10),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("read due removals", err)
	}

	claimed := make([]kernel.ID, 0, len(members))
	for _, member := range members {
		removed, err := q.client.ZRem(ctx, q.key, member).Result()
		if err != nil {
			return claimed, errs.NewStorageUnavailableError("claim removal", err)
		}
		if removed == 0 {
			continue
		}

		id, err := kernel.ParseID(member)
		if err != nil {
			// Garbage in the set is dropped.
			continue
		}
		claimed = append(claimed, id)
	}
	return claimed, nil
}
