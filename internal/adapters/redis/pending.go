// Package redisad holds the pending-booking snapshot across the
// external payment hand-off. The snapshot is the only state that
// survives that boundary, and it is consumed with GETDEL so repeated
// returns from the payment page cannot replay a finalize.
package redisad

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"agentix_travel/internal/adapters/observability"
	"agentix_travel/internal/domain"
)

type PendingStore struct{ c *redis.Client }

func New(addr, pass string, db int) *PendingStore {
	return &PendingStore{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func key(prebookID string) string { return "pending:" + prebookID }

func (s *PendingStore) SavePending(ctx context.Context, p domain.PendingBooking, ttl time.Duration) error {
	b, err := json.Marshal(p)
	if err != nil {
		return err
	}
	observability.ObservePending("save")
	return s.c.Set(ctx, key(p.PrebookID), b, ttl).Err()
}

// ConsumePending is delete-on-read: the second call for the same
// prebook id reports absent.
func (s *PendingStore) ConsumePending(ctx context.Context, prebookID string) (domain.PendingBooking, bool, error) {
	v, err := s.c.GetDel(ctx, key(prebookID)).Bytes()
	if err == redis.Nil {
		observability.ObservePending("miss")
		return domain.PendingBooking{}, false, nil
	}
	if err != nil {
		return domain.PendingBooking{}, false, err
	}
	observability.ObservePending("consume")
	var p domain.PendingBooking
	if err := json.Unmarshal(v, &p); err != nil {
		return domain.PendingBooking{}, false, err
	}
	return p, true, nil
}

func (s *PendingStore) DeletePending(ctx context.Context, prebookID string) error {
	observability.ObservePending("delete")
	return s.c.Del(ctx, key(prebookID)).Err()
}
