package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// RefinementBudget limita quantos refinamentos automáticos um plano recebe por janela.
type RefinementBudget interface {
	Allow(ctx context.Context, planID string) (bool, error)
	Record(ctx context.Context, planID string) error
}

// Connect aceita tanto redis://... quanto host:port.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	var client *redis.Client
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: redisURL})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return client, nil
}

type RedisRefinementBudget struct {
	client *redis.Client
	max    int
	window time.Duration
}

func NewRedisRefinementBudget(client *redis.Client, limit int, window time.Duration) *RedisRefinementBudget {
	return &RedisRefinementBudget{client: client, max: limit, window: window}
}

func budgetKey(planID string) string {
	return "monitoring:refinements:" + planID
}

func (b *RedisRefinementBudget) Allow(ctx context.Context, planID string) (bool, error) {
	if b.max <= 0 {
		return true, nil
	}

	count, err := b.client.Get(ctx, budgetKey(planID)).Int()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return count < b.max, nil
}

func (b *RedisRefinementBudget) Record(ctx context.Context, planID string) error {
	key := budgetKey(planID)

	// A janela começa no primeiro refinamento; os seguintes não a estendem.
	_, err := b.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, key)
		p.ExpireNX(ctx, key, b.window)
		return nil
	})
	return err
}

type memoryEntry struct {
	count     int
	expiresAt time.Time
}

// MemoryRefinementBudget é a alternativa em processo quando não há Redis.
type MemoryRefinementBudget struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	max     int
	window  time.Duration
	nowFn   func() time.Time
}

func NewMemoryRefinementBudget(limit int, window time.Duration) *MemoryRefinementBudget {
	return &MemoryRefinementBudget{
		entries: make(map[string]memoryEntry),
		max:     limit,
		window:  window,
		nowFn:   time.Now,
	}
}

func (b *MemoryRefinementBudget) Allow(_ context.Context, planID string) (bool, error) {
	if b.max <= 0 {
		return true, nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.current(planID)
	if !ok {
		return true, nil
	}
	return entry.count < b.max, nil
}

func (b *MemoryRefinementBudget) Record(_ context.Context, planID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.current(planID)
	if !ok {
		entry = memoryEntry{expiresAt: b.nowFn().Add(b.window)}
	}
	entry.count++
	b.entries[planID] = entry
	return nil
}

func (b *MemoryRefinementBudget) current(planID string) (memoryEntry, bool) {
	entry, ok := b.entries[planID]
	if !ok {
		return memoryEntry{}, false
	}
	if !b.nowFn().Before(entry.expiresAt) {
		delete(b.entries, planID)
		return memoryEntry{}, false
	}
	return entry, true
}
