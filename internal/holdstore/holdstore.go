package holdstore

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// RedisHoldStore tracks short-lived seat holds per class in a Redis sorted
// set. Each member is "token:seats" scored by its expiry timestamp, so
// expired holds vanish with a single ZRemRangeByScore and never need a
// background reaper.
type RedisHoldStore struct {
	client *redis.Client
}

func NewRedisHoldStore(client *redis.Client) *RedisHoldStore {
	return &RedisHoldStore{client: client}
}

func holdKey(classID string) string {
	return "herd:holds:" + classID
}

func (s *RedisHoldStore) Place(ctx context.Context, classID string, seats int, ttl time.Duration) (string, error) {
	if seats <= 0 {
		return "", fmt.Errorf("hold seats must be positive, got %d", seats)
	}

	token := uuid.NewString()
	member := fmt.Sprintf("%s:%d", token, seats)
	expiry := time.Now().Add(ttl)

	key := holdKey(classID)
	pipe := s.client.TxPipeline()
	pipe.ZAdd(ctx, key, &redis.Z{
		Score:  float64(expiry.UnixNano()),
		Member: member,
	})
	// Keep the whole set from outliving its longest hold.
	pipe.Expire(ctx, key, ttl+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("place hold: %w", err)
	}

	return token, nil
}

func (s *RedisHoldStore) ActiveSeats(ctx context.Context, classID string) (int, error) {
	key := holdKey(classID)
	now := time.Now().UnixNano()

	if err := s.client.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(now, 10)).Err(); err != nil {
		return 0, fmt.Errorf("purge expired holds: %w", err)
	}

	members, err := s.client.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return 0, fmt.Errorf("list holds: %w", err)
	}

	total := 0
	for _, m := range members {
		idx := strings.LastIndex(m, ":")
		if idx < 0 {
			continue
		}
		seats, err := strconv.Atoi(m[idx+1:])
		if err != nil {
			continue
		}
		total += seats
	}

	return total, nil
}

func (s *RedisHoldStore) Release(ctx context.Context, classID, token string) error {
	if token == "" {
		return nil
	}

	key := holdKey(classID)
	members, err := s.client.ZRange(ctx, key, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("list holds: %w", err)
	}

	for _, m := range members {
		if strings.HasPrefix(m, token+":") {
			if err := s.client.ZRem(ctx, key, m).Err(); err != nil {
				return fmt.Errorf("release hold: %w", err)
			}
			return nil
		}
	}

	// Already expired or released. Nothing to do.
	return nil
}
