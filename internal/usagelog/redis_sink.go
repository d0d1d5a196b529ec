package usagelog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/nsellier/brigade/internal/service"
)

const defaultRedisKey = "brigade:usage"

// RedisSink pushes usage batches onto a Redis list, for deployments where a
// separate consumer drains the log instead of the local SQLite table.
type RedisSink struct {
	client *redis.Client
	key    string
}

// NewRedisSink creates a sink writing to the given Redis address.
func NewRedisSink(addr, key string) *RedisSink {
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisSink{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		key:    key,
	}
}

// WriteUsage pushes the batch as JSON documents in one pipeline round trip.
func (s *RedisSink) WriteUsage(ctx context.Context, records []service.UsageRecord) error {
	if len(records) == 0 {
		return nil
	}

	payloads := make([]any, 0, len(records))
	for _, record := range records {
		payload, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal usage record: %w", err)
		}
		payloads = append(payloads, payload)
	}

	if err := s.client.LPush(ctx, s.key, payloads...).Err(); err != nil {
		return fmt.Errorf("failed to push usage batch: %w", err)
	}

	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisSink) Close() error {
	return s.client.Close()
}
