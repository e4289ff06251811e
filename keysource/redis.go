package keysource

import (
	"context"
	"sort"

	"github.com/go-redis/redis/v8"
	"github.com/icecave/appstatus/registry"
)

// DefaultRedisKey is the name of the Redis hash read by RedisSource when no
// other key is given.
const DefaultRedisKey = "appstatus:keys"

// RedisSource is a source that reads keys from a Redis hash, where each field
// is a monitored key and its value is the key's severity.
type RedisSource struct {
	Client *redis.Client
	Key    string
}

// Name returns a description of the source.
func (s *RedisSource) Name() string {
	return "redis hash " + s.hashKey()
}

// Load reads the hash. A nil client is treated as an unconfigured source.
func (s *RedisSource) Load(ctx context.Context) ([]registry.Entry, error) {
	if s.Client == nil {
		return nil, nil
	}

	fields, err := s.Client.HGetAll(ctx, s.hashKey()).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]registry.Entry, 0, len(fields))
	for name, severity := range fields {
		entries = append(entries, registry.Entry{
			Name:     name,
			Severity: severity,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

func (s *RedisSource) hashKey() string {
	if s.Key == "" {
		return DefaultRedisKey
	}

	return s.Key
}
