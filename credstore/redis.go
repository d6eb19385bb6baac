package credstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis shares one session triple across processes (multiple shells or hosts
// driving the same backend account). Keys live under a prefix; a zero TTL
// means the slots never expire.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis-backed store. prefix defaults to "goauthclient"
// when empty.
func NewRedis(client *redis.Client, prefix string, ttl time.Duration) *Redis {
	if prefix == "" {
		prefix = "goauthclient"
	}
	return &Redis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *Redis) key(slot string) string {
	return r.prefix + ":" + slot
}

func (r *Redis) Get(ctx context.Context) (Session, error) {
	vals, err := r.client.MGet(ctx, r.key(SlotToken), r.key(SlotUsername), r.key(SlotRole)).Result()
	if err != nil {
		return Session{}, fmt.Errorf("redis get credentials: %w", err)
	}

	var s Session
	if v, ok := vals[0].(string); ok {
		s.Token = v
	}
	if v, ok := vals[1].(string); ok {
		s.Username = v
	}
	if v, ok := vals[2].(string); ok {
		s.Role = v
	}
	return s, nil
}

func (r *Redis) Set(ctx context.Context, s Session) error {
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(SlotToken), s.Token, r.ttl)
	pipe.Set(ctx, r.key(SlotUsername), s.Username, r.ttl)
	pipe.Set(ctx, r.key(SlotRole), s.Role, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis set credentials: %w", err)
	}
	return nil
}

func (r *Redis) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, r.key(SlotToken), r.key(SlotUsername), r.key(SlotRole)).Err(); err != nil {
		return fmt.Errorf("redis clear credentials: %w", err)
	}
	return nil
}
