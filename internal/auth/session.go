package auth

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// ErrSessionNotFound is returned for unknown, expired or deleted sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps identities for live sessions. Implementations are
// volatile: a restart logs everybody out.
type SessionStore interface {
	Save(ctx context.Context, id Identity) (string, error)
	Load(ctx context.Context, sid string) (Identity, error)
	Delete(ctx context.Context, sid string) error
}

// MemoryStore keeps sessions in process memory with a fixed lifetime.
type MemoryStore struct {
	c *cache.Cache
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{c: cache.New(ttl, ttl/2)}
}

func (m *MemoryStore) Save(_ context.Context, id Identity) (string, error) {
	sid := uuid.NewString()
	m.c.Set(sid, id, cache.DefaultExpiration)
	return sid, nil
}

func (m *MemoryStore) Load(_ context.Context, sid string) (Identity, error) {
	v, ok := m.c.Get(sid)
	if !ok {
		return Identity{}, ErrSessionNotFound
	}
	return v.(Identity), nil
}

func (m *MemoryStore) Delete(_ context.Context, sid string) error {
	m.c.Delete(sid)
	return nil
}

// RedisStore keeps sessions as JSON under session:<id> keys with a TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func sessionKey(sid string) string { return "session:" + sid }

func (r *RedisStore) Save(ctx context.Context, id Identity) (string, error) {
	b, err := json.Marshal(id)
	if err != nil {
		return "", errors.Wrap(err, "encode session")
	}
	sid := uuid.NewString()
	if err := r.client.Set(ctx, sessionKey(sid), b, r.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "save session")
	}
	return sid, nil
}

func (r *RedisStore) Load(ctx context.Context, sid string) (Identity, error) {
	var id Identity
	b, err := r.client.Get(ctx, sessionKey(sid)).Bytes()
	if errors.Is(err, redis.Nil) {
		return id, ErrSessionNotFound
	}
	if err != nil {
		return id, errors.Wrap(err, "load session")
	}
	if err := json.Unmarshal(b, &id); err != nil {
		return id, errors.Wrap(err, "decode session")
	}
	return id, nil
}

func (r *RedisStore) Delete(ctx context.Context, sid string) error {
	return errors.Wrap(r.client.Del(ctx, sessionKey(sid)).Err(), "delete session")
}
