// Package redis provides a ConfigStore backed by Redis, for deployments
// where several API instances share one set of screen definitions.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/greenscreenhq/greenscreen/pkg/domain"
)

// Store implements ports.ConfigStore using Redis. Definitions are stored as
// JSON values under a prefixed key plus a set index of known names.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures the Store.
type Option func(*Store)

// WithTTL sets an expiration for stored definitions. Zero means no expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store with its own client.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: "greenscreen:screen:",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the definition and registers it in the index.
func (s *Store) Save(ctx context.Context, def *domain.ScreenDefinition) error {
	data, err := json.Marshal(def)
	if err != nil {
		return fmt.Errorf("marshal screen definition: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(def.Name), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), def.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save to redis: %w", err)
	}
	return nil
}

// Get retrieves the named definition.
func (s *Store) Get(ctx context.Context, name string) (*domain.ScreenDefinition, error) {
	val, err := s.client.Get(ctx, s.key(name)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrScreenNotFound
		}
		return nil, fmt.Errorf("get from redis: %w", err)
	}

	var def domain.ScreenDefinition
	if err := json.Unmarshal([]byte(val), &def); err != nil {
		return nil, fmt.Errorf("unmarshal screen definition: %w", err)
	}
	return &def, nil
}

// Delete removes the definition and its index entry.
func (s *Store) Delete(ctx context.Context, name string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(name))
	pipe.SRem(ctx, s.indexKey(), name)
	_, err := pipe.Exec(ctx)
	return err
}

// List returns all screen names in the index. Expired definitions are
// pruned lazily: a name whose value is gone is removed from the index and
// skipped.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list screens: %w", err)
	}

	alive := make([]string, 0, len(names))
	for _, name := range names {
		exists, err := s.client.Exists(ctx, s.key(name)).Result()
		if err != nil {
			return nil, fmt.Errorf("check screen %s: %w", name, err)
		}
		if exists == 0 {
			_ = s.client.SRem(ctx, s.indexKey(), name).Err()
			continue
		}
		alive = append(alive, name)
	}
	return alive, nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}
