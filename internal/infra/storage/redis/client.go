// Package redis backs the durable state of chainsentry with Redis: block
// checkpoints, alerted attackers and the fetch error records.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every key written by chainsentry.
const keyPrefix = "chainsentry"

// Option tunes the connection opened by NewClient.
type Option func(*redis.Options)

// WithCredentials authenticates with an ACL user, or with the default user
// when username is empty.
func WithCredentials(username, password string) Option {
	return func(o *redis.Options) {
		o.Username = username
		o.Password = password
	}
}

// WithDB selects the logical database.
func WithDB(db int) Option {
	return func(o *redis.Options) {
		o.DB = db
	}
}

type client struct {
	conn *redis.Client
}

// NewClient connects to addr and fails unless the server answers a PING.
func NewClient(ctx context.Context, addr string, opts ...Option) (*client, error) {
	options := &redis.Options{Addr: addr}
	for _, opt := range opts {
		opt(options)
	}

	conn := redis.NewClient(options)
	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("pinging %s: %w", addr, err)
	}

	return &client{conn: conn}, nil
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}
