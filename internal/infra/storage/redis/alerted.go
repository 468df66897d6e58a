package redis

import (
	"context"

	"github.com/gabapcia/chainsentry/internal/bots/privatekey"
)

// alertedKey is the set of attacker keys already reported by the private key bot.
const alertedKey = keyPrefix + ":privatekey:alerted"

// IsAlerted reports whether attacker is a member of the alerted set (SISMEMBER).
func (c *client) IsAlerted(ctx context.Context, attacker string) (bool, error) {
	return c.conn.SIsMember(ctx, alertedKey, attacker).Result()
}

// MarkAlerted adds attacker to the alerted set (SADD).
func (c *client) MarkAlerted(ctx context.Context, attacker string) error {
	return c.conn.SAdd(ctx, alertedKey, attacker).Err()
}

var _ privatekey.AlertedStore = new(client)
