package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/chainsentry/internal/infra/blockchain/ethereum"

	"github.com/redis/go-redis/v9"
)

// checkpointKey returns the key holding the last emitted block of chainID.
//
// Format: "chainsentry:checkpoint:{chainID}"
func checkpointKey(chainID int64) string {
	return fmt.Sprintf("%s:checkpoint:%d", keyPrefix, chainID)
}

// SaveCheckpoint stores block as the last emitted block of chainID, with no expiration.
func (c *client) SaveCheckpoint(ctx context.Context, chainID int64, block uint64) error {
	return c.conn.Set(ctx, checkpointKey(chainID), block, 0).Err()
}

// LoadCheckpoint returns the last emitted block of chainID, or
// ethereum.ErrNoCheckpointFound when none was saved yet.
func (c *client) LoadCheckpoint(ctx context.Context, chainID int64) (uint64, error) {
	val, err := c.conn.Get(ctx, checkpointKey(chainID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = ethereum.ErrNoCheckpointFound
		}

		return 0, err
	}

	return strconv.ParseUint(val, 10, 64)
}

var _ ethereum.CheckpointStorage = new(client)
