package redis

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/gabapcia/chainsentry/internal/errcollector"
	"github.com/gabapcia/chainsentry/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// errorRecordsKey is the list holding the fetch error records, newest first.
const errorRecordsKey = keyPrefix + ":errcollector:records"

// errorSink is an errcollector.Collector shared by every process using the same Redis.
type errorSink struct {
	conn     *redis.Client
	capacity int64
}

var _ errcollector.Collector = (*errorSink)(nil)

// ErrorSink returns a Collector keeping at most capacity records in a Redis list.
// A capacity lower than 1 falls back to errcollector.DefaultCapacity.
func (c *client) ErrorSink(capacity int) *errorSink {
	if capacity < 1 {
		capacity = errcollector.DefaultCapacity
	}

	return &errorSink{conn: c.conn, capacity: int64(capacity)}
}

// Append pushes r and trims the list to the configured capacity in one transaction.
func (s *errorSink) Append(ctx context.Context, r errcollector.Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}

	_, err = s.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, errorRecordsKey, data)
		pipe.LTrim(ctx, errorRecordsKey, 0, s.capacity-1)
		return nil
	})
	return err
}

// Drain reads and deletes the list in one transaction and returns the records
// oldest first. Entries that fail to decode are dropped with a warning.
func (s *errorSink) Drain(ctx context.Context) ([]errcollector.Record, error) {
	var values *redis.StringSliceCmd
	_, err := s.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		values = pipe.LRange(ctx, errorRecordsKey, 0, -1)
		pipe.Del(ctx, errorRecordsKey)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return decodeRecords(ctx, values.Val()), nil
}

// decodeRecords turns the newest-first list into records oldest first.
// Entries that are not valid records are logged and skipped.
func decodeRecords(ctx context.Context, raw []string) []errcollector.Record {
	slices.Reverse(raw)

	records := make([]errcollector.Record, 0, len(raw))
	for _, item := range raw {
		var r errcollector.Record
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			logger.Warn(ctx, "skipping undecodable error record", "redis.key", errorRecordsKey, "error", err)
			continue
		}

		records = append(records, r)
	}

	return records
}
