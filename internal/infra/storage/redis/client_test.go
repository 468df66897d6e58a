package redis

import (
	"errors"
	"os"
	"testing"

	"github.com/gabapcia/chainsentry/internal/errcollector"
	"github.com/gabapcia/chainsentry/internal/infra/blockchain/ethereum"

	redis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient connects to the Redis named by CHAINSENTRY_TEST_REDIS_ADDR
// and skips the test when it is not set. The selected database is flushed.
func newTestClient(t *testing.T) *client {
	t.Helper()

	addr := os.Getenv("CHAINSENTRY_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CHAINSENTRY_TEST_REDIS_ADDR not set")
	}

	c, err := NewClient(t.Context(), addr, WithDB(15))
	require.NoError(t, err)
	require.NoError(t, c.conn.FlushDB(t.Context()).Err())

	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewClient(t *testing.T) {
	t.Run("applies the options", func(t *testing.T) {
		options := &redis.Options{}
		for _, opt := range []Option{WithCredentials("sentry", "secret"), WithDB(3)} {
			opt(options)
		}

		assert.Equal(t, "sentry", options.Username)
		assert.Equal(t, "secret", options.Password)
		assert.Equal(t, 3, options.DB)
	})

	t.Run("fails when the server does not answer", func(t *testing.T) {
		_, err := NewClient(t.Context(), "127.0.0.1:1")

		assert.ErrorContains(t, err, "pinging 127.0.0.1:1")
	})
}

func TestKeys(t *testing.T) {
	t.Run("keys are namespaced per chain", func(t *testing.T) {
		assert.Equal(t, "chainsentry:checkpoint:56", checkpointKey(56))
		assert.Equal(t, "chainsentry:privatekey:alerted", alertedKey)
		assert.Equal(t, "chainsentry:errcollector:records", errorRecordsKey)
	})
}

func TestCheckpoint(t *testing.T) {
	t.Run("reports a missing checkpoint", func(t *testing.T) {
		c := newTestClient(t)

		_, err := c.LoadCheckpoint(t.Context(), 1)

		assert.ErrorIs(t, err, ethereum.ErrNoCheckpointFound)
	})

	t.Run("returns the last saved block", func(t *testing.T) {
		c := newTestClient(t)

		require.NoError(t, c.SaveCheckpoint(t.Context(), 1, 100))
		require.NoError(t, c.SaveCheckpoint(t.Context(), 1, 101))

		block, err := c.LoadCheckpoint(t.Context(), 1)

		require.NoError(t, err)
		assert.Equal(t, uint64(101), block)
	})
}

func TestAlertedStore(t *testing.T) {
	t.Run("remembers marked attackers", func(t *testing.T) {
		c := newTestClient(t)

		alerted, err := c.IsAlerted(t.Context(), "1:0xa")
		require.NoError(t, err)
		assert.False(t, alerted)

		require.NoError(t, c.MarkAlerted(t.Context(), "1:0xa"))

		alerted, err = c.IsAlerted(t.Context(), "1:0xa")
		require.NoError(t, err)
		assert.True(t, alerted)
	})
}

func TestErrorSink(t *testing.T) {
	t.Run("keeps the newest records up to capacity and drains oldest first", func(t *testing.T) {
		c := newTestClient(t)
		sink := c.ErrorSink(2)

		for _, key := range []string{"0x1", "0x2", "0x3"} {
			require.NoError(t, sink.Append(t.Context(), errcollector.NewRecord("GetCode", key, errors.New("timeout"))))
		}

		records, err := sink.Drain(t.Context())
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "0x2", records[0].Key)
		assert.Equal(t, "0x3", records[1].Key)

		records, err = sink.Drain(t.Context())
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("skips entries that are not records", func(t *testing.T) {
		raw := []string{`{"operation":"GetCode","key":"0x2"}`, "not json", `{"operation":"GetNonce","key":"0x1"}`}

		records := decodeRecords(t.Context(), raw)

		require.Len(t, records, 2)
		assert.Equal(t, "0x1", records[0].Key)
		assert.Equal(t, "0x2", records[1].Key)
	})

	t.Run("falls back to the default capacity", func(t *testing.T) {
		assert.Equal(t, int64(errcollector.DefaultCapacity), (&client{}).ErrorSink(0).capacity)
	})
}
