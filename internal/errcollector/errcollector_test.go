package errcollector

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord(t *testing.T) {
	t.Run("captures operation, key, message and stack", func(t *testing.T) {
		rec := NewRecord("GetCode", "0xabc", errors.New("connection refused"))

		assert.Equal(t, "GetCode", rec.Operation)
		assert.Equal(t, "0xabc", rec.Key)
		assert.Equal(t, "connection refused", rec.Message)
		assert.Contains(t, rec.Stack, "goroutine")
		assert.False(t, rec.Time.IsZero())
	})

	t.Run("nil error leaves the message empty", func(t *testing.T) {
		rec := NewRecord("GetNonce", "0xabc", nil)
		assert.Empty(t, rec.Message)
	})
}

func TestRing(t *testing.T) {
	t.Run("non positive capacity falls back to the default", func(t *testing.T) {
		assert.Equal(t, DefaultCapacity, NewRing(0).Cap())
		assert.Equal(t, DefaultCapacity, NewRing(-3).Cap())
	})

	t.Run("keeps records in insertion order while below capacity", func(t *testing.T) {
		r := NewRing(3)
		require.NoError(t, r.Append(t.Context(), Record{Key: "a"}))
		require.NoError(t, r.Append(t.Context(), Record{Key: "b"}))

		snap := r.Snapshot()
		require.Len(t, snap, 2)
		assert.Equal(t, "a", snap[0].Key)
		assert.Equal(t, "b", snap[1].Key)
	})

	t.Run("never grows beyond capacity and overwrites the oldest record", func(t *testing.T) {
		r := NewRing(3)
		for i := range 5 {
			require.NoError(t, r.Append(t.Context(), Record{Key: fmt.Sprint(i)}))
			assert.LessOrEqual(t, r.Len(), 3)
		}

		snap := r.Snapshot()
		require.Len(t, snap, 3)
		assert.Equal(t, []string{"2", "3", "4"}, []string{snap[0].Key, snap[1].Key, snap[2].Key})
	})

	t.Run("drain returns everything and empties the ring", func(t *testing.T) {
		r := NewRing(2)
		require.NoError(t, r.Append(t.Context(), Record{Key: "a"}))
		require.NoError(t, r.Append(t.Context(), Record{Key: "b"}))
		require.NoError(t, r.Append(t.Context(), Record{Key: "c"}))

		out, err := r.Drain(t.Context())
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "b", out[0].Key)
		assert.Equal(t, "c", out[1].Key)
		assert.Zero(t, r.Len())

		out, err = r.Drain(t.Context())
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("is safe for concurrent appends", func(t *testing.T) {
		r := NewRing(50)

		var wg sync.WaitGroup
		for i := range 200 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = r.Append(t.Context(), Record{Key: fmt.Sprint(i)})
			}()
		}
		wg.Wait()

		assert.Equal(t, 50, r.Len())
	})
}
