package fetcherhealth

import (
	"context"
	"errors"
	"testing"

	"github.com/gabapcia/chainsentry/internal/bot"
	"github.com/gabapcia/chainsentry/internal/errcollector"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingDrainer struct{}

func (failingDrainer) Drain(context.Context) ([]errcollector.Record, error) {
	return nil, errors.New("redis down")
}

func TestHandleTransaction(t *testing.T) {
	t.Run("reports every drained record in one finding", func(t *testing.T) {
		ring := errcollector.NewRing(10)
		ctx := t.Context()

		require.NoError(t, ring.Append(ctx, errcollector.NewRecord("GetNonce", "0xa", errors.New("timeout"))))
		require.NoError(t, ring.Append(ctx, errcollector.NewRecord("GetCode", "0xb", errors.New("refused"))))
		require.NoError(t, ring.Append(ctx, errcollector.NewRecord("GetCode", "0xc", errors.New("reset"))))

		findings, err := New(ring).HandleTransaction(ctx, bot.TransactionEvent{Hash: "0xtx"})
		require.NoError(t, err)
		require.Len(t, findings, 1)

		f := findings[0]
		assert.Equal(t, AlertID, f.AlertID)
		assert.Equal(t, bot.FindingTypeDegraded, f.Type)
		assert.Equal(t, "3", f.Metadata["count"])
		assert.Equal(t, "GetCode,GetNonce", f.Metadata["operations"])
		assert.Equal(t, "0xc", f.Metadata["lastKey"])
		assert.Equal(t, "reset", f.Metadata["lastError"])
		assert.NoError(t, f.Validate())

		assert.Zero(t, ring.Len(), "records are drained")
	})

	t.Run("stays silent while nothing failed", func(t *testing.T) {
		findings, err := New(errcollector.NewRing(10)).HandleTransaction(t.Context(), bot.TransactionEvent{})
		require.NoError(t, err)
		assert.Empty(t, findings)
	})

	t.Run("returns drain failures", func(t *testing.T) {
		_, err := New(failingDrainer{}).HandleTransaction(t.Context(), bot.TransactionEvent{})
		assert.ErrorContains(t, err, "redis down")
	})
}
