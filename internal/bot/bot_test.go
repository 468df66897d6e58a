package bot

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/gabapcia/chainsentry/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testABI = `[
	{"type":"event","name":"Work","inputs":[
		{"name":"id","type":"uint256","indexed":true},
		{"name":"loan","type":"uint256","indexed":false}
	]},
	{"type":"function","name":"setAdmin","inputs":[{"name":"_admin","type":"address"}],"outputs":[]}
]`

func TestTransactionEvent(t *testing.T) {
	t.Run("decodes from json and normalizes addresses", func(t *testing.T) {
		raw := `{"chainId":56,"hash":"0xABC","from":"0xAaAa","to":"0xBbBb","value":"0x10","input":"0x12345678ff","blockNumber":7,"logs":[]}`

		var ev TransactionEvent
		require.NoError(t, json.Unmarshal([]byte(raw), &ev))
		ev = ev.Normalize()

		assert.Equal(t, int64(56), ev.ChainID)
		assert.Equal(t, "0xabc", ev.Hash)
		assert.Equal(t, "0xaaaa", ev.From)
		assert.Equal(t, "0xbbbb", ev.To)
		assert.Equal(t, big.NewInt(16), ev.ValueWei())
		assert.Equal(t, []byte{0x12, 0x34, 0x56, 0x78}, ev.Selector())
	})

	t.Run("missing value is zero and short input has no selector", func(t *testing.T) {
		ev := TransactionEvent{Input: hexutil.Bytes{0x01}}
		assert.Equal(t, 0, ev.ValueWei().Sign())
		assert.Nil(t, ev.Selector())
	})

	t.Run("filters logs by emitter and first topic", func(t *testing.T) {
		vault := common.HexToAddress("0x01")
		other := common.HexToAddress("0x02")
		topicA := crypto.Keccak256Hash([]byte("A()"))
		topicB := crypto.Keccak256Hash([]byte("B()"))

		ev := TransactionEvent{Logs: []Log{
			{Address: vault, Topics: []common.Hash{topicA}},
			{Address: vault, Topics: []common.Hash{topicB}},
			{Address: other, Topics: []common.Hash{topicA}},
			{Address: vault},
		}}

		assert.Len(t, ev.FilterLogs(vault, topicA), 1)
		assert.Len(t, ev.FilterLogs(vault, topicA, topicB), 2)
		assert.Len(t, ev.FilterLogs(vault), 3)
		assert.Empty(t, ev.FilterLogs(common.HexToAddress("0x03")))
	})

	t.Run("is call to compares addresses case insensitively", func(t *testing.T) {
		target := common.HexToAddress("0xa80240Eb5d7E05d3F250cF000eEc0891d00b51CC")
		ev := TransactionEvent{To: "0xa80240eb5d7e05d3f250cf000eec0891d00b51cc"}
		assert.True(t, ev.IsCallTo(target))
		assert.False(t, ev.IsCallTo(common.HexToAddress("0x01")))
	})
}

func TestFinding(t *testing.T) {
	t.Run("new finding gets a uuid v7 and empty metadata", func(t *testing.T) {
		f := NewFinding("name", "description", "ALERT-1", SeverityHigh, FindingTypeSuspicious)

		id, err := uuid.Parse(f.ID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
		assert.NotNil(t, f.Metadata)
		assert.NoError(t, f.Validate())
	})

	t.Run("rejects unknown severities and incomplete labels", func(t *testing.T) {
		f := NewFinding("name", "description", "ALERT-1", Severity("Urgent"), FindingTypeInfo)
		f.Labels = []Label{{Entity: "0x01", Label: "attacker", Confidence: 2}}

		err := f.Validate()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Contains(t, err.Error(), "Severity")
		assert.Contains(t, err.Error(), "EntityType")
		assert.Contains(t, err.Error(), "Confidence")
	})
}

func TestDecodeLog(t *testing.T) {
	contract := MustParseABI(testABI)
	event := contract.Events["Work"]

	t.Run("decodes indexed and non indexed arguments", func(t *testing.T) {
		data, err := event.Inputs.NonIndexed().Pack(big.NewInt(500))
		require.NoError(t, err)

		l := Log{
			Topics: []common.Hash{event.ID, common.BigToHash(big.NewInt(42))},
			Data:   data,
		}

		args, err := DecodeLog(event, l)
		require.NoError(t, err)
		assert.Equal(t, "42", FormatValue(args["id"]))
		assert.Equal(t, "500", FormatValue(args["loan"]))
	})

	t.Run("rejects logs of another event", func(t *testing.T) {
		_, err := DecodeLog(event, Log{Topics: []common.Hash{crypto.Keccak256Hash([]byte("Other()"))}})
		assert.ErrorIs(t, err, ErrUnknownEvent)
	})

	t.Run("reports truncated data", func(t *testing.T) {
		_, err := DecodeLog(event, Log{Topics: []common.Hash{event.ID, common.BigToHash(big.NewInt(1))}, Data: []byte{0x01}})
		assert.Error(t, err)
	})
}

func TestDecodeCall(t *testing.T) {
	contract := MustParseABI(testABI)

	t.Run("decodes the invoked method and its arguments", func(t *testing.T) {
		admin := common.HexToAddress("0x00000000000000000000000000000000000000Aa")
		input, err := contract.Pack("setAdmin", admin)
		require.NoError(t, err)

		method, args, err := DecodeCall(contract, input)
		require.NoError(t, err)
		assert.Equal(t, "setAdmin", method.Name)
		assert.Equal(t, "0x00000000000000000000000000000000000000aa", FormatValue(args["_admin"]))
	})

	t.Run("unknown selectors are rejected", func(t *testing.T) {
		_, _, err := DecodeCall(contract, []byte{0xde, 0xad, 0xbe, 0xef})
		assert.ErrorIs(t, err, ErrUnknownMethod)

		_, _, err = DecodeCall(contract, []byte{0x01})
		assert.ErrorIs(t, err, ErrUnknownMethod)
	})
}

func TestMustParseABI(t *testing.T) {
	t.Run("panics on malformed definitions", func(t *testing.T) {
		assert.Panics(t, func() { MustParseABI("not json") })
	})
}

func TestFormatValue(t *testing.T) {
	t.Run("renders common abi types", func(t *testing.T) {
		assert.Equal(t, "0", FormatValue((*big.Int)(nil)))
		assert.Equal(t, "true", FormatValue(true))
		assert.Equal(t, "0x0102", FormatValue([]byte{1, 2}))
		assert.Equal(t, "7", FormatValue(uint64(7)))
	})
}
