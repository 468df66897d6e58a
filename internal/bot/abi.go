package bot

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var (
	// ErrUnknownEvent is returned when a log's first topic does not match the requested event.
	ErrUnknownEvent = errors.New("log does not match event")

	// ErrUnknownMethod is returned when call data does not start with a selector of the ABI.
	ErrUnknownMethod = errors.New("call data does not match any method")
)

// MustParseABI parses a JSON ABI definition and panics on malformed input.
// It is meant for package-level ABI literals.
func MustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid abi: %v", err))
	}
	return parsed
}

// DecodeLog unpacks both indexed and non-indexed arguments of event from l.
func DecodeLog(event abi.Event, l Log) (map[string]any, error) {
	if len(l.Topics) == 0 || l.Topics[0] != event.ID {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEvent, event.Name)
	}

	out := make(map[string]any, len(event.Inputs))
	if err := event.Inputs.NonIndexed().UnpackIntoMap(out, l.Data); err != nil {
		return nil, fmt.Errorf("unpacking %s data: %w", event.Name, err)
	}

	var indexed abi.Arguments
	for _, arg := range event.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}

	if err := abi.ParseTopicsIntoMap(out, indexed, l.Topics[1:]); err != nil {
		return nil, fmt.Errorf("unpacking %s topics: %w", event.Name, err)
	}

	return out, nil
}

// DecodeCall resolves the method invoked by input and unpacks its arguments.
func DecodeCall(contract abi.ABI, input []byte) (*abi.Method, map[string]any, error) {
	if len(input) < 4 {
		return nil, nil, ErrUnknownMethod
	}

	method, err := contract.MethodById(input[:4])
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %x", ErrUnknownMethod, input[:4])
	}

	args := make(map[string]any, len(method.Inputs))
	if err := method.Inputs.UnpackIntoMap(args, input[4:]); err != nil {
		return nil, nil, fmt.Errorf("unpacking %s arguments: %w", method.Name, err)
	}

	return method, args, nil
}

// FormatValue renders a decoded ABI value as finding metadata.
// Addresses are lowercased; integers are rendered in base 10.
func FormatValue(v any) string {
	switch val := v.(type) {
	case common.Address:
		return strings.ToLower(val.Hex())
	case common.Hash:
		return val.Hex()
	case *big.Int:
		if val == nil {
			return "0"
		}
		return val.String()
	case []byte:
		return fmt.Sprintf("0x%x", val)
	case [32]byte:
		return fmt.Sprintf("0x%x", val)
	default:
		return fmt.Sprint(val)
	}
}
