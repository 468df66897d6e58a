package largeposition

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/gabapcia/chainsentry/internal/pkg/validator"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// ErrInvalidThreshold is returned when a threshold is not a positive base-10 integer.
var ErrInvalidThreshold = errors.New("invalid threshold")

// Vault is an Alpaca lending vault and the loan size above which a position is reported.
type Vault struct {
	Name      string
	Address   common.Address
	Threshold *big.Int // in the smallest unit of the vault token
}

// Thresholds indexes the watched vaults by address.
type Thresholds map[common.Address]Vault

// ether returns n * 10^18.
func ether(n int64) *big.Int {
	return new(big.Int).Mul(big.NewInt(n), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
}

// DefaultThresholds are the BNB Chain vaults watched unless a thresholds file is given.
func DefaultThresholds() Thresholds {
	return newThresholds(
		Vault{Name: "ibBNB", Address: common.HexToAddress("0xd7D069493685A581d27824Fc46EdA46B7EfC0063"), Threshold: ether(5_000)},
		Vault{Name: "ibBUSD", Address: common.HexToAddress("0x7C9e73d4C71dae564d41F78d56439bB4ba87592f"), Threshold: ether(1_000_000)},
		Vault{Name: "ibUSDT", Address: common.HexToAddress("0x158Da805682BdC8ee32d52833aD41E74bb951E59"), Threshold: ether(1_000_000)},
		Vault{Name: "ibETH", Address: common.HexToAddress("0xbfF4a34A4644a113E8200D7F1D79b3555f723AfE"), Threshold: ether(500)},
		Vault{Name: "ibALPACA", Address: common.HexToAddress("0xf1bE8ecC990cBcb90e166b71E368299f0116d421"), Threshold: ether(2_000_000)},
		Vault{Name: "ibBTCB", Address: common.HexToAddress("0x08FC9Ba2cAc74742177e0afC3dC8Aed6961c24e7"), Threshold: ether(40)},
	)
}

func newThresholds(vaults ...Vault) Thresholds {
	t := make(Thresholds, len(vaults))
	for _, v := range vaults {
		t[v.Address] = v
	}
	return t
}

// thresholdsFile is the YAML layout accepted by LoadThresholds:
//
//	vaults:
//	  - name: ibBNB
//	    address: "0xd7D069493685A581d27824Fc46EdA46B7EfC0063"
//	    threshold: "5000000000000000000000"
type thresholdsFile struct {
	Vaults []struct {
		Name      string `yaml:"name"`
		Address   string `yaml:"address" validate:"required,eth_addr"`
		Threshold string `yaml:"threshold" validate:"required,numeric"`
	} `yaml:"vaults" validate:"required,min=1,dive"`
}

// LoadThresholds parses a YAML thresholds document. The result replaces the
// defaults entirely.
func LoadThresholds(r io.Reader) (Thresholds, error) {
	var file thresholdsFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding thresholds: %w", err)
	}

	if err := validator.Validate(file); err != nil {
		return nil, err
	}

	vaults := make([]Vault, 0, len(file.Vaults))
	for _, v := range file.Vaults {
		threshold, ok := new(big.Int).SetString(v.Threshold, 10)
		if !ok || threshold.Sign() <= 0 {
			return nil, fmt.Errorf("%w: %s: %q", ErrInvalidThreshold, v.Address, v.Threshold)
		}

		vaults = append(vaults, Vault{
			Name:      v.Name,
			Address:   common.HexToAddress(v.Address),
			Threshold: threshold,
		})
	}

	return newThresholds(vaults...), nil
}

// LoadThresholdsFile reads the thresholds document at path.
func LoadThresholdsFile(path string) (Thresholds, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadThresholds(f)
}
