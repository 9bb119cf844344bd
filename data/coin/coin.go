package coin

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const maxAmountBits = 128

var coinRegex = regexp.MustCompile(`^([0-9]+)([a-zA-Z]\S*)$`)

// Denom is a validated coin denomination
type Denom string

// ParseDenom validates the provided string as a denomination
func ParseDenom(denom string) (Denom, error) {
	err := sdk.ValidateDenom(denom)
	if err != nil {
		return "", fmt.Errorf("%w %q: %s", ErrInvalidDenom, denom, err.Error())
	}

	return Denom(denom), nil
}

// String returns the denomination as a plain string
func (d Denom) String() string {
	return string(d)
}

// Coin is an amount of a given denomination. Amounts are non-negative and fit in 128 bits.
type Coin struct {
	Denom  Denom
	Amount *big.Int
}

// NewCoin creates a validated coin
func NewCoin(denom string, amount *big.Int) (Coin, error) {
	d, err := ParseDenom(denom)
	if err != nil {
		return Coin{}, err
	}
	err = checkAmount(amount)
	if err != nil {
		return Coin{}, err
	}

	return Coin{
		Denom:  d,
		Amount: big.NewInt(0).Set(amount),
	}, nil
}

// ParseCoin parses coins written as <amount><denom>, for example 1000uatom
func ParseCoin(str string) (Coin, error) {
	matches := coinRegex.FindStringSubmatch(strings.TrimSpace(str))
	if len(matches) != 3 {
		return Coin{}, fmt.Errorf("%w %q, expected <amount><denom>", ErrInvalidCoin, str)
	}

	amount, err := parseAmount(matches[1])
	if err != nil {
		return Coin{}, err
	}

	return NewCoin(matches[2], amount)
}

// String returns the <amount><denom> form of the coin
func (c Coin) String() string {
	return c.amountString() + c.Denom.String()
}

// Equal returns true if both coins have the same denomination and amount
func (c Coin) Equal(other Coin) bool {
	return c.Denom == other.Denom && c.amountOrZero().Cmp(other.amountOrZero()) == 0
}

// ToProto converts the coin to its wire representation
func (c Coin) ToProto() sdk.Coin {
	return sdk.Coin{
		Denom:  c.Denom.String(),
		Amount: sdkmath.NewIntFromBigInt(c.amountOrZero()),
	}
}

// FromProto converts a wire coin, validating both the denomination and the amount
func FromProto(pb sdk.Coin) (Coin, error) {
	if pb.Amount.IsNil() {
		return Coin{}, fmt.Errorf("%w, missing amount for denom %q", ErrInvalidAmount, pb.Denom)
	}

	return NewCoin(pb.Denom, pb.Amount.BigInt())
}

func (c Coin) amountOrZero() *big.Int {
	if c.Amount == nil {
		return big.NewInt(0)
	}

	return c.Amount
}

func (c Coin) amountString() string {
	return c.amountOrZero().String()
}

func parseAmount(str string) (*big.Int, error) {
	amount, ok := big.NewInt(0).SetString(str, 10)
	if !ok {
		return nil, fmt.Errorf("%w %q, not a base 10 integer", ErrInvalidAmount, str)
	}

	return amount, checkAmount(amount)
}

func checkAmount(amount *big.Int) error {
	if amount == nil {
		return fmt.Errorf("%w, nil amount", ErrInvalidAmount)
	}
	if amount.Sign() < 0 {
		return fmt.Errorf("%w %s, negative amount", ErrInvalidAmount, amount.String())
	}
	if amount.BitLen() > maxAmountBits {
		return fmt.Errorf("%w %s, exceeds %d bits", ErrInvalidAmount, amount.String(), maxAmountBits)
	}

	return nil
}
