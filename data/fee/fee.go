package fee

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/hu55a1n1/cosmos-tx-go/data/account"
	"github.com/hu55a1n1/cosmos-tx-go/data/coin"
)

const (
	payerField   = "payer"
	granterField = "granter"
)

// Fee holds the coins paid as a transaction fee and the maximum gas the transaction may use.
// The ratio between the two is the effective gas price.
type Fee struct {
	// Amount is the list of coins paid as fee
	Amount []coin.Coin
	// GasLimit is the maximum gas that can be consumed before an out of gas error occurs
	GasLimit Gas
	// Payer, when nil, means the first signer pays the fee. Otherwise the payer must be a
	// transaction signer. Setting it does not change the ordering of the required signers.
	Payer *account.ID
	// Granter, when not nil, asks for the fee to be drawn from a fee grant issued by this
	// account instead of the payer's own balance
	Granter *account.ID
}

// NewFromAmountAndGas creates a fee paying a single coin, with no payer and no granter
func NewFromAmountAndGas(amount coin.Coin, gasLimit Gas) Fee {
	return Fee{
		Amount:   []coin.Coin{amount},
		GasLimit: gasLimit,
	}
}

// WithPayer returns a copy of the fee that will be paid by the provided account
func (f Fee) WithPayer(payer account.ID) Fee {
	f.Amount = copyCoins(f.Amount)
	f.Payer = &payer

	return f
}

// WithGranter returns a copy of the fee that will use the provided account's fee grant
func (f Fee) WithGranter(granter account.ID) Fee {
	f.Amount = copyCoins(f.Amount)
	f.Granter = &granter

	return f
}

// Equal returns true if both fees hold the same coins in the same order, the same gas
// limit and the same payer and granter
func (f Fee) Equal(other Fee) bool {
	if len(f.Amount) != len(other.Amount) {
		return false
	}
	for i := range f.Amount {
		if !f.Amount[i].Equal(other.Amount[i]) {
			return false
		}
	}

	return f.GasLimit == other.GasLimit &&
		optionalEqual(f.Payer, other.Payer) &&
		optionalEqual(f.Granter, other.Granter)
}

// ToProto converts the fee to its wire representation. Absent accounts become empty strings.
func (f Fee) ToProto() *txtypes.Fee {
	pb := &txtypes.Fee{
		GasLimit: f.GasLimit.Value(),
		Payer:    optionalToString(f.Payer),
		Granter:  optionalToString(f.Granter),
	}
	if len(f.Amount) > 0 {
		pb.Amount = make(sdk.Coins, 0, len(f.Amount))
		for _, c := range f.Amount {
			pb.Amount = append(pb.Amount, c.ToProto())
		}
	}

	return pb
}

// FromProto decodes a wire fee. Empty payer or granter strings mean the account is absent.
// Any malformed coin or account aborts the whole conversion.
func FromProto(pb *txtypes.Fee) (Fee, error) {
	if pb == nil {
		return Fee{}, ErrNilFeeMessage
	}

	var amount []coin.Coin
	if len(pb.Amount) > 0 {
		amount = make([]coin.Coin, 0, len(pb.Amount))
	}
	for i, coinPb := range pb.Amount {
		c, err := coin.FromProto(coinPb)
		if err != nil {
			return Fee{}, fmt.Errorf("%w at index %d: %w", ErrInvalidFeeAmount, i, err)
		}
		amount = append(amount, c)
	}

	payer, err := optionalFromString(pb.Payer, payerField)
	if err != nil {
		return Fee{}, err
	}

	granter, err := optionalFromString(pb.Granter, granterField)
	if err != nil {
		return Fee{}, err
	}

	return Fee{
		Amount:   amount,
		GasLimit: NewGas(pb.GasLimit),
		Payer:    payer,
		Granter:  granter,
	}, nil
}

func optionalToString(id *account.ID) string {
	if id == nil {
		return ""
	}

	return id.String()
}

func optionalFromString(humanReadable string, field string) (*account.ID, error) {
	if len(humanReadable) == 0 {
		return nil, nil
	}

	id, err := account.ParseID(humanReadable)
	if err != nil {
		return nil, fmt.Errorf("%w for field %s", err, field)
	}

	return &id, nil
}

func optionalEqual(a *account.ID, b *account.ID) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(*b)
}

func copyCoins(coins []coin.Coin) []coin.Coin {
	if coins == nil {
		return nil
	}

	result := make([]coin.Coin, len(coins))
	copy(result, coins)

	return result
}
