package facade

import (
	"fmt"
	"math/big"

	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	"github.com/davecgh/go-spew/spew"
	"github.com/hu55a1n1/cosmos-tx-go/config"
	"github.com/hu55a1n1/cosmos-tx-go/data/account"
	"github.com/hu55a1n1/cosmos-tx-go/data/coin"
	"github.com/hu55a1n1/cosmos-tx-go/data/fee"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("facade")

// FeeData is the plain representation of a fee used by the REST API and the command line tool.
// A nil GasLimit means the configured default, zero is a valid gas limit.
type FeeData struct {
	Amount   []string `json:"amount"`
	GasLimit *uint64  `json:"gasLimit,omitempty"`
	Payer    string   `json:"payer,omitempty"`
	Granter  string   `json:"granter,omitempty"`
}

// ArgsFeeFacade holds the arguments needed to create a new fee facade
type ArgsFeeFacade struct {
	Marshalizer Marshalizer
	Config      *config.Config
}

type feeFacade struct {
	marshalizer     Marshalizer
	accountPrefix   string
	defaultCoin     coin.Coin
	defaultGasLimit fee.Gas
}

// NewFeeFacade creates a facade able to build, encode and decode fees
func NewFeeFacade(args ArgsFeeFacade) (*feeFacade, error) {
	err := checkArgs(args)
	if err != nil {
		return nil, err
	}

	settings := args.Config.FeeSettings
	defaultCoin, err := coin.ParseCoin(settings.Amount + settings.Denom)
	if err != nil {
		return nil, fmt.Errorf("%w while creating the default fee", err)
	}
	if settings.GasLimit == 0 {
		return nil, fmt.Errorf("%w while creating the default fee", ErrInvalidGasLimit)
	}

	return &feeFacade{
		marshalizer:     args.Marshalizer,
		accountPrefix:   args.Config.GeneralSettings.AccountPrefix,
		defaultCoin:     defaultCoin,
		defaultGasLimit: fee.NewGas(settings.GasLimit),
	}, nil
}

func checkArgs(args ArgsFeeFacade) error {
	if check.IfNil(args.Marshalizer) {
		return ErrNilMarshalizer
	}
	if args.Config == nil {
		return ErrNilConfig
	}

	return nil
}

// DefaultFee returns the fee built out of the configured defaults
func (ff *feeFacade) DefaultFee() fee.Fee {
	defaultCoin := coin.Coin{
		Denom:  ff.defaultCoin.Denom,
		Amount: big.NewInt(0).Set(ff.defaultCoin.Amount),
	}

	return fee.NewFromAmountAndGas(defaultCoin, ff.defaultGasLimit)
}

// BuildFee creates a fee out of its plain representation. Missing coins and gas limit are
// taken from the configured defaults, empty payer and granter mean absent accounts.
func (ff *feeFacade) BuildFee(data FeeData) (fee.Fee, error) {
	result := ff.DefaultFee()

	if len(data.Amount) > 0 {
		result.Amount = make([]coin.Coin, 0, len(data.Amount))
		for _, str := range data.Amount {
			c, err := coin.ParseCoin(str)
			if err != nil {
				return fee.Fee{}, err
			}
			result.Amount = append(result.Amount, c)
		}
	}
	if data.GasLimit != nil {
		result.GasLimit = fee.NewGas(*data.GasLimit)
	}

	var err error
	result.Payer, err = ff.parseAccount(data.Payer)
	if err != nil {
		return fee.Fee{}, fmt.Errorf("%w for payer", err)
	}
	result.Granter, err = ff.parseAccount(data.Granter)
	if err != nil {
		return fee.Fee{}, fmt.Errorf("%w for granter", err)
	}

	return result, nil
}

// EncodeFee returns the protobuf wire bytes of the provided fee
func (ff *feeFacade) EncodeFee(f fee.Fee) ([]byte, error) {
	buff, err := ff.marshalizer.Marshal(f.ToProto())
	if err != nil {
		return nil, err
	}

	log.Trace("fee encoded", "gas limit", f.GasLimit.Value(), "num coins", len(f.Amount), "size", len(buff))

	return buff, nil
}

// DecodeFee decodes the protobuf wire bytes into a fee. Malformed accounts or coins abort the decoding.
func (ff *feeFacade) DecodeFee(buff []byte) (fee.Fee, error) {
	pb := &txtypes.Fee{}
	err := ff.marshalizer.Unmarshal(pb, buff)
	if err != nil {
		return fee.Fee{}, err
	}

	if log.GetLevel() == logger.LogTrace {
		log.Trace("decoding fee", "message", spew.Sdump(pb))
	}

	result, err := fee.FromProto(pb)
	if err != nil {
		log.Debug("cannot decode fee", "error", err.Error())
		return fee.Fee{}, err
	}

	err = ff.checkAccountPrefix(result.Payer)
	if err != nil {
		return fee.Fee{}, fmt.Errorf("%w for payer", err)
	}
	err = ff.checkAccountPrefix(result.Granter)
	if err != nil {
		return fee.Fee{}, fmt.Errorf("%w for granter", err)
	}

	log.Trace("fee decoded", "gas limit", result.GasLimit.Value(), "num coins", len(result.Amount))

	return result, nil
}

func (ff *feeFacade) parseAccount(humanReadable string) (*account.ID, error) {
	if len(humanReadable) == 0 {
		return nil, nil
	}

	id, err := account.ParseID(humanReadable)
	if err != nil {
		return nil, err
	}

	err = ff.checkAccountPrefix(&id)
	if err != nil {
		return nil, err
	}

	return &id, nil
}

func (ff *feeFacade) checkAccountPrefix(id *account.ID) error {
	if id == nil || len(ff.accountPrefix) == 0 {
		return nil
	}
	if id.Prefix() != ff.accountPrefix {
		return fmt.Errorf("%w, expected %s, got %s", ErrWrongAccountPrefix, ff.accountPrefix, id.Prefix())
	}

	return nil
}

// NewFeeData converts a fee into its plain representation
func NewFeeData(f fee.Fee) FeeData {
	gasLimit := f.GasLimit.Value()
	data := FeeData{
		Amount:   make([]string, 0, len(f.Amount)),
		GasLimit: &gasLimit,
	}
	for _, c := range f.Amount {
		data.Amount = append(data.Amount, c.String())
	}
	if f.Payer != nil {
		data.Payer = f.Payer.String()
	}
	if f.Granter != nil {
		data.Granter = f.Granter.String()
	}

	return data
}

// IsInterfaceNil returns true if there is no value under the interface
func (ff *feeFacade) IsInterfaceNil() bool {
	return ff == nil
}
