package display

import (
	"strconv"

	"github.com/hu55a1n1/cosmos-tx-go/data/account"
	"github.com/hu55a1n1/cosmos-tx-go/data/fee"
)

const absentAccount = "-"

var feeTableHeader = []string{"Field", "Value", "Raw"}

// CreateFeeTableString renders the fee as an ASCII table: one line per coin, the gas limit, the payer and the granter
func CreateFeeTableString(f fee.Fee) (string, error) {
	lines := make([]*LineData, 0, len(f.Amount)+3)
	for i, c := range f.Amount {
		isLastCoin := i == len(f.Amount)-1
		lines = append(lines, NewLineData(isLastCoin, []string{
			"amount[" + strconv.Itoa(i) + "]",
			c.String(),
			c.Denom.String(),
		}))
	}

	lines = append(lines, NewLineData(true, []string{"gas limit", f.GasLimit.String(), ""}))
	lines = append(lines, accountLine("payer", f.Payer))
	lines = append(lines, accountLine("granter", f.Granter))

	return CreateTableString(feeTableHeader, lines)
}

func accountLine(field string, id *account.ID) *LineData {
	if id == nil {
		return NewLineData(false, []string{field, absentAccount, ""})
	}

	return NewLineData(false, []string{field, id.String(), ConvertBytes(id.Bytes())})
}
