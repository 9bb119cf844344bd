package testscommon

import (
	"github.com/hu55a1n1/cosmos-tx-go/data/fee"
	"github.com/hu55a1n1/cosmos-tx-go/facade"
)

// FeeFacadeStub -
type FeeFacadeStub struct {
	DefaultFeeCalled func() fee.Fee
	BuildFeeCalled   func(data facade.FeeData) (fee.Fee, error)
	EncodeFeeCalled  func(f fee.Fee) ([]byte, error)
	DecodeFeeCalled  func(buff []byte) (fee.Fee, error)
}

// DefaultFee -
func (stub *FeeFacadeStub) DefaultFee() fee.Fee {
	if stub.DefaultFeeCalled != nil {
		return stub.DefaultFeeCalled()
	}

	return fee.Fee{}
}

// BuildFee -
func (stub *FeeFacadeStub) BuildFee(data facade.FeeData) (fee.Fee, error) {
	if stub.BuildFeeCalled != nil {
		return stub.BuildFeeCalled(data)
	}

	return fee.Fee{}, nil
}

// EncodeFee -
func (stub *FeeFacadeStub) EncodeFee(f fee.Fee) ([]byte, error) {
	if stub.EncodeFeeCalled != nil {
		return stub.EncodeFeeCalled(f)
	}

	return nil, nil
}

// DecodeFee -
func (stub *FeeFacadeStub) DecodeFee(buff []byte) (fee.Fee, error) {
	if stub.DecodeFeeCalled != nil {
		return stub.DecodeFeeCalled(buff)
	}

	return fee.Fee{}, nil
}

// IsInterfaceNil returns true if there is no value under the interface
func (stub *FeeFacadeStub) IsInterfaceNil() bool {
	return stub == nil
}
