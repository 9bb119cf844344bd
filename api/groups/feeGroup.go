package groups

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hu55a1n1/cosmos-tx-go/api/errors"
	"github.com/hu55a1n1/cosmos-tx-go/api/shared"
	"github.com/hu55a1n1/cosmos-tx-go/data/fee"
	"github.com/hu55a1n1/cosmos-tx-go/facade"
	"github.com/multiversx/mx-chain-core-go/core/check"
)

const (
	encodePath  = "/encode"
	decodePath  = "/decode"
	defaultPath = "/default"
)

// feeFacadeHandler defines the methods to be implemented by a facade for handling fee requests
type feeFacadeHandler interface {
	DefaultFee() fee.Fee
	BuildFee(data facade.FeeData) (fee.Fee, error)
	EncodeFee(f fee.Fee) ([]byte, error)
	DecodeFee(buff []byte) (fee.Fee, error)
	IsInterfaceNil() bool
}

// DecodeFeeRequest represents the structure of the request body for the decode endpoint
type DecodeFeeRequest struct {
	Encoded string `json:"encoded"`
}

type feeGroup struct {
	*baseGroup
	facade feeFacadeHandler
}

// NewFeeGroup returns a new instance of feeGroup
func NewFeeGroup(facade feeFacadeHandler) (*feeGroup, error) {
	if check.IfNil(facade) {
		return nil, fmt.Errorf("%w for fee group", errors.ErrNilFacadeHandler)
	}

	fg := &feeGroup{
		facade:    facade,
		baseGroup: &baseGroup{},
	}

	endpoints := []*shared.EndpointHandlerData{
		{
			Path:    encodePath,
			Method:  http.MethodPost,
			Handler: fg.encodeFee,
		},
		{
			Path:    decodePath,
			Method:  http.MethodPost,
			Handler: fg.decodeFee,
		},
		{
			Path:    defaultPath,
			Method:  http.MethodGet,
			Handler: fg.defaultFee,
		},
	}
	fg.endpoints = endpoints

	return fg, nil
}

// encodeFee builds a fee out of the request and responds with its hex encoded protobuf bytes
func (fg *feeGroup) encodeFee(c *gin.Context) {
	data := facade.FeeData{}
	err := c.ShouldBindJSON(&data)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrValidation, errors.ErrInvalidJSONRequest)
		return
	}

	f, err := fg.facade.BuildFee(data)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrBuildingFee, err)
		return
	}

	buff, err := fg.facade.EncodeFee(f)
	if err != nil {
		shared.RespondWithInternalError(c, errors.ErrEncodingFee, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"encoded": hex.EncodeToString(buff), "fee": facade.NewFeeData(f)})
}

// decodeFee responds with the fee decoded out of the hex encoded protobuf bytes
func (fg *feeGroup) decodeFee(c *gin.Context) {
	request := DecodeFeeRequest{}
	err := c.ShouldBindJSON(&request)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrValidation, errors.ErrInvalidJSONRequest)
		return
	}

	buff, err := hex.DecodeString(strings.TrimPrefix(request.Encoded, "0x"))
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrValidation, errors.ErrInvalidHexPayload)
		return
	}

	f, err := fg.facade.DecodeFee(buff)
	if err != nil {
		shared.RespondWithValidationError(c, errors.ErrDecodingFee, err)
		return
	}

	shared.RespondWithSuccess(c, gin.H{"fee": facade.NewFeeData(f)})
}

// defaultFee responds with the fee built out of the configured defaults
func (fg *feeGroup) defaultFee(c *gin.Context) {
	shared.RespondWithSuccess(c, gin.H{"fee": facade.NewFeeData(fg.facade.DefaultFee())})
}

// IsInterfaceNil returns true if there is no value under the interface
func (fg *feeGroup) IsInterfaceNil() bool {
	return fg == nil
}
