package errors

import (
	"github.com/pkg/errors"
)

// ErrNilFacadeHandler signals that a nil facade handler has been provided
var ErrNilFacadeHandler = errors.New("nil facade handler")

// ErrValidation signals an error in validation
var ErrValidation = errors.New("validation error")

// ErrInvalidJSONRequest signals an error in json request formatting
var ErrInvalidJSONRequest = errors.New("invalid json request")

// ErrInvalidHexPayload signals that the provided payload is not a valid hex string
var ErrInvalidHexPayload = errors.New("invalid hex payload")

// ErrBuildingFee signals that the fee could not be built out of the request
var ErrBuildingFee = errors.New("cannot build fee")

// ErrEncodingFee signals that the fee could not be encoded
var ErrEncodingFee = errors.New("cannot encode fee")

// ErrDecodingFee signals that the provided bytes could not be decoded into a fee
var ErrDecodingFee = errors.New("cannot decode fee")

// ErrNilHttpServer signals that a nil http server has been provided
var ErrNilHttpServer = errors.New("nil http server")

// ErrCannotCreateGinWebServer signals that the gin web server could not be created
var ErrCannotCreateGinWebServer = errors.New("cannot create gin web server")
