package fee

import "errors"

// ErrNilFeeMessage signals that a nil wire fee was provided for decoding
var ErrNilFeeMessage = errors.New("nil fee message")

// ErrInvalidFeeAmount signals that one of the wire fee coins could not be decoded
var ErrInvalidFeeAmount = errors.New("invalid fee amount")
