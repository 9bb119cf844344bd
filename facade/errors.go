package facade

import "errors"

// ErrNilMarshalizer signals that a nil marshalizer has been provided
var ErrNilMarshalizer = errors.New("nil marshalizer")

// ErrNilConfig signals that a nil configuration has been provided
var ErrNilConfig = errors.New("nil config")

// ErrWrongAccountPrefix signals that an account does not use the configured human readable part
var ErrWrongAccountPrefix = errors.New("wrong account prefix")

// ErrInvalidGasLimit signals that a zero gas limit was requested
var ErrInvalidGasLimit = errors.New("invalid gas limit")
