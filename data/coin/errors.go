package coin

import "errors"

// ErrInvalidDenom signals that a denomination does not respect the accepted format
var ErrInvalidDenom = errors.New("invalid denom")

// ErrInvalidAmount signals that a coin amount is not a non-negative 128 bit integer
var ErrInvalidAmount = errors.New("invalid amount")

// ErrInvalidCoin signals that a coin string could not be split in amount and denom
var ErrInvalidCoin = errors.New("invalid coin")
