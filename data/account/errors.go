package account

import (
	"errors"
	"fmt"
)

// ErrInvalidAccountID signals that a string or a byte slice can not be used as an account identifier
var ErrInvalidAccountID = errors.New("invalid account id")

// ErrInvalidPrefix signals that the human readable part of an account id is not acceptable
var ErrInvalidPrefix = fmt.Errorf("%w: invalid prefix", ErrInvalidAccountID)

// ErrInvalidLength signals that the decoded account id has a wrong length
var ErrInvalidLength = fmt.Errorf("%w: invalid length", ErrInvalidAccountID)

// ErrNonCanonicalID signals that the decoded account id does not encode back to the same bech32 string
var ErrNonCanonicalID = fmt.Errorf("%w: non canonical encoding", ErrInvalidAccountID)
