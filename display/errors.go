package display

import "github.com/pkg/errors"

// ErrNilHeaderOrData signals that a nil table header or nil table lines were provided
var ErrNilHeaderOrData = errors.New("nil data/header")

// ErrEmptyData signals that both the table header and lines are empty
var ErrEmptyData = errors.New("empty data")
