package account

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

const (
	// MaxPrefixLength is the maximum length of the human readable part
	MaxPrefixLength = 83
	// MaxIDLength is the maximum length, in bytes, of an account id
	MaxIDLength = 255

	fromBits    = byte(8)
	toBits      = byte(5)
	pad         = true
	invertedPad = false
)

// ID is a bech32 encoded account identifier: a human readable prefix and the raw account bytes
type ID struct {
	prefix string
	bytes  []byte
}

// NewID creates an account id out of the provided prefix and raw bytes
func NewID(prefix string, buff []byte) (ID, error) {
	err := CheckPrefix(prefix)
	if err != nil {
		return ID{}, err
	}
	if len(buff) == 0 || len(buff) > MaxIDLength {
		return ID{}, fmt.Errorf("%w, expected between 1 and %d bytes, received %d",
			ErrInvalidLength, MaxIDLength, len(buff))
	}

	return ID{
		prefix: prefix,
		bytes:  copyBytes(buff),
	}, nil
}

// ParseID decodes the provided bech32 string. Only the canonical bech32 form is accepted, bech32m
// checksums are rejected. All failures wrap ErrInvalidAccountID.
func ParseID(humanReadable string) (ID, error) {
	decodedPrefix, buff, err := bech32.DecodeNoLimit(humanReadable)
	if err != nil {
		return ID{}, fmt.Errorf("%w %q: %s", ErrInvalidAccountID, humanReadable, err.Error())
	}

	// warning: mind the order of the parameters, those should be inverted
	decodedBytes, err := bech32.ConvertBits(buff, toBits, fromBits, invertedPad)
	if err != nil {
		return ID{}, fmt.Errorf("%w %q: %s", ErrInvalidAccountID, humanReadable, err.Error())
	}

	id, err := NewID(decodedPrefix, decodedBytes)
	if err != nil {
		return ID{}, err
	}

	canonical := id.String()
	if canonical != strings.ToLower(humanReadable) {
		return ID{}, fmt.Errorf("%w %q, bech32 form is %q", ErrNonCanonicalID, humanReadable, canonical)
	}

	return id, nil
}

// Prefix returns the human readable part of the id
func (id ID) Prefix() string {
	return id.prefix
}

// Bytes returns a copy of the raw account bytes
func (id ID) Bytes() []byte {
	return copyBytes(id.bytes)
}

// IsZero returns true if the id was not initialized through NewID or ParseID
func (id ID) IsZero() bool {
	return len(id.bytes) == 0
}

// Equal returns true if both ids have the same prefix and bytes
func (id ID) Equal(other ID) bool {
	return id.prefix == other.prefix && bytes.Equal(id.bytes, other.bytes)
}

// String returns the bech32 form of the id. A zero id returns the empty string.
func (id ID) String() string {
	if id.IsZero() {
		return ""
	}

	conv, err := bech32.ConvertBits(id.bytes, fromBits, toBits, pad)
	if err != nil {
		return ""
	}

	encoded, err := bech32.Encode(id.prefix, conv)
	if err != nil {
		return ""
	}

	return encoded
}

// MarshalJSON encodes the id as its bech32 string
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON decodes a bech32 string into the id
func (id *ID) UnmarshalJSON(buff []byte) error {
	var humanReadable string
	err := json.Unmarshal(buff, &humanReadable)
	if err != nil {
		return err
	}

	parsed, err := ParseID(humanReadable)
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// CheckPrefix returns an error wrapping ErrInvalidPrefix if the prefix can not be used as a human readable part
func CheckPrefix(prefix string) error {
	if len(prefix) == 0 || len(prefix) > MaxPrefixLength {
		return fmt.Errorf("%w, expected between 1 and %d characters, received %d",
			ErrInvalidPrefix, MaxPrefixLength, len(prefix))
	}

	for _, c := range prefix {
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		if !isLower && !isDigit {
			return fmt.Errorf("%w %q, only lowercase letters and digits are allowed", ErrInvalidPrefix, prefix)
		}
	}

	return nil
}

func copyBytes(buff []byte) []byte {
	result := make([]byte, len(buff))
	copy(result, buff)

	return result
}
