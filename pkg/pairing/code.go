package pairing

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Pair code constants.
const (
	// CodeLength is the number of digits in a pair code.
	CodeLength = 6

	// MinCode is the smallest valid pair code.
	MinCode = 100000

	// MaxCode is the largest valid pair code.
	MaxCode = 999999

	// generatedCodeLimit is the exclusive upper bound for generated codes.
	generatedCodeLimit = 999000
)

// Pair code errors.
var (
	ErrInvalidPairCode = errors.New("pair code should be a 6 digits number")
	ErrInvalidPayload  = errors.New("invalid pairing payload")
)

// Code is a 6-digit pair code.
type Code uint32

// GenerateCode generates a cryptographically random pair code in
// [100000, 999000).
func GenerateCode() (Code, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(generatedCodeLimit-MinCode))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random pair code: %w", err)
	}
	return Code(n.Uint64() + MinCode), nil
}

// ParseCode parses a 6-digit string into a Code.
func ParseCode(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if len(s) != CodeLength {
		return 0, fmt.Errorf("%w: must be %d digits", ErrInvalidPairCode, CodeLength)
	}

	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPairCode, err)
	}

	code := Code(n)
	if err := code.Validate(); err != nil {
		return 0, err
	}
	return code, nil
}

// Validate checks that the code lies in [100000, 999999].
func (c Code) Validate() error {
	if c < MinCode || c > MaxCode {
		return fmt.Errorf("%w: got %d", ErrInvalidPairCode, uint32(c))
	}
	return nil
}

// String returns the code as six decimal digits.
func (c Code) String() string {
	return fmt.Sprintf("%06d", uint32(c))
}
