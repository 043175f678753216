package otpcode

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// Generator produces one-time numeric codes.
type Generator interface {
	// Generate returns a new code.
	Generate() (string, error)
}

// Numeric generates uniform random 6-digit codes in [100000, 999999].
//
// The lower bound excludes leading zeros so the code length is stable.
type Numeric struct{}

const (
	codeMin  = 100000
	codeSpan = 900000
)

// NewNumeric returns a Numeric code generator.
func NewNumeric() *Numeric {
	return &Numeric{}
}

// Generate returns a new 6-digit code read from crypto/rand.
func (*Numeric) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}
