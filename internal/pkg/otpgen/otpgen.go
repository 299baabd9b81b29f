// Package otpgen produces the numeric codes attached to verification emails.
package otpgen

import (
	"crypto/rand"
	"math/big"
	"strconv"
)

// Digits is the fixed length of a generated code.
const Digits = 6

var span = big.NewInt(900000)

// New returns a 6-digit numeric code drawn uniformly from
// [100000, 999999] using the platform CSPRNG.
func New() (string, error) {
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
