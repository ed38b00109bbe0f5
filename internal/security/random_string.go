package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure string of the requested
// length drawn from the alphabet. Sampling is unbiased, which matters for
// transfer codes: a skewed alphabet would make some codes easier to guess.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for index := range out {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		out[index] = alphabet[position.Int64()]
	}

	return string(out), nil
}
