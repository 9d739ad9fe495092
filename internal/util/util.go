package util

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandomCode generates a random alphanumeric code of the given length using
// crypto/rand, suitable for coupon codes.
func RandomCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("code length must be positive")
	}

	buf := make([]byte, length)
	max := big.NewInt(int64(len(codeCharset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}
		buf[i] = codeCharset[n.Int64()]
	}

	return string(buf), nil
}
