package auth

import (
	"crypto/rand"
	"math/big"
)

// generateOTP genera un código numérico aleatorio de n dígitos con crypto/rand.
func generateOTP(n int) (string, error) {
	const digits = "0123456789"
	code := make([]byte, n)
	for i := range code {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", err
		}
		code[i] = digits[num.Int64()]
	}
	return string(code), nil
}
