package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// generateCheckInPin draws a uniform 4-digit PIN from 1000-9999 inclusive.
func generateCheckInPin() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return "", fmt.Errorf("failed to generate check-in PIN: %w", err)
	}
	return fmt.Sprintf("%04d", n.Int64()+1000), nil
}

// validPinFormat checks the submitted value is exactly four digits.
func validPinFormat(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, c := range pin {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
