package lib

import (
	"crypto/rand"
	"fmt"
)

// GenerateBillNumber generates a bill number in the format SB-XXXXXXXX
// where XXXXXXXX is a random 8-character alphanumeric string.
func GenerateBillNumber() (string, error) {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 8

	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate bill number: %w", err)
	}
	for i := range b {
		b[i] = chars[int(b[i])%len(chars)]
	}

	return fmt.Sprintf("SB-%s", string(b)), nil
}
