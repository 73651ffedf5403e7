package reservation

import (
	"crypto/rand"
	"fmt"
	"regexp"
)

// Code charset drops the look-alikes 0/O/1/I so the code survives being
// read over the phone at the front desk.
const codeCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const codeLength = 8

var codePattern = regexp.MustCompile(`^HB-[A-HJ-NP-Z2-9]{8}$`)

// NewCode generates a human-readable reservation code like HB-7K2MPQ4X.
func NewCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate reservation code: %w", err)
	}
	for i, b := range buf {
		buf[i] = codeCharset[int(b)%len(codeCharset)]
	}
	return "HB-" + string(buf), nil
}

func IsValidCode(code string) bool {
	return codePattern.MatchString(code)
}
