package utils

import "crypto/rand"

// NewPIN returns a numeric door code of n digits generated from
// cryptographically secure random data. Leading zeros are allowed; the
// code is returned as a string so they survive.
func NewPIN(n int) (string, error) {
    buf := make([]byte, n)
    if _, err := rand.Read(buf); err != nil {
        return "", err
    }
    digits := make([]byte, n)
    for i, b := range buf {
        digits[i] = '0' + b%10
    }
    return string(digits), nil
}
