package base36

import (
	"errors"
	"fmt"
)

const (
	// Alphabet maps digit values 0..35 to characters.
	Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

	// Radix is the number of digits in Alphabet.
	Radix = len(Alphabet)
)

var (
	ErrOutOfRange       = errors.New("base36: byte value out of range")
	ErrInvalidCharacter = errors.New("base36: invalid character")
)

// Char returns the character for digit value v, and false if v >= Radix.
func Char(v byte) (byte, bool) {
	if int(v) >= Radix {
		return 0, false
	}
	return Alphabet[v], true
}

// Digit returns the digit value of c. Both cases are accepted for letters.
func Digit(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'z':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'Z':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Encode renders each byte of b as its base-36 character.
//
// Every value in b must be < 36.
func Encode(b []byte) (string, error) {
	out := make([]byte, len(b))
	for i, v := range b {
		c, ok := Char(v)
		if !ok {
			return "", fmt.Errorf("%w: value %d at offset %d", ErrOutOfRange, v, i)
		}
		out[i] = c
	}
	return string(out), nil
}

// Decode parses each character of s as a base-36 digit.
func Decode(s string) ([]byte, error) {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		v, ok := Digit(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidCharacter, s[i], i)
		}
		out[i] = v
	}
	return out, nil
}
