package probemap

import (
	"errors"
	"fmt"
	"math/big"
)

// Alphabet is the set of characters a key may be built from: digits, ASCII
// letters, punctuation and the six whitespace characters.
const Alphabet = "0123456789" +
	"abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~" +
	" \t\n\r\v\f"

// Radix is the base of the positional encoding used by Hash.
const Radix = uint64(len(Alphabet))

var ErrInvalidKey = errors.New("key contains a character outside of the alphabet")

var inAlphabet [256]bool

func init() {
	for i := 0; i < len(Alphabet); i++ {
		inAlphabet[Alphabet[i]] = true
	}
}

// ValidateKey reports an error wrapping ErrInvalidKey if any byte of key lies
// outside of Alphabet.
func ValidateKey(key string) error {
	for i := 0; i < len(key); i++ {
		if !inAlphabet[key[i]] {
			return fmt.Errorf("%w: %q at offset %d", ErrInvalidKey, key[i], i)
		}
	}

	return nil
}

// Hash treats key as a base-Radix number, most significant character first,
// where every character contributes its byte value as a digit:
//
//	Hash("a")  == 97
//	Hash("aa") == 97*100 + 97
//
// The digest is exact for any key length.
func Hash(key string) (*big.Int, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	var (
		h     = new(big.Int)
		radix = new(big.Int).SetUint64(Radix)
		digit = new(big.Int)
	)
	for i := 0; i < len(key); i++ {
		h.Mul(h, radix)
		h.Add(h, digit.SetUint64(uint64(key[i])))
	}

	return h, nil
}

// Hash64 is Hash reduced modulo 2^64. It equals Hash for keys of up to nine
// characters.
func Hash64(key string) (uint64, error) {
	if err := ValidateKey(key); err != nil {
		return 0, err
	}

	var h uint64
	for i := 0; i < len(key); i++ {
		h = h*Radix + uint64(key[i])
	}

	return h, nil
}

// slot returns the exact positional digest of a valid key modulo capacity.
// Reducing at every step keeps the accumulator below capacity, so the result
// is stable for any key length and depends only on the key and capacity.
func slot(key string, capacity int) int {
	c := uint64(capacity)

	var h uint64
	for i := 0; i < len(key); i++ {
		h = (h*Radix + uint64(key[i])) % c
	}

	return int(h)
}
