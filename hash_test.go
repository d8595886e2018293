package probemap

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	require.Len(t, Alphabet, 100)
	require.Equal(t, uint64(100), Radix)

	for i := 0; i < len(Alphabet); i++ {
		require.Equalf(t, 1, strings.Count(Alphabet, Alphabet[i:i+1]), "duplicate %q", Alphabet[i])
	}
}

func TestHash(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want uint64
	}{
		{name: "Empty", key: "", want: 0},
		{name: "Single char", key: "a", want: 97},
		{name: "Two chars", key: "aa", want: 9797},
		{name: "Word", key: "test", want: 117021616},
		{name: "Digits", key: "01", want: 48*100 + 49},
		{name: "Whitespace", key: " \t", want: 32*100 + 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Hash(tt.key)
			require.NoError(t, err)
			require.True(t, h.IsUint64())
			require.Equal(t, tt.want, h.Uint64())

			h64, err := Hash64(tt.key)
			require.NoError(t, err)
			require.Equal(t, tt.want, h64)
		})
	}
}

func TestHash_Deterministic(t *testing.T) {
	h1, err := Hash("portfolio")
	require.NoError(t, err)

	h2, err := Hash("portfolio")
	require.NoError(t, err)

	require.Zero(t, h1.Cmp(h2))
}

func TestHash_LongKey(t *testing.T) {
	h, err := Hash("aaaaaaaaaa")
	require.NoError(t, err)

	want, ok := new(big.Int).SetString("97979797979797979797", 10)
	require.True(t, ok)
	require.Zero(t, want.Cmp(h), "got %s", h)
	require.Zero(t, digest("aaaaaaaaaa").Cmp(h))

	// Hash64 keeps the low 64 bits only.
	h64, err := Hash64("aaaaaaaaaa")
	require.NoError(t, err)
	require.Equal(t, new(big.Int).Mod(want, new(big.Int).Lsh(big.NewInt(1), 64)).Uint64(), h64)
}

func TestHash_InvalidKey(t *testing.T) {
	for _, key := range []string{"\x00", "café", "a\x7fb", "\x1b[0m"} {
		_, err := Hash(key)
		require.ErrorIsf(t, err, ErrInvalidKey, "key %q", key)

		_, err = Hash64(key)
		require.ErrorIsf(t, err, ErrInvalidKey, "key %q", key)
	}
}

func TestValidateKey(t *testing.T) {
	require.NoError(t, ValidateKey(""))
	require.NoError(t, ValidateKey(Alphabet))
	require.ErrorIs(t, ValidateKey("GOOG\x00"), ErrInvalidKey)
}

func TestSlot(t *testing.T) {
	require.Equal(t, 6, slot("test", DefaultCapacity))
	require.Equal(t, 97, slot("a", DefaultCapacity))
	require.Equal(t, 0, slot("", DefaultCapacity))

	// Short keys never wrap, so the slot is the plain digest modulo capacity.
	for _, key := range []string{"a", "zz", "GOOG", "Cash", "123456789"} {
		h, err := Hash64(key)
		require.NoError(t, err)

		for _, capacity := range []int{11, 127, 254, 1 << 20} {
			require.Equal(t, int(h%uint64(capacity)), slot(key, capacity))
		}
	}
}

func TestSlot_LongKey(t *testing.T) {
	key := strings.Repeat("~}|{", 16)

	h, err := Hash(key)
	require.NoError(t, err)
	require.Zero(t, digest(key).Cmp(h))

	for _, capacity := range []int{127, 254, 508, 1 << 30} {
		want := new(big.Int).Mod(h, big.NewInt(int64(capacity)))
		require.Equal(t, int(want.Int64()), slot(key, capacity))
	}
}

// digest evaluates the positional sum term by term.
func digest(key string) *big.Int {
	sum := new(big.Int)
	for i := 0; i < len(key); i++ {
		pow := new(big.Int).Exp(big.NewInt(int64(Radix)), big.NewInt(int64(len(key)-1-i)), nil)
		sum.Add(sum, pow.Mul(pow, big.NewInt(int64(key[i]))))
	}

	return sum
}
