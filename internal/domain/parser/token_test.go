package parser

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("splits on whitespace and strips edge punctuation", func(t *testing.T) {
		tokens := Tokenize("  Bán 2 cà phê, 30k!  ")
		require.Len(t, tokens, 5)
		assert.Equal(t, "Bán", tokens[0].Text)
		assert.Equal(t, "bán", tokens[0].Lower)
		assert.Equal(t, "cà", tokens[2].Text)
		assert.Equal(t, "phê", tokens[3].Text)
		assert.Equal(t, "30k", tokens[4].Text)
	})

	t.Run("keeps separators inside numerals", func(t *testing.T) {
		tokens := Tokenize("trà 30.000 sữa 2,5")
		require.Len(t, tokens, 4)
		assert.Equal(t, "30.000", tokens[1].Text)
		assert.Equal(t, "2,5", tokens[3].Text)
	})

	t.Run("interior punctuation splits", func(t *testing.T) {
		tokens := Tokenize("cà phê,30k")
		require.Len(t, tokens, 3)
		assert.Equal(t, "cà", tokens[0].Text)
		assert.Equal(t, "phê", tokens[1].Text)
		assert.Equal(t, "30k", tokens[2].Text)
	})

	t.Run("slash splits price from unit noun", func(t *testing.T) {
		tokens := Tokenize("3 trà đá 20k/ly")
		require.Len(t, tokens, 5)
		assert.Equal(t, "20k", tokens[3].Text)
		assert.Equal(t, "ly", tokens[4].Text)
	})

	t.Run("separator between digits is not a boundary", func(t *testing.T) {
		tokens := Tokenize("tổng 1.250.000đ,ship 2,5k")
		require.Len(t, tokens, 4)
		assert.Equal(t, "1.250.000đ", tokens[1].Text)
		assert.Equal(t, "ship", tokens[2].Text)
		assert.Equal(t, "2,5k", tokens[3].Text)
	})

	t.Run("keeps percent suffix", func(t *testing.T) {
		tokens := Tokenize("giảm 50%")
		require.Len(t, tokens, 2)
		assert.Equal(t, "50%", tokens[1].Text)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, Tokenize(""))
		assert.Nil(t, Tokenize("   \t "))
	})
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in        string
		ok        bool
		value     string
		isPercent bool
	}{
		{"30k", true, "30000", false},
		{"30K", true, "30000", false},
		{"2.000", true, "2000", false},
		{"30.000", true, "30000", false},
		{"2,5", true, "2.5", false},
		{"2,500", true, "2500", false},
		{"50%", true, "50", true},
		{"5000đ", true, "5000", false},
		{"5000d", true, "5000", false},
		{"0,5k", true, "500", false},
		{"7", true, "7", false},
		{"cà", false, "", false},
		{"k", false, "", false},
		{"30k5", false, "", false},
		{"", false, "", false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			n, ok := ParseNumber(tc.in)
			require.Equal(t, tc.ok, ok)
			if !ok {
				return
			}
			want, err := decimal.NewFromString(tc.value)
			require.NoError(t, err)
			assert.True(t, n.Value.Equal(want), "got %s, want %s", n.Value, want)
			assert.Equal(t, tc.isPercent, n.IsPercent)
		})
	}

	t.Run("suffix flags", func(t *testing.T) {
		n, ok := ParseNumber("30k")
		require.True(t, ok)
		assert.True(t, n.HasShorthand)

		n, ok = ParseNumber("5000đ")
		require.True(t, ok)
		assert.True(t, n.HasCurrency)
	})
}
