package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []Entry {
	return []Entry{
		{Name: "Cà Phê", Price: decimal.NewFromInt(30000), CostPrice: decimal.NewFromInt(12000)},
		{Name: "Cà Phê Sữa", Price: decimal.NewFromInt(35000), CostPrice: decimal.NewFromInt(15000)},
		{Name: "Trà Sữa", Price: decimal.NewFromInt(45000), CostPrice: decimal.NewFromInt(18000)},
		{Name: "Bánh Mì", Price: decimal.NewFromInt(25000), CostPrice: decimal.NewFromInt(10000)},
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cà Phê", "ca phe"},
		{"TRÀ ĐÁ", "tra da"},
		{"Đường", "duong"},
		{"sữa tươi", "sua tuoi"},
		{"ca phe", "ca phe"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Fold(tc.in), tc.in)
	}
}

func TestMatcher_FindBestMatch(t *testing.T) {
	m := NewMatcher(testEntries())

	t.Run("exact after folding", func(t *testing.T) {
		entry, ok := m.FindBestMatch("ca phe")
		require.True(t, ok)
		assert.Equal(t, "Cà Phê", entry.Name)
	})

	t.Run("exact with diacritics", func(t *testing.T) {
		entry, ok := m.FindBestMatch("Trà Sữa")
		require.True(t, ok)
		assert.Equal(t, "Trà Sữa", entry.Name)
	})

	t.Run("substring picks length-closest entry", func(t *testing.T) {
		entry, ok := m.FindBestMatch("phe sua")
		require.True(t, ok)
		assert.Equal(t, "Cà Phê Sữa", entry.Name)
	})

	t.Run("input containing a catalog name", func(t *testing.T) {
		entry, ok := m.FindBestMatch("banh mi thit nuong")
		require.True(t, ok)
		assert.Equal(t, "Bánh Mì", entry.Name)
	})

	t.Run("fuzzy within threshold", func(t *testing.T) {
		entry, ok := m.FindBestMatch("tra sue")
		require.True(t, ok)
		assert.Equal(t, "Trà Sữa", entry.Name)
	})

	t.Run("fuzzy two edits", func(t *testing.T) {
		entry, ok := m.FindBestMatch("ca fe")
		require.True(t, ok)
		assert.Equal(t, "Cà Phê", entry.Name)
	})

	t.Run("beyond threshold misses", func(t *testing.T) {
		_, ok := m.FindBestMatch("nuoc ngot co gas")
		assert.False(t, ok)
	})

	t.Run("empty input misses", func(t *testing.T) {
		_, ok := m.FindBestMatch("   ")
		assert.False(t, ok)
	})

	t.Run("empty catalog misses", func(t *testing.T) {
		empty := NewMatcher(nil)
		_, ok := empty.FindBestMatch("ca phe")
		assert.False(t, ok)
	})
}

func TestMatcher_Suggest(t *testing.T) {
	m := NewMatcher(testEntries())

	t.Run("ranked best first", func(t *testing.T) {
		got := m.Suggest("ca phe", 2)
		require.NotEmpty(t, got)
		assert.LessOrEqual(t, len(got), 2)
		assert.Equal(t, "Cà Phê", got[0])
	})

	t.Run("nothing similar", func(t *testing.T) {
		assert.Empty(t, m.Suggest("xyzw", 3))
	})
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		s1, s2 string
		want   int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"ca phe", "ca phe", 0},
		{"tra", "trà", 1},
		{"tra sua", "tra sue", 1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, levenshteinDistance(tc.s1, tc.s2), "%s vs %s", tc.s1, tc.s2)
	}
}

func BenchmarkMatcher_FindBestMatch(b *testing.B) {
	m := NewMatcher(testEntries())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.FindBestMatch("tra sue")
	}
}
