package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchIndex(t *testing.T) {
	si, err := NewSearchIndex(testEntries())
	require.NoError(t, err)
	defer si.Close()

	t.Run("document count", func(t *testing.T) {
		count, err := si.DocumentCount()
		require.NoError(t, err)
		assert.Equal(t, uint64(len(testEntries())), count)
	})

	t.Run("match with diacritics in query", func(t *testing.T) {
		results, err := si.Search("cà phê", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		names := make([]string, 0, len(results))
		for _, r := range results {
			names = append(names, r.Document.Name)
		}
		assert.Contains(t, names, "Cà Phê")
	})

	t.Run("typo tolerance", func(t *testing.T) {
		results, err := si.Search("tra sue", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)
		assert.Equal(t, "Trà Sữa", results[0].Document.Name)
	})

	t.Run("prefix lookup", func(t *testing.T) {
		results, err := si.SearchPrefix("tra", 5)
		require.NoError(t, err)
		require.NotEmpty(t, results)

		found := false
		for _, r := range results {
			if r.Document.Name == "Trà Sữa" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("no hits", func(t *testing.T) {
		results, err := si.Search("pizza", 5)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("reindex", func(t *testing.T) {
		extra := append(testEntries(), Entry{Name: "Nước Cam"})
		require.NoError(t, si.IndexEntries(extra))

		count, err := si.DocumentCount()
		require.NoError(t, err)
		assert.Equal(t, uint64(len(extra)), count)
	})
}
