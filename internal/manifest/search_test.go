package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchItems(t *testing.T) {
	items := []Item{
		{Title: "Getting Started"},
		{Title: "Release Notes"},
		{Title: "Getting Help"},
		{Title: "Résumé tips"},
	}

	t.Run("blank query returns input", func(t *testing.T) {
		assert.Equal(t, items, SearchItems(items, "  "))
	})

	t.Run("exact title ranks first", func(t *testing.T) {
		got := SearchItems(items, "Getting Help")
		assert.Equal(t, []string{"Getting Help"}, titles(got))
	})

	t.Run("closer title ranks first", func(t *testing.T) {
		got := SearchItems(items, "getting")
		assert.Equal(t, []string{"Getting Help", "Getting Started"}, titles(got))
	})

	t.Run("case and accent insensitive", func(t *testing.T) {
		got := SearchItems(items, "RESUME")
		assert.Equal(t, []string{"Résumé tips"}, titles(got))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, SearchItems(items, "kubernetes"))
	})
}
