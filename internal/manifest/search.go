package manifest

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchItems fuzzy-matches query against item titles and returns the
// matches ranked best first. Ties keep manifest order. A blank query
// returns the items unchanged.
func SearchItems(items []Item, query string) []Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = string(item.Title)
	}

	ranks := fuzzy.RankFindNormalizedFold(query, titles)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	results := make([]Item, 0, len(ranks))
	for _, r := range ranks {
		results = append(results, items[r.OriginalIndex])
	}
	return results
}
