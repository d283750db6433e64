package media

import (
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// titleMatchThreshold is the minimum Jaro-Winkler similarity for a library
// item to count as a match for a free-text query.
const titleMatchThreshold = 0.72

// filterByTitle keeps items whose title matches the query, best match first.
// Substring hits always match; otherwise fuzzy similarity decides, so small
// typos ("brekaing bad") still find the show. An empty query keeps everything
// in library order.
func filterByTitle(items []Item, query string) []Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	type scored struct {
		item  Item
		score float64
	}
	matches := make([]scored, 0, len(items))
	for _, it := range items {
		title := strings.ToLower(it.Title)
		if strings.Contains(title, q) {
			matches = append(matches, scored{item: it, score: 1})
			continue
		}
		sim := float64(edlib.JaroWinklerSimilarity(title, q))
		if sim >= titleMatchThreshold {
			matches = append(matches, scored{item: it, score: sim})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	out := make([]Item, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.item)
	}
	return out
}
