package manifest

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// TagSeparator separates tags inside an item's metadata.tags string
const TagSeparator = ","

// NormalizeTag trims whitespace and applies NFC so visually identical tags
// compare equal. Case is preserved.
func NormalizeTag(tag string) string {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return ""
	}
	return norm.NFC.String(trimmed)
}

// SplitTags splits a comma-separated tag string into normalized, non-empty
// tags in first-seen order without duplicates. It never returns nil.
func SplitTags(raw string) []string {
	tags := []string{}
	if strings.TrimSpace(raw) == "" {
		return tags
	}

	seen := make(map[string]struct{})
	for _, piece := range strings.Split(raw, TagSeparator) {
		tag := NormalizeTag(piece)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

// UniqueTags collects the distinct tags across items in first-seen order
func UniqueTags(items []Item) []string {
	tags := []string{}
	seen := make(map[string]struct{})
	for _, item := range items {
		for _, tag := range item.Tags() {
			if _, dup := seen[tag]; dup {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}
	return tags
}

// TagCounts returns how many items carry each tag
func TagCounts(items []Item) map[string]int {
	counts := make(map[string]int)
	for _, item := range items {
		for _, tag := range item.Tags() {
			counts[tag]++
		}
	}
	return counts
}

// FilterByTag returns the items carrying tag, preserving order. An empty
// tag returns every item.
func FilterByTag(items []Item, tag string) []Item {
	if NormalizeTag(tag) == "" {
		out := make([]Item, len(items))
		copy(out, items)
		return out
	}

	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.HasTag(tag) {
			out = append(out, item)
		}
	}
	return out
}
