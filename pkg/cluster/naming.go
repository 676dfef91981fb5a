package cluster

import (
	"sort"
	"strings"

	"github.com/thebtf/gazette/pkg/models"
)

const (
	// defaultCategory is the placeholder label articles arrive with when
	// the author never picked a category. It carries no topical signal,
	// so it never wins the dominant-category vote.
	defaultCategory = "General"

	// categoryDominance is the share of cluster members a single category
	// must reach for the cluster to take that category's name.
	categoryDominance = 0.6

	// keywordCoverage is the share of cluster members a pooled keyword
	// must appear in to qualify for a synthesized section name.
	keywordCoverage = 0.4
)

// NameSection derives a human-readable label for a cluster. A dominant
// shared category wins outright; otherwise the name is synthesized from
// the keywords the members have in common. An empty cluster is labeled
// "Miscellaneous"; a cluster with no common signal at all falls back to
// "General Interest".
func NameSection(group []*models.Article) string {
	if len(group) == 0 {
		return "Miscellaneous"
	}

	if name, ok := dominantCategory(group); ok {
		return name
	}

	return synthesizeName(group)
}

// dominantCategory returns the most frequent real category (present and
// not the "General" placeholder) if it covers at least 60% of the cluster.
func dominantCategory(group []*models.Article) (string, bool) {
	counts := make(map[string]int)
	var order []string
	for _, item := range group {
		if item.Category == "" || item.Category == defaultCategory {
			continue
		}
		if counts[item.Category] == 0 {
			order = append(order, item.Category)
		}
		counts[item.Category]++
	}

	best, bestCount := "", 0
	for _, cat := range order {
		if counts[cat] > bestCount {
			best, bestCount = cat, counts[cat]
		}
	}

	if best != "" && float64(bestCount) >= categoryDominance*float64(len(group)) {
		return best, true
	}
	return "", false
}

// synthesizeName pools keywords across all members, keeps the ones shared
// widely enough, and joins the top three as "A & B & C".
func synthesizeName(group []*models.Article) string {
	counts := make(map[string]int)
	var order []string
	for _, item := range group {
		for _, kw := range ExtractKeywords(item.Text()) {
			if counts[kw] == 0 {
				order = append(order, kw)
			}
			counts[kw]++
		}
	}

	threshold := keywordCoverage * float64(len(group))
	var common []string
	for _, kw := range order {
		if float64(counts[kw]) >= threshold {
			common = append(common, kw)
		}
	}
	if len(common) == 0 {
		return "General Interest"
	}

	sort.SliceStable(common, func(i, j int) bool {
		return counts[common[i]] > counts[common[j]]
	})
	if len(common) > 3 {
		common = common[:3]
	}

	parts := make([]string, len(common))
	for i, kw := range common {
		parts[i] = capitalize(kw)
	}
	return strings.Join(parts, " & ")
}

// capitalize upper-cases the first letter. Keywords are already lowercase
// a-z0-9 tokens, so byte-level handling is sufficient.
func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
