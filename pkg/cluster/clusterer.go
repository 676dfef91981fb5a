package cluster

import (
	"sort"

	"github.com/thebtf/gazette/pkg/models"
)

// Cluster groups articles into a partition: every input article lands in
// exactly one cluster, none are duplicated or dropped.
//
// The algorithm is a single forward greedy pass over a stabilized order.
// Articles are first sorted by category (ordinal byte-wise comparison,
// stable, articles without a category sorting after every real category).
// Each unassigned article seeds a cluster; the remaining sequence is then
// scanned once, admitting a candidate when its mean similarity against the
// cluster's current members meets minSimilarity. Membership is evaluated
// against the growing cluster, so an early admission can change whether a
// later candidate qualifies. An article's rejection by an earlier cluster
// is never revisited; it stays available to seed or join later clusters.
// This is intentionally order-dependent, not a globally optimal grouping.
func Cluster(items []*models.Article, minSimilarity float64) [][]*models.Article {
	if len(items) == 0 {
		return nil
	}

	sorted := make([]*models.Article, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return categoryLess(sorted[i].Category, sorted[j].Category)
	})

	assigned := make([]bool, len(sorted))
	var clusters [][]*models.Article

	for i := range sorted {
		if assigned[i] {
			continue
		}

		group := []*models.Article{sorted[i]}
		assigned[i] = true

		for j := i + 1; j < len(sorted); j++ {
			if assigned[j] {
				continue
			}
			if meanScore(sorted[j], group) >= minSimilarity {
				group = append(group, sorted[j])
				assigned[j] = true
			}
		}

		clusters = append(clusters, group)
	}

	return clusters
}

// meanScore is the arithmetic mean of the candidate's similarity against
// every current member of the forming cluster.
func meanScore(candidate *models.Article, members []*models.Article) float64 {
	total := 0.0
	for _, member := range members {
		total += Score(candidate, member)
	}
	return total / float64(len(members))
}

// categoryLess orders categories byte-wise so clustering output is
// identical across runtimes; no locale-aware collation. An empty category
// sorts after every real category name.
func categoryLess(a, b string) bool {
	if (a == "") != (b == "") {
		return a != ""
	}
	return a < b
}
