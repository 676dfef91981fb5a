package cluster

import "github.com/thebtf/gazette/pkg/models"

// Scoring weights. Textual overlap contributes at most 70 points, a
// matching category adds 30, and each shared tag adds 5 before the final
// clamp to [0,100].
const (
	jaccardWeight = 70.0
	categoryBonus = 30.0
	tagBonus      = 5.0
	maxScore      = 100.0
)

// Score rates the topical similarity of two articles on a 0-100 scale.
// It combines Jaccard overlap of the articles' keyword sets with category
// and tag signals. Score is symmetric; a nil article scores 0.
func Score(a, b *models.Article) float64 {
	if a == nil || b == nil {
		return 0
	}

	setA := keywordSet(a.Text())
	setB := keywordSet(b.Text())

	score := jaccardSimilarity(setA, setB) * jaccardWeight

	if a.Category != "" && a.Category == b.Category {
		score += categoryBonus
	}

	tagsB := b.TagSet()
	for tag := range a.TagSet() {
		if tagsB[tag] {
			score += tagBonus
		}
	}

	if score > maxScore {
		score = maxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// jaccardSimilarity calculates set overlap: intersection over union.
// Returns a value in [0,1]; an empty union yields 0.
func jaccardSimilarity(set1, set2 map[string]bool) float64 {
	intersection := 0
	for term := range set1 {
		if set2[term] {
			intersection++
		}
	}

	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
