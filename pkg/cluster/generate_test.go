package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebtf/gazette/pkg/models"
)

func TestGenerate_GroupsAndNames(t *testing.T) {
	items := testArticles()

	result := Generate(items, &Options{MinSimilarity: 30, EnableClustering: true})

	require.GreaterOrEqual(t, len(result.Sections), 2)

	var techSection *Section
	for i := range result.Sections {
		for _, item := range result.Sections[i].Items {
			if item.ID == "1" {
				techSection = &result.Sections[i]
			}
		}
	}
	require.NotNil(t, techSection)
	assert.Equal(t, "Tech", techSection.Name)
	assert.Len(t, techSection.Items, 2, "both Python articles belong in the Tech section")

	assert.Equal(t, 3, result.Metrics.ItemCount)
	assert.Equal(t, len(result.Sections), result.Metrics.SectionCount)
}

func TestGenerate_SectionsOrderedBySize(t *testing.T) {
	items := testArticles()

	result := Generate(items, nil)

	for i := 1; i < len(result.Sections); i++ {
		assert.GreaterOrEqual(t,
			len(result.Sections[i-1].Items), len(result.Sections[i].Items),
			"sections must be ordered by descending item count")
	}
	assert.Equal(t, "Tech", result.Sections[0].Name, "the two-item Tech section comes first")
}

func TestGenerate_DisabledClustering(t *testing.T) {
	items := testArticles()

	result := Generate(items, &Options{MinSimilarity: 30, EnableClustering: false})

	require.Len(t, result.Sections, 1)
	section := result.Sections[0]
	assert.Equal(t, "Articles", section.Name)
	require.Len(t, section.Items, 3)

	// Identity behavior: original order and untouched categories.
	assert.Equal(t, "1", section.Items[0].ID)
	assert.Equal(t, "2", section.Items[1].ID)
	assert.Equal(t, "3", section.Items[2].ID)
	assert.Equal(t, "Tech", section.Items[0].Category)
	assert.Equal(t, "Food", section.Items[2].Category)
}

func TestGenerate_EmptyInput(t *testing.T) {
	result := Generate(nil, &Options{MinSimilarity: 30, EnableClustering: true})

	require.Len(t, result.Sections, 1)
	assert.Equal(t, "Articles", result.Sections[0].Name)
	assert.Empty(t, result.Sections[0].Items)
	assert.NotNil(t, result.Sections[0].Items, "empty section still carries a non-nil slice")
	assert.Zero(t, result.Metrics.ItemCount)
}

func TestGenerate_NilOptionsUsesDefaults(t *testing.T) {
	items := testArticles()

	withNil := Generate(items, nil)
	withDefaults := Generate(items, DefaultOptions())

	assert.Equal(t, withDefaults, withNil)
}

func TestGenerate_Deterministic(t *testing.T) {
	items := testArticles()
	opts := DefaultOptions()

	first := Generate(items, opts)
	second := Generate(items, opts)

	assert.Equal(t, first, second, "identical input must produce identical output")
}

func TestGenerate_Metrics(t *testing.T) {
	items := []*models.Article{
		{ID: "1", Title: "Axolotl regeneration", Category: "Alpha"},
		{ID: "2", Title: "Maritime chronometers", Category: "Beta"},
	}

	result := Generate(items, &Options{MinSimilarity: 101, EnableClustering: true})

	assert.Equal(t, 2, result.Metrics.ItemCount)
	assert.Equal(t, 2, result.Metrics.SectionCount)
	assert.InDelta(t, 1.0, result.Metrics.AvgSectionSize, 0.001)
}
