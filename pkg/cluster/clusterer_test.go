package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thebtf/gazette/pkg/models"
)

func testArticles() []*models.Article {
	return []*models.Article{
		{ID: "1", Title: "Python Basics", Body: "Learn Python fundamentals", Category: "Tech"},
		{ID: "2", Title: "Advanced Python", Body: "Master Python techniques", Category: "Tech"},
		{ID: "3", Title: "Cooking Tips", Body: "Cooking techniques and recipes", Category: "Food"},
	}
}

func clusterIDs(clusters [][]*models.Article) map[string]int {
	ids := make(map[string]int)
	for i, group := range clusters {
		for _, item := range group {
			ids[item.ID] = i
		}
	}
	return ids
}

func TestCluster_EmptyInput(t *testing.T) {
	assert.Empty(t, Cluster(nil, 30))
	assert.Empty(t, Cluster([]*models.Article{}, 30))
}

func TestCluster_SingleArticle(t *testing.T) {
	items := []*models.Article{{ID: "1", Title: "Solo piece"}}

	clusters := Cluster(items, 30)

	require.Len(t, clusters, 1)
	require.Len(t, clusters[0], 1)
	assert.Equal(t, "1", clusters[0][0].ID)
}

func TestCluster_GroupsRelatedArticles(t *testing.T) {
	clusters := Cluster(testArticles(), 30)

	require.GreaterOrEqual(t, len(clusters), 2)

	ids := clusterIDs(clusters)
	assert.Equal(t, ids["1"], ids["2"], "the two Python articles should share a cluster")
	assert.NotEqual(t, ids["1"], ids["3"], "the cooking article should land elsewhere")
}

func TestCluster_PartitionProperty(t *testing.T) {
	items := []*models.Article{
		{ID: "1", Title: "JWT tokens expire daily", Category: "Security"},
		{ID: "2", Title: "PostgreSQL index tuning", Category: "Databases"},
		{ID: "3", Title: "Redis caching strategies", Category: "Databases"},
		{ID: "4", Title: "Structured logging practices"},
		{ID: "5", Title: "Container image hardening", Category: "Security"},
	}

	clusters := Cluster(items, 30)

	seen := make(map[string]int)
	total := 0
	for _, group := range clusters {
		require.NotEmpty(t, group, "clusters are never empty")
		for _, item := range group {
			seen[item.ID]++
			total++
		}
	}

	assert.Equal(t, len(items), total, "no article dropped")
	for id, count := range seen {
		assert.Equal(t, 1, count, "article %s must appear exactly once", id)
	}
}

func TestCluster_ThresholdMonotonicity(t *testing.T) {
	items := testArticles()

	prev := 0
	for _, threshold := range []float64{0, 20, 40, 60, 80, 100} {
		n := len(Cluster(items, threshold))
		assert.GreaterOrEqual(t, n, prev,
			"raising the threshold must never merge clusters (threshold=%v)", threshold)
		prev = n
	}
}

func TestCluster_ZeroThresholdMergesEverything(t *testing.T) {
	clusters := Cluster(testArticles(), 0)

	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0], 3)
}

func TestCluster_MaxThresholdIsolatesEverything(t *testing.T) {
	clusters := Cluster(testArticles(), 101)

	assert.Len(t, clusters, 3)
}

func TestCluster_EmptyCategorySortsLast(t *testing.T) {
	items := []*models.Article{
		{ID: "uncategorized", Title: "Loose ends and oddities"},
		{ID: "zoology", Title: "Axolotl regeneration research", Category: "Zoology"},
	}

	// Threshold above any attainable score keeps every article alone, so
	// cluster order exposes the iteration order directly.
	clusters := Cluster(items, 101)

	require.Len(t, clusters, 2)
	assert.Equal(t, "zoology", clusters[0][0].ID, "a real category sorts before an absent one")
	assert.Equal(t, "uncategorized", clusters[1][0].ID)
}

func TestCluster_StableWithinCategory(t *testing.T) {
	items := []*models.Article{
		{ID: "first", Title: "Aardvark habitats", Category: "Nature"},
		{ID: "second", Title: "Glacier formation", Category: "Nature"},
		{ID: "third", Title: "Volcanic soil chemistry", Category: "Nature"},
	}

	clusters := Cluster(items, 101)

	require.Len(t, clusters, 3)
	assert.Equal(t, "first", clusters[0][0].ID)
	assert.Equal(t, "second", clusters[1][0].ID)
	assert.Equal(t, "third", clusters[2][0].ID)
}

func TestCluster_Deterministic(t *testing.T) {
	items := testArticles()

	first := Cluster(items, 30)
	second := Cluster(items, 30)

	require.Equal(t, len(first), len(second))
	for i := range first {
		require.Equal(t, len(first[i]), len(second[i]))
		for j := range first[i] {
			assert.Equal(t, first[i][j].ID, second[i][j].ID)
		}
	}
}
