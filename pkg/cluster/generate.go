package cluster

import (
	"sort"

	"github.com/thebtf/gazette/pkg/models"
)

// DefaultMinSimilarity is the admission threshold applied when the caller
// supplies no options. It is on the same 0-100 scale as Score.
const DefaultMinSimilarity = 30.0

// fallbackSectionName labels the single pass-through section returned
// when clustering is disabled or there is nothing to cluster.
const fallbackSectionName = "Articles"

// Options controls a Generate run.
type Options struct {
	// MinSimilarity is the mean-score admission threshold for the greedy
	// clusterer, on the scorer's 0-100 scale.
	MinSimilarity float64

	// EnableClustering toggles grouping. When false, Generate returns the
	// input unchanged as a single "Articles" section: no reordering, no
	// renaming.
	EnableClustering bool
}

// DefaultOptions returns the standard Generate configuration.
func DefaultOptions() *Options {
	return &Options{
		MinSimilarity:    DefaultMinSimilarity,
		EnableClustering: true,
	}
}

// Section is one named, ordered group of articles in the assembled
// magazine.
type Section struct {
	Name  string            `json:"name"`
	Items []*models.Article `json:"items"`
}

// Metrics describes one clustering run so callers can log diagnostics;
// the engine itself never logs.
type Metrics struct {
	ItemCount      int     `json:"item_count"`
	SectionCount   int     `json:"section_count"`
	AvgSectionSize float64 `json:"avg_section_size"`
}

// Result is the output of Generate: ordered sections plus run metrics.
type Result struct {
	Sections []Section `json:"sections"`
	Metrics  Metrics   `json:"metrics"`
}

// Generate produces the ordered, named sections of the magazine. With
// clustering enabled it partitions the articles greedily, names each
// cluster, and orders sections by descending size (ties keep cluster
// creation order). A nil opts means DefaultOptions. Generate never fails:
// empty input or disabled clustering yields the single identity section.
func Generate(items []*models.Article, opts *Options) Result {
	if opts == nil {
		opts = DefaultOptions()
	}

	if !opts.EnableClustering || len(items) == 0 {
		passthrough := items
		if passthrough == nil {
			passthrough = []*models.Article{}
		}
		return Result{
			Sections: []Section{{Name: fallbackSectionName, Items: passthrough}},
			Metrics: Metrics{
				ItemCount:      len(items),
				SectionCount:   1,
				AvgSectionSize: float64(len(items)),
			},
		}
	}

	clusters := Cluster(items, opts.MinSimilarity)

	sections := make([]Section, len(clusters))
	for i, group := range clusters {
		sections[i] = Section{Name: NameSection(group), Items: group}
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return len(sections[i].Items) > len(sections[j].Items)
	})

	return Result{
		Sections: sections,
		Metrics: Metrics{
			ItemCount:      len(items),
			SectionCount:   len(sections),
			AvgSectionSize: float64(len(items)) / float64(len(sections)),
		},
	}
}
