// Package cluster groups topically related articles into named, ordered
// sections. The pipeline is keyword extraction, pairwise Jaccard scoring,
// greedy partitioning, and section naming; Generate wires the steps
// together. Everything here is a pure function of its inputs: no I/O, no
// shared state, deterministic output for identical input.
package cluster

import (
	"regexp"
	"sort"
	"strings"
)

// maxKeywords caps the ranked keyword list per text.
const maxKeywords = 20

// markupRegex matches angle-bracket delimited spans. Markup removal is a
// textual strip, not an HTML parse; malformed markup leaves stray
// characters behind rather than failing.
var markupRegex = regexp.MustCompile(`<[^>]*>`)

// stopwords are common English function words excluded from keyword
// extraction because they carry no topical signal.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "be": true, "been": true, "being": true,
	"have": true, "has": true, "had": true, "having": true, "do": true,
	"does": true, "did": true, "doing": true, "will": true, "would": true,
	"could": true, "should": true, "may": true, "might": true, "must": true,
	"shall": true, "can": true, "this": true, "that": true, "these": true,
	"those": true, "and": true, "or": true, "but": true, "if": true,
	"then": true, "else": true, "for": true, "from": true, "with": true,
	"about": true, "into": true, "onto": true, "over": true, "under": true,
	"after": true, "before": true, "between": true, "through": true,
	"during": true, "above": true, "below": true, "again": true,
	"further": true, "to": true, "of": true, "in": true, "on": true,
	"at": true, "by": true, "it": true, "its": true, "which": true,
	"who": true, "whom": true, "whose": true, "what": true, "when": true,
	"where": true, "while": true, "why": true, "how": true, "all": true,
	"any": true, "both": true, "each": true, "few": true, "more": true,
	"most": true, "other": true, "some": true, "such": true, "only": true,
	"own": true, "same": true, "than": true, "too": true, "very": true,
	"just": true, "they": true, "them": true, "their": true, "theirs": true,
	"you": true, "your": true, "yours": true, "here": true, "there": true,
}

// ExtractKeywords turns raw marked-up text into a ranked keyword list of
// at most 20 lowercase tokens. Tokens are ranked by descending frequency;
// ties break by first occurrence in the token stream, so the ordering is
// stable rather than alphabetical. Empty text yields an empty list.
func ExtractKeywords(text string) []string {
	if text == "" {
		return nil
	}

	plain := markupRegex.ReplaceAllString(text, " ")
	words := strings.Fields(strings.ToLower(plain))

	type stat struct {
		count int
		first int // index of first occurrence in the cleaned token stream
	}
	counts := make(map[string]*stat)
	var order []string
	pos := 0

	for _, word := range words {
		token := cleanToken(word)
		if len(token) <= 3 || stopwords[token] {
			continue
		}
		if s, ok := counts[token]; ok {
			s.count++
		} else {
			counts[token] = &stat{count: 1, first: pos}
			order = append(order, token)
		}
		pos++
	}

	sort.SliceStable(order, func(i, j int) bool {
		si, sj := counts[order[i]], counts[order[j]]
		if si.count != sj.count {
			return si.count > sj.count
		}
		return si.first < sj.first
	})

	if len(order) > maxKeywords {
		order = order[:maxKeywords]
	}
	return order
}

// cleanToken strips every character outside a-z and 0-9.
func cleanToken(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// keywordSet extracts keywords from text and returns them as a set.
func keywordSet(text string) map[string]bool {
	keywords := ExtractKeywords(text)
	set := make(map[string]bool, len(keywords))
	for _, kw := range keywords {
		set[kw] = true
	}
	return set
}
