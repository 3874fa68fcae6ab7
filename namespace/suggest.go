package namespace

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const maxSuggestions = 5

// Suggest returns up to five def names close to name, closest first.
// Names are matched by edit distance or as a case-insensitive subsequence.
func (ns *Namespace) Suggest(name string) []string {
	if name == "" || len(ns.names) == 0 {
		return nil
	}

	threshold := len(name) / 3
	if threshold < 2 {
		threshold = 2
	}

	scores := make(map[string]int)
	for _, candidate := range ns.names {
		if candidate == name {
			continue
		}
		if d := fuzzy.LevenshteinDistance(name, candidate); d <= threshold {
			scores[candidate] = d
		}
	}
	for _, rank := range fuzzy.RankFindFold(name, ns.names) {
		if rank.Target == name {
			continue
		}
		if d, ok := scores[rank.Target]; !ok || rank.Distance < d {
			scores[rank.Target] = rank.Distance
		}
	}

	out := make([]string, 0, len(scores))
	for candidate := range scores {
		out = append(out, candidate)
	}
	sort.Slice(out, func(i, j int) bool {
		if scores[out[i]] != scores[out[j]] {
			return scores[out[i]] < scores[out[j]]
		}
		return out[i] < out[j]
	})
	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}
