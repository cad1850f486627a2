package playlist

import (
	"io"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/exp/slices"
)

// Match is a playlist line matching a search query.
type Match struct {
	Index    int    `json:"index" jsonschema:"description=Zero-based line index"`
	Locator  string `json:"locator" jsonschema:"description=Line content as written in the playlist"`
	Distance int    `json:"distance" jsonschema:"description=Edit distance between the query and the entry title"`
}

// Find returns the lines fuzzily matching query, closest titles first.
func Find(r io.Reader, query string) ([]Match, error) {
	entries, err := Entries(r)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))

	var matches []Match
	for i, e := range entries {
		if !fuzzy.MatchNormalizedFold(q, e) {
			continue
		}

		matches = append(matches, Match{
			Index:    i,
			Locator:  e,
			Distance: levenshtein.Distance(q, strings.ToLower(Title(e))),
		})
	}

	slices.SortStableFunc(matches, func(a, b Match) int {
		return a.Distance - b.Distance
	})

	return matches, nil
}
