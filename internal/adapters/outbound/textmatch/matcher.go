package textmatch

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// FuzzyMatcher implements domain.TextMatcher using fuzzywuzzy ratios.
type FuzzyMatcher struct{}

func New() *FuzzyMatcher {
	return &FuzzyMatcher{}
}

func (f *FuzzyMatcher) PartialRatio(a, b string) int {
	return fuzzy.PartialRatio(a, b)
}

func (f *FuzzyMatcher) TokenSortRatio(a, b string) int {
	return fuzzy.TokenSortRatio(a, b)
}
