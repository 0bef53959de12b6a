package lib

import (
	"strings"
	"unicode"
)

// Trigram string similarity compatible with the pg_trgm contract: scores
// land in [0,1], and Similarity(x, "") is 0 so an empty query can never
// sweep a whole inventory.
//
// Words are lowercased, non-alphanumeric runes act as separators, and each
// word is padded with two leading and one trailing space before the
// 3-grams are taken. The score is the Jaccard ratio of the two sets.

// Trigrams returns the set of 3-grams for s.
func Trigrams(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range splitWords(s) {
		padded := "  " + word + " "
		runes := []rune(padded)
		for i := 0; i+3 <= len(runes); i++ {
			set[string(runes[i:i+3])] = struct{}{}
		}
	}
	return set
}

// Similarity scores how alike a and b are, in [0,1].
func Similarity(a, b string) float64 {
	ta := Trigrams(a)
	tb := Trigrams(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0.0
	}

	shared := 0
	for g := range ta {
		if _, ok := tb[g]; ok {
			shared++
		}
	}

	union := len(ta) + len(tb) - shared
	if union == 0 {
		return 0.0
	}
	return float64(shared) / float64(union)
}

func splitWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
