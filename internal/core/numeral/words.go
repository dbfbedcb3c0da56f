package numeral

import (
	"strings"
)

// English cardinal vocabulary. Ones and tens carry plain values; scales
// multiply the group accumulated so far. "and" is accepted as filler inside
// a word-number phrase ("two hundred and five")
var (
	wordValues = map[string]int64{
		"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
		"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
		"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13,
		"fourteen": 14, "fifteen": 15, "sixteen": 16, "seventeen": 17,
		"eighteen": 18, "nineteen": 19,
		"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
		"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
	}
	wordScales = map[string]int64{
		"hundred":  100,
		"thousand": 1000,
		"lakh":     100000,
		"million":  1000000,
		"crore":    10000000,
		"billion":  1000000000,
	}
)

// wordAlternation joins every known number word for grammar embedding
func wordAlternation() string {
	words := make([]string, 0, len(wordValues)+len(wordScales)+1)
	for w := range wordValues {
		words = append(words, w)
	}
	for w := range wordScales {
		words = append(words, w)
	}
	// longest-first so "seventeen" beats "seven" inside the alternation
	for i := 1; i < len(words); i++ {
		for j := i; j > 0 && len(words[j]) > len(words[j-1]); j-- {
			words[j], words[j-1] = words[j-1], words[j]
		}
	}
	return strings.Join(words, "|")
}

// parseWords folds a tokenized cardinal phrase into its value, e.g.
// ["two","hundred","and","thirty","five"] -> 235. The bool reports whether
// the phrase was a well-formed cardinal
func parseWords(tokens []string) (int64, bool) {
	var total, group int64
	seen := false
	for _, tok := range tokens {
		if tok == "and" {
			continue
		}
		if v, ok := wordValues[tok]; ok {
			group += v
			seen = true
			continue
		}
		if scale, ok := wordScales[tok]; ok {
			if group == 0 {
				group = 1
			}
			group *= scale
			if scale > 100 {
				total += group
				group = 0
			}
			seen = true
			continue
		}
		return 0, false
	}
	return total + group, seen
}
