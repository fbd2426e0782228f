package address

import (
	"strings"
	"unicode"
)

// DuplicateThreshold is the similarity score at or above which two addresses
// under the same owner are treated as the same address during sync.
const DuplicateThreshold = 0.8

// Similarity scores two full-address strings in [0,1] using character-set
// Jaccard over the normalized forms. Character sets are deliberately coarse:
// "MG Road, Sector 15" and "mg road sector-15" should score as duplicates
// despite punctuation and ordering noise.
func Similarity(a, b string) float64 {
	setA := charSet(a)
	setB := charSet(b)
	if len(setA) == 0 && len(setB) == 0 {
		return 1
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for r := range setA {
		if setB[r] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union)
}

// IsDuplicate reports whether two full addresses cross DuplicateThreshold.
func IsDuplicate(a, b string) bool {
	return Similarity(a, b) >= DuplicateThreshold
}

// charSet normalizes to lower case and keeps only letters and digits.
func charSet(s string) map[rune]bool {
	set := make(map[rune]bool)
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			set[r] = true
		}
	}

	return set
}
