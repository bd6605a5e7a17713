package ui

import (
	"slices"
	"strings"
)

// MaxDistance is the largest edit distance still reported as a suggestion
const MaxDistance = 3

// MaxSuggestions caps the number of suggestions returned by Suggest
const MaxSuggestions = 3

// Suggest returns up to MaxSuggestions candidates within MaxDistance of
// target, closest first. Matching is case-insensitive and ties keep the
// candidate order.
//
//	Suggest("UserServise", []string{"User", "UserService", "Mailer"})
//	// ["UserService"]
func Suggest(target string, candidates []string) []string {
	type match struct {
		value    string
		distance int
	}

	needle := strings.ToLower(target)
	var matches []match
	for _, c := range candidates {
		if d := Distance(needle, strings.ToLower(c)); d <= MaxDistance {
			matches = append(matches, match{value: c, distance: d})
		}
	}
	slices.SortStableFunc(matches, func(a, b match) int {
		return a.distance - b.distance
	})

	result := make([]string, 0, MaxSuggestions)
	for _, m := range matches {
		if len(result) == MaxSuggestions {
			break
		}
		result = append(result, m.value)
	}
	return result
}

// Distance returns the Levenshtein distance between a and b, counted in
// bytes.
//
//	Distance("kitten", "sitting") // 3
func Distance(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
