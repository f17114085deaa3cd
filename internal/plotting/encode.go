package plotting

import "sort"

// Encode maps string labels to integer codes. Codes follow sorted-unique
// order: uniques is the sorted distinct label set and codes[i] is the
// index of labels[i] within it. first[k] is the first row (in original
// order) carrying code k, which supplies the representative colorbar
// label for that code. The two orderings differ on purpose: code
// assignment is sorted, tick labeling is first-occurrence.
func Encode(labels []string) (codes []int, uniques []string, first []int) {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			uniques = append(uniques, l)
		}
	}
	sort.Strings(uniques)

	index := make(map[string]int, len(uniques))
	for i, u := range uniques {
		index[u] = i
	}

	codes = make([]int, len(labels))
	first = make([]int, len(uniques))
	for i := range first {
		first[i] = -1
	}
	for i, l := range labels {
		code := index[l]
		codes[i] = code
		if first[code] < 0 {
			first[code] = i
		}
	}
	return codes, uniques, first
}
