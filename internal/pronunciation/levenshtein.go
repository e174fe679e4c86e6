package pronunciation

// levenshtein returns the minimum number of single-rune edits (insert,
// delete, substitute; cost 1 each) to transform a into b.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			min := prev[j-1] + cost // substitute
			if d := prev[j] + 1; d < min { // delete
				min = d
			}
			if d := curr[j-1] + 1; d < min { // insert
				min = d
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
