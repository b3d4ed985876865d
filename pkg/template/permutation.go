package template

// nextPermutation advances p to its next lexicographic permutation in
// place and reports whether it succeeded. If p is already the last
// permutation (strictly decreasing), it is reset to the first permutation
// (ascending order) and nextPermutation returns false — the same "wrap"
// convention the caller (Enumerator.Advance) relies on to know when to
// roll the next-outer permutation forward instead.
func nextPermutation(p []int) bool {
	n := len(p)
	if n < 2 {
		return false
	}

	// Find the largest index i such that p[i] < p[i+1].
	i := n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		reverse(p, 0, n-1)
		return false
	}

	// Find the largest index j > i such that p[j] > p[i], then swap.
	j := n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]

	// Reverse the suffix after i to get the smallest ordering of it.
	reverse(p, i+1, n-1)
	return true
}

func reverse(p []int, i, j int) {
	for i < j {
		p[i], p[j] = p[j], p[i]
		i++
		j--
	}
}

func identityPermutation(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}
