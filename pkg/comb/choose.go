// Package comb provides the small amount of combinatorics the indexing
// packages need: counting k-element subsets of an n-element set.
package comb

// Choose returns the number of k-element subsets of an n-element set
// ("n choose k"). Valid for 0 <= k <= n <= 20 or so; beyond that the
// u64 intermediate used internally would overflow, which this domain
// never approaches (n is at most 16).
func Choose(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}

	var result uint64 = 1
	for i := 0; i < k; i++ {
		result = result * uint64(n-i) / uint64(i+1)
	}
	return int(result)
}
