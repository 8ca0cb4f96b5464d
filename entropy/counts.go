package entropy

// Counts is a frequency vector over categorical labels, such as repository
// topics or co-occurring tags. All estimators in this package consume Counts.
type Counts map[string]int

// CountsOf tallies a slice of observed labels into a frequency vector.
func CountsOf(labels []string) Counts {
	c := make(Counts, len(labels))
	for _, l := range labels {
		c[l]++
	}
	return c
}

// Total returns the number of observations n (the sum of all counts).
// Entries with non-positive counts are ignored.
func (c Counts) Total() int {
	var n int
	for _, v := range c {
		if v > 0 {
			n += v
		}
	}
	return n
}

// Support returns the number of labels with at least one observation.
func (c Counts) Support() int {
	var k int
	for _, v := range c {
		if v > 0 {
			k++
		}
	}
	return k
}

// Singletons returns f1, the number of labels observed exactly once.
// Singleton counts drive the coverage adjustment of the Chao-Shen estimator.
func (c Counts) Singletons() int {
	var f1 int
	for _, v := range c {
		if v == 1 {
			f1++
		}
	}
	return f1
}

// Top returns up to k labels ordered by descending count.
func (c Counts) Top(k int) []string {
	type entry struct {
		label string
		count int
	}
	entries := make([]entry, 0, len(c))
	for l, v := range c {
		if v > 0 {
			entries = append(entries, entry{l, v})
		}
	}
	// Insertion sort keeps ties in a stable label order without pulling
	// in sort.Slice for what is typically a top-10 call.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0; j-- {
			a, b := entries[j-1], entries[j]
			if b.count > a.count || (b.count == a.count && b.label < a.label) {
				entries[j-1], entries[j] = b, a
			} else {
				break
			}
		}
	}
	if k > len(entries) {
		k = len(entries)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = entries[i].label
	}
	return out
}
