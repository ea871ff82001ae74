package sorter

import "slices"

// radixSort performs a stable LSD radix sort on entries by key, one byte per
// pass. Only the low keyBits bits are considered; higher bits are zero for
// keys built by Build.
//
// Runs of equal keys are put in index order afterwards so the result matches
// the comparison sort. For input built by Build (already in index order) the
// stable passes leave nothing to fix.
func radixSort(entries []Entry, keyBits int) {
	n := len(entries)
	if n <= 1 {
		return
	}

	// For very small arrays, insertion sort is faster
	if n <= 64 {
		insertionSort(entries)
		return
	}

	passes := (keyBits + 7) / 8
	scratch := make([]Entry, n)
	src, dst := entries, scratch

	for p := 0; p < passes; p++ {
		if radixPass(src, dst, uint(p*8)) {
			src, dst = dst, src
		}
	}

	// Odd number of effective passes leaves the data in scratch.
	if &src[0] != &entries[0] {
		copy(entries, src)
	}

	orderTies(entries)
}

// orderTies sorts every run of equal keys by index.
func orderTies(entries []Entry) {
	for start := 0; start < len(entries); {
		end := start + 1
		for end < len(entries) && entries[end].Key == entries[start].Key {
			end++
		}
		if end-start > 1 {
			run := entries[start:end]
			if !slices.IsSortedFunc(run, compare) {
				slices.SortFunc(run, compare)
			}
		}
		start = end
	}
}

// radixPass distributes src into dst by the byte at shift. It reports false
// (and leaves dst untouched) when every entry shares that byte.
func radixPass(src, dst []Entry, shift uint) bool {
	var counts [256]int

	for _, e := range src {
		counts[(e.Key>>shift)&0xFF]++
	}

	// Skip passes that would not move anything.
	if counts[(src[0].Key>>shift)&0xFF] == len(src) {
		return false
	}

	total := 0
	for i := range counts {
		c := counts[i]
		counts[i] = total
		total += c
	}

	for _, e := range src {
		b := (e.Key >> shift) & 0xFF
		dst[counts[b]] = e
		counts[b]++
	}
	return true
}

func insertionSort(entries []Entry) {
	for i := 1; i < len(entries); i++ {
		e := entries[i]
		j := i
		for j > 0 && compare(entries[j-1], e) > 0 {
			entries[j] = entries[j-1]
			j--
		}
		entries[j] = e
	}
}
