package bench

import "slices"

// sortSeed is the fixed LCG seed for the sort benchmark input.
const sortSeed uint32 = 42

// SortArray generates size pseudo-random integers in [0, 9999] from a
// fixed-seed LCG and returns them in ascending order. The generated
// multiset is fully determined by size. size <= 0 yields an empty,
// non-nil slice.
func SortArray(size int) []int32 {
	if size <= 0 {
		return []int32{}
	}

	g := newLCG(sortSeed)
	arr := make([]int32, size)
	for i := range arr {
		arr[i] = int32(g.next() % 10000)
	}

	slices.Sort(arr)
	return arr
}
