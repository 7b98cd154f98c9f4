package sort

type IntArray []int

type Sorter interface {
	Len() int
	Less(i, j int) bool
	Swap(i, j int)
}

func (p IntArray) Len() int { return len(p) }

func (p IntArray) Less(i, j int) bool { return p[i] < p[j] }

func (p IntArray) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

// counting wraps a Sorter and tallies Less and Swap calls.
type counting struct {
	Sorter
	st *Stats
}

func (c counting) Less(i, j int) bool {
	c.st.Comparisons++
	return c.Sorter.Less(i, j)
}

func (c counting) Swap(i, j int) {
	c.st.Swaps++
	c.Sorter.Swap(i, j)
}

// AdjacentBubbleSort is the textbook bubble sort: each pass swaps neighbours
// that are out of order and the last pass-1 elements are already in place.
func AdjacentBubbleSort(data Sorter) {
	n := data.Len()
	for pass := 1; pass < n; pass++ {
		for i := 0; i < n-pass; i++ {
			if data.Less(i+1, i) {
				data.Swap(i, i+1)
			}
		}
	}
}

func adjacentStats(data []int, st *Stats) {
	if st == nil {
		AdjacentBubbleSort(IntArray(data))
		return
	}
	AdjacentBubbleSort(counting{IntArray(data), st})
}
