package sort

import (
	"github.com/pkg/errors"
)

// ErrInvalidArgument is returned when an explicit length does not fit the slice.
var ErrInvalidArgument = errors.New("invalid argument")

// Stats counts the work done by one sort call.
type Stats struct {
	Comparisons int
	Swaps       int
	Shifts      int
}

// Reset zeroes all counters.
func (st *Stats) Reset() {
	if st != nil {
		*st = Stats{}
	}
}

// BubbleSort sorts data in place. Every position i is compared against every
// position j >= i, so the comparison count is always N(N+1)/2.
func BubbleSort(data []int) {
	BubbleSortStats(data, nil)
}

// BubbleSortStats is BubbleSort with counters; st may be nil.
func BubbleSortStats(data []int, st *Stats) {
	n := len(data)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if st != nil {
				st.Comparisons++
			}
			if data[i] > data[j] {
				data[i], data[j] = data[j], data[i]
				if st != nil {
					st.Swaps++
				}
			}
		}
	}
}

// BubbleSortN sorts the first n elements of data.
func BubbleSortN(data []int, n int) error {
	if err := checkLength(data, n); err != nil {
		return err
	}
	BubbleSort(data[:n])
	return nil
}

// InsertionSort sorts data in place, keeping equal values in input order.
func InsertionSort(data []int) {
	InsertionSortStats(data, nil)
}

// InsertionSortStats is InsertionSort with counters; st may be nil.
func InsertionSortStats(data []int, st *Stats) {
	for i := 1; i < len(data); i++ {
		value := data[i]
		j := i - 1
		for j >= 0 {
			if st != nil {
				st.Comparisons++
			}
			if data[j] <= value {
				break
			}
			data[j+1] = data[j]
			if st != nil {
				st.Shifts++
			}
			j--
		}
		data[j+1] = value
	}
}

// InsertionSortN sorts the first n elements of data.
func InsertionSortN(data []int, n int) error {
	if err := checkLength(data, n); err != nil {
		return err
	}
	InsertionSort(data[:n])
	return nil
}

func checkLength(data []int, n int) error {
	if n < 0 || n > len(data) {
		return errors.Wrapf(ErrInvalidArgument, "length %d out of range [0, %d]", n, len(data))
	}
	return nil
}

// IsSorted reports whether data is in non-decreasing order.
func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
