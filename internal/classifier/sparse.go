package classifier

import (
	"math"
	"sort"
)

// SparseVector is a row of feature weights with strictly increasing indices.
type SparseVector struct {
	Indices []int
	Values  []float64
}

func sparseFromMap(weights map[int]float64) SparseVector {
	indices := make([]int, 0, len(weights))
	for idx := range weights {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	values := make([]float64, len(indices))
	for i, idx := range indices {
		values[i] = weights[idx]
	}
	return SparseVector{Indices: indices, Values: values}
}

// Len returns the number of stored entries.
func (v SparseVector) Len() int {
	return len(v.Indices)
}

// Get returns the weight at column idx, or zero.
func (v SparseVector) Get(idx int) float64 {
	i := sort.SearchInts(v.Indices, idx)
	if i < len(v.Indices) && v.Indices[i] == idx {
		return v.Values[i]
	}
	return 0
}

// Dot multiplies the vector with a dense row.
func (v SparseVector) Dot(dense []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * dense[idx]
	}
	return sum
}

// HStack appends other after v, shifting its columns by width (the column count of v).
func (v SparseVector) HStack(other SparseVector, width int) SparseVector {
	out := SparseVector{
		Indices: make([]int, 0, v.Len()+other.Len()),
		Values:  make([]float64, 0, v.Len()+other.Len()),
	}
	out.Indices = append(out.Indices, v.Indices...)
	out.Values = append(out.Values, v.Values...)
	for i, idx := range other.Indices {
		out.Indices = append(out.Indices, idx+width)
		out.Values = append(out.Values, other.Values[i])
	}
	return out
}

func (v SparseVector) normalize(norm string) {
	var total float64
	switch norm {
	case "l2":
		for _, val := range v.Values {
			total += val * val
		}
		total = math.Sqrt(total)
	case "l1":
		for _, val := range v.Values {
			total += math.Abs(val)
		}
	default:
		return
	}
	if total == 0 {
		return
	}
	for i := range v.Values {
		v.Values[i] /= total
	}
}
