package gf2

// Echelon summarizes Gaussian elimination of the augmented matrix [B | v].
type Echelon struct {
	// Rank is the rank of B.
	Rank int
	// Consistent is false when elimination produced a row 0 = 1.
	Consistent bool
	// Pivots lists pivot columns in elimination order.
	Pivots []int
}

// SolutionCount returns the number of solutions of a system with n
// variables: 2^(n-rank) when consistent, 0 otherwise.
func (e Echelon) SolutionCount(n int) uint64 {
	if !e.Consistent {
		return 0
	}

	return uint64(1) << uint(n-e.Rank)
}

// Reduce runs Gaussian elimination over GF(2) on [B | v].
//
// Algorithm Outline:
//  1. Pack each augmented row as (rowᵢ << 1) | vᵢ; column j sits at bit n-j.
//  2. For j = 0..n-1: find a row at or below the current rank with bit j set,
//     swap it up, XOR it into every other row having bit j set.
//  3. The system is inconsistent iff some row reduced to exactly 1 (0 = 1).
//
// Complexity: O(m·n) word operations.
func Reduce(sys *System) Echelon {
	aug := make([]uint64, sys.m)
	for i, row := range sys.rows {
		aug[i] = row << 1
		if sys.target[i] {
			aug[i] |= 1
		}
	}

	var e Echelon
	for j := 0; j < sys.n && e.Rank < sys.m; j++ {
		bit := uint64(1) << uint(sys.n-j)
		pivot := -1
		for r := e.Rank; r < sys.m; r++ {
			if aug[r]&bit != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			continue
		}
		aug[e.Rank], aug[pivot] = aug[pivot], aug[e.Rank]
		for r := 0; r < sys.m; r++ {
			if r != e.Rank && aug[r]&bit != 0 {
				aug[r] ^= aug[e.Rank]
			}
		}
		e.Pivots = append(e.Pivots, j)
		e.Rank++
	}

	e.Consistent = true
	for _, row := range aug {
		if row == 1 {
			e.Consistent = false
			break
		}
	}

	return e
}
