package engine

import (
	"math"

	"github.com/mbarros/particle-clash/internal/game"
)

// maxSupportChecks bounds the support-enumeration fallback. The catalog is
// small (typically 2-4 strategies), so the budget is generous; hitting it
// sets EquilibriumResult.Exhausted instead of failing.
const maxSupportChecks = 512

const probTolerance = 1e-9

// FindEquilibria returns every pure-strategy Nash equilibrium of the
// matrix. When the pure set is empty it falls back to a single mixed
// equilibrium: the closed-form indifference solve for 2x2 matrices,
// support enumeration for larger ones. "No equilibrium found" is a valid
// result, never an error.
func FindEquilibria(m *game.PayoffMatrix) game.EquilibriumResult {
	result := game.EquilibriumResult{Pure: pureEquilibria(m)}
	if len(result.Pure) > 0 {
		return result
	}

	n := m.Size()
	if n == 2 {
		if mixed := mixed2x2(m); mixed != nil {
			result.Mixed = mixed
			return result
		}
	}
	mixed, exhausted := supportEnumeration(m)
	result.Mixed = mixed
	result.Exhausted = exhausted
	return result
}

// pureEquilibria scans every cell for the best-response-to-best-response
// property: payoffA(i,j) >= payoffA(k,j) for all rows k and
// payoffB(i,j) >= payoffB(i,k) for all columns k. All qualifying cells are
// returned in row-major order.
func pureEquilibria(m *game.PayoffMatrix) []game.PureEquilibrium {
	n := m.Size()
	var found []game.PureEquilibrium
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			cell := m.At(i, j)
			best := true
			for k := 0; k < n && best; k++ {
				if m.At(k, j).A > cell.A {
					best = false
				}
			}
			for k := 0; k < n && best; k++ {
				if m.At(i, k).B > cell.B {
					best = false
				}
			}
			if best {
				found = append(found, game.PureEquilibrium{RowA: i, ColB: j, Payoff: cell})
			}
		}
	}
	return found
}

// mixed2x2 solves the two indifference equations of a 2x2 game directly:
// p makes B indifferent between its columns, q makes A indifferent between
// its rows. Returns nil when the game is degenerate (zero denominator) or
// the solution leaves [0, 1]; the caller then falls through to support
// enumeration.
func mixed2x2(m *game.PayoffMatrix) *game.MixedEquilibrium {
	a00, a01 := m.At(0, 0).A, m.At(0, 1).A
	a10, a11 := m.At(1, 0).A, m.At(1, 1).A
	b00, b01 := m.At(0, 0).B, m.At(0, 1).B
	b10, b11 := m.At(1, 0).B, m.At(1, 1).B

	denP := b00 - b01 - b10 + b11
	denQ := a00 - a01 - a10 + a11
	if math.Abs(denP) < probTolerance || math.Abs(denQ) < probTolerance {
		return nil
	}
	p := (b11 - b10) / denP
	q := (a11 - a01) / denQ
	if p < -probTolerance || p > 1+probTolerance || q < -probTolerance || q > 1+probTolerance {
		return nil
	}
	p = clampProb(p)
	q = clampProb(q)
	return &game.MixedEquilibrium{
		ProbsA: []float64{p, 1 - p},
		ProbsB: []float64{q, 1 - q},
	}
}

// supportEnumeration searches equal-size support pairs, smallest supports
// first, solving the indifference system for each candidate and validating
// non-negativity plus absence of profitable outside deviations. The first
// candidate that validates wins, which keeps the search deterministic.
func supportEnumeration(m *game.PayoffMatrix) (*game.MixedEquilibrium, bool) {
	n := m.Size()
	checks := 0
	for k := 1; k <= n; k++ {
		supportsA := subsetsOfSize(n, k)
		supportsB := subsetsOfSize(n, k)
		for _, sa := range supportsA {
			for _, sb := range supportsB {
				checks++
				if checks > maxSupportChecks {
					return nil, true
				}
				if mixed := trySupports(m, sa, sb); mixed != nil {
					return mixed, false
				}
			}
		}
	}
	return nil, false
}

// trySupports attempts a candidate equilibrium with A mixing over rows sa
// and B mixing over columns sb.
func trySupports(m *game.PayoffMatrix, sa, sb []int) *game.MixedEquilibrium {
	k := len(sa)
	n := m.Size()

	// Solve for B's distribution y over sb: A must be indifferent across
	// the rows of sa. k-1 difference equations plus the simplex constraint.
	sysY := make([][]float64, k)
	rhsY := make([]float64, k)
	for t := 1; t < k; t++ {
		row := make([]float64, k)
		for j := 0; j < k; j++ {
			row[j] = m.At(sa[0], sb[j]).A - m.At(sa[t], sb[j]).A
		}
		sysY[t-1] = row
	}
	ones := make([]float64, k)
	for j := range ones {
		ones[j] = 1
	}
	sysY[k-1] = ones
	rhsY[k-1] = 1
	y, ok := solveLinear(sysY, rhsY)
	if !ok || !validProbs(y) {
		return nil
	}

	// Solve for A's distribution x over sa: B indifferent across sb.
	sysX := make([][]float64, k)
	rhsX := make([]float64, k)
	for t := 1; t < k; t++ {
		row := make([]float64, k)
		for i := 0; i < k; i++ {
			row[i] = m.At(sa[i], sb[0]).B - m.At(sa[i], sb[t]).B
		}
		sysX[t-1] = row
	}
	onesX := make([]float64, k)
	for i := range onesX {
		onesX[i] = 1
	}
	sysX[k-1] = onesX
	rhsX[k-1] = 1
	x, ok := solveLinear(sysX, rhsX)
	if !ok || !validProbs(x) {
		return nil
	}

	// No row outside sa may beat the support's expected payoff for A, and
	// no column outside sb may beat it for B.
	vA := 0.0
	for j := 0; j < k; j++ {
		vA += y[j] * m.At(sa[0], sb[j]).A
	}
	for r := 0; r < n; r++ {
		if containsIndex(sa, r) {
			continue
		}
		ev := 0.0
		for j := 0; j < k; j++ {
			ev += y[j] * m.At(r, sb[j]).A
		}
		if ev > vA+probTolerance {
			return nil
		}
	}
	vB := 0.0
	for i := 0; i < k; i++ {
		vB += x[i] * m.At(sa[i], sb[0]).B
	}
	for c := 0; c < n; c++ {
		if containsIndex(sb, c) {
			continue
		}
		ev := 0.0
		for i := 0; i < k; i++ {
			ev += x[i] * m.At(sa[i], c).B
		}
		if ev > vB+probTolerance {
			return nil
		}
	}

	probsA := make([]float64, n)
	probsB := make([]float64, n)
	for i := 0; i < k; i++ {
		probsA[sa[i]] = clampProb(x[i])
		probsB[sb[i]] = clampProb(y[i])
	}
	return &game.MixedEquilibrium{ProbsA: probsA, ProbsB: probsB}
}

// solveLinear solves a small dense k x k system in place using Gaussian
// elimination with partial pivoting. Returns false for singular systems.
func solveLinear(sys [][]float64, rhs []float64) ([]float64, bool) {
	k := len(rhs)
	a := make([][]float64, k)
	for i := range sys {
		a[i] = append([]float64(nil), sys[i]...)
	}
	b := append([]float64(nil), rhs...)

	for col := 0; col < k; col++ {
		pivot := col
		for r := col + 1; r < k; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, false
		}
		a[col], a[pivot] = a[pivot], a[col]
		b[col], b[pivot] = b[pivot], b[col]
		for r := col + 1; r < k; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < k; c++ {
				a[r][c] -= f * a[col][c]
			}
			b[r] -= f * b[col]
		}
	}
	out := make([]float64, k)
	for r := k - 1; r >= 0; r-- {
		sum := b[r]
		for c := r + 1; c < k; c++ {
			sum -= a[r][c] * out[c]
		}
		out[r] = sum / a[r][r]
	}
	return out, true
}

func validProbs(p []float64) bool {
	for _, v := range p {
		if v < -probTolerance || v > 1+probTolerance {
			return false
		}
	}
	return true
}

func clampProb(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func containsIndex(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// subsetsOfSize enumerates the k-element subsets of {0..n-1} in
// lexicographic order.
func subsetsOfSize(n, k int) [][]int {
	var out [][]int
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		out = append(out, append([]int(nil), idx...))
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
