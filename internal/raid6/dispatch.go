package raid6

import (
	"fmt"
	"sync"
)

// handlerFunc recovers one (numDisk, miss1, miss2) combination across an
// entire block by driving the right stripe operator stripe-by-stripe.
type handlerFunc func(words [][]T, prime, numDisk int)

// Engine owns one process-wide dispatch table for a given (prime,
// maxDisks) configuration. The reference library hardcodes both at
// compile time (P=17, eImpDiskNum=8); this port keeps that as the
// default configuration (see DefaultEngine) but allows any other valid
// pair, matching spec.md §6's "may be runtime parameters in a rewrite".
//
// The table is built exactly once, lazily, on first use — eager
// construction would work too (spec.md §5 allows either), but a
// package-level Engine that nobody calls into shouldn't pay init cost.
type Engine struct {
	Prime    int
	MaxDisks int

	once  sync.Once
	table [][][]handlerFunc
}

// NewEngine validates (prime, maxDisks) and returns an Engine whose
// dispatch table is built lazily on the first Recover call that needs
// it (CheckInput never touches the table).
// prime must be of the form 2^n+1 (required for diagonal closure over
// GF(2)); maxDisks must be in [3, prime+2].
func NewEngine(prime, maxDisks int) (*Engine, error) {
	if !isFermatPrimeShape(prime) {
		return nil, fmt.Errorf("raid6: prime %d is not of the form 2^n+1", prime)
	}
	if maxDisks < 3 || maxDisks > prime+2 {
		return nil, fmt.Errorf("raid6: maxDisks %d must be in [3, prime+2=%d]", maxDisks, prime+2)
	}
	return &Engine{Prime: prime, MaxDisks: maxDisks}, nil
}

// isFermatPrimeShape reports whether p == 2^n+1 for some n >= 1.
func isFermatPrimeShape(p int) bool {
	if p < 3 {
		return false
	}
	m := p - 1
	for m > 1 {
		if m%2 != 0 {
			return false
		}
		m /= 2
	}
	return m == 1
}

func (e *Engine) ensureTable() {
	e.once.Do(func() {
		e.table = buildDispatchTable(e.Prime, e.MaxDisks)
	})
}

// buildDispatchTable enumerates every (numDisk, miss1, miss2) with
// 3 <= numDisk <= maxDisks and 0 <= miss1 <= miss2 < numDisk, and binds
// each live cell to the stripe-operator family from spec.md §4.4's
// table. It mirrors CFuncTableGenerator's compile-time enumeration as a
// plain triple loop.
func buildDispatchTable(prime, maxDisks int) [][][]handlerFunc {
	table := make([][][]handlerFunc, maxDisks-2) // index 0 => numDisk=3
	for d := 3; d <= maxDisks; d++ {
		numDisk := d
		row := make([][]handlerFunc, maxDisks)
		for m1 := 0; m1 < numDisk; m1++ {
			cells := make([]handlerFunc, maxDisks)
			for m2 := m1; m2 < numDisk; m2++ {
				cells[m2] = handlerFor(m1, m2)
			}
			row[m1] = cells
		}
		table[d-3] = row
	}
	return table
}

func handlerFor(m1, m2 int) handlerFunc {
	switch {
	case m1 == 0 && m2 == 0:
		return func(words [][]T, prime, numDisk int) {
			runStripes(words, prime, func(b stripe) { buildDiagonal(b, prime, numDisk) })
		}
	case m1 == 1 && m2 == 1:
		return func(words [][]T, prime, numDisk int) {
			runStripes(words, prime, func(b stripe) { buildRow(b, prime, numDisk) })
		}
	case m1 == 0 && m2 == 1:
		return func(words [][]T, prime, numDisk int) {
			runStripes(words, prime, func(b stripe) { recoverDR(b, prime, numDisk) })
		}
	case m1 == 0 && m2 >= 2:
		return func(words [][]T, prime, numDisk int) {
			runStripes(words, prime, func(b stripe) { recoverDX(b, prime, numDisk, m2) })
		}
	case m1 == 1 && m2 >= 2:
		return func(words [][]T, prime, numDisk int) {
			runStripes(words, prime, func(b stripe) { recoverRX(b, prime, numDisk, m2) })
		}
	case m1 == m2 && m1 >= 2:
		return func(words [][]T, prime, numDisk int) {
			runStripes(words, prime, func(b stripe) { recoverOneFromDiagonal(b, prime, numDisk, m1) })
		}
	case m1 >= 2 && m2 > m1:
		return func(words [][]T, prime, numDisk int) {
			runStripes(words, prime, func(b stripe) { recoverXX(b, prime, numDisk, m1, m2) })
		}
	default:
		return nil
	}
}
