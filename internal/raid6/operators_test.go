package raid6

import (
	"math/rand"
	"testing"
)

// cloneStripe deep-copies a stripe so a recovered copy can be compared
// against the untouched original.
func cloneStripe(b stripe) stripe {
	out := make(stripe, len(b))
	for i, row := range b {
		out[i] = append([]T(nil), row...)
	}
	return out
}

// fullStripe builds a numDisk x (prime-1) stripe with random data on
// disks 2..numDisk-1 and valid parity on disks 0 and 1.
func fullStripe(prime, numDisk int, rng *rand.Rand) stripe {
	b := make(stripe, numDisk)
	for x := range b {
		b[x] = make([]T, prime-1)
	}
	for x := 2; x < numDisk; x++ {
		for y := range b[x] {
			b[x][y] = T(rng.Uint64())
		}
	}
	buildRow(b, prime, numDisk)
	buildDiagonal(b, prime, numDisk)
	return b
}

func zeroRow(b stripe, x int) {
	for y := range b[x] {
		b[x][y] = 0
	}
}

func TestBuildRowBuildDiagonalSelfConsistent(t *testing.T) {
	const prime = 17
	rng := rand.New(rand.NewSource(1))
	for _, numDisk := range []int{3, 4, 5, 8} {
		orig := fullStripe(prime, numDisk, rng)

		// Zeroing and rebuilding both parity disks from the same data
		// must reproduce the original parity exactly.
		rebuilt := cloneStripe(orig)
		zeroRow(rebuilt, diaIdx)
		zeroRow(rebuilt, rowIdx)
		buildRow(rebuilt, prime, numDisk)
		buildDiagonal(rebuilt, prime, numDisk)
		assertStripeEqual(t, orig, rebuilt, diaIdx)
		assertStripeEqual(t, orig, rebuilt, rowIdx)
	}
}

func assertStripeEqual(t *testing.T, want, got stripe, x int) {
	t.Helper()
	for y := range want[x] {
		if want[x][y] != got[x][y] {
			t.Fatalf("disk %d row %d: want %d, got %d", x, y, want[x][y], got[x][y])
		}
	}
}

// TestOperatorsFullSweep exercises every (numDisk, miss1, miss2)
// combination directly against the operator functions (bypassing the
// dispatch table and block driver), confirming each recovers its
// target disk(s) to exactly the original stripe content. Generalizes
// spec.md §8 scenario S6 to every disk count the reference
// configuration supports, the way raid6_test.cpp's runTest sweeps the
// same space. See facade_test.go for the block/Engine-level version of
// this sweep.
func TestOperatorsFullSweep(t *testing.T) {
	const prime = 17
	rng := rand.New(rand.NewSource(2))

	for _, numDisk := range []int{3, 4, 5, 6, 7, 8} {
		orig := fullStripe(prime, numDisk, rng)

		for m1 := 0; m1 < numDisk; m1++ {
			for m2 := m1; m2 < numDisk; m2++ {
				b := cloneStripe(orig)
				zeroRow(b, m1)
				zeroRow(b, m2)

				switch {
				case numDisk == 3:
					notMissing := 0
					if m1 > 0 {
						notMissing = 0
					} else if m2 < 2 {
						notMissing = 2
					} else {
						notMissing = 1
					}
					copy(b[m1], orig[notMissing])
					copy(b[m2], orig[notMissing])
				case m1 == 0 && m2 == 0:
					buildDiagonal(b, prime, numDisk)
				case m1 == 1 && m2 == 1:
					buildRow(b, prime, numDisk)
				case m1 == 0 && m2 == 1:
					recoverDR(b, prime, numDisk)
				case m1 == 0 && m2 >= 2:
					recoverDX(b, prime, numDisk, m2)
				case m1 == 1 && m2 >= 2:
					recoverRX(b, prime, numDisk, m2)
				case m1 == m2 && m1 >= 2:
					recoverOneFromDiagonal(b, prime, numDisk, m1)
				case m1 >= 2 && m2 > m1:
					recoverXX(b, prime, numDisk, m1, m2)
				default:
					t.Fatalf("unhandled case numDisk=%d m1=%d m2=%d", numDisk, m1, m2)
				}

				assertStripeEqual(t, orig, b, m1)
				assertStripeEqual(t, orig, b, m2)
			}
		}
	}
}
