package raid6

// The six stripe-operator families from spec.md §4.2. Each operates on
// a single stripe view; block.go drives them once per stripe across a
// whole buffer. All take numDisk (D) explicitly since an Engine's
// dispatch table is parameterized over it rather than baked in at
// compile time the way the reference C++ templates are.

// buildRow writes disk rowIdx from the XOR of all data disks, row by
// row: B[1][y] = XOR(B[2..D-1][y]).
func buildRow(b stripe, prime, numDisk int) {
	for y := 0; y < prime-1; y++ {
		b[rowIdx][y] = rowXOR(b, 2, numDisk-2, y)
	}
}

// buildDiagonal writes disk diaIdx from the diagonal XOR of all data
// disks plus the stripe-wide syndrome S, and returns S. S is the XOR of
// every data cell that falls on the phantom diagonal (the one whose
// row on disk x would be x's "missing" row).
func buildDiagonal(b stripe, prime, numDisk int) T {
	s := diagXOR(b, 2, numDisk-2, prime-1, prime)
	for y := 0; y < prime-1; y++ {
		b[diaIdx][y] = diagXOR(b, 2, numDisk-2, y, prime) ^ s
	}
	return s
}

// recoverOneFromRow reconstructs one missing data disk m (m >= 2) from
// the row-parity equation. Requires disk rowIdx and every disk other
// than m to be valid.
func recoverOneFromRow(b stripe, prime, numDisk, m int) {
	for y := 0; y < prime-1; y++ {
		b[m][y] = rowXOR(b, rowIdx, m-rowIdx, y) ^ rowXOR(b, m+1, numDisk-m-1, y)
	}
}

// recoverOneFromDiagonal reconstructs one missing data disk m (m >= 2)
// from the diagonal-parity equation. Requires disk diaIdx and every
// disk other than m to be valid.
//
// The stripe-wide syndrome S is read once from a diagonal that never
// touches column m: the diagonal whose column-m element falls on the
// phantom row. That row is (m-3) mod prime; evaluating the diagonal
// equation there (or, if it's itself the phantom row, falling back to
// the bare syndrome definition) pins S without needing the missing
// column at all. Every other row is then solved directly from S plus
// the surviving columns on both sides of m — no value is carried
// forward between rows.
func recoverOneFromDiagonal(b stripe, prime, numDisk, m int) {
	r0 := mod(m-3, prime)
	s := diagXOR(b, 2, numDisk-2, r0, prime)
	if r0 != prime-1 {
		s ^= b[diaIdx][r0]
	}
	for y := 0; y < prime-1; y++ {
		yd := mod(y+m-2, prime)
		b[m][y] = b0At(b, yd, prime) ^ s ^
			diagXOR(b, 2, m-2, yd, prime) ^
			diagXOR(b, m+1, numDisk-m-1, mod(y-1, prime), prime)
	}
}

// recoverDR rebuilds both parity disks from intact data.
func recoverDR(b stripe, prime, numDisk int) {
	buildRow(b, prime, numDisk)
	buildDiagonal(b, prime, numDisk)
}

// recoverDX rebuilds diagonal parity and one missing data disk m. Since
// diagonal parity is itself missing, m must be recovered from the row
// equation first.
func recoverDX(b stripe, prime, numDisk, m int) {
	recoverOneFromRow(b, prime, numDisk, m)
	buildDiagonal(b, prime, numDisk)
}

// recoverRX rebuilds row parity and one missing data disk m. Since row
// parity is itself missing, m must be recovered from the diagonal
// equation first.
func recoverRX(b stripe, prime, numDisk, m int) {
	recoverOneFromDiagonal(b, prime, numDisk, m)
	buildRow(b, prime, numDisk)
}

// recoverXX rebuilds two missing data disks m1 < m2, both parities
// intact. It walks every valid row exactly once, alternately solving
// m1 from the diagonal equation and m2 from the row equation, in the
// order that lets each diagonal solve depend only on already-recovered
// or surviving cells: gcd(m2-m1, prime) = 1 (prime is prime) makes that
// walk a single cycle covering all prime-1 rows.
func recoverXX(b stripe, prime, numDisk, m1, m2 int) {
	var s T
	for y := 0; y < prime-1; y++ {
		s ^= b[diaIdx][y] ^ b[rowIdx][y]
	}

	d := mod(m2-m1, prime)
	cur := mod(d-1, prime)
	for step := 0; step < prime-1; step++ {
		yDia := mod(cur+m1-2, prime)
		b[m1][cur] = b0At(b, yDia, prime) ^ s ^
			diagXOR(b, 2, m1-2, yDia, prime) ^
			diagXOR(b, m1+1, numDisk-m1-1, mod(cur-1, prime), prime)
		b[m2][cur] = rowXOR(b, rowIdx, m2-rowIdx, cur) ^ rowXOR(b, m2+1, numDisk-m2-1, cur)
		cur = mod(cur+d, prime)
	}
}
