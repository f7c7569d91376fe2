package raid6

import "testing"

func TestMod(t *testing.T) {
	cases := []struct {
		v, m, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{-1, 5, 4},
		{-5, 5, 0},
		{-6, 5, 4},
	}
	for _, c := range cases {
		if got := mod(c.v, c.m); got != c.want {
			t.Errorf("mod(%d, %d) = %d, want %d", c.v, c.m, got, c.want)
		}
	}
}

func TestRowXOR(t *testing.T) {
	b := stripe{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	}
	if got, want := rowXOR(b, 0, 3, 0), T(1^5^9); got != want {
		t.Errorf("rowXOR = %d, want %d", got, want)
	}
	if got := rowXOR(b, 0, 0, 0); got != 0 {
		t.Errorf("rowXOR with xCount=0 = %d, want 0", got)
	}
}

func TestDiagXORPhantomRow(t *testing.T) {
	const prime = 5
	b := stripe{
		{100, 101, 102, 103},
		{200, 201, 202, 203},
	}
	// y == prime-1 is the phantom seed row: disk 0's own contribution
	// (k=0) is skipped, only disk 1's row (prime-2) is read.
	got := diagXOR(b, 0, 2, prime-1, prime)
	want := b[1][prime-2]
	if got != want {
		t.Errorf("diagXOR at phantom row = %d, want %d", got, want)
	}
}

func TestDiagXORWraps(t *testing.T) {
	const prime = 5
	b := stripe{
		{1, 2, 3, 4},
		{10, 20, 30, 40},
		{100, 200, 300, 400},
	}
	// y=0, xCount=3: idx sequence is 0, then wraps to prime-1 (phantom,
	// skipped), then prime-2.
	got := diagXOR(b, 0, 3, 0, prime)
	want := b[0][0] ^ b[2][prime-2]
	if got != want {
		t.Errorf("diagXOR with wrap = %d, want %d", got, want)
	}
}

func TestB0At(t *testing.T) {
	const prime = 5
	b := stripe{{7, 8, 9, 10}}
	if got := b0At(b, prime-1, prime); got != 0 {
		t.Errorf("b0At at phantom row = %d, want 0", got)
	}
	if got, want := b0At(b, 2, prime), T(9); got != want {
		t.Errorf("b0At(2) = %d, want %d", got, want)
	}
}
