package wiener

import (
	"fmt"
	"math/big"
)

// Isqrt returns the integer square root floor(sqrt(n)) of a non-negative
// arbitrary-precision integer using Newton's method over integers only.
// No floating point is involved, so the result is exact at any magnitude.
func Isqrt(n *big.Int) (*big.Int, error) {
	if n == nil || n.Sign() < 0 {
		return nil, fmt.Errorf("%w: square root of negative number", ErrInvalidInput)
	}
	if n.Sign() == 0 {
		return new(big.Int), nil
	}

	// Initial guess: 2^(ceil(bitlen/2)) >= sqrt(n), so the iteration
	// converges monotonically from above.
	x := new(big.Int).Lsh(big.NewInt(1), uint(n.BitLen()+1)/2)

	// x_{k+1} = (x_k + n/x_k) / 2, stop once the sequence stops decreasing.
	t := new(big.Int)
	for {
		t.Quo(n, x)
		t.Add(t, x)
		t.Rsh(t, 1)
		if t.Cmp(x) >= 0 {
			return x, nil
		}
		x, t = t, x
	}
}

// isPerfectSquare reports whether n is a perfect square, returning its exact
// root when it is.
func isPerfectSquare(n *big.Int) (*big.Int, bool) {
	if n.Sign() < 0 {
		return nil, false
	}
	s, err := Isqrt(n)
	if err != nil {
		return nil, false
	}
	sq := new(big.Int).Mul(s, s)
	if sq.Cmp(n) != 0 {
		return nil, false
	}
	return s, true
}
