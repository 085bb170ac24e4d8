package geometry

import (
	"math"
	"math/big"
)

// Error bounds for the floating point fast path (Shewchuk, "Adaptive
// Precision Floating-Point Arithmetic and Fast Robust Geometric Predicates").
// When the fast result is inside the bound the sign is recomputed exactly.
const (
	machEpsilon  = 1.0 / (1 << 53)
	ccwErrBoundA = (3.0 + 16.0*machEpsilon) * machEpsilon
)

// orient returns +1 if a, b, c turn counter-clockwise, -1 if clockwise and 0
// if they are collinear. The sign is exact.
func orient(a, b, c Point) int {
	detLeft := (a.X - c.X) * (b.Y - c.Y)
	detRight := (a.Y - c.Y) * (b.X - c.X)
	det := detLeft - detRight
	errBound := ccwErrBoundA * (math.Abs(detLeft) + math.Abs(detRight))
	if !math.IsNaN(det) && !math.IsInf(errBound, 0) && math.Abs(det) > errBound {
		return sign(det)
	}
	return orientExact(a, b, c)
}

func orientExact(a, b, c Point) int {
	acx := ratSub(a.X, c.X)
	bcy := ratSub(b.Y, c.Y)
	acy := ratSub(a.Y, c.Y)
	bcx := ratSub(b.X, c.X)

	left := new(big.Rat).Mul(acx, bcy)
	right := new(big.Rat).Mul(acy, bcx)
	return left.Sub(left, right).Sign()
}

func ratSub(a, b float64) *big.Rat {
	r := new(big.Rat).SetFloat64(a)
	return r.Sub(r, new(big.Rat).SetFloat64(b))
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
