package binet

import (
	"math"
	"math/cmplx"
)

// Golden ratio constants used by Binet's formula.
var (
	// Sqrt5 is the square root of five.
	Sqrt5 = math.Sqrt(5)

	// Phi is the golden ratio (1+√5)/2.
	Phi = (1 + Sqrt5) / 2
)

// Binet evaluates the analytic continuation of the Fibonacci sequence
//
//	F(n) = (φⁿ − (−1/φ)ⁿ) / √5
//
// using principal-branch complex exponentiation. For non-negative integer n
// the real part is the nth Fibonacci number and the imaginary part is zero up
// to rounding.
//
// NaN or Inf inputs are not guarded; they propagate into the result.
func Binet(n complex128) complex128 {
	a := cmplx.Pow(complex(Phi, 0), n)
	b := cmplx.Pow(complex(-1/Phi, 0), n)
	d := a - b
	// Component-wise so an infinite real part stays infinite instead of
	// turning into NaN through complex division.
	return complex(real(d)/Sqrt5, imag(d)/Sqrt5)
}

// BinetReal evaluates Binet for a real exponent.
func BinetReal(n float64) complex128 {
	return Binet(complex(n, 0))
}
