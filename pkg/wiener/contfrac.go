package wiener

import (
	"fmt"
	"math/big"
)

// Convergent is a rational approximation n/d obtained by truncating a
// continued fraction expansion. For the expansion of e/N the convergents
// approximate k/d, the pair Wiener's attack is after.
type Convergent struct {
	N *big.Int // numerator
	D *big.Int // denominator
}

// ContinuedFraction represents a rational fraction num/den together with its
// continued fraction expansion. The expansion is computed on first use and
// cached, since the convergent generator consumes it again.
type ContinuedFraction struct {
	num, den  *big.Int
	expansion []*big.Int
}

// NewContinuedFraction stores the fraction num/den for expansion.
// The denominator must be positive and the numerator non-negative;
// the inputs are copied so later mutation by the caller has no effect.
func NewContinuedFraction(num, den *big.Int) (*ContinuedFraction, error) {
	if num == nil || den == nil {
		return nil, fmt.Errorf("%w: numerator and denominator are required", ErrInvalidInput)
	}
	if den.Sign() <= 0 {
		return nil, fmt.Errorf("%w: denominator must be positive, got %s", ErrInvalidInput, den)
	}
	if num.Sign() < 0 {
		return nil, fmt.Errorf("%w: numerator must be non-negative, got %s", ErrInvalidInput, num)
	}
	return &ContinuedFraction{
		num: new(big.Int).Set(num),
		den: new(big.Int).Set(den),
	}, nil
}

// Expansion returns the continued fraction coefficients [q0; q1, q2, ...]
// of num/den. A rational fraction always has a finite expansion, produced
// here by the Euclidean algorithm so no precision is ever lost.
//
// The result is computed once and cached; callers must not modify it.
func (cf *ContinuedFraction) Expansion() []*big.Int {
	if cf.expansion != nil {
		return cf.expansion
	}

	var coeffs []*big.Int

	a := new(big.Int).Set(cf.num)
	b := new(big.Int).Set(cf.den)
	for b.Sign() != 0 {
		q, r := new(big.Int).QuoRem(a, b, new(big.Int))
		coeffs = append(coeffs, q)
		a, b = b, r
	}

	cf.expansion = coeffs
	return coeffs
}

// Convergents returns the convergents of the fraction, in increasing index
// order. The last convergent always equals the fraction in lowest terms.
func (cf *ContinuedFraction) Convergents() []Convergent {
	return Convergents(cf.Expansion())
}

// Expand computes the continued fraction expansion of num/den. It is a
// convenience wrapper for callers that do not need the cached form.
func Expand(num, den *big.Int) ([]*big.Int, error) {
	cf, err := NewContinuedFraction(num, den)
	if err != nil {
		return nil, err
	}
	return cf.Expansion(), nil
}

// Convergents computes every convergent of a continued fraction expansion
// using the standard second-order recurrence:
//
//	n_i = q_i * n_{i-1} + n_{i-2}
//	d_i = q_i * d_{i-1} + d_{i-2}
//
// with n_0 = q_0, d_0 = 1 and n_1 = q_1*q_0 + 1, d_1 = q_1. An empty
// expansion yields an empty slice. The expansion is short (O(log N) terms),
// so the full slice is materialized rather than generated lazily.
func Convergents(expansion []*big.Int) []Convergent {
	convs := make([]Convergent, 0, len(expansion))

	for i, q := range expansion {
		var n, d *big.Int
		switch i {
		case 0:
			n = new(big.Int).Set(q)
			d = big.NewInt(1)
		case 1:
			n = new(big.Int).Mul(q, expansion[0])
			n.Add(n, big.NewInt(1))
			d = new(big.Int).Set(q)
		default:
			n = new(big.Int).Mul(q, convs[i-1].N)
			n.Add(n, convs[i-2].N)
			d = new(big.Int).Mul(q, convs[i-1].D)
			d.Add(d, convs[i-2].D)
		}
		convs = append(convs, Convergent{N: n, D: d})
	}

	return convs
}
