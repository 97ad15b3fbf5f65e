package wiener

import (
	"context"
	"math/big"
)

var one = big.NewInt(1)

// RecoveredKey is the result of a successful attack: the private key material
// reconstructed from the public key alone. It satisfies P*Q = N and
// e*D = 1 (mod Phi).
type RecoveredKey struct {
	P   *big.Int // First prime factor of N
	Q   *big.Int // Second prime factor of N
	D   *big.Int // Recovered private exponent
	Phi *big.Int // Euler totient (P-1)(Q-1)

	// ConvergentIndex is the position in the convergent sequence of e/N
	// that produced the key.
	ConvergentIndex int
}

// verifyCandidate tests one convergent (k_guess, d_guess) of e/N against the
// modulus. It derives a candidate totient, solves the characteristic quadratic
//
//	x^2 - (N - phi + 1)x + N = 0
//
// for candidate prime factors, and accepts only if their product is exactly N.
// It returns nil on any rejection; a non-nil result is always a valid
// factorization, never a false positive.
func verifyCandidate(e, n *big.Int, conv Convergent) *RecoveredKey {
	kGuess, dGuess := conv.N, conv.D

	// A zero multiplier cannot yield a totient.
	if kGuess.Sign() == 0 {
		return nil
	}

	// k*phi = e*d - 1, so phi = (e*d - 1) / k. For a correct guess the
	// division is exact; a nonzero remainder rejects immediately.
	ed := new(big.Int).Mul(e, dGuess)
	ed.Sub(ed, one)
	phiGuess, rem := new(big.Int).QuoRem(ed, kGuess, new(big.Int))
	if rem.Sign() != 0 {
		return nil
	}

	// p and q are the roots of x^2 - (N - phi + 1)x + N = 0.
	// sum = p + q, disc = sum^2 - 4N.
	sum := new(big.Int).Sub(n, phiGuess)
	sum.Add(sum, one)

	disc := new(big.Int).Mul(sum, sum)
	disc.Sub(disc, new(big.Int).Lsh(n, 2))
	if disc.Sign() < 0 {
		return nil
	}

	// Both roots are integers only if the discriminant is a perfect square.
	s, ok := isPerfectSquare(disc)
	if !ok {
		return nil
	}

	pGuess, pRem := new(big.Int).QuoRem(new(big.Int).Add(sum, s), big.NewInt(2), new(big.Int))
	if pRem.Sign() != 0 {
		return nil
	}
	qGuess, qRem := new(big.Int).QuoRem(new(big.Int).Sub(sum, s), big.NewInt(2), new(big.Int))
	if qRem.Sign() != 0 {
		return nil
	}

	// Prime factors are positive; a negative root pair can still multiply
	// to N and must not slip through.
	if pGuess.Sign() <= 0 || qGuess.Sign() <= 0 {
		return nil
	}

	// The decisive check.
	if new(big.Int).Mul(pGuess, qGuess).Cmp(n) != 0 {
		return nil
	}

	return &RecoveredKey{
		P:   pGuess,
		Q:   qGuess,
		D:   new(big.Int).Set(dGuess),
		Phi: phiGuess,
	}
}

// Attack attempts to recover the RSA private key behind the public key (N, e)
// via Wiener's attack. It expands e/N into a continued fraction, walks the
// convergents in order, and returns the first verified candidate.
//
// It returns ErrInvalidInput if N or e is not positive, and ErrAttackFailed
// if no convergent verifies. The search space is finite and fully determined,
// so failure is definitive: there is nothing to retry.
func Attack(ctx context.Context, n, e *big.Int) (*RecoveredKey, error) {
	return NewClient().RecoverKeyFromPublicKey(ctx, n, e)
}
