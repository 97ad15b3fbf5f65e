package rsautil

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// DefaultExponent is the public exponent used for normal key pairs.
const DefaultExponent = 65537

var one = big.NewInt(1)

// KeyPair holds a complete RSA key pair, including the intermediate values
// (p, q, phi) that a real key generator would discard.
type KeyPair struct {
	N   *big.Int // Public modulus p*q
	E   *big.Int // Public exponent
	D   *big.Int // Private exponent
	P   *big.Int // First prime factor
	Q   *big.Int // Second prime factor
	Phi *big.Int // Euler totient (p-1)(q-1)
}

// GenerateVulnerableKey generates an RSA key pair that is vulnerable to
// Wiener's attack: the private exponent d is chosen below N^(1/4)/3 and the
// public exponent is derived as e = d^-1 mod phi.
//
// The primes satisfy q < p < 2q, the balance assumption under which the
// attack bound holds.
func GenerateVulnerableKey(bits int) (*KeyPair, error) {
	if bits < 128 {
		return nil, errors.New("key size must be at least 128 bits")
	}

	for {
		p, q, err := generatePrimePair(bits)
		if err != nil {
			return nil, err
		}

		n := new(big.Int).Mul(p, q)
		phi := totient(p, q)

		d, err := smallPrivateExponent(n, phi)
		if err != nil {
			// Prime pair left no room for a valid small d; retry.
			continue
		}

		e := new(big.Int).ModInverse(d, phi)
		if e == nil {
			continue
		}

		return &KeyPair{N: n, E: e, D: d, P: p, Q: q, Phi: phi}, nil
	}
}

// GenerateKey generates a normal RSA key pair with e = 65537. Its private
// exponent is of full size, so the key is not vulnerable to Wiener's attack.
func GenerateKey(bits int) (*KeyPair, error) {
	if bits < 128 {
		return nil, errors.New("key size must be at least 128 bits")
	}
	e := big.NewInt(DefaultExponent)

	for {
		p, q, err := generatePrimePair(bits)
		if err != nil {
			return nil, err
		}

		phi := totient(p, q)
		d := new(big.Int).ModInverse(e, phi)
		if d == nil {
			// e divides phi; pick fresh primes.
			continue
		}

		return &KeyPair{
			N:   new(big.Int).Mul(p, q),
			E:   new(big.Int).Set(e),
			D:   d,
			P:   p,
			Q:   q,
			Phi: phi,
		}, nil
	}
}

// generatePrimePair returns distinct primes p, q of bits/2 bits each with
// q < p < 2q.
func generatePrimePair(bits int) (p, q *big.Int, err error) {
	two := big.NewInt(2)
	for {
		p, err = rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate prime: %w", err)
		}
		q, err = rand.Prime(rand.Reader, bits/2)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate prime: %w", err)
		}

		if p.Cmp(q) < 0 {
			p, q = q, p
		}
		if p.Cmp(q) == 0 {
			continue
		}
		// q < p < 2q keeps the factors balanced.
		if p.Cmp(new(big.Int).Mul(two, q)) < 0 {
			return p, q, nil
		}
	}
}

// smallPrivateExponent picks a random d coprime to phi with 81*d^4 < N,
// i.e. strictly inside the d < N^(1/4)/3 bound that guarantees recovery.
func smallPrivateExponent(n, phi *big.Int) (*big.Int, error) {
	// bound = isqrt(isqrt(N)) / 3
	bound := new(big.Int).Sqrt(new(big.Int).Sqrt(n))
	bound.Quo(bound, big.NewInt(3))
	if bound.Cmp(big.NewInt(3)) <= 0 {
		return nil, errors.New("modulus too small for a usable private exponent")
	}

	for i := 0; i < 1000; i++ {
		d, err := rand.Int(rand.Reader, bound)
		if err != nil {
			return nil, fmt.Errorf("failed to generate private exponent: %w", err)
		}
		if d.Cmp(big.NewInt(2)) <= 0 {
			continue
		}
		if new(big.Int).GCD(nil, nil, d, phi).Cmp(one) == 0 {
			return d, nil
		}
	}
	return nil, errors.New("no small private exponent coprime to phi found")
}

// totient returns (p-1)(q-1).
func totient(p, q *big.Int) *big.Int {
	pMinusOne := new(big.Int).Sub(p, one)
	qMinusOne := new(big.Int).Sub(q, one)
	return pMinusOne.Mul(pMinusOne, qMinusOne)
}
