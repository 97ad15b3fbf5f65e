package wiener

import "errors"

// Sentinel errors returned by the attack core. Callers can match them with
// errors.Is even when they arrive wrapped with additional context.
var (
	// ErrInvalidInput is returned for malformed arguments: a non-positive
	// modulus or exponent passed to Attack, or a non-positive denominator
	// passed to the continued fraction expansion.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAttackFailed is returned when every convergent of e/N has been
	// tried without producing a verified factorization. The key is either
	// not vulnerable or d exceeds the N^(1/4)/3 bound under which the
	// attack is guaranteed to succeed.
	ErrAttackFailed = errors.New("wiener attack failed: no convergent yields a valid key")
)
