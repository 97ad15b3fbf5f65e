// Package rsautil provides the RSA collaborators around the attack core:
// key-pair generation (including deliberately vulnerable keys with a small
// private exponent) and textbook modular-exponentiation encryption without
// padding. It exists for demos and tests; it is not a hardened RSA
// implementation.
package rsautil
