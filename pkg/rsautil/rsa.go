package rsautil

import (
	"errors"
	"math/big"
)

// Encrypt encrypts a message with the public key (N, e) using textbook RSA:
// c = m^e mod N. No padding is applied.
func Encrypt(n, e *big.Int, msg []byte) ([]byte, error) {
	if len(msg) > n.BitLen()/8 {
		return nil, errors.New("message too large for modulus")
	}
	m := new(big.Int).SetBytes(msg)
	if m.Cmp(n) >= 0 {
		return nil, errors.New("message too large for modulus")
	}
	return m.Exp(m, e, n).Bytes(), nil
}

// Decrypt decrypts a ciphertext with the private key (N, d): m = c^d mod N.
func Decrypt(n, d *big.Int, ciphertext []byte) ([]byte, error) {
	c := new(big.Int).SetBytes(ciphertext)
	if c.Cmp(n) >= 0 {
		return nil, errors.New("ciphertext too large for modulus")
	}
	return c.Exp(c, d, n).Bytes(), nil
}
