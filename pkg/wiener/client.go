package wiener

import (
	"context"
	"fmt"
	"math/big"
)

// Client provides a high-level API for key recovery operations.
type Client struct {
	strategy SearchStrategy
	parser   KeyParser
}

// NewClient creates a new client with default settings: a sequential
// convergent scan and a JSON key parser.
func NewClient() *Client {
	return &Client{
		strategy: &SequentialStrategy{},
		parser:   &JSONParser{},
	}
}

// WithStrategy sets a custom search strategy.
func (c *Client) WithStrategy(strategy SearchStrategy) *Client {
	c.strategy = strategy
	return c
}

// WithParser sets a custom public key parser.
func (c *Client) WithParser(parser KeyParser) *Client {
	c.parser = parser
	return c
}

// RecoverKey loads a public key from a file and attempts to recover the
// private key behind it.
//
// Args:
//   - ctx: Context for cancellation.
//   - source: Path to the public key file (JSON or YAML, per the parser).
//
// Returns:
//   - RecoveredKey if successful, error otherwise.
func (c *Client) RecoverKey(ctx context.Context, source string) (*RecoveredKey, error) {
	pub, err := c.parser.ParsePublicKey(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse public key: %w", err)
	}
	return c.RecoverKeyFromPublicKey(ctx, pub.N, pub.E)
}

// RecoverKeyFromPublicKey attempts to recover the private key behind an
// in-memory public key (N, e). Use this when the key was obtained elsewhere
// (e.g. from your own parser or API).
func (c *Client) RecoverKeyFromPublicKey(ctx context.Context, n, e *big.Int) (*RecoveredKey, error) {
	if n == nil || n.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus N must be positive", ErrInvalidInput)
	}
	if e == nil || e.Sign() <= 0 {
		return nil, fmt.Errorf("%w: public exponent e must be positive", ErrInvalidInput)
	}

	cf, err := NewContinuedFraction(e, n)
	if err != nil {
		return nil, err
	}

	key := c.strategy.Search(ctx, e, n, cf.Convergents())
	if key == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, ErrAttackFailed
	}
	return key, nil
}
