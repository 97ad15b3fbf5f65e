// Package wiener recovers RSA private keys from public keys with an
// abnormally small private exponent using Wiener's continued-fraction attack.
//
// The attack works when the private exponent d is smaller than roughly
// N^(1/4)/3. In that case k/d appears among the convergents of the continued
// fraction expansion of e/N, so the key can be recovered by expanding e/N,
// walking its convergents in order, and verifying each candidate against
// the factorization of N.
//
// # Quick Start
//
//	import "github.com/tmajstor/rsa-wiener/pkg/wiener"
//
//	// Create a client with default settings
//	client := wiener.NewClient()
//
//	// Recover the private key from a public key (N, e)
//	key, err := client.RecoverKeyFromPublicKey(ctx, n, e)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("p: %s\nq: %s\nd: %s\n", key.P, key.Q, key.D)
//
// Public keys can also be loaded from JSON or YAML files:
//
//	key, err := client.RecoverKey(ctx, "pubkey.json")
//
// # Customization
//
// The convergent search is sequential by default. Verification of independent
// convergents can be fanned out across workers while preserving the
// lowest-index-wins result:
//
//	client := wiener.NewClient().WithStrategy(wiener.NewParallelStrategy().WithWorkers(8))
//
// # Custom Strategies
//
// Implement the SearchStrategy interface to control how convergents are
// searched:
//
//	type MyStrategy struct{}
//
//	func (s *MyStrategy) Search(ctx context.Context, e, n *big.Int, convergents []Convergent) *RecoveredKey {
//	    // Your custom search logic
//	}
//
//	func (s *MyStrategy) Name() string {
//	    return "MyCustomStrategy"
//	}
//
//	client := wiener.NewClient().WithStrategy(&MyStrategy{})
package wiener
