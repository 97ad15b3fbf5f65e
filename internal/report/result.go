package report

import (
	"math/big"
	"time"

	"github.com/tmajstor/rsa-wiener/pkg/wiener"
)

// Result is the presentation form of a successful recovery. All integers are
// decimal strings so the report survives JSON/YAML round-trips without
// precision loss.
type Result struct {
	Modulus         string        `json:"n"`
	PublicExponent  string        `json:"e"`
	P               string        `json:"p"`
	Q               string        `json:"q"`
	PrivateExponent string        `json:"d"`
	Phi             string        `json:"phi"`
	ConvergentIndex int           `json:"convergent_index"`
	Strategy        string        `json:"strategy"`
	Elapsed         time.Duration `json:"elapsed_ns"`
}

// NewResult builds a Result from the attacked public key and the recovered
// private key material.
func NewResult(n, e *big.Int, key *wiener.RecoveredKey, strategy string, elapsed time.Duration) *Result {
	return &Result{
		Modulus:         n.String(),
		PublicExponent:  e.String(),
		P:               key.P.String(),
		Q:               key.Q.String(),
		PrivateExponent: key.D.String(),
		Phi:             key.Phi.String(),
		ConvergentIndex: key.ConvergentIndex,
		Strategy:        strategy,
		Elapsed:         elapsed,
	}
}
