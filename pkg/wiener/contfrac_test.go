package wiener

import (
	"errors"
	"math/big"
	"testing"
)

// knownExpansion is the continued fraction expansion of 40009/98407.
var knownExpansion = []int64{0, 2, 2, 5, 1, 2, 4, 6, 2, 18}

// knownConvergents are the convergents of 40009/98407, in order.
var knownConvergents = [][2]int64{
	{0, 1}, {1, 2}, {2, 5}, {11, 27}, {13, 32}, {37, 91},
	{161, 396}, {1003, 2467}, {2167, 5330}, {40009, 98407},
}

func TestExpand(t *testing.T) {
	expansion, err := Expand(big.NewInt(40009), big.NewInt(98407))
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}

	if len(expansion) != len(knownExpansion) {
		t.Fatalf("Expected %d coefficients, got %d", len(knownExpansion), len(expansion))
	}
	for i, want := range knownExpansion {
		if expansion[i].Cmp(big.NewInt(want)) != 0 {
			t.Errorf("Coefficient %d: got %s, want %d", i, expansion[i], want)
		}
	}
}

func TestExpand_ZeroNumerator(t *testing.T) {
	expansion, err := Expand(big.NewInt(0), big.NewInt(7))
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	if len(expansion) != 1 || expansion[0].Sign() != 0 {
		t.Errorf("Expected [0], got %v", expansion)
	}
}

func TestExpand_InvalidInput(t *testing.T) {
	cases := []struct {
		name     string
		num, den int64
	}{
		{"zero denominator", 3, 0},
		{"negative denominator", 3, -5},
		{"negative numerator", -3, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Expand(big.NewInt(tc.num), big.NewInt(tc.den))
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("Expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestExpand_Reconstruct(t *testing.T) {
	// Evaluating the expansion as a continued fraction must reproduce the
	// original fraction exactly.
	cases := [][2]int64{
		{40009, 98407},
		{1, 1},
		{7, 3},
		{355, 113},
		{17993, 90581},
	}

	for _, tc := range cases {
		expansion, err := Expand(big.NewInt(tc[0]), big.NewInt(tc[1]))
		if err != nil {
			t.Fatalf("Expand(%d, %d) failed: %v", tc[0], tc[1], err)
		}

		// Fold from the last coefficient: value = q_i + 1/value.
		value := new(big.Rat).SetInt(expansion[len(expansion)-1])
		for i := len(expansion) - 2; i >= 0; i-- {
			value.Inv(value)
			value.Add(value, new(big.Rat).SetInt(expansion[i]))
		}

		want := big.NewRat(tc[0], tc[1])
		if value.Cmp(want) != 0 {
			t.Errorf("Expansion of %d/%d folds back to %s, want %s", tc[0], tc[1], value, want)
		}
	}
}

func TestConvergents(t *testing.T) {
	cf, err := NewContinuedFraction(big.NewInt(40009), big.NewInt(98407))
	if err != nil {
		t.Fatalf("NewContinuedFraction failed: %v", err)
	}

	convs := cf.Convergents()
	if len(convs) != len(knownConvergents) {
		t.Fatalf("Expected %d convergents, got %d", len(knownConvergents), len(convs))
	}
	for i, want := range knownConvergents {
		if convs[i].N.Cmp(big.NewInt(want[0])) != 0 || convs[i].D.Cmp(big.NewInt(want[1])) != 0 {
			t.Errorf("Convergent %d: got %s/%s, want %d/%d", i, convs[i].N, convs[i].D, want[0], want[1])
		}
	}
}

func TestConvergents_Empty(t *testing.T) {
	if convs := Convergents(nil); len(convs) != 0 {
		t.Errorf("Expected empty sequence, got %d convergents", len(convs))
	}
}

func TestConvergents_CrossProduct(t *testing.T) {
	// Consecutive genuine convergents satisfy n_i*d_{i-1} - n_{i-1}*d_i = ±1.
	expansion, err := Expand(big.NewInt(40009), big.NewInt(98407))
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	convs := Convergents(expansion)

	one := big.NewInt(1)
	for i := 1; i < len(convs); i++ {
		left := new(big.Int).Mul(convs[i].N, convs[i-1].D)
		right := new(big.Int).Mul(convs[i-1].N, convs[i].D)
		diff := left.Sub(left, right)
		if new(big.Int).Abs(diff).Cmp(one) != 0 {
			t.Errorf("Cross product at index %d is %s, want ±1", i, diff)
		}
	}
}

func TestConvergents_DenominatorsIncrease(t *testing.T) {
	expansion, err := Expand(big.NewInt(17993), big.NewInt(90581))
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	convs := Convergents(expansion)

	for i := 1; i < len(convs); i++ {
		if convs[i].D.Cmp(convs[i-1].D) <= 0 {
			t.Errorf("Denominator at index %d (%s) does not exceed predecessor (%s)",
				i, convs[i].D, convs[i-1].D)
		}
	}
}

func TestConvergents_LastEqualsReducedFraction(t *testing.T) {
	// The final convergent of any fraction equals the fraction in lowest terms.
	num, den := big.NewInt(40009*3), big.NewInt(98407*3)
	expansion, err := Expand(num, den)
	if err != nil {
		t.Fatalf("Expand failed: %v", err)
	}
	convs := Convergents(expansion)

	last := convs[len(convs)-1]
	if last.N.Cmp(big.NewInt(40009)) != 0 || last.D.Cmp(big.NewInt(98407)) != 0 {
		t.Errorf("Last convergent is %s/%s, want 40009/98407", last.N, last.D)
	}
}

func TestContinuedFraction_ExpansionCached(t *testing.T) {
	cf, err := NewContinuedFraction(big.NewInt(40009), big.NewInt(98407))
	if err != nil {
		t.Fatalf("NewContinuedFraction failed: %v", err)
	}

	first := cf.Expansion()
	second := cf.Expansion()
	if len(first) != len(second) {
		t.Fatalf("Cached expansion length changed: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("Expansion not cached: coefficient %d reallocated", i)
		}
	}
}
