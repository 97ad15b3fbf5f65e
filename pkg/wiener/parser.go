package wiener

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// PublicKey is an RSA public key (N, e) as consumed by the attack.
type PublicKey struct {
	N *big.Int // Public modulus
	E *big.Int // Public exponent
}

// KeyParser defines the interface for loading public keys from various sources.
type KeyParser interface {
	// ParsePublicKey reads a public key from a source and returns it.
	ParsePublicKey(source string) (*PublicKey, error)
}

// JSONParser loads public keys from JSON files.
type JSONParser struct {
	NField string // Field name for the modulus (default: "n")
	EField string // Field name for the exponent (default: "e")
}

// ParsePublicKey parses a public key from a JSON file.
//
// Expected format:
//
//	{"n": "0x...", "e": 65537}
//
// Values may be decimal strings, 0x-prefixed hex strings, or numbers.
func (p *JSONParser) ParsePublicKey(jsonFile string) (*PublicKey, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	decoder.UseNumber() // Preserve large numbers as json.Number instead of float64

	var item map[string]interface{}
	if err := decoder.Decode(&item); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return publicKeyFromFields(item, p.NField, p.EField)
}

// YAMLParser loads public keys from YAML files.
type YAMLParser struct {
	NField string // Field name for the modulus (default: "n")
	EField string // Field name for the exponent (default: "e")
}

// ParsePublicKey parses a public key from a YAML file.
//
// Expected format:
//
//	n: "0x..."
//	e: 65537
func (p *YAMLParser) ParsePublicKey(yamlFile string) (*PublicKey, error) {
	data, err := os.ReadFile(yamlFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var item map[string]interface{}
	if err := yaml.Unmarshal(data, &item); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return publicKeyFromFields(item, p.NField, p.EField)
}

// publicKeyFromFields extracts (N, e) from a decoded key-value document.
func publicKeyFromFields(item map[string]interface{}, nField, eField string) (*PublicKey, error) {
	if nField == "" {
		nField = "n"
	}
	if eField == "" {
		eField = "e"
	}

	nVal, ok := item[nField]
	if !ok {
		return nil, fmt.Errorf("missing %s field", nField)
	}
	n, err := parseBigInt(nVal)
	if err != nil {
		return nil, fmt.Errorf("failed to parse modulus: %w", err)
	}

	eVal, ok := item[eField]
	if !ok {
		return nil, fmt.Errorf("missing %s field", eField)
	}
	e, err := parseBigInt(eVal)
	if err != nil {
		return nil, fmt.Errorf("failed to parse exponent: %w", err)
	}

	return &PublicKey{N: n, E: e}, nil
}

// parseBigInt parses a big integer from various formats (hex string, decimal string, number).
func parseBigInt(val interface{}) (*big.Int, error) {
	switch v := val.(type) {
	case string:
		// Remove 0x prefix if present
		hadPrefix := strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X")
		s := strings.TrimPrefix(v, "0x")
		s = strings.TrimPrefix(s, "0X")

		// Try hex first
		if hadPrefix || strings.ContainsAny(s, "abcdefABCDEF") {
			if len(s)%2 == 1 {
				s = "0" + s
			}
			bytes, err := hex.DecodeString(s)
			if err != nil {
				// Try as decimal
				z := new(big.Int)
				if _, ok := z.SetString(s, 10); !ok {
					return nil, fmt.Errorf("invalid number format: %s", v)
				}
				return z, nil
			}
			return new(big.Int).SetBytes(bytes), nil
		}

		// Try decimal
		z := new(big.Int)
		if _, ok := z.SetString(s, 10); !ok {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		return z, nil

	case json.Number:
		z := new(big.Int)
		if _, ok := z.SetString(string(v), 10); !ok {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		return z, nil

	case float64:
		s := fmt.Sprintf("%.0f", v)
		z := new(big.Int)
		if _, ok := z.SetString(s, 10); !ok {
			return nil, fmt.Errorf("invalid number format: %v", v)
		}
		return z, nil

	case int64:
		return big.NewInt(v), nil

	case int:
		return big.NewInt(int64(v)), nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", val)
	}
}
