// Package main provides the entry point for the wiener CLI.
//
// wiener recovers RSA private keys whose private exponent is small enough
// for Wiener's continued-fraction attack, and generates deliberately
// vulnerable key pairs for demonstrations.
//
// Usage:
//
//	wiener attack --modulus <N> --exponent <e>
//	wiener attack --key-file pubkey.json
//	wiener keygen --bits 1024
//
// See --help for all available options.
package main

// main is the entry point for the wiener CLI.
func main() {
	Execute()
}
