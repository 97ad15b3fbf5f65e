package report

import (
	"fmt"
	"io"
)

// Writer defines the interface for report output. Implementations write a
// recovery result in a particular format.
type Writer interface {
	// Write outputs the result to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(result *Result) (int, error)
}

// TextWriter outputs results as plain key/value text for terminal use.
type TextWriter struct {
	output io.Writer
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{output: output}
}

// Write outputs the result as plain text.
func (w *TextWriter) Write(result *Result) (int, error) {
	return fmt.Fprintf(w.output,
		"Recovered RSA private key (convergent #%d, %s strategy, %s)\n"+
			"N:   %s\n"+
			"e:   %s\n"+
			"p:   %s\n"+
			"q:   %s\n"+
			"d:   %s\n"+
			"phi: %s\n",
		result.ConvergentIndex, result.Strategy, result.Elapsed,
		result.Modulus, result.PublicExponent,
		result.P, result.Q, result.PrivateExponent, result.Phi)
}
