package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
)

// MarkdownWriter outputs results in Markdown format, suitable for
// documentation and sharing.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the result as Markdown.
func (w *MarkdownWriter) Write(result *Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Wiener Attack Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Convergent index", strconv.Itoa(result.ConvergentIndex)},
			{"Strategy", result.Strategy},
			{"Elapsed", result.Elapsed.String()},
		},
	})
	md.PlainText("")

	md.H2("Public Key")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Component", "Value"},
		Rows: [][]string{
			{"N", result.Modulus},
			{"e", result.PublicExponent},
		},
	})
	md.PlainText("")

	md.H2("Recovered Private Key")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Component", "Value"},
		Rows: [][]string{
			{"p", result.P},
			{"q", result.Q},
			{"d", result.PrivateExponent},
			{"phi(N)", result.Phi},
		},
	})
	md.PlainText("")

	md.Warning("The private exponent of this key is small enough to recover from the public key alone. Rotate the key.")

	return len(md.String()), md.Build()
}
