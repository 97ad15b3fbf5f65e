// Package report renders the outcome of a key recovery run in multiple
// output formats (plain text, JSON, Markdown).
package report
