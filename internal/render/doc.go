// Package render prints a configuration Document as YAML. Output is built in
// memory before anything reaches the writer, and is syntax-highlighted when
// the destination is a terminal.
package render
