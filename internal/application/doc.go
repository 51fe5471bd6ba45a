// Package application wires the configuration loader, the printer and the
// logger together and runs the single load-then-print pass, keeping the main
// package down to CLI parsing and exit codes.
package application
