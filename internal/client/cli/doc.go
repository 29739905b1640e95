// Package cli implements the interactive banking shell: a read-eval-print
// loop over the application services. All terminal I/O lives here; the
// services below it never print.
package cli
