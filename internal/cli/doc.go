// Package cli parses the lvmaze command line into Flags that override the
// lower configuration layers, and defines ExitError for usage failures.
package cli
