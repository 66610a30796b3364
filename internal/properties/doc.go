// Package properties reads flat key=value files with # comments and expands
// dotted keys (a.b.c=1) into a nested Tree. Parsing is lenient: malformed
// lines are skipped, and only failures to open or read the source are errors.
package properties
