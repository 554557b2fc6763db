// Package pipeline orchestrates one sort run: read the input list, sort it,
// write (or print) the result, and report a summary.
//
// The run is all-or-nothing. Any read, parse or write failure is logged and
// returned unchanged, and the output file is left untouched.
package pipeline
