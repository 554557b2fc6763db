// Package naming parses free-text personal names into structured records
// and orders collections of them.
//
// A raw name is split on runs of whitespace. The last token is the surname
// and the one to three tokens before it are the given names, kept in input
// order. Nothing else is normalized: case, diacritics, hyphens, apostrophes
// and digits stay inside whatever token they appear in.
//
// Ordering compares the surname, then each given name by position. A record
// that lacks a given name at some position sorts before one that has it, so
// "John Doe" precedes "John Michael Doe". All comparisons are ordinal (byte
// order of the UTF-8 encoding, which equals codepoint order), never
// locale-aware: "Zoe" sorts before "anna", and "François" before "francois".
package naming
