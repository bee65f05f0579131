// Package scan holds the read-only algorithms over a byte string: substring,
// byte and byte-set searches in both directions, and three-way comparison.
//
// Searches take a starting position and report NotFound when nothing matches.
// Forward searches begin at pos; backward searches consider matches that start
// at or before pos, with any pos past the end meaning the whole input.
package scan
