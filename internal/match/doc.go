// Package match pairs sorted candidate-graph nodes with sorted ground-truth
// LTR intervals under a reciprocal overlap test.
//
// Match is a single forward two-pointer sweep with no backtracking. When
// several candidates qualify for one target the last one tested wins; use
// Ambiguity to find the targets where that happened.
package match
