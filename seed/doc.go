// Package seed builds the initial distance field and frontier from a
// binary seed mask, shared by both solvers so the empty-seed contract
// (spec.md §4.4/§4.5 Failure semantics) is enforced in exactly one place.
package seed
