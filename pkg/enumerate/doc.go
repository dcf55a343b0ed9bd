// Package enumerate holds the combinatorial core: the base configuration
// builder that fills every non-selected option with a single value, the
// estimator that predicts the size of an expansion before running it, and the
// engine that lazily walks the Cartesian product of the selected options'
// candidate values.
//
// All three share the same dispatch over the closed option kind set. The
// engine is a depth-first generator: one recursion level per selected option,
// each level fanning out over that option's candidate values, with documents
// materialized only at yield points from an immutable base plus the
// accumulated assignments of the current branch.
package enumerate
