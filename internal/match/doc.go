// Package match finds the closest known name to a misspelled one, for the
// "did you mean" hints of directive and command line errors.
package match
