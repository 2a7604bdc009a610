// Package options provides the functional-options pattern this module's
// geometric packages share for threading an epsilon tolerance through their
// predicates, adapted from the upstream geom2d library's own options
// package.
package options
