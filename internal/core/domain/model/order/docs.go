// Package order contains the Order aggregate: one repair job moving through
// the shop's status lifecycle, carrying its customer and device projection.
package order
