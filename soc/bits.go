package soc

import "golang.org/x/exp/constraints"

// Mask returns a value with the lowest n bits set.
func Mask[T constraints.Unsigned](n uint) T {
	return T(1)<<n - 1
}

// Field extracts the width bits starting at lsb from v.
func Field[T constraints.Unsigned](v T, lsb, width uint) T {
	return v >> lsb & Mask[T](width)
}

// Insert returns v with the width bits starting at lsb replaced by x. Bits of
// x that don't fit into the field are dropped.
func Insert[T constraints.Unsigned](v T, lsb, width uint, x T) T {
	m := Mask[T](width) << lsb
	return v&^m | x<<lsb&m
}
