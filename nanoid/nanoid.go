// Package nanoid generates compact random identifiers for request tracing.
package nanoid

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	defaultSize = 16

	lowercase     = "abcdefghijklmnopqrstuvwxyz"
	uppercase     = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits        = "0123456789"
	lowerUpper    = lowercase + uppercase
	numLowerUpper = digits + lowerUpper
)

func getSize(l ...int) int {
	size := defaultSize
	if len(l) > 0 {
		size = l[0]
	}
	return size
}

// Must generate optional length nanoid
func Must(l ...int) string {
	size := getSize(l...)
	return gonanoid.Must(size)
}

// String generate optional length nanoid, use letters by default
func String(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(lowerUpper, size)
}

// Lower generate optional length nanoid, lowercase letters only
func Lower(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(lowercase, size)
}

// Number generate optional length nanoid, digits only
func Number(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(digits, size)
}

// PrimaryKey generates an alphanumeric id suited for trace and request ids
func PrimaryKey(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(numLowerUpper, size)
}
