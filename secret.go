package main

import (
	"math/rand"
)

// The secret is drawn from [lowerBound, upperBound], both ends included.
const (
	lowerBound = 1
	upperBound = 100
)

// drawSecret maps intn, which returns a value in [0, n), onto the inclusive
// range [lowerBound, upperBound].
func drawSecret(intn func(n int) int) int {

	return lowerBound + intn(upperBound-lowerBound+1)

}

// randomSecret draws a secret from the process-wide source, which
// math/rand seeds randomly at program start (Go 1.20+).
func randomSecret() int {

	return drawSecret(rand.Intn)

}
