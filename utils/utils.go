package utils

import (
	"math"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// Clamp returns v limited to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(math.Min(v, hi), lo)
}
