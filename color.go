package main

import (
	"fmt"
	"math"
)

// Per-channel divisors for the reduced palette.
const (
	redDivisor   = 8
	greenDivisor = 4
	blueDivisor  = 8
)

type Pixel struct {
	R, G, B int
}

func (p Pixel) String() string {
	return fmt.Sprintf("(%d, %d, %d)", p.R, p.G, p.B)
}

// Hex renders the pixel as #rrggbb. Only meaningful for 8-bit channels.
func (p Pixel) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

// Rounding maps a real quotient to the nearest integer value.
type Rounding func(float64) float64

var (
	// RoundHalfEven sends exact .5 quotients to the even neighbour (4/8 -> 0).
	RoundHalfEven Rounding = math.RoundToEven
	// RoundHalfAwayFromZero sends exact .5 quotients away from zero (4/8 -> 1).
	RoundHalfAwayFromZero Rounding = math.Round
)

func convert(p Pixel) Pixel {
	return convertWith(p, RoundHalfEven)
}

func convertWith(p Pixel, round Rounding) Pixel {
	reduce := func(v, d int) int {
		return int(round(float64(v) / float64(d)))
	}
	return Pixel{
		R: reduce(p.R, redDivisor),
		G: reduce(p.G, greenDivisor),
		B: reduce(p.B, blueDivisor),
	}
}
