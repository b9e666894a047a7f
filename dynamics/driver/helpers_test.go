package driver

import "math"

func nanValue() float64 { return math.NaN() }
