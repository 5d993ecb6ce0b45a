package fu

import "math"

/*
Mean returns the arithmetic mean of a
*/
func Mean(a []float64) float64 {
	var c float64
	for _, x := range a {
		c += x
	}
	return c / float64(len(a))
}

/*
RoundEven rounds v half-to-even keeping the given count of decimal digits
*/
func RoundEven(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.RoundToEven(v*p) / p
}
