package utils

import (
	"math"
	"strconv"
)

// RoundDecimal rounds a float64 value to the specified number of decimal places.
// For example, RoundDecimal(3.14159, 2) returns 3.14.
func RoundDecimal(value float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(value*pow) / pow
}

// FormatNumber renders a float64 in its shortest exact form.
// For example, FormatNumber(8) returns "8" and FormatNumber(2.5) returns "2.5".
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
