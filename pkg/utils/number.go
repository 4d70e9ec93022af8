package utils

import "math"

// SafeDivide retorna a/b, ou 0 quando b é zero ou o resultado não é finito
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	result := a / b
	if math.IsNaN(result) || math.IsInf(result, 0) {
		return 0
	}

	return result
}

// RelativelyEqual compara dois valores com tolerância relativa
func RelativelyEqual(a, b, tolerance float64) bool {
	if a == b {
		return true
	}

	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= tolerance*scale
}
