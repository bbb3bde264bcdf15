package service

import "math"

// toPaise converts a rupee amount from the API into the paise representation
// stored in the database.
func toPaise(rupees float64) int64 {
	return int64(math.Round(rupees * 100))
}

// toRupees converts a stored paise amount back into rupees.
func toRupees(paise int64) float64 {
	return float64(paise) / 100
}
