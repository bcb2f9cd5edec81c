package forms

import (
	"strconv"
	"strings"
)

// Number coerces input text to a number at the point of assignment. Empty
// or unparseable text becomes 0; range checks belong to submit-time
// validation, not here.
func Number(v string) float64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return n
}

// Integer coerces input text to an integer, empty text to 0.
func Integer(v string) int64 {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
