package widget

import "regexp"

// amountPattern is a string-shape guard, not a numeric validator: "" and a
// lone "." are valid intermediate states while typing. Signs, exponents and
// a second decimal point are rejected.
var amountPattern = regexp.MustCompile(`^\d*\.?\d*$`)

// AcceptAmount reports whether s may replace the amount field's value.
func AcceptAmount(s string) bool {
	return amountPattern.MatchString(s)
}
