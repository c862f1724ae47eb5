package rules

import (
	"fmt"
	"strconv"
)

// parseRationalID turns a rule's decimal sequence number ("5", "10.5",
// "999") into the float64 used for ordering (spec.md §3, §9 "the rule set
// must support rational (not integer) ids; sorting is numeric").
func parseRationalID(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid_rule: non-numeric rule id %q: %w", raw, err)
	}
	return v, nil
}
