// Package category holds the deterministic transaction categorizer and
// the registry of known categories.
package category

import (
	"math"
	"strings"
)

// Uncategorized is the fallback category id assigned when no rule matches.
const Uncategorized = "Uncategorized"

// Categorize maps a transaction description and signed amount to a
// category id. It is a pure function: the same inputs always yield the
// same id, and the result is never empty.
//
// Evaluation order, first match wins: the literal "check" token, then the
// built-in rule table in declaration order, then the "visa" and
// "withdrawal" amount-tiered fallbacks.
func Categorize(description string, amount float64) string {
	if description == "" {
		return Uncategorized
	}

	abs := math.Abs(amount)

	if strings.EqualFold(description, "check") {
		if abs > 1000 {
			return "Check - Large"
		}
		return "Check - Regular"
	}

	for _, rule := range compiledRules {
		if !rule.pattern.MatchString(description) {
			continue
		}
		if rule.minAmount != nil && abs < *rule.minAmount {
			continue
		}
		if rule.maxAmount != nil && abs > *rule.maxAmount {
			continue
		}
		return rule.categoryID
	}

	lower := strings.ToLower(description)

	if strings.Contains(lower, "visa") {
		if abs > 100 {
			return "Credit Card - Shopping Large"
		}
		return "Credit Card - Shopping Small"
	}

	if strings.Contains(lower, "withdrawal") {
		switch {
		case abs > 5000:
			return "Large Transaction"
		case abs > 1000:
			return "Medium Transaction"
		default:
			return "Small Transaction"
		}
	}

	return Uncategorized
}
