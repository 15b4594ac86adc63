package category

import (
	"regexp"

	"github.com/kellymillerdev/ai-bank/internal/domain"
)

// ruleTable is the built-in categorization rule set. Order matters:
// earlier entries shadow later ones on overlapping patterns, so the
// amount-bounded Banking Fees rule must stay ahead of any broader rule
// that could match the same description.
var ruleTable = []domain.CategoryMapping{
	{CategoryID: "Salary Income", Patterns: []string{"ULTIMATESOFTWARE"}},
	{CategoryID: "Interest Income", Patterns: []string{"Dividend 0.049%", "Interest"}},
	{CategoryID: "Internal Transfer", Patterns: []string{"Home Banking Transfer", "Deposit Home Banking"}},
	{CategoryID: "Housing - Mortgage", Patterns: []string{"LOAN CARE SERVIC"}, MinAmount: amt(3000)},
	{CategoryID: "Utilities - Power/Gas", Patterns: []string{"TECO/PEOPLE GAS"}},
	{CategoryID: "Utilities - City Services", Patterns: []string{"CITY OF TAMPA UT"}},
	{CategoryID: "Credit Card Payment", Patterns: []string{"AMERICAN EXPRESS"}},
	{CategoryID: "Digital Payments - GREENLIGHT", Patterns: []string{"GREENLIGHT"}},
	{CategoryID: "Digital Payments - Other", Patterns: []string{"VENMO", "PAYPAL"}},
	{CategoryID: "Cash Withdrawal", Patterns: []string{"ATM #"}},
	{CategoryID: "Healthcare", Patterns: []string{"ADVENTHEALTH", "WATERMARK MEDICA", "LABORATORY CORP"}},
	{CategoryID: "Utilities - Phone", Patterns: []string{"VERIZON"}},
	{CategoryID: "Banking Fees", Patterns: []string{"BANK OF AMERICA"}, MinAmount: amt(0), MaxAmount: amt(100)},
	{CategoryID: "Investment Transfer", Patterns: []string{"WF ADVISORS"}},
	{CategoryID: "International", Patterns: []string{"INTERNATIONAL CO"}},
	{CategoryID: "Fitness", Patterns: []string{"CRUNCH FIT"}},
}

func amt(v float64) *float64 {
	return &v
}

type compiledRule struct {
	categoryID string
	pattern    *regexp.Regexp
	minAmount  *float64
	maxAmount  *float64
}

var compiledRules = compileRules(ruleTable)

// compileRules flattens the table into one compiled rule per pattern,
// preserving declaration order within and across categories.
func compileRules(table []domain.CategoryMapping) []compiledRule {
	var rules []compiledRule
	for _, m := range table {
		for _, p := range m.Patterns {
			rules = append(rules, compiledRule{
				categoryID: m.CategoryID,
				pattern:    regexp.MustCompile("(?i)" + p),
				minAmount:  m.MinAmount,
				maxAmount:  m.MaxAmount,
			})
		}
	}
	return rules
}

// RuleTable returns a copy of the built-in rule set, mainly for tests and
// introspection endpoints.
func RuleTable() []domain.CategoryMapping {
	out := make([]domain.CategoryMapping, len(ruleTable))
	copy(out, ruleTable)
	return out
}
