package category

import "testing"

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		description string
		amount      float64
		want        string
	}{
		{name: "payroll", description: "ULTIMATESOFTWARE PAYROLL", amount: 2000, want: "Salary Income"},
		{name: "gas utility", description: "TECO/PEOPLE GAS", amount: -150, want: "Utilities - Power/Gas"},
		{name: "city services", description: "CITY OF TAMPA UT BILL", amount: -80, want: "Utilities - City Services"},
		{name: "amex payment", description: "AMERICAN EXPRESS ACH PMT", amount: -500, want: "Credit Card Payment"},
		{name: "venmo", description: "VENMO PAYMENT", amount: -25, want: "Digital Payments - Other"},
		{name: "atm", description: "ATM #1234 MAIN ST", amount: -60, want: "Cash Withdrawal"},
		{name: "healthcare", description: "ADVENTHEALTH COPAY", amount: -40, want: "Healthcare"},
		{name: "phone", description: "VERIZON WIRELESS", amount: -95, want: "Utilities - Phone"},
		{name: "fitness", description: "CRUNCH FIT MEMBERSHIP", amount: -30, want: "Fitness"},
		{name: "case insensitive pattern", description: "teco/people gas", amount: -150, want: "Utilities - Power/Gas"},

		{name: "check large", description: "CHECK", amount: -1500, want: "Check - Large"},
		{name: "check regular", description: "CHECK", amount: -50, want: "Check - Regular"},
		{name: "check boundary", description: "check", amount: -1000, want: "Check - Regular"},

		{name: "visa small", description: "VISA PURCHASE", amount: -45, want: "Credit Card - Shopping Small"},
		{name: "visa large", description: "VISA PURCHASE", amount: -150, want: "Credit Card - Shopping Large"},
		{name: "visa boundary", description: "Visa", amount: -100, want: "Credit Card - Shopping Small"},

		{name: "withdrawal small", description: "Withdrawal", amount: -900, want: "Small Transaction"},
		{name: "withdrawal medium", description: "Withdrawal", amount: -1001, want: "Medium Transaction"},
		{name: "withdrawal large", description: "Withdrawal", amount: -5001, want: "Large Transaction"},

		{name: "mortgage above minimum", description: "LOAN CARE SERVIC", amount: -3200, want: "Housing - Mortgage"},
		{name: "mortgage below minimum", description: "LOAN CARE SERVIC", amount: -500, want: "Uncategorized"},
		{name: "bank fee in range", description: "BANK OF AMERICA FEE", amount: -35, want: "Banking Fees"},
		{name: "bank fee above range", description: "BANK OF AMERICA FEE", amount: -250, want: "Uncategorized"},

		{name: "no match", description: "SOME RANDOM SHOP", amount: -12, want: "Uncategorized"},
		{name: "empty description", description: "", amount: -12, want: "Uncategorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Categorize(tt.description, tt.amount)
			if got != tt.want {
				t.Errorf("Categorize(%q, %v) = %q, want %q", tt.description, tt.amount, got, tt.want)
			}
		})
	}
}

// An amount outside a bounded rule's range must fall through to a later
// matching rule, not straight to Uncategorized.
func TestCategorize_BoundedRuleFallsThrough(t *testing.T) {
	got := Categorize("LOAN CARE SERVIC VERIZON AUTOPAY", -500)
	if got != "Utilities - Phone" {
		t.Errorf("Categorize = %q, want Utilities - Phone (later rule must win)", got)
	}

	// Same description above the bound resolves to the earlier rule.
	got = Categorize("LOAN CARE SERVIC VERIZON AUTOPAY", -3500)
	if got != "Housing - Mortgage" {
		t.Errorf("Categorize = %q, want Housing - Mortgage", got)
	}
}

func TestCategorize_Idempotent(t *testing.T) {
	inputs := []struct {
		description string
		amount      float64
	}{
		{"VENMO PAYMENT", -25},
		{"CHECK", -1500},
		{"SOME RANDOM SHOP", -12},
	}

	for _, in := range inputs {
		first := Categorize(in.description, in.amount)
		second := Categorize(in.description, in.amount)
		if first != second {
			t.Errorf("Categorize(%q, %v) not deterministic: %q vs %q", in.description, in.amount, first, second)
		}
	}
}

func TestRuleTable_ReturnsCopy(t *testing.T) {
	table := RuleTable()
	if len(table) == 0 {
		t.Fatal("RuleTable returned no rules")
	}

	table[0].CategoryID = "mutated"
	if RuleTable()[0].CategoryID == "mutated" {
		t.Error("mutating the returned slice leaked into the rule set")
	}
}

func TestCategorize_NeverEmpty(t *testing.T) {
	for _, desc := range []string{"", "x", "CHECK", "visa", "anything else"} {
		if got := Categorize(desc, -1); got == "" {
			t.Errorf("Categorize(%q) returned empty category id", desc)
		}
	}
}
