package suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/kellymillerdev/ai-bank/internal/domain"
)

// mockCollaborator records calls and returns canned results.
type mockCollaborator struct {
	categoryID  string
	subcategory string
	err         error
	delay       time.Duration
	calls       []string
}

func (m *mockCollaborator) Suggest(ctx context.Context, description string, amount float64) (string, string, error) {
	m.calls = append(m.calls, description)
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return "", "", ctx.Err()
		}
	}
	return m.categoryID, m.subcategory, m.err
}

func newTestService(collab Collaborator, timeout time.Duration) *Service {
	return NewService(collab, timeout, zerolog.Nop())
}

func TestSuggest_KeywordFastPath(t *testing.T) {
	tests := []struct {
		description     string
		wantCategory    string
		wantSubcategory string
	}{
		{"ULTIMATESOFTWARE PAYROLL", "income", "Salary"},
		{"GREENLIGHT APP FUNDING", "digital-payments", "Greenlight"},
		{"AMERICAN EXPRESS ACH PMT", "credit-card", "AMEX"},
		{"TECO/PEOPLE GAS", "utilities", "Electric"},
		{"CITY OF TAMPA UT BILL", "utilities", "City Services"},
		{"LOAN CARE SERVIC", "housing", "Mortgage"},
		{"ATM #1234", "cash-withdrawal", "ATM"},
		{"VENMO PAYMENT", "digital-payments", "Venmo"},
		{"PAYPAL INST XFER", "digital-payments", "PayPal"},
		{"CRUNCH FIT DUES", "fitness", "Gym Membership"},
		{"VISA CHECK CARD 1234", "visa-card", "Visa"},
		{"CHECK 1041", "check", "Check"},
		{"Dividend 0.049%", "income", "Interest"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			collab := &mockCollaborator{}
			svc := newTestService(collab, time.Second)

			categoryID, subcategory := svc.Suggest(context.Background(), tt.description, -10)
			if categoryID != tt.wantCategory || subcategory != tt.wantSubcategory {
				t.Errorf("Suggest(%q) = (%q, %q), want (%q, %q)",
					tt.description, categoryID, subcategory, tt.wantCategory, tt.wantSubcategory)
			}
			if len(collab.calls) != 0 {
				t.Errorf("collaborator consulted for a keyword match: %v", collab.calls)
			}
		})
	}
}

func TestSuggest_EarlierKeywordRuleWins(t *testing.T) {
	svc := newTestService(&mockCollaborator{}, time.Second)

	// "visa check card" precedes the bare "check" rule.
	categoryID, subcategory := svc.Suggest(context.Background(), "VISA CHECK CARD PURCHASE", -10)
	if categoryID != "visa-card" || subcategory != "Visa" {
		t.Errorf("Suggest = (%q, %q), want (visa-card, Visa)", categoryID, subcategory)
	}
}

func TestSuggest_ConsultsCollaborator(t *testing.T) {
	collab := &mockCollaborator{categoryID: "housing", subcategory: "Rent"}
	svc := newTestService(collab, time.Second)

	categoryID, subcategory := svc.Suggest(context.Background(), "GREYSTAR APARTMENTS", -1800)
	if categoryID != "housing" || subcategory != "Rent" {
		t.Errorf("Suggest = (%q, %q), want (housing, Rent)", categoryID, subcategory)
	}

	if len(collab.calls) != 1 {
		t.Fatalf("collaborator called %d times, want 1", len(collab.calls))
	}
	if collab.calls[0] != "greystar apartments" {
		t.Errorf("collaborator received %q, want the lowercased description", collab.calls[0])
	}
}

func TestSuggest_FallbackOnError(t *testing.T) {
	collab := &mockCollaborator{err: errors.New("upstream unavailable")}
	svc := newTestService(collab, time.Second)

	categoryID, subcategory := svc.Suggest(context.Background(), "GREYSTAR APARTMENTS", -1800)
	if categoryID != FallbackCategoryID || subcategory != FallbackSubcategory {
		t.Errorf("Suggest = (%q, %q), want the fallback pair", categoryID, subcategory)
	}
}

func TestSuggest_FallbackOnBlankReply(t *testing.T) {
	collab := &mockCollaborator{categoryID: "   ", subcategory: "whatever"}
	svc := newTestService(collab, time.Second)

	categoryID, subcategory := svc.Suggest(context.Background(), "GREYSTAR APARTMENTS", -1800)
	if categoryID != FallbackCategoryID || subcategory != FallbackSubcategory {
		t.Errorf("Suggest = (%q, %q), want the fallback pair", categoryID, subcategory)
	}
}

func TestSuggest_FallbackOnTimeout(t *testing.T) {
	collab := &mockCollaborator{categoryID: "housing", delay: 200 * time.Millisecond}
	svc := newTestService(collab, 10*time.Millisecond)

	categoryID, subcategory := svc.Suggest(context.Background(), "GREYSTAR APARTMENTS", -1800)
	if categoryID != FallbackCategoryID || subcategory != FallbackSubcategory {
		t.Errorf("Suggest = (%q, %q), want the fallback pair", categoryID, subcategory)
	}
}

func TestSuggestUpdates(t *testing.T) {
	collab := &mockCollaborator{categoryID: "other", subcategory: "Other"}
	svc := newTestService(collab, time.Second)

	txs := []domain.Transaction{
		{Description: "ULTIMATESOFTWARE PAYROLL", Amount: 2000, CategoryID: "Salary Income"},
		{Description: "VENMO PAYMENT", Amount: -25, CategoryID: "Uncategorized"},
		{Description: "VENMO PAYMENT", Amount: -40, CategoryID: "Uncategorized"},
		{Description: "SOME RANDOM SHOP", Amount: -12, CategoryID: "Uncategorized"},
	}

	got := svc.SuggestUpdates(context.Background(), txs)

	// Keyword suggestion differs from the rule-table id.
	if got["VENMO PAYMENT"] != "digital-payments" {
		t.Errorf("suggestion for VENMO PAYMENT = %q, want digital-payments", got["VENMO PAYMENT"])
	}
	// "income" differs from "Salary Income" so a correction is proposed.
	if got["ULTIMATESOFTWARE PAYROLL"] != "income" {
		t.Errorf("suggestion for payroll = %q, want income", got["ULTIMATESOFTWARE PAYROLL"])
	}
	if got["SOME RANDOM SHOP"] != "other" {
		t.Errorf("suggestion for unmatched description = %q, want other", got["SOME RANDOM SHOP"])
	}

	// The duplicate description maps to one suggestion, not two.
	if len(got) != 3 {
		t.Errorf("SuggestUpdates returned %d entries, want 3", len(got))
	}
	if len(collab.calls) != 1 {
		t.Errorf("collaborator called %d times, want 1 (distinct unmatched descriptions only)", len(collab.calls))
	}
}

func TestSuggestUpdates_SkipsMatchingAssignments(t *testing.T) {
	svc := newTestService(&mockCollaborator{}, time.Second)

	txs := []domain.Transaction{
		{Description: "VENMO PAYMENT", Amount: -25, CategoryID: "digital-payments"},
	}

	got := svc.SuggestUpdates(context.Background(), txs)
	if len(got) != 0 {
		t.Errorf("SuggestUpdates proposed %v for an already-correct assignment", got)
	}
}

func TestSuggestUpdates_CapsSample(t *testing.T) {
	collab := &mockCollaborator{categoryID: "other", subcategory: "Other"}
	svc := newTestService(collab, time.Second)

	var txs []domain.Transaction
	for i := 0; i < 25; i++ {
		txs = append(txs, domain.Transaction{
			Description: "UNIQUE SHOP " + string(rune('A'+i)),
			Amount:      -5,
			CategoryID:  "Uncategorized",
		})
	}

	got := svc.SuggestUpdates(context.Background(), txs)
	if len(got) != maxSampleSize {
		t.Errorf("SuggestUpdates returned %d entries, want %d", len(got), maxSampleSize)
	}
	if len(collab.calls) != maxSampleSize {
		t.Errorf("collaborator called %d times, want %d", len(collab.calls), maxSampleSize)
	}
}
