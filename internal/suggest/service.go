// Package suggest proposes category corrections for already categorized
// transactions. It checks a fixed keyword table first and only consults
// the external generative collaborator for descriptions nothing matched.
package suggest

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kellymillerdev/ai-bank/internal/domain"
)

// Fallback values returned whenever the collaborator fails, times out or
// replies with something unusable.
const (
	FallbackCategoryID  = "other"
	FallbackSubcategory = "Other"
)

// maxSampleSize bounds how many distinct descriptions one update request
// may send to the collaborator.
const maxSampleSize = 10

// DefaultTimeout bounds a single collaborator call.
const DefaultTimeout = 10 * time.Second

// Collaborator is the external suggestion service: description and amount
// in, category id and subcategory out. Implementations must honor context
// cancellation; callers recover from every error with the fixed fallback.
type Collaborator interface {
	Suggest(ctx context.Context, description string, amount float64) (categoryID, subcategory string, err error)
}

// keywordRule is one fast-path check, evaluated in order before the
// collaborator is consulted.
type keywordRule struct {
	keywords    []string
	categoryID  string
	subcategory string
}

var keywordRules = []keywordRule{
	{[]string{"greenlight"}, "digital-payments", "Greenlight"},
	{[]string{"american express"}, "credit-card", "AMEX"},
	{[]string{"teco"}, "utilities", "Electric"},
	{[]string{"tampa ut"}, "utilities", "City Services"},
	{[]string{"payroll", "ultimatesoftware"}, "income", "Salary"},
	{[]string{"loan care"}, "housing", "Mortgage"},
	{[]string{"atm"}, "cash-withdrawal", "ATM"},
	{[]string{"venmo"}, "digital-payments", "Venmo"},
	{[]string{"paypal"}, "digital-payments", "PayPal"},
	{[]string{"crunch fit"}, "fitness", "Gym Membership"},
	{[]string{"visa check card"}, "visa-card", "Visa"},
	{[]string{"check"}, "check", "Check"},
	{[]string{"dividend"}, "income", "Interest"},
}

// Service resolves suggestions through the keyword table and the
// collaborator.
type Service struct {
	collab  Collaborator
	timeout time.Duration
	log     zerolog.Logger
}

// NewService creates a suggestion service. A non-positive timeout falls
// back to DefaultTimeout.
func NewService(collab Collaborator, timeout time.Duration, log zerolog.Logger) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{collab: collab, timeout: timeout, log: log}
}

// Suggest returns a category id and subcategory for the description. It
// never fails: collaborator errors map to the fixed fallback pair.
func (s *Service) Suggest(ctx context.Context, description string, amount float64) (string, string) {
	lower := strings.ToLower(description)

	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.categoryID, rule.subcategory
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	categoryID, subcategory, err := s.collab.Suggest(ctx, lower, amount)
	if err != nil || strings.TrimSpace(categoryID) == "" {
		s.log.Warn().Err(err).Str("description", description).Msg("Suggestion collaborator failed, using fallback")
		return FallbackCategoryID, FallbackSubcategory
	}
	return categoryID, subcategory
}

// SuggestUpdates proposes category corrections for a bounded sample of
// the batch: the first occurrence of each distinct description, capped at
// maxSampleSize. The result maps descriptions to the suggested category
// id, only where it differs from the current assignment.
func (s *Service) SuggestUpdates(ctx context.Context, txs []domain.Transaction) map[string]string {
	seen := make(map[string]bool)
	var sample []domain.Transaction
	for _, t := range txs {
		if seen[t.Description] {
			continue
		}
		seen[t.Description] = true
		sample = append(sample, t)
		if len(sample) == maxSampleSize {
			break
		}
	}

	suggestions := make(map[string]string)
	for _, t := range sample {
		categoryID, _ := s.Suggest(ctx, t.Description, t.Amount)
		if categoryID != t.CategoryID {
			suggestions[t.Description] = categoryID
		}
	}
	return suggestions
}
