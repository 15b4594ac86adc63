package domain

import "strings"

// Category is a spending/income bucket. System categories are seeded at
// registry construction and their ids never change.
type Category struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	ParentCategoryID string `json:"parentCategoryId,omitempty"`
	IsSystem         bool   `json:"isSystem"`
}

// NewSystemCategory builds a seed category whose display name is derived
// from the id by title-casing its hyphen-separated words. Empty segments
// are skipped; segments that do not start with a letter are kept as-is.
func NewSystemCategory(id string) Category {
	return Category{
		ID:       id,
		Name:     DisplayName(id),
		IsSystem: true,
	}
}

// DisplayName turns a lowercase-hyphenated id into a display name,
// e.g. "cash-withdrawal" -> "Cash Withdrawal".
func DisplayName(id string) string {
	parts := strings.Split(id, "-")
	words := make([]string, 0, len(parts))
	for _, w := range parts {
		if w == "" {
			continue
		}
		words = append(words, strings.ToUpper(w[:1])+w[1:])
	}
	return strings.Join(words, " ")
}

// CategoryMapping associates a category with free-text patterns and an
// optional inclusive absolute-amount range. A nil bound means unbounded.
type CategoryMapping struct {
	CategoryID string   `json:"categoryId"`
	Patterns   []string `json:"patterns"`
	MinAmount  *float64 `json:"minAmount,omitempty"`
	MaxAmount  *float64 `json:"maxAmount,omitempty"`
}
