package suggest

import (
	"context"
	"fmt"
	"math"
	"strings"

	"google.golang.org/genai"
)

// DefaultModelName is the Gemini model used for category suggestions.
const DefaultModelName = "gemini-2.5-flash"

// suggestionCategories constrains what the model may answer with.
var suggestionCategories = []struct {
	id            string
	subcategories []string
}{
	{"digital-payments", []string{"Greenlight", "Venmo", "PayPal", "CashApp"}},
	{"utilities", []string{"Electric", "Gas", "Water", "Internet", "Phone"}},
	{"fitness", []string{"Gym Membership", "Equipment", "Classes"}},
	{"food", []string{"Grocery", "Restaurant", "Delivery"}},
	{"cash-withdrawal", []string{"ATM", "Bank Withdrawal"}},
	{"transfers", []string{"Internal Transfer", "External Transfer"}},
	{"entertainment", []string{"Streaming", "Movies", "Games"}},
}

// GeminiCollaborator asks a Gemini model to categorize a transaction.
// Callers wrap it behind the Collaborator interface and treat every error
// as a signal to use the fixed fallback.
type GeminiCollaborator struct {
	model string
}

// NewGeminiCollaborator creates a collaborator for the given model name.
// An empty name selects DefaultModelName.
func NewGeminiCollaborator(model string) *GeminiCollaborator {
	if model == "" {
		model = DefaultModelName
	}
	return &GeminiCollaborator{model: model}
}

// Suggest implements the Collaborator interface.
func (g *GeminiCollaborator) Suggest(ctx context.Context, description string, amount float64) (string, string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return "", "", fmt.Errorf("Suggest: create genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildSuggestionPrompt(description, amount)},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", "", fmt.Errorf("Suggest: generate content: %w", err)
	}

	reply := cleanModelReply(resp.Text())
	if reply == "" {
		return "", "", fmt.Errorf("Suggest: empty response from model")
	}

	categoryID, subcategory, ok := strings.Cut(reply, "|")
	if !ok {
		subcategory = FallbackSubcategory
	}
	return strings.TrimSpace(categoryID), strings.TrimSpace(subcategory), nil
}

func buildSuggestionPrompt(description string, amount float64) string {
	var b strings.Builder
	b.WriteString("Categorize this bank transaction concisely.\n")
	b.WriteString("Available categories and subcategories:\n")
	for _, c := range suggestionCategories {
		b.WriteString(c.id + ": " + strings.Join(c.subcategories, ", ") + "\n")
	}
	fmt.Fprintf(&b, "\nTransaction: %q for $%.2f\n", description, math.Abs(amount))
	b.WriteString("Response format: \"category-id|subcategory\"\n")
	b.WriteString("Return ONLY the answer line, no Markdown, no code fences.\n")
	return b.String()
}

// cleanModelReply strips Markdown fences and surrounding noise if the
// model ignored the formatting instructions.
func cleanModelReply(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.Trim(strings.TrimSpace(s), `"`)
	// Keep only the first line of a multi-line answer.
	if idx := strings.Index(s, "\n"); idx != -1 {
		s = strings.TrimSpace(s[:idx])
	}
	return s
}
