package category

import (
	"errors"
	"strings"
	"sync"

	"github.com/kellymillerdev/ai-bank/internal/domain"
)

// ErrCategoryNotFound is returned when a category id is not registered.
var ErrCategoryNotFound = errors.New("category not found")

// systemCategoryIDs is the fixed seed set. Ids are reserved and
// pre-registered at construction.
var systemCategoryIDs = []string{
	"income",
	"digital-payments",
	"credit-card",
	"housing",
	"utilities",
	"cash-withdrawal",
	"transfers",
	"other",
}

// Registry holds the known categories and user-defined pattern mappings.
// Lookups are case-sensitive on id. It is safe for concurrent use.
type Registry struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
	order      []string // ids in registration order
	mappings   []domain.CategoryMapping
}

// NewRegistry creates a registry seeded with the system categories.
func NewRegistry() *Registry {
	r := &Registry{
		categories: make(map[string]domain.Category),
	}
	for _, id := range systemCategoryIDs {
		r.categories[id] = domain.NewSystemCategory(id)
		r.order = append(r.order, id)
	}
	return r
}

// List returns all categories in registration order.
func (r *Registry) List() []domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Category, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.categories[id])
	}
	return out
}

// Get returns the category for the given id, or ErrCategoryNotFound.
func (r *Registry) Get(id string) (domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.categories[id]
	if !ok {
		return domain.Category{}, ErrCategoryNotFound
	}
	return c, nil
}

// Create registers a user-defined category. The id is derived by slugging
// the display name; an already-registered id is an error so the system
// seed set cannot be shadowed.
func (r *Registry) Create(name, parentID string) (domain.Category, error) {
	id := slug(name)
	if id == "" {
		return domain.Category{}, errors.New("category name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.categories[id]; exists {
		return domain.Category{}, errors.New("category already exists: " + id)
	}

	c := domain.Category{
		ID:               id,
		Name:             name,
		ParentCategoryID: parentID,
	}
	r.categories[id] = c
	r.order = append(r.order, id)
	return c, nil
}

// AddMapping records a user-defined pattern mapping for a registered
// category. Mappings are exposed for lookup and future rule extension;
// the built-in categorizer does not consult them.
func (r *Registry) AddMapping(categoryID, pattern string, minAmount, maxAmount *float64) (domain.CategoryMapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[categoryID]; !ok {
		return domain.CategoryMapping{}, ErrCategoryNotFound
	}

	m := domain.CategoryMapping{
		CategoryID: categoryID,
		Patterns:   []string{pattern},
		MinAmount:  minAmount,
		MaxAmount:  maxAmount,
	}
	r.mappings = append(r.mappings, m)
	return m, nil
}

// Mappings returns a copy of the user-defined mappings.
func (r *Registry) Mappings() []domain.CategoryMapping {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.CategoryMapping, len(r.mappings))
	copy(out, r.mappings)
	return out
}

func slug(name string) string {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(name)))
	return strings.Join(fields, "-")
}
