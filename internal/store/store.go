// Package store holds the most recently ingested transaction batch in
// memory and serves category- and date-scoped queries over it.
package store

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/kellymillerdev/ai-bank/internal/domain"
)

// Store indexes exactly one batch. Each Replace discards the prior batch
// wholesale; there is no incremental merge. It is safe for concurrent
// use: the new batch and its index are built off to the side and swapped
// in under the write lock, so readers see either the old batch in full or
// the new one, never a partial rebuild.
type Store struct {
	mu         sync.RWMutex
	all        []domain.Transaction
	byCategory map[string][]domain.Transaction
}

// New creates an empty store.
func New() *Store {
	return &Store{
		byCategory: make(map[string][]domain.Transaction),
	}
}

// Replace swaps in a new batch, discarding all prior state.
func (s *Store) Replace(txs []domain.Transaction) {
	all := make([]domain.Transaction, len(txs))
	copy(all, txs)

	byCategory := make(map[string][]domain.Transaction)
	for _, t := range all {
		byCategory[t.CategoryID] = append(byCategory[t.CategoryID], t)
	}

	s.mu.Lock()
	s.all = all
	s.byCategory = byCategory
	s.mu.Unlock()
}

// All returns the full current batch in source order.
func (s *Store) All() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Transaction, len(s.all))
	copy(out, s.all)
	return out
}

// ByCategory returns the category's transactions sorted descending by
// date. An unseen category yields an empty slice, not an error.
func (s *Store) ByCategory(categoryID string) []domain.Transaction {
	s.mu.RLock()
	bucket := s.byCategory[categoryID]
	out := make([]domain.Transaction, len(bucket))
	copy(out, bucket)
	s.mu.RUnlock()

	sortByDateDesc(out)
	return out
}

// ByDateRange returns all transactions whose date falls in [start, end]
// inclusive, sorted descending by date.
func (s *Store) ByDateRange(start, end time.Time) []domain.Transaction {
	s.mu.RLock()
	var out []domain.Transaction
	for _, t := range s.all {
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		out = append(out, t)
	}
	s.mu.RUnlock()

	sortByDateDesc(out)
	return out
}

// Summary computes per-category statistics. An unseen category yields the
// zero-valued summary.
func (s *Store) Summary(categoryID string) domain.TransactionSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.byCategory[categoryID]
	if len(bucket) == 0 {
		return domain.TransactionSummary{}
	}

	summary := domain.TransactionSummary{
		TransactionCount: len(bucket),
		FirstTransaction: bucket[0].Date,
		LastTransaction:  bucket[0].Date,
	}

	largest := bucket[0]
	for _, t := range bucket {
		summary.TotalAmount += t.Amount
		if t.Date.Before(summary.FirstTransaction) {
			summary.FirstTransaction = t.Date
		}
		if t.Date.After(summary.LastTransaction) {
			summary.LastTransaction = t.Date
		}
		// First encountered wins on ties.
		if math.Abs(t.Amount) > math.Abs(largest.Amount) {
			largest = t
		}
	}
	summary.AverageAmount = summary.TotalAmount / float64(len(bucket))
	summary.LargestTransaction = &largest

	return summary
}

func sortByDateDesc(txs []domain.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})
}
