// Package analyze computes aggregate totals, monthly trends and generated
// insight strings over a batch of categorized transactions.
package analyze

import (
	"fmt"
	"sort"
	"time"

	"github.com/kellymillerdev/ai-bank/internal/domain"
)

// Analyze aggregates the given transactions. The input slice is carried
// into the result unchanged so consumers can re-derive anything that is
// not pre-aggregated.
func Analyze(txs []domain.Transaction) *domain.TransactionAnalysis {
	a := &domain.TransactionAnalysis{
		SpendingByCategory: spendingByCategory(txs),
		MonthlyTrends:      monthlyTrends(txs),
		Insights:           insights(txs),
		Transactions:       txs,
	}

	for _, t := range txs {
		switch {
		case t.Amount > 0:
			a.TotalIncome += t.Amount
		case t.Amount < 0:
			a.TotalExpenses += -t.Amount
		}
		a.NetCashFlow += t.Amount
	}

	return a
}

// spendingByCategory sums absolute expense amounts per category. A
// category with no expense transactions has no entry.
func spendingByCategory(txs []domain.Transaction) map[string]float64 {
	out := make(map[string]float64)
	for _, t := range txs {
		if t.Amount < 0 {
			out[t.CategoryID] += -t.Amount
		}
	}
	return out
}

// monthlyTrends buckets transactions by calendar month, one entry per
// month that has at least one transaction, ascending. Missing months are
// not zero-filled.
func monthlyTrends(txs []domain.Transaction) []domain.MonthlyTrend {
	buckets := make(map[time.Time]*domain.MonthlyTrend)
	for _, t := range txs {
		month := time.Date(t.Date.Year(), t.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		b, ok := buckets[month]
		if !ok {
			b = &domain.MonthlyTrend{Month: month}
			buckets[month] = b
		}
		if t.Amount > 0 {
			b.Income += t.Amount
		} else if t.Amount < 0 {
			b.Expenses += -t.Amount
		}
		b.Savings += t.Amount
	}

	out := make([]domain.MonthlyTrend, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month.Before(out[j].Month) })
	return out
}

type monthExpense struct {
	label string // "{year}-{month}", month unpadded
	total float64
}

type categoryStat struct {
	id     string
	total  float64
	avgAbs float64
	count  int
}

// insights renders the human-readable summary lines. The output is
// ordered text, not structured data; amounts are fixed two-decimal
// dollar strings.
func insights(txs []domain.Transaction) []string {
	if len(txs) == 0 {
		return []string{"No transactions available for analysis."}
	}

	var out []string

	months := expensesByMonth(txs)
	if len(months) > 0 {
		var sum float64
		for _, m := range months {
			sum += m.total
		}
		out = append(out, fmt.Sprintf("Average monthly expenses: $%.2f", sum/float64(len(months))))

		highest, lowest := months[0], months[0]
		for _, m := range months[1:] {
			if m.total > highest.total {
				highest = m
			}
			if m.total < lowest.total {
				lowest = m
			}
		}
		out = append(out, fmt.Sprintf("Highest spending month (%s): $%.2f", highest.label, highest.total))
		out = append(out, fmt.Sprintf("Lowest spending month (%s): $%.2f", lowest.label, lowest.total))
	}

	out = append(out, "Top spending categories:")
	for _, c := range topSpendingCategories(txs, 3) {
		out = append(out, fmt.Sprintf("%s: $%.2f", c.id, c.total))
	}

	out = append(out, "\nRegular monthly expenses:")
	for _, c := range regularExpenseCategories(txs, 5) {
		out = append(out, fmt.Sprintf("%s: $%.2f (occurs %d times)", c.id, c.avgAbs, c.count))
	}

	return out
}

// expensesByMonth totals absolute expense amounts per calendar month, in
// first-appearance order so max/min ties resolve to the earlier bucket.
func expensesByMonth(txs []domain.Transaction) []monthExpense {
	index := make(map[string]int)
	var out []monthExpense
	for _, t := range txs {
		if t.Amount >= 0 {
			continue
		}
		label := fmt.Sprintf("%d-%d", t.Date.Year(), int(t.Date.Month()))
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, monthExpense{label: label})
		}
		out[i].total += -t.Amount
	}
	return out
}

func topSpendingCategories(txs []domain.Transaction, n int) []categoryStat {
	spending := spendingByCategory(txs)
	stats := make([]categoryStat, 0, len(spending))
	for id, total := range spending {
		stats = append(stats, categoryStat{id: id, total: total})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].total != stats[j].total {
			return stats[i].total > stats[j].total
		}
		return stats[i].id < stats[j].id
	})
	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}

// regularExpenseCategories picks categories with recurring expense
// transactions, sorted by average absolute amount descending.
func regularExpenseCategories(txs []domain.Transaction, n int) []categoryStat {
	counts := make(map[string]int)
	totals := make(map[string]float64)
	for _, t := range txs {
		if t.Amount >= 0 {
			continue
		}
		counts[t.CategoryID]++
		totals[t.CategoryID] += -t.Amount
	}

	var stats []categoryStat
	for id, count := range counts {
		if count < 3 {
			continue
		}
		// The stricter check below shadows the count >= 3 prefilter, so
		// the effective threshold is count > 3.
		if count <= 3 {
			continue
		}
		stats = append(stats, categoryStat{
			id:     id,
			avgAbs: totals[id] / float64(count),
			count:  count,
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].avgAbs != stats[j].avgAbs {
			return stats[i].avgAbs > stats[j].avgAbs
		}
		return stats[i].id < stats[j].id
	})
	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}
