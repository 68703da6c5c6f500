package projections

import (
	"sort"

	"academy/internal/application/store"
	"academy/internal/domain/payment"
	"academy/internal/domain/session"
)

// PeriodTotal is the sum of payments received in one period (a date or a month).
type PeriodTotal struct {
	Period string `json:"period"`
	Amount int    `json:"amount"`
}

// RevenueByDate groups payments by their date.
// PRE: none
// POST: One entry per distinct date, ordered by first occurrence in the ledger
func RevenueByDate(snap store.Snapshot) []PeriodTotal {
	return groupPayments(snap.Payments, func(p payment.Payment) string { return p.Date })
}

// RevenueByMonth groups payments by YYYY-MM.
// PRE: none
// POST: One entry per distinct month, ordered by first occurrence in the ledger
func RevenueByMonth(snap store.Snapshot) []PeriodTotal {
	return groupPayments(snap.Payments, func(p payment.Payment) string { return session.Month(p.Date) })
}

// SortPeriods returns a copy of totals ordered by period ascending.
func SortPeriods(totals []PeriodTotal) []PeriodTotal {
	out := make([]PeriodTotal, len(totals))
	copy(out, totals)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// TotalRevenue sums the whole ledger.
func TotalRevenue(snap store.Snapshot) int {
	total := 0
	for _, p := range snap.Payments {
		total += p.Amount
	}
	return total
}

func groupPayments(payments []payment.Payment, key func(payment.Payment) string) []PeriodTotal {
	out := []PeriodTotal{}
	index := make(map[string]int)
	for _, p := range payments {
		k := key(p)
		i, seen := index[k]
		if !seen {
			i = len(out)
			index[k] = i
			out = append(out, PeriodTotal{Period: k})
		}
		out[i].Amount += p.Amount
	}
	return out
}
