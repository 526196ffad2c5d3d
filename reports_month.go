package goodmoney

// The query layer derives pure views from the current snapshot plus an
// optional explicit month; the default month comes from the clock.

// CurrentMonth returns the calendar month of the clock's "now".
func (s *Store) CurrentMonth() Month { return MonthOf(s.clock.Now()) }

// MonthlyTransactions returns the transactions whose date falls within the
// given month. Membership is a string-prefix match on the ISO date, so
// date-only values and full timestamps are treated alike.
func (s *Store) MonthlyTransactions(m Month) []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Transaction
	for _, t := range s.transactions {
		if m.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}

// TotalIncome sums income amounts over the month's transactions. Sums are
// exact decimal additions of stored values; no rounding applies.
func (s *Store) TotalIncome(m Month) Amount { return s.monthlyTotal(m, Income) }

// TotalExpenses sums expense amounts over the month's transactions.
func (s *Store) TotalExpenses(m Month) Amount { return s.monthlyTotal(m, Expense) }

func (s *Store) monthlyTotal(m Month, typ TransactionType) Amount {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total Amount
	for _, t := range s.transactions {
		if t.Type == typ && m.Contains(t.Date) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// SpentByCategory sums the current month's expenses matching the category
// exactly (case-sensitive). Budget screens compare this against the limit.
func (s *Store) SpentByCategory(category string) Amount {
	m := s.CurrentMonth()
	s.mu.RLock()
	defer s.mu.RUnlock()
	var total Amount
	for _, t := range s.transactions {
		if t.Type == Expense && t.Category == category && m.Contains(t.Date) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// BudgetLine is one budget's standing for the current month.
type BudgetLine struct {
	Category string
	Limit    Amount
	Spent    Amount
}

// MonthlySummary is an at-a-glance overview of one month of the ledger.
type MonthlySummary struct {
	Month        Month
	Income       Amount
	Expenses     Amount
	Net          Amount
	Transactions []Transaction
	Budgets      []BudgetLine // spent is always for the current month
}

// NewMonthlySummary computes the overview of the given month.
func NewMonthlySummary(s *Store, m Month) *MonthlySummary {
	summary := &MonthlySummary{
		Month:        m,
		Income:       s.TotalIncome(m),
		Expenses:     s.TotalExpenses(m),
		Transactions: s.MonthlyTransactions(m),
	}
	summary.Net = summary.Income.Sub(summary.Expenses)
	for _, b := range s.Budgets() {
		summary.Budgets = append(summary.Budgets, BudgetLine{
			Category: b.Category,
			Limit:    b.Limit,
			Spent:    s.SpentByCategory(b.Category),
		})
	}
	return summary
}
