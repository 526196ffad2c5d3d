package renderer

import (
	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
)

// Summary is the view model of a monthly summary. All money values are
// pre-formatted for display in the report's currency.
type Summary struct {
	Month    string
	Income   string
	Expenses string
	Net      string

	Transactions []TransactionRow
	Budgets      []BudgetRow
}

// TransactionRow is one rendered transaction line.
type TransactionRow struct {
	Date     string
	Type     string
	Category string
	Amount   string
	Note     string
}

// BudgetRow is one budget's standing, with the limit and current-month spend.
type BudgetRow struct {
	Category string
	Limit    string
	Spent    string
	Over     bool
}

// NewSummary builds the view model of a monthly summary.
func NewSummary(s *goodmoney.MonthlySummary, currency string) *Summary {
	v := &Summary{
		Month:    s.Month.String(),
		Income:   s.Income.Format(currency),
		Expenses: s.Expenses.Format(currency),
		Net:      s.Net.SignedFormat(currency),
	}
	v.Transactions = transactionRows(s.Transactions, currency)
	for _, b := range s.Budgets {
		v.Budgets = append(v.Budgets, BudgetRow{
			Category: b.Category,
			Limit:    b.Limit.Format(currency),
			Spent:    b.Spent.Format(currency),
			Over:     b.Spent.GreaterThan(b.Limit),
		})
	}
	return v
}

func transactionRows(txs []goodmoney.Transaction, currency string) []TransactionRow {
	var rows []TransactionRow
	for _, t := range txs {
		amount := t.Amount.Format(currency)
		if t.Type == goodmoney.Expense {
			amount = "-" + amount
		}
		date := t.Date
		if len(date) > len(goodmoney.DateFormat) {
			date = date[:len(goodmoney.DateFormat)]
		}
		rows = append(rows, TransactionRow{
			Date:     date,
			Type:     string(t.Type),
			Category: t.Category,
			Amount:   amount,
			Note:     t.Note,
		})
	}
	return rows
}

// RenderSummary renders the monthly summary to markdown.
func RenderSummary(s *Summary) string {
	partials := map[string]string{
		"summary_transactions": "summary_transactions.md",
		"summary_budgets":      "summary_budgets.md",
	}
	return renderTemplate("summary", "summary.md", partials, s)
}

// RenderTransactions renders a bare transaction list to markdown.
func RenderTransactions(txs []goodmoney.Transaction, currency string) string {
	rows := transactionRows(txs, currency)
	return renderTemplate("transactions", "summary_transactions.md", nil, &Summary{Transactions: rows})
}
