package renderer

import (
	"fmt"

	goodmoney "github.com/laurenceescalante81/Good-Money-AI-sub001"
)

// GoalRow is one savings goal's rendered progress.
type GoalRow struct {
	ID       string
	Name     string
	Current  string
	Target   string
	Percent  string
	Deadline string
}

// Goals is the view model of the savings goals report.
type Goals struct {
	Rows []GoalRow
}

// NewGoals builds the view model of the goals report. Progress over 100% is
// shown as is: a goal may exceed its target.
func NewGoals(goals []goodmoney.SavingsGoal, currency string) *Goals {
	v := &Goals{}
	for _, g := range goals {
		percent := "-"
		if target := g.TargetAmount.InexactFloat64(); target > 0 {
			percent = fmt.Sprintf("%.0f%%", g.CurrentAmount.InexactFloat64()/target*100)
		}
		v.Rows = append(v.Rows, GoalRow{
			ID:       g.ID,
			Name:     g.Name,
			Current:  g.CurrentAmount.Format(currency),
			Target:   g.TargetAmount.Format(currency),
			Percent:  percent,
			Deadline: g.TargetDate,
		})
	}
	return v
}

// RenderGoals renders the savings goals report to markdown.
func RenderGoals(g *Goals) string {
	return renderTemplate("goals", "goals.md", nil, g)
}
