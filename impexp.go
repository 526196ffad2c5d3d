package goodmoney

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file handles the import/export formats. Exports should remain human
// readable and easy to feed into a spreadsheet; imports accept whatever JSON
// a bank export produces, located by user-supplied jsonpath expressions.

// ExportTransactions writes transactions as CSV with a header row.
func ExportTransactions(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "type", "amount", "category", "note", "date", "owner"}); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}
	for _, t := range txs {
		record := []string{t.ID, string(t.Type), t.Amount.String(), t.Category, t.Note, t.Date, string(t.Owner)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("could not write transaction %q: %w", t.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportRules locates transaction fields inside an arbitrary JSON export.
// Rows selects the list of rows; the field paths are evaluated relative to
// each row. Amount signs decide the type: negative values import as
// expenses, positive as income.
type ImportRules struct {
	Rows     string // e.g. "$.transactions[*]"
	Date     string // e.g. "$.date"
	Amount   string // e.g. "$.amount"
	Category string // optional
	Note     string // optional
}

// ImportTransactions reads a JSON bank export and maps it into transactions
// using the given rules. Returned transactions carry no id; the store
// assigns one on add.
func ImportTransactions(r io.Reader, rules ImportRules) ([]Transaction, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not parse import file: %w", err)
	}

	jrows, err := jsonpath.Get(rules.Rows, jobj)
	if err != nil {
		return nil, fmt.Errorf("could not locate rows with %q: %w", rules.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a single
		// answer; a single row is still a valid import.
		rows = []any{jrows}
	}

	var txs []Transaction
	for i, row := range rows {
		date, err := importString(row, rules.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		value, err := importNumber(row, rules.Amount)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}

		t := Transaction{Type: Income, Amount: A(value), Date: date, Owner: OwnerMe}
		if value < 0 {
			t.Type = Expense
			t.Amount = t.Amount.Neg()
		}
		if rules.Category != "" {
			if t.Category, err = importString(row, rules.Category); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
		if rules.Note != "" {
			if t.Note, err = importString(row, rules.Note); err != nil {
				return nil, fmt.Errorf("row %d: %w", i, err)
			}
		}
		txs = append(txs, t)
	}
	return txs, nil
}

func importValue(row any, path string) (any, error) {
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return nil, fmt.Errorf("could not evaluate %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval, nil
}

func importString(row any, path string) (string, error) {
	jval, err := importValue(row, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, jval)
	}
	return s, nil
}

func importNumber(row any, path string) (float64, error) {
	jval, err := importValue(row, path)
	if err != nil {
		return 0, err
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		// some exports carry amounts as strings, with a comma decimal mark
		v = strings.ReplaceAll(v, ",", ".")
		v = strings.ReplaceAll(v, " ", "")
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is an invalid number %q: %w", path, jval, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%q is neither a number nor a string: %v", path, jval)
	}
}
