package client

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-user-client/models"
)

const maxCellWidth = 40

// renderUsers renders one row per record. Columns are the union of all
// record fields, id first and the rest sorted.
func renderUsers(users []models.User) string {
	columns := userColumns(users)

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = fitText(formatValue(u[col]), maxCellWidth)
		}
		rows = append(rows, row)
	}

	return newTable().Headers(columns...).Rows(rows...).String()
}

// renderUser renders a single record as field/value pairs.
func renderUser(u models.User) string {
	fields := userColumns([]models.User{u})

	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, []string{field, formatValue(u[field])})
	}

	return newTable().Headers("field", "value").Rows(rows...).String()
}

func newTable() *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func userColumns(users []models.User) []string {
	seen := make(map[string]bool)
	var columns []string
	for _, u := range users {
		for k := range u {
			if !seen[k] && k != models.FieldID {
				seen[k] = true
				columns = append(columns, k)
			}
		}
	}
	sort.Strings(columns)

	return append([]string{models.FieldID}, columns...)
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case string:
		if val == "" {
			return "-"
		}
		return val
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}

func fitText(v string, max int) string {
	if max <= 0 || len([]rune(v)) <= max {
		return v
	}
	r := []rune(v)
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
