package report

import "strings"

// Rows come from ragged CSV parses; out-of-range cells read as empty.

func cell(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return row[i]
	}
	return ""
}

func trimmedCell(row []string, i int) string {
	return strings.TrimSpace(cell(row, i))
}

func cellAt(rows [][]string, r, c int) string {
	if r >= 0 && r < len(rows) {
		return cell(rows[r], c)
	}
	return ""
}
