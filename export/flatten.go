package export

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/mmikkola/kirja/types"
)

// Flatten turns a sequence of heterogeneous records into one tabular sheet.
// Headers are the sorted union of every top-level field name observed across
// the records. Nested values (maps and slices) are serialized to JSON text in
// a single cell rather than expanded into extra columns, so inconsistently
// shaped resource metadata cannot blow up the column count. A record missing
// a field renders an empty cell. An empty input yields empty headers and no
// rows; the workbook writer still emits a valid sheet for it.
func Flatten(records []types.Record) (headers []string, rows [][]string) {
	seen := make(map[string]bool)
	for _, rec := range records {
		for field := range rec {
			if !seen[field] {
				seen[field] = true
				headers = append(headers, field)
			}
		}
	}
	sort.Strings(headers)

	rows = make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(headers))
		for i, field := range headers {
			value, ok := rec[field]
			if !ok {
				continue
			}
			row[i] = cellValue(value)
		}
		rows = append(rows, row)
	}
	return headers, rows
}

// cellValue renders a single record value as cell text. Nested structures
// are JSON-encoded so the cell content decodes back to an equivalent value.
func cellValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case float64:
		if x == float64(int64(x)) {
			return strconv.FormatInt(int64(x), 10)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case json.Number:
		return x.String()
	default:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprintf("%v", x)
		}
		return string(data)
	}
}
