package summarize

import (
	"cmp"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gnfmt"
	"github.com/icarusdb/icdb/pkg/gamedata"
)

// FoodTable renders classified consumables as tab-separated values.
// Columns are name, duration and every stat, ordered by the number of
// rows that have a value, ties broken by column name.
func FoodTable(gd *gamedata.GameData) string {
	var rows []map[string]string
	for _, name := range gd.FoodItems() {
		item := gd.Items[name]
		row := map[string]string{"name": item.DisplayName}
		for k, v := range item.Stats {
			row[k] = formatNum(v)
		}
		if item.Modifier != nil {
			row["duration"] = formatNum(item.Modifier.Lifetime)
			for k, v := range item.Modifier.Stats {
				row[k] = formatNum(v)
			}
		}
		rows = append(rows, row)
	}

	counts := make(map[string]int)
	for _, row := range rows {
		for k := range row {
			counts[k]++
		}
	}
	cols := slices.Collect(maps.Keys(counts))
	slices.SortFunc(cols, func(a, b string) int {
		if c := cmp.Compare(counts[b], counts[a]); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})

	var sb strings.Builder
	sb.WriteString(tsvLine(cols))
	for _, row := range rows {
		rec := make([]string, len(cols))
		for i, c := range cols {
			rec[i] = row[c]
		}
		sb.WriteString("\n")
		sb.WriteString(tsvLine(rec))
	}
	return sb.String()
}

func tsvLine(rec []string) string {
	return strings.TrimRight(gnfmt.ToCSV(rec, '\t'), "\r\n")
}

func formatNum(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
