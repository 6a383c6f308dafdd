package usecase

import (
	"strings"

	"github.com/priyanka7rc/laya/internal/grocery"
)

// aggregate merges ingredient rows into one item per normalized (name, unit)
// key. The first row seen for a key supplies the display name and unit;
// quantities are summed with missing values counting as zero. A final sum of
// zero (or less) yields a nil Qty so the UI never shows "0".
func aggregate(rows []grocery.IngredientRow) []grocery.AggregatedItem {
	type bucket struct {
		name string
		qty  float64
		unit *string
	}

	index := make(map[string]int)
	var buckets []bucket

	for _, row := range rows {
		key := itemKey(row.Name, row.Unit)

		qty := 0.0
		if row.Qty != nil {
			qty = *row.Qty
		}

		if i, ok := index[key]; ok {
			buckets[i].qty += qty
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, bucket{
			name: row.Name,
			qty:  qty,
			unit: row.Unit,
		})
	}

	items := make([]grocery.AggregatedItem, 0, len(buckets))
	for _, b := range buckets {
		item := grocery.AggregatedItem{
			Name: b.name,
			Unit: b.unit,
		}
		if b.qty > 0 {
			qty := b.qty
			item.Qty = &qty
		}
		items = append(items, item)
	}
	return items
}

// itemKey builds the normalized merge key: lower-cased trimmed name plus
// lower-cased trimmed unit (empty when absent).
func itemKey(name string, unit *string) string {
	u := ""
	if unit != nil {
		u = *unit
	}
	return strings.ToLower(strings.TrimSpace(name)) + "|" + strings.ToLower(strings.TrimSpace(u))
}
