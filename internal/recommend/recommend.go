// Package recommend answers free-text shopping queries with rule-based
// matching over the catalog. Queries can mix English and Hindi keywords,
// e.g. "wedding saree under 8000 in red" or "shaadi ke liye laal saree".
package recommend

import (
	"sort"
	"strings"

	"github.com/spf13/cast"

	"sutrapos/internal/models"
)

// MaxResults caps every recommendation list.
const MaxResults = 5

var (
	weddingWords = []string{"wedding", "shaadi"}
	festiveWords = []string{"festive", "festival", "tyohar"}
)

// Filter narrows the catalog by the query's price ceiling, occasion
// synonyms and color mention, then returns at most MaxResults items
// sorted by ascending price. An empty result is a valid "no match".
func Filter(query string, catalog []models.CatalogItem) []models.CatalogItem {
	ql := strings.ToLower(query)

	ceiling, hasCeiling := priceCeiling(ql)

	matched := make([]models.CatalogItem, len(catalog))
	copy(matched, catalog)

	if containsAny(ql, weddingWords) {
		matched = keep(matched, func(it models.CatalogItem) bool {
			return it.Occasion == "Wedding"
		})
	}
	if containsAny(ql, festiveWords) {
		matched = keep(matched, func(it models.CatalogItem) bool {
			return it.Occasion == "Festive" || it.Occasion == "Wedding"
		})
	}

	// First catalog color mentioned in the query wins. The scan runs
	// over the whole catalog's colors, not just the occasion matches.
	for _, color := range distinctColors(catalog) {
		if !strings.Contains(ql, strings.ToLower(color)) {
			continue
		}
		matched = keep(matched, func(it models.CatalogItem) bool {
			return strings.EqualFold(it.Color, color)
		})
		break
	}

	if hasCeiling {
		matched = keep(matched, func(it models.CatalogItem) bool {
			return it.MRP <= ceiling
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MRP < matched[j].MRP
	})
	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}
	return matched
}

// priceCeiling extracts the first token that parses as a positive
// number, after stripping the rupee symbol and thousands separators.
func priceCeiling(query string) (float64, bool) {
	cleaned := strings.ReplaceAll(query, "₹", " ")
	for _, token := range strings.Fields(cleaned) {
		token = strings.ReplaceAll(token, ",", "")
		v, err := cast.ToFloat64E(token)
		if err != nil || v <= 0 {
			continue
		}
		return v, true
	}
	return 0, false
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func distinctColors(catalog []models.CatalogItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, it := range catalog {
		if it.Color == "" || seen[it.Color] {
			continue
		}
		seen[it.Color] = true
		out = append(out, it.Color)
	}
	return out
}

func keep(items []models.CatalogItem, pred func(models.CatalogItem) bool) []models.CatalogItem {
	out := items[:0]
	for _, it := range items {
		if pred(it) {
			out = append(out, it)
		}
	}
	return out
}
