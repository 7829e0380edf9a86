package recommend

import (
	"testing"

	"sutrapos/internal/models"
)

func fixtureCatalog() []models.CatalogItem {
	return []models.CatalogItem{
		{SKU: "MH001", Title: "Ahilya Red", Color: "Red", Occasion: "Wedding", MRP: 6500},
		{SKU: "MH002", Title: "Narmada Gold", Color: "Red", Occasion: "Wedding", MRP: 9000},
		{SKU: "MH003", Title: "Temple Green", Color: "Green", Occasion: "Festive", MRP: 4200},
		{SKU: "MH004", Title: "Daily Indigo", Color: "Blue", Occasion: "Daily Wear", MRP: 2100},
		{SKU: "MH005", Title: "Festive Rose", Color: "Pink", Occasion: "Festive", MRP: 3800},
		{SKU: "MH006", Title: "Royal Maroon", Color: "Maroon", Occasion: "Wedding", MRP: 12000},
		{SKU: "MH007", Title: "Sangam Silver", Color: "Grey", Occasion: "Daily Wear", MRP: 2900},
	}
}

func skus(items []models.CatalogItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.SKU
	}
	return out
}

func TestWeddingUnderBudgetInColor(t *testing.T) {
	got := Filter("wedding saree under 8000 in red", fixtureCatalog())

	if len(got) != 1 {
		t.Fatalf("got %d items (%v), want 1", len(got), skus(got))
	}
	if got[0].SKU != "MH001" {
		t.Errorf("got %s, want MH001", got[0].SKU)
	}
}

func TestHindiKeywords(t *testing.T) {
	got := Filter("shaadi ke liye saree 10000 ke neeche", fixtureCatalog())

	for _, it := range got {
		if it.Occasion != "Wedding" {
			t.Errorf("%s has occasion %q, want Wedding", it.SKU, it.Occasion)
		}
		if it.MRP > 10000 {
			t.Errorf("%s priced %v over the 10000 ceiling", it.SKU, it.MRP)
		}
	}
	if len(got) != 2 {
		t.Errorf("got %v, want MH001 and MH002", skus(got))
	}
}

func TestFestiveIncludesWedding(t *testing.T) {
	got := Filter("something festive", fixtureCatalog())

	for _, it := range got {
		if it.Occasion != "Festive" && it.Occasion != "Wedding" {
			t.Errorf("%s has occasion %q, want Festive or Wedding", it.SKU, it.Occasion)
		}
	}
	if len(got) == 0 {
		t.Error("expected festive and wedding picks, got none")
	}
}

func TestPriceTokenWithCurrencyAndSeparator(t *testing.T) {
	got := Filter("anything under ₹4,000", fixtureCatalog())

	for _, it := range got {
		if it.MRP > 4000 {
			t.Errorf("%s priced %v over the 4000 ceiling", it.SKU, it.MRP)
		}
	}
	if len(got) != 3 {
		t.Errorf("got %v, want the three items at or under 4000", skus(got))
	}
}

func TestSortedAscendingAndCapped(t *testing.T) {
	got := Filter("saree", fixtureCatalog())

	if len(got) > MaxResults {
		t.Fatalf("got %d items, cap is %d", len(got), MaxResults)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].MRP > got[i].MRP {
			t.Errorf("results not sorted by price: %v before %v", got[i-1].MRP, got[i].MRP)
		}
	}
}

func TestIdempotentOnOwnOutput(t *testing.T) {
	query := "wedding under 10000"
	first := Filter(query, fixtureCatalog())
	second := Filter(query, first)

	if len(first) != len(second) {
		t.Fatalf("refiltering changed size: %d -> %d", len(first), len(second))
	}
	for i := range first {
		if first[i].SKU != second[i].SKU {
			t.Errorf("position %d changed: %s -> %s", i, first[i].SKU, second[i].SKU)
		}
	}
}

func TestNoMatchIsEmptyNotError(t *testing.T) {
	got := Filter("wedding under 100", fixtureCatalog())
	if len(got) != 0 {
		t.Errorf("got %v, want no matches", skus(got))
	}
}

func TestColorScanUsesFullCatalog(t *testing.T) {
	// "green" names a catalog color even though no Wedding item is green;
	// the result is empty rather than ignoring the color.
	got := Filter("wedding in green", fixtureCatalog())
	if len(got) != 0 {
		t.Errorf("got %v, want none (no green wedding items)", skus(got))
	}
}
