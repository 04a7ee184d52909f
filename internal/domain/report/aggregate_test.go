package report

import (
	"encoding/json"
	"testing"

	"barstock/internal/core/money"
	"barstock/internal/domain/placement"
)

func testProduct(name, typ, cat, sub string, cost float64) ProductInfo {
	return ProductInfo{
		ID:          "prod-" + name,
		Name:        name,
		Type:        typ,
		Category:    cat,
		SubCategory: sub,
		CostPrice:   money.New(cost),
		SalePrice:   money.Zero(),
	}
}

func testCatalog(items []CatalogItem) *Catalog {
	return NewCatalog(items,
		map[string]string{"area-1": "Main Bar", "area-2": "Cellar"},
		map[string]string{"sec-1": "Top Shelf", "sec-2": "Fridge", "sec-3": "Rack"},
	)
}

func pl(itemID, areaID, sectionID string, volume float64) *placement.Placement {
	p := placement.NewPlacement("venue-1", itemID, areaID, sectionID)
	p.Volume = volume
	return p
}

func TestBuildReport_RollUp(t *testing.T) {
	cat := testCatalog([]CatalogItem{
		{ItemID: "item-1", Product: testProduct("Gin", "beverage", "spirits", "gin", 20.50)},
		{ItemID: "item-2", Product: testProduct("Lager", "beverage", "beer", "lager", 2.10)},
	})

	placements := []*placement.Placement{
		pl("item-1", "area-1", "sec-1", 2.5),
		pl("item-1", "area-2", "sec-3", 1.0),
		pl("item-2", "area-1", "sec-2", 24),
	}

	data, stats := BuildReport(placements, cat)

	if len(data) != 2 {
		t.Fatalf("expected 2 items, got %d", len(data))
	}

	var gin *ItemNode
	for i := range data {
		if data[i].ItemID == "item-1" {
			gin = &data[i]
		}
	}
	if gin == nil {
		t.Fatal("gin item missing from report")
	}

	if gin.Volume != 3.5 {
		t.Errorf("gin volume = %v, want 3.5", gin.Volume)
	}
	// 2.5*20.50 = 51.25, then +1.0*20.50 = 71.75
	if want := money.Must("71.75"); !gin.Value.Equal(want) {
		t.Errorf("gin value = %s, want %s", gin.Value, want)
	}
	if len(gin.Areas) != 2 {
		t.Fatalf("gin areas = %d, want 2", len(gin.Areas))
	}

	// Area and section totals sum back to the item total
	areaVolume := 0.0
	areaValue := money.Zero()
	for _, a := range gin.Areas {
		areaVolume += a.Volume
		areaValue = areaValue.Add(a.Value)

		secVolume := 0.0
		for _, sec := range a.Sections {
			secVolume += sec.Volume
		}
		if secVolume != a.Volume {
			t.Errorf("area %s: section volumes %v != area volume %v", a.Name, secVolume, a.Volume)
		}
	}
	if areaVolume != gin.Volume {
		t.Errorf("area volumes %v != item volume %v", areaVolume, gin.Volume)
	}
	if !areaValue.Equal(gin.Value) {
		t.Errorf("area values %s != item value %s", areaValue, gin.Value)
	}

	// Stats totals match leaf contributions
	if stats.Total.Volume != 27.5 {
		t.Errorf("stats total volume = %v, want 27.5", stats.Total.Volume)
	}
	// 71.75 + 24*2.10 = 122.15
	if want := money.Must("122.15"); !stats.Total.Value.Equal(want) {
		t.Errorf("stats total value = %s, want %s", stats.Total.Value, want)
	}
	if len(stats.Types) != 1 || stats.Types[0].Name != "beverage" {
		t.Fatalf("unexpected types: %+v", stats.Types)
	}
	if got := len(stats.Types[0].Categories); got != 2 {
		t.Errorf("categories = %d, want 2", got)
	}
}

func TestBuildReport_ZeroStockItems(t *testing.T) {
	cat := testCatalog([]CatalogItem{
		{ItemID: "item-1", Product: testProduct("Gin", "beverage", "spirits", "gin", 20)},
		{ItemID: "item-2", Product: testProduct("Vodka", "beverage", "spirits", "vodka", 18)},
	})

	data, stats := BuildReport([]*placement.Placement{
		pl("item-1", "area-1", "sec-1", 1),
	}, cat)

	if len(data) != 2 {
		t.Fatalf("expected 2 items (catalog merge), got %d", len(data))
	}

	var vodka *ItemNode
	for i := range data {
		if data[i].ItemID == "item-2" {
			vodka = &data[i]
		}
	}
	if vodka == nil {
		t.Fatal("unplaced catalog item missing from report")
	}
	if vodka.Volume != 0 || !vodka.Value.IsZero() {
		t.Errorf("zero-stock item has volume=%v value=%s", vodka.Volume, vodka.Value)
	}
	if vodka.Areas == nil || len(vodka.Areas) != 0 {
		t.Errorf("zero-stock item areas = %v, want empty slice", vodka.Areas)
	}

	// The stats tree is not padded with zero entries
	if len(stats.Types[0].Categories[0].SubCategories) != 1 {
		t.Errorf("stats should only contain placed items: %+v", stats.Types[0].Categories[0].SubCategories)
	}
}

func TestBuildReport_SkipsOrphans(t *testing.T) {
	cat := testCatalog([]CatalogItem{
		{ItemID: "item-1", Product: testProduct("Gin", "beverage", "spirits", "gin", 20)},
	})

	data, stats := BuildReport([]*placement.Placement{
		pl("item-1", "area-1", "sec-1", 2),
		pl("item-unknown", "area-1", "sec-1", 5), // dangling item
		pl("item-1", "area-unknown", "sec-1", 5), // dangling area
		pl("item-1", "area-1", "sec-unknown", 5), // dangling section
	}, cat)

	if len(data) != 1 {
		t.Fatalf("expected 1 item, got %d", len(data))
	}
	if data[0].Volume != 2 {
		t.Errorf("orphan placements contributed: volume = %v, want 2", data[0].Volume)
	}
	if stats.Total.Volume != 2 {
		t.Errorf("orphan placements reached stats: total volume = %v, want 2", stats.Total.Volume)
	}
	if want := money.Must("40"); !stats.Total.Value.Equal(want) {
		t.Errorf("stats total value = %s, want %s", stats.Total.Value, want)
	}
}

func TestBuildReport_Deterministic(t *testing.T) {
	cat := testCatalog([]CatalogItem{
		{ItemID: "item-1", Product: testProduct("Gin", "beverage", "spirits", "gin", 20.5)},
		{ItemID: "item-2", Product: testProduct("Lager", "beverage", "beer", "lager", 2.1)},
		{ItemID: "item-3", Product: testProduct("Cola", "beverage", "soft", "soda", 0.8)},
	})

	placements := []*placement.Placement{
		pl("item-3", "area-1", "sec-2", 12),
		pl("item-1", "area-2", "sec-3", 0.4),
		pl("item-2", "area-1", "sec-2", 6),
		pl("item-1", "area-1", "sec-1", 1.5),
	}

	data1, stats1 := BuildReport(placements, cat)
	data2, stats2 := BuildReport(placements, cat)

	j1, _ := json.Marshal(data1)
	j2, _ := json.Marshal(data2)
	if string(j1) != string(j2) {
		t.Error("item tree differs between identical runs")
	}

	s1, _ := json.Marshal(stats1)
	s2, _ := json.Marshal(stats2)
	if string(s1) != string(s2) {
		t.Error("stats tree differs between identical runs")
	}
}

func TestBuildReport_SortOrder(t *testing.T) {
	cat := testCatalog([]CatalogItem{
		{ItemID: "item-1", Product: testProduct("Vodka", "beverage", "spirits", "vodka", 18)},
		{ItemID: "item-2", Product: testProduct("Gin", "beverage", "spirits", "gin", 20)},
		{ItemID: "item-3", Product: testProduct("Lager", "beverage", "beer", "lager", 2)},
		{ItemID: "item-4", Product: testProduct("Bombay", "beverage", "spirits", "gin", 22)},
	})

	data, _ := BuildReport([]*placement.Placement{
		pl("item-1", "area-1", "sec-1", 1),
		pl("item-2", "area-1", "sec-1", 1),
		pl("item-3", "area-1", "sec-2", 1),
		pl("item-4", "area-1", "sec-1", 1),
	}, cat)

	want := []string{"Lager", "Bombay", "Gin", "Vodka"}
	for i, name := range want {
		if data[i].Product.Name != name {
			t.Fatalf("position %d: got %s, want %s (order: %v)", i, data[i].Product.Name, name, itemNames(data))
		}
	}
}

func itemNames(data []ItemNode) []string {
	names := make([]string, len(data))
	for i, n := range data {
		names[i] = n.Product.Name
	}
	return names
}

func TestReorderQuantity(t *testing.T) {
	base := ProductInfo{ParLevel: 10, CountAsFull: 0.5}

	cases := []struct {
		name    string
		product ProductInfo
		volume  float64
		want    float64
	}{
		{"partial below threshold", base, 7.4, 3},
		{"partial at threshold stays partial", base, 7.5, 3},
		{"partial above threshold counts full", base, 7.6, 2},
		{"exact full units", base, 7, 3},
		{"stock above par clamps to zero", base, 15, 0},
		{"no par level", ProductInfo{CountAsFull: 0.5}, 2, 0},
		{"empty stock", base, 0, 10},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := reorderQuantity(tc.product, tc.volume); got != tc.want {
				t.Errorf("reorderQuantity(par=%v, caf=%v, vol=%v) = %v, want %v",
					tc.product.ParLevel, tc.product.CountAsFull, tc.volume, got, tc.want)
			}
		})
	}
}
