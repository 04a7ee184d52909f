package report

import (
	"testing"
	"time"

	"barstock/internal/core/entity"
	"barstock/internal/core/id"
	"barstock/internal/core/money"
)

func testSnapshot(createdAt time.Time, data []ItemNode) *Snapshot {
	return &Snapshot{
		ID:        id.New(),
		VenueID:   "venue-1",
		CreatedAt: createdAt,
		CreatedBy: entity.UserStub{ID: "user-1", Name: "Sam", Email: "sam@example.com"},
		Data:      data,
	}
}

func usageNode(itemID string, product ProductInfo, volume float64) ItemNode {
	return ItemNode{ItemID: itemID, Product: product, Volume: volume, Value: money.Zero()}
}

func TestBuildUsage_Arithmetic(t *testing.T) {
	gin := testProduct("Gin", "beverage", "spirits", "gin", 20)
	gin.SalePrice = money.New(3)

	t0 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	t1 := t0.AddDate(0, 0, 7)

	open := testSnapshot(t0, []ItemNode{usageNode("item-1", gin, 10)})
	closing := testSnapshot(t1, []ItemNode{usageNode("item-1", gin, 3)})

	purchases := []PurchaseOrder{{
		OrderID:     "order-1",
		OrderNumber: "ORD-2026-00001",
		Date:        t0.AddDate(0, 0, 2),
		Lines:       []PurchaseLine{{ItemID: "item-1", Ammount: 8, CostPrice: money.New(20)}},
	}}

	rep := BuildUsage(open, closing, purchases)

	if len(rep.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(rep.Items))
	}
	it := rep.Items[0]

	if it.OpenVolume != 10 || it.Purchased != 8 || it.CloseVolume != 3 {
		t.Errorf("volumes: open=%v purchased=%v close=%v", it.OpenVolume, it.Purchased, it.CloseVolume)
	}
	if it.Usage != 15 {
		t.Errorf("usage = %v, want 15", it.Usage)
	}
	if want := money.Must("300"); !it.Cost.Equal(want) {
		t.Errorf("cost = %s, want %s", it.Cost, want)
	}
	if want := money.Must("45"); !it.SaleValue.Equal(want) {
		t.Errorf("sale value = %s, want %s", it.SaleValue, want)
	}

	if len(it.Purchases) != 1 {
		t.Fatalf("expected 1 purchase entry, got %d", len(it.Purchases))
	}
	if want := money.Must("160"); !it.Purchases[0].Cost.Equal(want) {
		t.Errorf("purchase cost = %s, want %s", it.Purchases[0].Cost, want)
	}

	// COGS stats reflect usage cost
	if !rep.Stats.Total.Value.Equal(money.Must("300")) {
		t.Errorf("stats total = %s, want 300", rep.Stats.Total.Value)
	}
	if rep.Stats.Total.Volume != 15 {
		t.Errorf("stats volume = %v, want 15", rep.Stats.Total.Volume)
	}

	// Snapshot refs are metadata stubs
	if rep.Open.ID != open.ID.String() || rep.Close.ID != closing.ID.String() {
		t.Error("snapshot refs do not match inputs")
	}
}

func TestBuildUsage_ClampsNegativeVariance(t *testing.T) {
	gin := testProduct("Gin", "beverage", "spirits", "gin", 20)

	t0 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	open := testSnapshot(t0, []ItemNode{usageNode("item-1", gin, 2)})
	closing := testSnapshot(t0.AddDate(0, 0, 7), []ItemNode{usageNode("item-1", gin, 5)})

	rep := BuildUsage(open, closing, nil)

	it := rep.Items[0]
	if it.Usage != 0 {
		t.Errorf("usage = %v, want 0 (clamped)", it.Usage)
	}
	if !it.Cost.IsZero() {
		t.Errorf("cost = %s, want 0", it.Cost)
	}
}

func TestBuildUsage_ProductComesFromClosingSnapshot(t *testing.T) {
	oldGin := testProduct("Gin", "beverage", "spirits", "gin", 18)
	newGin := testProduct("Gin", "beverage", "spirits", "gin", 21)

	t0 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	open := testSnapshot(t0, []ItemNode{usageNode("item-1", oldGin, 4)})
	closing := testSnapshot(t0.AddDate(0, 0, 7), []ItemNode{usageNode("item-1", newGin, 1)})

	rep := BuildUsage(open, closing, nil)

	it := rep.Items[0]
	// usage 3 at the closing cost price
	if want := money.Must("63"); !it.Cost.Equal(want) {
		t.Errorf("cost = %s, want %s (closing cost price)", it.Cost, want)
	}
}

func TestBuildUsage_ItemOnlyInPurchases(t *testing.T) {
	gin := testProduct("Gin", "beverage", "spirits", "gin", 20)

	t0 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	open := testSnapshot(t0, []ItemNode{usageNode("item-1", gin, 1)})
	closing := testSnapshot(t0.AddDate(0, 0, 7), []ItemNode{usageNode("item-1", gin, 1)})

	purchases := []PurchaseOrder{{
		OrderID:     "order-1",
		OrderNumber: "ORD-2026-00002",
		Date:        t0.AddDate(0, 0, 1),
		Lines:       []PurchaseLine{{ItemID: "item-ghost", Ammount: 6, CostPrice: money.New(5)}},
	}}

	rep := BuildUsage(open, closing, purchases)

	if len(rep.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(rep.Items))
	}

	var ghost *UsageItem
	for i := range rep.Items {
		if rep.Items[i].ItemID == "item-ghost" {
			ghost = &rep.Items[i]
		}
	}
	if ghost == nil {
		t.Fatal("purchase-only item missing from usage report")
	}
	if ghost.OpenVolume != 0 || ghost.CloseVolume != 0 {
		t.Errorf("volumes = %v/%v, want 0/0", ghost.OpenVolume, ghost.CloseVolume)
	}
	// 0 + 6 - 0 = 6, priced from the order line
	if ghost.Usage != 6 {
		t.Errorf("usage = %v, want 6", ghost.Usage)
	}
	if want := money.Must("30"); !ghost.Cost.Equal(want) {
		t.Errorf("cost = %s, want %s", ghost.Cost, want)
	}
	if ghost.Product.Type != "beverage" || ghost.Product.Category != "other" {
		t.Errorf("taxonomy = %s/%s, want beverage/other",
			ghost.Product.Type, ghost.Product.Category)
	}
}

func TestBuildUsage_ItemAddedAfterOpeningSnapshot(t *testing.T) {
	gin := testProduct("Gin", "beverage", "spirits", "gin", 20)
	rum := testProduct("Rum", "beverage", "spirits", "rum", 15)

	t0 := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	open := testSnapshot(t0, []ItemNode{usageNode("item-1", gin, 1)})
	closing := testSnapshot(t0.AddDate(0, 0, 7), []ItemNode{
		usageNode("item-1", gin, 1),
		usageNode("item-2", rum, 2),
	})

	purchases := []PurchaseOrder{{
		OrderID:     "order-1",
		OrderNumber: "ORD-2026-00003",
		Date:        t0.AddDate(0, 0, 3),
		Lines:       []PurchaseLine{{ItemID: "item-2", Ammount: 6, CostPrice: money.New(15)}},
	}}

	rep := BuildUsage(open, closing, purchases)

	var rumItem *UsageItem
	for i := range rep.Items {
		if rep.Items[i].ItemID == "item-2" {
			rumItem = &rep.Items[i]
		}
	}
	if rumItem == nil {
		t.Fatal("item added mid-window missing from report")
	}
	if rumItem.OpenVolume != 0 {
		t.Errorf("open volume = %v, want 0", rumItem.OpenVolume)
	}
	// 0 + 6 - 2 = 4
	if rumItem.Usage != 4 {
		t.Errorf("usage = %v, want 4", rumItem.Usage)
	}
}
