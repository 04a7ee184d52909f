package report

import (
	"time"

	"barstock/internal/core/money"
)

// PurchaseLine is one ordered item inside a purchase order.
type PurchaseLine struct {
	ItemID    string
	Ammount   float64
	CostPrice money.Money
}

// PurchaseOrder is a delivered or paid order inside the usage window.
type PurchaseOrder struct {
	OrderID     string
	OrderNumber string
	Date        time.Time
	Lines       []PurchaseLine
}

// BuildUsage computes per-item usage between two snapshots:
//
//	usage = open + purchased - close, clamped at zero
//
// Items are keyed by inventory item id; product info comes from the closing
// snapshot, falling back to the opening one. Items purchased but never
// placed participate with zero open and close volumes, priced from their
// order lines under the default taxonomy.
func BuildUsage(open, closing *Snapshot, purchases []PurchaseOrder) *UsageReport {
	type acc struct {
		item UsageItem
		seen bool // product info resolved
	}

	var order []string
	index := make(map[string]*acc)

	get := func(itemID string) *acc {
		a, ok := index[itemID]
		if !ok {
			a = &acc{item: UsageItem{
				ItemID:    itemID,
				Purchases: []Purchase{},
				Cost:      money.Zero(),
				SaleValue: money.Zero(),
			}}
			index[itemID] = a
			order = append(order, itemID)
		}
		return a
	}

	for _, n := range open.Data {
		a := get(n.ItemID)
		a.item.OpenVolume = n.Volume
		a.item.Product = n.Product
		a.seen = true
	}
	for _, n := range closing.Data {
		a := get(n.ItemID)
		a.item.CloseVolume = n.Volume
		// Closing snapshot wins: it carries the latest product definition
		a.item.Product = n.Product
		a.seen = true
	}

	for _, po := range purchases {
		for _, line := range po.Lines {
			a := get(line.ItemID)
			if !a.seen {
				// Never placed: the order line is the only price source
				a.item.Product.CostPrice = line.CostPrice
			}
			a.item.Purchased += line.Ammount
			a.item.Purchases = append(a.item.Purchases, Purchase{
				OrderID:     po.OrderID,
				OrderNumber: po.OrderNumber,
				Date:        po.Date,
				Ammount:     line.Ammount,
				Cost:        money.MulRound(line.CostPrice, line.Ammount),
			})
		}
	}

	items := make([]UsageItem, 0, len(order))
	stats := newStatsAgg()

	for _, itemID := range order {
		a := index[itemID]
		if !a.seen {
			a.item.Product.Type = "beverage"
			a.item.Product.Category = "other"
			a.item.Product.SubCategory = "other"
		}

		usage := a.item.OpenVolume + a.item.Purchased - a.item.CloseVolume
		if usage < 0 {
			usage = 0
		}
		a.item.Usage = usage
		a.item.Cost = money.MulRound(a.item.Product.CostPrice, usage)
		a.item.SaleValue = money.MulRound(a.item.Product.SalePrice, usage)

		stats.add(a.item.Product, usage, a.item.Cost)

		items = append(items, a.item)
	}

	return &UsageReport{
		Open:  snapshotRef(open),
		Close: snapshotRef(closing),
		Items: items,
		Stats: stats.tree(),
	}
}

func snapshotRef(s *Snapshot) SnapshotRef {
	return SnapshotRef{
		ID:        s.ID.String(),
		CreatedAt: s.CreatedAt,
		CreatedBy: s.CreatedBy,
	}
}
