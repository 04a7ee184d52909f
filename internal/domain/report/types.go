// Package report provides the stock report aggregation and usage engines,
// and the persisted report snapshots they produce.
package report

import (
	"time"

	"barstock/internal/core/entity"
	"barstock/internal/core/id"
	"barstock/internal/core/money"
)

// ProductInfo is the denormalized product carried inside snapshots.
// Snapshots must stay readable after the product changes or is deleted, so
// the relevant fields are copied at aggregation time.
type ProductInfo struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	SubCategory string  `json:"sub_category"`
	SupplierID  *string `json:"supplier_id,omitempty"`

	CostPrice money.Money `json:"cost_price"`
	SalePrice money.Money `json:"sale_price"`

	UnitSize    float64 `json:"unit_size"`
	Unit        string  `json:"unit"`
	CountAsFull float64 `json:"count_as_full"`
	ParLevel    float64 `json:"par_level"`
	OrderUnit   string  `json:"order_unit"`
}

// SectionNode is the per-section breakdown under an area.
type SectionNode struct {
	SectionID string      `json:"section_id"`
	Name      string      `json:"name"`
	Volume    float64     `json:"volume"`
	Value     money.Money `json:"value"`
}

// AreaNode is the per-area breakdown under an item.
type AreaNode struct {
	AreaID   string        `json:"area_id"`
	Name     string        `json:"name"`
	Volume   float64       `json:"volume"`
	Value    money.Money   `json:"value"`
	Sections []SectionNode `json:"sections"`
}

// ItemNode is one aggregated inventory item in a snapshot.
type ItemNode struct {
	ItemID  string      `json:"item_id"`
	Product ProductInfo `json:"product"`

	Volume float64     `json:"volume"`
	Value  money.Money `json:"value"`

	// Order is the suggested reorder quantity in order units
	Order float64 `json:"order"`

	Areas []AreaNode `json:"areas"`
}

// SubCategoryNode is a leaf of the classification stats tree.
type SubCategoryNode struct {
	Name   string      `json:"name"`
	Volume float64     `json:"volume"`
	Value  money.Money `json:"value"`
}

// CategoryNode groups sub-categories.
type CategoryNode struct {
	Name          string            `json:"name"`
	Volume        float64           `json:"volume"`
	Value         money.Money       `json:"value"`
	SubCategories []SubCategoryNode `json:"sub_categories"`
}

// TypeNode groups categories.
type TypeNode struct {
	Name       string         `json:"name"`
	Volume     float64        `json:"volume"`
	Value      money.Money    `json:"value"`
	Categories []CategoryNode `json:"categories"`
}

// StatsTotal is the grand total of a stats tree.
type StatsTotal struct {
	Volume float64     `json:"volume"`
	Value  money.Money `json:"value"`
}

// StatsTree is the classification roll-up of a snapshot or usage report.
type StatsTree struct {
	Total StatsTotal `json:"total"`
	Types []TypeNode `json:"types"`
}

// Snapshot is a persisted stock report.
type Snapshot struct {
	ID        id.ID           `db:"id" json:"id"`
	VenueID   string          `db:"venue_id" json:"venue_id"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	CreatedBy entity.UserStub `db:"created_by" json:"created_by"`

	// Data is the full item tree; stripped from list responses
	Data []ItemNode `db:"data" json:"data,omitempty"`

	Stats StatsTree `db:"stats" json:"stats"`
}

// Meta returns the snapshot without its data payload.
func (s *Snapshot) Meta() *Snapshot {
	return &Snapshot{
		ID:        s.ID,
		VenueID:   s.VenueID,
		CreatedAt: s.CreatedAt,
		CreatedBy: s.CreatedBy,
		Stats:     s.Stats,
	}
}

// --- Usage report ---

// SnapshotRef is the open/close metadata stub carried by a usage report.
type SnapshotRef struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	CreatedBy entity.UserStub `json:"created_by"`
}

// Purchase is one delivery of an item inside the usage window.
type Purchase struct {
	OrderID     string      `json:"order_id"`
	OrderNumber string      `json:"order_number"`
	Date        time.Time   `json:"date"`
	Ammount     float64     `json:"ammount"`
	Cost        money.Money `json:"cost"`
}

// UsageItem is the per-item variance between two snapshots.
type UsageItem struct {
	ItemID  string      `json:"item_id"`
	Product ProductInfo `json:"product"`

	OpenVolume  float64     `json:"open_volume"`
	Purchased   float64     `json:"purchased"`
	Purchases   []Purchase  `json:"purchases"`
	CloseVolume float64     `json:"close_volume"`
	Usage       float64     `json:"usage"`
	Cost        money.Money `json:"cost"`
	SaleValue   money.Money `json:"sale_value"`
}

// UsageReport is the cost-of-goods-sold report between two stock takes.
type UsageReport struct {
	Open  SnapshotRef `json:"open"`
	Close SnapshotRef `json:"close"`
	Items []UsageItem `json:"items"`
	Stats StatsTree   `json:"stats"`
}

// --- Aggregation inputs ---

// CatalogItem pairs an inventory item with its product definition.
type CatalogItem struct {
	ItemID  string
	Product ProductInfo
}

// Catalog is the in-memory venue catalog the aggregator folds placements
// against. Slices preserve catalog order, maps resolve references.
type Catalog struct {
	Items    []CatalogItem
	itemsIdx map[string]int

	Areas    map[string]string // area id -> name
	Sections map[string]string // section id -> name
}

// NewCatalog builds a Catalog from its parts.
func NewCatalog(items []CatalogItem, areas, sections map[string]string) *Catalog {
	idx := make(map[string]int, len(items))
	for i, it := range items {
		idx[it.ItemID] = i
	}
	return &Catalog{
		Items:    items,
		itemsIdx: idx,
		Areas:    areas,
		Sections: sections,
	}
}

// Item resolves an inventory item by id.
func (c *Catalog) Item(itemID string) (CatalogItem, bool) {
	i, ok := c.itemsIdx[itemID]
	if !ok {
		return CatalogItem{}, false
	}
	return c.Items[i], true
}
