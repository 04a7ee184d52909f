package report

import (
	"math"
	"sort"

	"barstock/internal/core/money"
	"barstock/internal/domain/placement"
)

// BuildReport folds placements into the item tree and stats tree of a stock
// report. Pure function: all catalog data is passed in, nothing is loaded.
//
// Placements with an unresolvable item, area or section are skipped whole;
// a bad reference must not leave a partial contribution in either tree.
// Every monetary accumulator is re-rounded after every increment.
func BuildReport(placements []*placement.Placement, cat *Catalog) ([]ItemNode, StatsTree) {
	items := newItemAgg()
	stats := newStatsAgg()

	for _, p := range placements {
		ci, ok := cat.Item(p.ItemID)
		if !ok {
			continue
		}
		areaName, ok := cat.Areas[p.AreaID]
		if !ok {
			continue
		}
		sectionName, ok := cat.Sections[p.SectionID]
		if !ok {
			continue
		}

		value := ci.Product.CostPrice.Mul(money.New(p.Volume))

		items.add(ci, p, areaName, sectionName, value)
		stats.add(ci.Product, p.Volume, value)
	}

	data := items.merge(cat)

	sort.SliceStable(data, func(i, j int) bool {
		a, b := data[i].Product, data[j].Product
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.SubCategory != b.SubCategory {
			return a.SubCategory < b.SubCategory
		}
		return a.Name < b.Name
	})

	return data, stats.tree()
}

// reorderQuantity returns the suggested order for an item: the gap between
// the par level and the number of units counted as full on hand. A partial
// unit counts as full only when its fill strictly exceeds count_as_full.
func reorderQuantity(p ProductInfo, volume float64) float64 {
	if p.ParLevel <= 0 {
		return 0
	}

	fullUnits := math.Floor(volume)
	if frac := volume - fullUnits; frac > p.CountAsFull {
		fullUnits++
	}

	order := p.ParLevel - fullUnits
	if order < 0 {
		return 0
	}
	return order
}

// --- item tree accumulator ---

type itemAgg struct {
	nodes []*itemAccNode
	index map[string]*itemAccNode
}

type itemAccNode struct {
	node    ItemNode
	areaIdx map[string]int            // area id -> index in node.Areas
	secIdx  map[string]map[string]int // area id -> section id -> index
}

func newItemAgg() *itemAgg {
	return &itemAgg{index: make(map[string]*itemAccNode)}
}

func (a *itemAgg) add(ci CatalogItem, p *placement.Placement, areaName, sectionName string, value money.Money) {
	acc, ok := a.index[ci.ItemID]
	if !ok {
		acc = &itemAccNode{
			node: ItemNode{
				ItemID:  ci.ItemID,
				Product: ci.Product,
				Value:   money.Zero(),
				Areas:   []AreaNode{},
			},
			areaIdx: make(map[string]int),
			secIdx:  make(map[string]map[string]int),
		}
		a.index[ci.ItemID] = acc
		a.nodes = append(a.nodes, acc)
	}

	acc.node.Volume += p.Volume
	acc.node.Value = money.RoundCurrency(acc.node.Value.Add(value))

	ai, ok := acc.areaIdx[p.AreaID]
	if !ok {
		ai = len(acc.node.Areas)
		acc.areaIdx[p.AreaID] = ai
		acc.secIdx[p.AreaID] = make(map[string]int)
		acc.node.Areas = append(acc.node.Areas, AreaNode{
			AreaID:   p.AreaID,
			Name:     areaName,
			Value:    money.Zero(),
			Sections: []SectionNode{},
		})
	}
	area := &acc.node.Areas[ai]
	area.Volume += p.Volume
	area.Value = money.RoundCurrency(area.Value.Add(value))

	si, ok := acc.secIdx[p.AreaID][p.SectionID]
	if !ok {
		si = len(area.Sections)
		acc.secIdx[p.AreaID][p.SectionID] = si
		area.Sections = append(area.Sections, SectionNode{
			SectionID: p.SectionID,
			Name:      sectionName,
			Value:     money.Zero(),
		})
	}
	section := &area.Sections[si]
	section.Volume += p.Volume
	section.Value = money.RoundCurrency(section.Value.Add(value))
}

// merge appends a zero node for every catalog item that received no
// placement, so the snapshot always covers the full stock list, and fills
// in reorder suggestions.
func (a *itemAgg) merge(cat *Catalog) []ItemNode {
	out := make([]ItemNode, 0, len(cat.Items))

	for _, acc := range a.nodes {
		acc.node.Order = reorderQuantity(acc.node.Product, acc.node.Volume)
		out = append(out, acc.node)
	}

	for _, ci := range cat.Items {
		if _, ok := a.index[ci.ItemID]; ok {
			continue
		}
		out = append(out, ItemNode{
			ItemID:  ci.ItemID,
			Product: ci.Product,
			Value:   money.Zero(),
			Order:   reorderQuantity(ci.Product, 0),
			Areas:   []AreaNode{},
		})
	}

	return out
}

// --- stats tree accumulator ---

type statsAgg struct {
	total StatsTotal

	types   []TypeNode
	typeIdx map[string]int
	catIdx  map[string]map[string]int
	subIdx  map[string]map[string]map[string]int
}

func newStatsAgg() *statsAgg {
	return &statsAgg{
		total:   StatsTotal{Value: money.Zero()},
		typeIdx: make(map[string]int),
		catIdx:  make(map[string]map[string]int),
		subIdx:  make(map[string]map[string]map[string]int),
	}
}

func (s *statsAgg) add(p ProductInfo, volume float64, value money.Money) {
	s.total.Volume += volume
	s.total.Value = money.RoundCurrency(s.total.Value.Add(value))

	ti, ok := s.typeIdx[p.Type]
	if !ok {
		ti = len(s.types)
		s.typeIdx[p.Type] = ti
		s.catIdx[p.Type] = make(map[string]int)
		s.subIdx[p.Type] = make(map[string]map[string]int)
		s.types = append(s.types, TypeNode{
			Name:       p.Type,
			Value:      money.Zero(),
			Categories: []CategoryNode{},
		})
	}
	tn := &s.types[ti]
	tn.Volume += volume
	tn.Value = money.RoundCurrency(tn.Value.Add(value))

	ci, ok := s.catIdx[p.Type][p.Category]
	if !ok {
		ci = len(tn.Categories)
		s.catIdx[p.Type][p.Category] = ci
		s.subIdx[p.Type][p.Category] = make(map[string]int)
		tn.Categories = append(tn.Categories, CategoryNode{
			Name:          p.Category,
			Value:         money.Zero(),
			SubCategories: []SubCategoryNode{},
		})
	}
	cn := &tn.Categories[ci]
	cn.Volume += volume
	cn.Value = money.RoundCurrency(cn.Value.Add(value))

	si, ok := s.subIdx[p.Type][p.Category][p.SubCategory]
	if !ok {
		si = len(cn.SubCategories)
		s.subIdx[p.Type][p.Category][p.SubCategory] = si
		cn.SubCategories = append(cn.SubCategories, SubCategoryNode{
			Name:  p.SubCategory,
			Value: money.Zero(),
		})
	}
	sn := &cn.SubCategories[si]
	sn.Volume += volume
	sn.Value = money.RoundCurrency(sn.Value.Add(value))
}

func (s *statsAgg) tree() StatsTree {
	types := s.types
	if types == nil {
		types = []TypeNode{}
	}
	return StatsTree{
		Total: s.total,
		Types: types,
	}
}
