package report

import (
	"context"
	"fmt"
	"time"

	"barstock/internal/core/apperror"
	"barstock/internal/core/entity"
	"barstock/internal/core/id"
	"barstock/internal/core/tx"
	"barstock/internal/domain"
	"barstock/internal/domain/catalogs/area"
	"barstock/internal/domain/catalogs/item"
	"barstock/internal/domain/catalogs/product"
	"barstock/internal/domain/catalogs/section"
	"barstock/internal/domain/order"
	"barstock/internal/domain/placement"
	"barstock/pkg/logger"
)

// Service runs stock takes and usage reports for a venue.
type Service struct {
	snapshots  Repository
	placements placement.Repository
	items      item.Repository
	products   product.Repository
	areas      area.Repository
	sections   section.Repository
	orders     order.Repository
	txManager  tx.Manager
}

// NewService creates a new report service.
func NewService(
	snapshots Repository,
	placements placement.Repository,
	items item.Repository,
	products product.Repository,
	areas area.Repository,
	sections section.Repository,
	orders order.Repository,
	txManager tx.Manager,
) *Service {
	return &Service{
		snapshots:  snapshots,
		placements: placements,
		items:      items,
		products:   products,
		areas:      areas,
		sections:   sections,
		orders:     orders,
		txManager:  txManager,
	}
}

// Generate commits a stock take: aggregates current placements into a
// snapshot, persists it and zeroes placement volumes for the next count.
// Persisting and zeroing happen in one transaction.
func (s *Service) Generate(ctx context.Context, venueID string, author entity.UserStub) (*Snapshot, error) {
	snap, err := s.buildSnapshot(ctx, venueID, author)
	if err != nil {
		return nil, err
	}

	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if err := s.snapshots.Create(ctx, snap); err != nil {
			return fmt.Errorf("create snapshot: %w", err)
		}
		if err := s.placements.ResetVolumes(ctx, venueID); err != nil {
			return fmt.Errorf("reset placements: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "stock report generated",
		"id", snap.ID,
		"venue_id", venueID,
		"items", len(snap.Data))

	return snap, nil
}

// Preview runs the same aggregation over current placements without
// persisting anything: no snapshot row, placement volumes untouched.
func (s *Service) Preview(ctx context.Context, venueID string, author entity.UserStub) (*Snapshot, error) {
	return s.buildSnapshot(ctx, venueID, author)
}

func (s *Service) buildSnapshot(ctx context.Context, venueID string, author entity.UserStub) (*Snapshot, error) {
	placements, err := s.placements.ListByVenue(ctx, venueID, "", "")
	if err != nil {
		return nil, fmt.Errorf("load placements: %w", err)
	}

	cat, err := s.loadCatalog(ctx, venueID)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	data, stats := BuildReport(placements, cat)

	return &Snapshot{
		ID:        id.New(),
		VenueID:   venueID,
		CreatedAt: time.Now().UTC(),
		CreatedBy: author,
		Data:      data,
		Stats:     stats,
	}, nil
}

// GetByID retrieves the full snapshot.
func (s *Service) GetByID(ctx context.Context, venueID string, snapID id.ID) (*Snapshot, error) {
	return s.snapshots.GetByID(ctx, venueID, snapID)
}

// List retrieves snapshot metadata, newest first.
func (s *Service) List(ctx context.Context, venueID string, filter domain.ListFilter) (domain.ListResult[*Snapshot], error) {
	return s.snapshots.List(ctx, venueID, filter)
}

// Delete removes a snapshot.
func (s *Service) Delete(ctx context.Context, venueID string, snapID id.ID) error {
	return s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		return s.snapshots.Delete(ctx, venueID, snapID)
	})
}

// Usage builds the cost-of-goods-sold report between two snapshots.
// Purchases are delivered/paid orders with a requested delivery date in the
// half-open window [open.created_at, close.created_at).
func (s *Service) Usage(ctx context.Context, venueID string, openID, closeID id.ID) (*UsageReport, error) {
	open, err := s.snapshots.GetByID(ctx, venueID, openID)
	if err != nil {
		return nil, err
	}
	closing, err := s.snapshots.GetByID(ctx, venueID, closeID)
	if err != nil {
		return nil, err
	}

	if !open.CreatedAt.Before(closing.CreatedAt) {
		return nil, apperror.NewValidation("opening report must precede closing report").
			WithDetail("open", openID.String()).
			WithDetail("close", closeID.String())
	}

	orders, err := s.orders.ListDeliveredBetween(ctx, venueID, open.CreatedAt, closing.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("load purchases: %w", err)
	}

	return BuildUsage(open, closing, toPurchases(orders)), nil
}

func toPurchases(orders []*order.Order) []PurchaseOrder {
	out := make([]PurchaseOrder, 0, len(orders))
	for _, o := range orders {
		po := PurchaseOrder{
			OrderID:     o.ID.String(),
			OrderNumber: o.Number,
			Date:        o.ReqDeliveryDate,
			Lines:       make([]PurchaseLine, 0, len(o.Lines)),
		}
		for _, line := range o.Lines {
			po.Lines = append(po.Lines, PurchaseLine{
				ItemID:    line.ItemID.String(),
				Ammount:   line.Ammount,
				CostPrice: line.CostPrice,
			})
		}
		out = append(out, po)
	}
	return out
}

// loadCatalog assembles the aggregation input: the venue's stock list with
// product definitions, plus area and section name lookups.
func (s *Service) loadCatalog(ctx context.Context, venueID string) (*Catalog, error) {
	items, err := s.items.ListActive(ctx, venueID)
	if err != nil {
		return nil, err
	}

	all := domain.ListFilter{VenueID: venueID, OrderBy: "name"}

	products, err := s.products.List(ctx, all)
	if err != nil {
		return nil, err
	}
	productByID := make(map[string]*product.Product, len(products.Items))
	for _, p := range products.Items {
		productByID[p.ID.String()] = p
	}

	catalogItems := make([]CatalogItem, 0, len(items))
	for _, it := range items {
		p, ok := productByID[it.ProductID]
		if !ok {
			// Item points at a deleted product; it cannot be priced, so it
			// does not participate in the report.
			continue
		}
		catalogItems = append(catalogItems, CatalogItem{
			ItemID:  it.ID.String(),
			Product: toProductInfo(p),
		})
	}

	areas, err := s.areas.List(ctx, all)
	if err != nil {
		return nil, err
	}
	areaNames := make(map[string]string, len(areas.Items))
	for _, a := range areas.Items {
		areaNames[a.ID.String()] = a.Name
	}

	sections, err := s.sections.List(ctx, all)
	if err != nil {
		return nil, err
	}
	sectionNames := make(map[string]string, len(sections.Items))
	for _, sec := range sections.Items {
		sectionNames[sec.ID.String()] = sec.Name
	}

	return NewCatalog(catalogItems, areaNames, sectionNames), nil
}

func toProductInfo(p *product.Product) ProductInfo {
	return ProductInfo{
		ID:          p.ID.String(),
		Name:        p.Name,
		Type:        p.Type,
		Category:    p.Category,
		SubCategory: p.SubCategory,
		SupplierID:  p.SupplierID,
		CostPrice:   p.CostPrice,
		SalePrice:   p.SalePrice,
		UnitSize:    p.UnitSize,
		Unit:        p.Unit,
		CountAsFull: p.CountAsFull,
		ParLevel:    p.ParLevel,
		OrderUnit:   p.OrderUnit,
	}
}
