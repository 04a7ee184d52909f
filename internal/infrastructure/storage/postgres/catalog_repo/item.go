package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"barstock/internal/core/apperror"
	"barstock/internal/domain/catalogs/item"
	"barstock/internal/infrastructure/storage/postgres"
)

const itemTable = "cat_items"

// ItemRepo implements item.Repository.
type ItemRepo struct {
	*BaseCatalogRepo[*item.Item]
}

// NewItemRepo creates a new inventory item repository.
func NewItemRepo(txm *postgres.TxManager) *ItemRepo {
	return &ItemRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			itemTable,
			postgres.ExtractDBColumns[item.Item](),
			func() *item.Item { return &item.Item{} },
		),
	}
}

// FindByProduct retrieves the item stocking a product, if any.
func (r *ItemRepo) FindByProduct(ctx context.Context, venueID, productID string) (*item.Item, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.Eq{"product_id": productID}).
		Where(squirrel.Eq{"deleted_at": nil}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var it item.Item
	if err := pgxscan.Get(ctx, r.Querier(ctx), &it, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("inventory item", productID)
		}
		return nil, fmt.Errorf("find by product: %w", err)
	}

	return &it, nil
}

// ListActive retrieves all non-deleted items of a venue.
func (r *ItemRepo) ListActive(ctx context.Context, venueID string) ([]*item.Item, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("created_at ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var items []*item.Item
	if err := pgxscan.Select(ctx, r.Querier(ctx), &items, sql, args...); err != nil {
		return nil, fmt.Errorf("list active: %w", err)
	}

	return items, nil
}
