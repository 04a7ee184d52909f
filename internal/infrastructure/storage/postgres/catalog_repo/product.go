package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"barstock/internal/domain/catalogs/product"
	"barstock/internal/infrastructure/storage/postgres"
)

const productTable = "cat_products"

// ProductRepo implements product.Repository.
type ProductRepo struct {
	*BaseCatalogRepo[*product.Product]
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *postgres.TxManager) *ProductRepo {
	return &ProductRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			productTable,
			postgres.ExtractDBColumns[product.Product](),
			func() *product.Product { return &product.Product{} },
		),
	}
}

// ListBySupplier retrieves products with the given default supplier.
func (r *ProductRepo) ListBySupplier(ctx context.Context, venueID, supplierID string) ([]*product.Product, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.Eq{"supplier_id": supplierID}).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var products []*product.Product
	if err := pgxscan.Select(ctx, r.Querier(ctx), &products, sql, args...); err != nil {
		return nil, fmt.Errorf("list by supplier: %w", err)
	}

	return products, nil
}
