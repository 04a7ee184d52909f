package catalog_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"barstock/internal/domain/catalogs/section"
	"barstock/internal/infrastructure/storage/postgres"
)

const sectionTable = "cat_sections"

// SectionRepo implements section.Repository.
type SectionRepo struct {
	*BaseCatalogRepo[*section.Section]
}

// NewSectionRepo creates a new section repository.
func NewSectionRepo(txm *postgres.TxManager) *SectionRepo {
	return &SectionRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			sectionTable,
			postgres.ExtractDBColumns[section.Section](),
			func() *section.Section { return &section.Section{} },
		),
	}
}

// ListByArea retrieves sections of one area ordered by position.
func (r *SectionRepo) ListByArea(ctx context.Context, venueID, areaID string) ([]*section.Section, error) {
	q := r.baseSelect().
		Where(squirrel.Eq{"venue_id": venueID}).
		Where(squirrel.Eq{"area_id": areaID}).
		Where(squirrel.Eq{"deleted_at": nil}).
		OrderBy("position ASC", "name ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var sections []*section.Section
	if err := pgxscan.Select(ctx, r.Querier(ctx), &sections, sql, args...); err != nil {
		return nil, fmt.Errorf("list by area: %w", err)
	}

	return sections, nil
}
