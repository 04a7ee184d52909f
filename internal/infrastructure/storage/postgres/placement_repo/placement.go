// Package placement_repo provides the PostgreSQL implementation of
// placement.Repository.
package placement_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"barstock/internal/core/apperror"
	"barstock/internal/domain/placement"
	"barstock/internal/infrastructure/storage/postgres"
)

const placementTable = "placements"

// PlacementRepo implements placement.Repository.
type PlacementRepo struct {
	txm        *postgres.TxManager
	selectCols []string
}

// NewPlacementRepo creates a new placement repository.
func NewPlacementRepo(txm *postgres.TxManager) *PlacementRepo {
	return &PlacementRepo{
		txm:        txm,
		selectCols: postgres.ExtractDBColumns[placement.Placement](),
	}
}

func (r *PlacementRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a new placement.
func (r *PlacementRepo) Create(ctx context.Context, p *placement.Placement) error {
	data := postgres.StructToMap(p)
	filtered := make(map[string]any, len(r.selectCols))
	for _, col := range r.selectCols {
		if val, ok := data[col]; ok {
			filtered[col] = val
		}
	}

	sql, args, err := r.builder().
		Insert(placementTable).
		SetMap(filtered).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert placement: %w", err)
	}
	return nil
}

// GetByID retrieves a placement by ID within the venue.
func (r *PlacementRepo) GetByID(ctx context.Context, venueID, placementID string) (*placement.Placement, error) {
	sql, args, err := r.builder().
		Select(r.selectCols...).
		From(placementTable).
		Where(squirrel.Eq{"id": placementID}).
		Where(squirrel.Eq{"venue_id": venueID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var p placement.Placement
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &p, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, apperror.NewNotFound("placement", placementID)
		}
		return nil, fmt.Errorf("get placement: %w", err)
	}
	return &p, nil
}

// Delete removes a placement row.
func (r *PlacementRepo) Delete(ctx context.Context, venueID, placementID string) error {
	sql, args, err := r.builder().
		Delete(placementTable).
		Where(squirrel.Eq{"id": placementID}).
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete placement: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("placement", placementID)
	}
	return nil
}

// ListByVenue retrieves placements of a venue ordered by area, section, position.
func (r *PlacementRepo) ListByVenue(ctx context.Context, venueID, areaID, sectionID string) ([]*placement.Placement, error) {
	q := r.builder().
		Select(r.selectCols...).
		From(placementTable).
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("area_id ASC", "section_id ASC", "position ASC")
	if areaID != "" {
		q = q.Where(squirrel.Eq{"area_id": areaID})
	}
	if sectionID != "" {
		q = q.Where(squirrel.Eq{"section_id": sectionID})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var placements []*placement.Placement
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &placements, sql, args...); err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	return placements, nil
}

// BulkApply applies volume and position updates to rows whose stored
// updated_at is not newer than the submitted one. Rows skipped because of a
// newer stored timestamp, or because the ID does not exist in this venue,
// are returned as conflicts.
func (r *PlacementRepo) BulkApply(ctx context.Context, venueID string, updates []placement.Update) ([]string, error) {
	querier := r.txm.GetQuerier(ctx)

	var conflicts []string
	for _, u := range updates {
		sql, args, err := r.builder().
			Update(placementTable).
			Set("volume", u.Volume).
			Set("position", u.Position).
			Set("updated_at", squirrel.Expr("NOW()")).
			Set("version", squirrel.Expr("version + 1")).
			Where(squirrel.Eq{"id": u.ID}).
			Where(squirrel.Eq{"venue_id": venueID}).
			Where(squirrel.LtOrEq{"updated_at": u.UpdatedAt}).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("build bulk update: %w", err)
		}

		result, err := querier.Exec(ctx, sql, args...)
		if err != nil {
			return nil, fmt.Errorf("apply placement update %s: %w", u.ID, err)
		}
		if result.RowsAffected() == 0 {
			conflicts = append(conflicts, u.ID)
		}
	}

	return conflicts, nil
}

// ResetVolumes zeroes the volume of every placement in the venue.
func (r *PlacementRepo) ResetVolumes(ctx context.Context, venueID string) error {
	sql, args, err := r.builder().
		Update(placementTable).
		Set("volume", 0).
		Set("updated_at", squirrel.Expr("NOW()")).
		Set("version", squirrel.Expr("version + 1")).
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build reset volumes: %w", err)
	}

	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("reset volumes: %w", err)
	}
	return nil
}
