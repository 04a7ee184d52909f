// Package report_repo provides the PostgreSQL implementation of the report
// snapshot repository. Snapshot data payloads can be large (every placement
// of the venue), so they are stored zstd-compressed past a size threshold.
package report_repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/klauspost/compress/zstd"

	"barstock/internal/core/apperror"
	"barstock/internal/core/entity"
	"barstock/internal/core/id"
	"barstock/internal/domain"
	"barstock/internal/domain/report"
	"barstock/internal/infrastructure/storage/postgres"
)

const snapshotTable = "rep_snapshots"

// CompressionAlgo specifies the compression algorithm used for the payload.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// SnapshotRepo implements report.Repository.
type SnapshotRepo struct {
	txm               *postgres.TxManager
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int // bytes
}

// NewSnapshotRepo creates a new snapshot repository.
func NewSnapshotRepo(txm *postgres.TxManager) (*SnapshotRepo, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &SnapshotRepo{
		txm:               txm,
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 10 * 1024, // 10KB
	}, nil
}

func (r *SnapshotRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// Create inserts a snapshot with its data payload.
func (r *SnapshotRepo) Create(ctx context.Context, snap *report.Snapshot) error {
	rawData, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot data: %w", err)
	}

	stats, err := json.Marshal(snap.Stats)
	if err != nil {
		return fmt.Errorf("marshal snapshot stats: %w", err)
	}

	createdBy, err := json.Marshal(snap.CreatedBy)
	if err != nil {
		return fmt.Errorf("marshal snapshot author: %w", err)
	}

	algo := CompressionNone
	var data, compressed []byte
	if len(rawData) > r.compressThreshold {
		compressed = r.encoder.EncodeAll(rawData, nil)
		algo = CompressionZstd
	} else {
		data = rawData
	}

	sql := `
		INSERT INTO rep_snapshots (
			id, venue_id, created_at, created_by,
			data, data_compressed, compression_algo, stats
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err = r.txm.GetQuerier(ctx).Exec(ctx, sql,
		snap.ID, snap.VenueID, snap.CreatedAt, createdBy,
		data, compressed, algo, stats,
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	return nil
}

// GetByID retrieves the full snapshot, data included.
func (r *SnapshotRepo) GetByID(ctx context.Context, venueID string, snapID id.ID) (*report.Snapshot, error) {
	sql := `
		SELECT id, venue_id, created_at, created_by,
		       data, data_compressed, compression_algo, stats
		FROM rep_snapshots
		WHERE id = $1 AND venue_id = $2
	`

	var (
		snap       report.Snapshot
		createdBy  []byte
		data       []byte
		compressed []byte
		algo       CompressionAlgo
		stats      []byte
	)

	row := r.txm.GetQuerier(ctx).QueryRow(ctx, sql, snapID, venueID)
	if err := row.Scan(
		&snap.ID, &snap.VenueID, &snap.CreatedAt, &createdBy,
		&data, &compressed, &algo, &stats,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("stock report", snapID.String())
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	if algo == CompressionZstd && len(compressed) > 0 {
		decompressed, err := r.decoder.DecodeAll(compressed, nil)
		if err != nil {
			return nil, fmt.Errorf("decompress snapshot data: %w", err)
		}
		data = decompressed
	}

	if err := decodeSnapshotFields(&snap, createdBy, data, stats); err != nil {
		return nil, err
	}

	return &snap, nil
}

// List retrieves snapshot metadata without data payloads.
func (r *SnapshotRepo) List(ctx context.Context, venueID string, filter domain.ListFilter) (domain.ListResult[*report.Snapshot], error) {
	result := domain.ListResult[*report.Snapshot]{
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}

	q := r.builder().
		Select("id", "venue_id", "created_at", "created_by", "stats").
		From(snapshotTable).
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("created_at DESC")

	countQ := r.builder().
		Select("COUNT(*)").
		From(snapshotTable).
		Where(squirrel.Eq{"venue_id": venueID})

	countSQL, countArgs, err := countQ.ToSql()
	if err != nil {
		return result, fmt.Errorf("build count: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&result.TotalCount); err != nil {
		return result, fmt.Errorf("count snapshots: %w", err)
	}

	if filter.Limit > 0 {
		q = q.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		q = q.Offset(uint64(filter.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return result, fmt.Errorf("build query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return result, fmt.Errorf("list snapshots: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			snap      report.Snapshot
			createdBy []byte
			stats     []byte
		)
		if err := rows.Scan(&snap.ID, &snap.VenueID, &snap.CreatedAt, &createdBy, &stats); err != nil {
			return result, fmt.Errorf("scan snapshot: %w", err)
		}
		if err := decodeSnapshotFields(&snap, createdBy, nil, stats); err != nil {
			return result, err
		}
		result.Items = append(result.Items, &snap)
	}

	return result, rows.Err()
}

// Delete removes a snapshot.
func (r *SnapshotRepo) Delete(ctx context.Context, venueID string, snapID id.ID) error {
	sql, args, err := r.builder().
		Delete(snapshotTable).
		Where(squirrel.Eq{"id": snapID}).
		Where(squirrel.Eq{"venue_id": venueID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete: %w", err)
	}

	result, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NewNotFound("stock report", snapID.String())
	}

	return nil
}

func decodeSnapshotFields(snap *report.Snapshot, createdBy, data, stats []byte) error {
	if len(createdBy) > 0 {
		var author entity.UserStub
		if err := json.Unmarshal(createdBy, &author); err != nil {
			return fmt.Errorf("unmarshal snapshot author: %w", err)
		}
		snap.CreatedBy = author
	}

	if len(data) > 0 {
		if err := json.Unmarshal(data, &snap.Data); err != nil {
			return fmt.Errorf("unmarshal snapshot data: %w", err)
		}
	}

	if len(stats) > 0 {
		if err := json.Unmarshal(stats, &snap.Stats); err != nil {
			return fmt.Errorf("unmarshal snapshot stats: %w", err)
		}
	}

	return nil
}
