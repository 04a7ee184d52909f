package catalog_repo

import (
	"testing"

	"barstock/internal/core/id"

	"github.com/Masterminds/squirrel"
)

func TestBaseCatalogRepo_SetDeleted_SQL(t *testing.T) {
	repo := newTestRepo()
	entityID := id.New()

	q := repo.Builder().
		Update(repo.tableName).
		Set("version", squirrel.Expr("version + 1")).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": entityID}).
		Where(squirrel.Eq{"venue_id": "venue-1"})

	sql, args, err := q.ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	wantSQL := "UPDATE test_table SET version = version + 1, deleted_at = NOW() WHERE id = $1 AND venue_id = $2"
	if sql != wantSQL {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", wantSQL, sql)
	}
	// squirrel passes args through driver.Valuer, so ids arrive as strings
	if len(args) != 2 || args[0] != entityID.String() || args[1] != "venue-1" {
		t.Errorf("Args mismatch\nwant: [%v venue-1]\ngot:  %v", entityID, args)
	}
}

func TestBaseCatalogRepo_Restore_SQL(t *testing.T) {
	repo := newTestRepo()
	entityID := id.New()

	q := repo.Builder().
		Update(repo.tableName).
		Set("version", squirrel.Expr("version + 1")).
		Set("deleted_at", nil).
		Where(squirrel.Eq{"id": entityID})

	sql, args, err := q.ToSql()
	if err != nil {
		t.Fatalf("ToSql failed: %v", err)
	}

	wantSQL := "UPDATE test_table SET version = version + 1, deleted_at = $1 WHERE id = $2"
	if sql != wantSQL {
		t.Errorf("SQL mismatch\nwant: %s\ngot:  %s", wantSQL, sql)
	}
	if len(args) != 2 || args[0] != nil || args[1] != entityID.String() {
		t.Errorf("Args mismatch\nwant: [<nil> %v]\ngot:  %v", entityID, args)
	}
}
