package postgres

import (
	"testing"
	"time"

	"barstock/internal/core/entity"
	"barstock/internal/core/id"

	"github.com/stretchr/testify/assert"
)

type MockCatalog struct {
	entity.Catalog
	Code     string `db:"code" json:"code"`
	Position int    `db:"position" json:"position"`
}

func TestExtractDBColumns(t *testing.T) {
	cols := ExtractDBColumns[MockCatalog]()

	expectedCols := []string{
		"id", "version", "created_at", "updated_at", "deleted_at",
		"venue_id", "name", "code", "position",
	}

	for _, expected := range expectedCols {
		assert.Contains(t, cols, expected)
	}
}

func TestStructToMap(t *testing.T) {
	now := time.Now().UTC()
	cat := MockCatalog{
		Catalog: entity.Catalog{
			BaseEntity: entity.BaseEntity{
				ID:        id.New(),
				Version:   5,
				CreatedAt: now,
				UpdatedAt: now,
				DeletedAt: &now,
			},
			VenueID: "venue-1",
			Name:    "Test Name",
		},
		Code:     "TEST",
		Position: 3,
	}

	m := StructToMap(cat)

	assert.Equal(t, cat.ID, m["id"])
	assert.Equal(t, 5, m["version"])
	assert.Equal(t, &now, m["deleted_at"])
	assert.Equal(t, "venue-1", m["venue_id"])
	assert.Equal(t, "Test Name", m["name"])
	assert.Equal(t, "TEST", m["code"])
	assert.Equal(t, 3, m["position"])
}
