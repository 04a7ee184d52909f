package catalog_repo

import (
	"barstock/internal/domain/catalogs/area"
	"barstock/internal/infrastructure/storage/postgres"
)

const areaTable = "cat_areas"

// AreaRepo implements area.Repository.
type AreaRepo struct {
	*BaseCatalogRepo[*area.Area]
}

// NewAreaRepo creates a new area repository.
func NewAreaRepo(txm *postgres.TxManager) *AreaRepo {
	return &AreaRepo{
		BaseCatalogRepo: NewBaseCatalogRepo(
			txm,
			areaTable,
			postgres.ExtractDBColumns[area.Area](),
			func() *area.Area { return &area.Area{} },
		),
	}
}
