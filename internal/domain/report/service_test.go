package report

import (
	"context"
	"testing"
	"time"

	"barstock/internal/core/apperror"
	"barstock/internal/core/entity"
	"barstock/internal/core/id"
	"barstock/internal/core/money"
	"barstock/internal/domain"
	"barstock/internal/domain/catalogs/area"
	"barstock/internal/domain/catalogs/item"
	"barstock/internal/domain/catalogs/product"
	"barstock/internal/domain/catalogs/section"
	"barstock/internal/domain/order"
	"barstock/internal/domain/placement"
)

// --- fakes ---

type fakeTx struct {
	calls int
}

func (f *fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeSnapshots struct {
	byID map[id.ID]*Snapshot
	log  *[]string
}

func (f *fakeSnapshots) Create(ctx context.Context, snap *Snapshot) error {
	if f.byID == nil {
		f.byID = make(map[id.ID]*Snapshot)
	}
	f.byID[snap.ID] = snap
	if f.log != nil {
		*f.log = append(*f.log, "snapshot_create")
	}
	return nil
}

func (f *fakeSnapshots) GetByID(ctx context.Context, venueID string, snapID id.ID) (*Snapshot, error) {
	snap, ok := f.byID[snapID]
	if !ok {
		return nil, apperror.NewNotFound("report", snapID.String())
	}
	return snap, nil
}

func (f *fakeSnapshots) List(ctx context.Context, venueID string, filter domain.ListFilter) (domain.ListResult[*Snapshot], error) {
	return domain.ListResult[*Snapshot]{}, nil
}

func (f *fakeSnapshots) Delete(ctx context.Context, venueID string, snapID id.ID) error {
	delete(f.byID, snapID)
	return nil
}

type fakePlacements struct {
	placements []*placement.Placement
	log        *[]string
}

func (f *fakePlacements) Create(ctx context.Context, p *placement.Placement) error { return nil }
func (f *fakePlacements) GetByID(ctx context.Context, venueID, placementID string) (*placement.Placement, error) {
	return nil, apperror.NewNotFound("placement", placementID)
}
func (f *fakePlacements) Delete(ctx context.Context, venueID, placementID string) error { return nil }
func (f *fakePlacements) ListByVenue(ctx context.Context, venueID, areaID, sectionID string) ([]*placement.Placement, error) {
	return f.placements, nil
}
func (f *fakePlacements) BulkApply(ctx context.Context, venueID string, updates []placement.Update) ([]string, error) {
	return nil, nil
}
func (f *fakePlacements) ResetVolumes(ctx context.Context, venueID string) error {
	if f.log != nil {
		*f.log = append(*f.log, "placements_reset")
	}
	return nil
}

type fakeItems struct {
	items []*item.Item
}

func (f *fakeItems) Create(ctx context.Context, it *item.Item) error { return nil }
func (f *fakeItems) GetByID(ctx context.Context, venueID string, itemID id.ID) (*item.Item, error) {
	return nil, apperror.NewNotFound("inventory item", itemID.String())
}
func (f *fakeItems) Update(ctx context.Context, it *item.Item) error { return nil }
func (f *fakeItems) SetDeleted(ctx context.Context, venueID string, itemID id.ID, deleted bool) error {
	return nil
}
func (f *fakeItems) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*item.Item], error) {
	return domain.ListResult[*item.Item]{Items: f.items}, nil
}
func (f *fakeItems) Exists(ctx context.Context, venueID string, itemID id.ID) (bool, error) {
	return false, nil
}
func (f *fakeItems) FindByProduct(ctx context.Context, venueID, productID string) (*item.Item, error) {
	return nil, apperror.NewNotFound("inventory item", productID)
}
func (f *fakeItems) ListActive(ctx context.Context, venueID string) ([]*item.Item, error) {
	return f.items, nil
}

type fakeProducts struct {
	products []*product.Product
}

func (f *fakeProducts) Create(ctx context.Context, p *product.Product) error { return nil }
func (f *fakeProducts) GetByID(ctx context.Context, venueID string, productID id.ID) (*product.Product, error) {
	return nil, apperror.NewNotFound("product", productID.String())
}
func (f *fakeProducts) Update(ctx context.Context, p *product.Product) error { return nil }
func (f *fakeProducts) SetDeleted(ctx context.Context, venueID string, productID id.ID, deleted bool) error {
	return nil
}
func (f *fakeProducts) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*product.Product], error) {
	return domain.ListResult[*product.Product]{Items: f.products}, nil
}
func (f *fakeProducts) Exists(ctx context.Context, venueID string, productID id.ID) (bool, error) {
	return false, nil
}
func (f *fakeProducts) ListBySupplier(ctx context.Context, venueID, supplierID string) ([]*product.Product, error) {
	return nil, nil
}

type fakeAreas struct {
	areas []*area.Area
}

func (f *fakeAreas) Create(ctx context.Context, a *area.Area) error { return nil }
func (f *fakeAreas) GetByID(ctx context.Context, venueID string, areaID id.ID) (*area.Area, error) {
	return nil, apperror.NewNotFound("area", areaID.String())
}
func (f *fakeAreas) Update(ctx context.Context, a *area.Area) error { return nil }
func (f *fakeAreas) SetDeleted(ctx context.Context, venueID string, areaID id.ID, deleted bool) error {
	return nil
}
func (f *fakeAreas) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*area.Area], error) {
	return domain.ListResult[*area.Area]{Items: f.areas}, nil
}
func (f *fakeAreas) Exists(ctx context.Context, venueID string, areaID id.ID) (bool, error) {
	return true, nil
}

type fakeSections struct {
	sections []*section.Section
}

func (f *fakeSections) Create(ctx context.Context, s *section.Section) error { return nil }
func (f *fakeSections) GetByID(ctx context.Context, venueID string, sectionID id.ID) (*section.Section, error) {
	return nil, apperror.NewNotFound("section", sectionID.String())
}
func (f *fakeSections) Update(ctx context.Context, s *section.Section) error { return nil }
func (f *fakeSections) SetDeleted(ctx context.Context, venueID string, sectionID id.ID, deleted bool) error {
	return nil
}
func (f *fakeSections) List(ctx context.Context, filter domain.ListFilter) (domain.ListResult[*section.Section], error) {
	return domain.ListResult[*section.Section]{Items: f.sections}, nil
}
func (f *fakeSections) Exists(ctx context.Context, venueID string, sectionID id.ID) (bool, error) {
	return true, nil
}
func (f *fakeSections) ListByArea(ctx context.Context, venueID, areaID string) ([]*section.Section, error) {
	return f.sections, nil
}

type fakeOrders struct {
	from, to time.Time
	called   bool
	orders   []*order.Order
}

func (f *fakeOrders) Create(ctx context.Context, doc *order.Order) error { return nil }
func (f *fakeOrders) GetByID(ctx context.Context, venueID string, docID id.ID) (*order.Order, error) {
	return nil, apperror.NewNotFound("order", docID.String())
}
func (f *fakeOrders) Update(ctx context.Context, doc *order.Order) error { return nil }
func (f *fakeOrders) Delete(ctx context.Context, venueID string, docID id.ID) error { return nil }
func (f *fakeOrders) GetLines(ctx context.Context, docID id.ID) ([]order.Line, error) { return nil, nil }
func (f *fakeOrders) SaveLines(ctx context.Context, docID id.ID, lines []order.Line) error {
	return nil
}
func (f *fakeOrders) List(ctx context.Context, filter order.ListFilter) (domain.ListResult[*order.Order], error) {
	return domain.ListResult[*order.Order]{}, nil
}
func (f *fakeOrders) ListDeliveredBetween(ctx context.Context, venueID string, from, to time.Time) ([]*order.Order, error) {
	f.called = true
	f.from, f.to = from, to
	return f.orders, nil
}

func newTestService(snaps *fakeSnapshots, placs *fakePlacements, orders *fakeOrders, txm *fakeTx) *Service {
	return NewService(snaps, placs, &fakeItems{}, &fakeProducts{}, &fakeAreas{}, &fakeSections{}, orders, txm)
}

// --- tests ---

func TestUsage_WindowsPurchasesOnSnapshotTimestamps(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t1 := t0.AddDate(0, 0, 7)

	open := testSnapshot(t0, nil)
	closing := testSnapshot(t1, nil)

	snaps := &fakeSnapshots{byID: map[id.ID]*Snapshot{open.ID: open, closing.ID: closing}}
	orders := &fakeOrders{}
	svc := newTestService(snaps, &fakePlacements{}, orders, &fakeTx{})

	_, err := svc.Usage(context.Background(), "venue-1", open.ID, closing.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !orders.called {
		t.Fatal("purchase query was not issued")
	}
	if !orders.from.Equal(t0) || !orders.to.Equal(t1) {
		t.Errorf("purchase window [%v, %v), want [%v, %v)", orders.from, orders.to, t0, t1)
	}
}

func TestUsage_MissingSnapshotIsNotFound(t *testing.T) {
	snaps := &fakeSnapshots{byID: map[id.ID]*Snapshot{}}
	svc := newTestService(snaps, &fakePlacements{}, &fakeOrders{}, &fakeTx{})

	_, err := svc.Usage(context.Background(), "venue-1", id.New(), id.New())
	if !apperror.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestUsage_RejectsInvertedWindow(t *testing.T) {
	t0 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	open := testSnapshot(t0.AddDate(0, 0, 7), nil)
	closing := testSnapshot(t0, nil)

	snaps := &fakeSnapshots{byID: map[id.ID]*Snapshot{open.ID: open, closing.ID: closing}}
	svc := newTestService(snaps, &fakePlacements{}, &fakeOrders{}, &fakeTx{})

	_, err := svc.Usage(context.Background(), "venue-1", open.ID, closing.ID)
	appErr, ok := apperror.AsAppError(err)
	if !ok || appErr.Code != apperror.CodeValidation {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestPreview_DoesNotPersistOrReset(t *testing.T) {
	var log []string
	snaps := &fakeSnapshots{log: &log}
	placs := &fakePlacements{log: &log}
	txm := &fakeTx{}

	svc := newTestService(snaps, placs, &fakeOrders{}, txm)

	author := entity.UserStub{ID: "user-1", Name: "Sam", Email: "sam@example.com"}
	snap, err := svc.Preview(context.Background(), "venue-1", author)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if txm.calls != 0 {
		t.Errorf("transaction count = %d, want 0", txm.calls)
	}
	if len(log) != 0 {
		t.Errorf("storage writes = %v, want none", log)
	}
	if snap.VenueID != "venue-1" || snap.CreatedBy.ID != "user-1" {
		t.Errorf("snapshot metadata wrong: %+v", snap)
	}
}

func TestGenerate_PersistsAndResetsInOneTransaction(t *testing.T) {
	var log []string
	snaps := &fakeSnapshots{log: &log}
	placs := &fakePlacements{log: &log}
	txm := &fakeTx{}

	svc := newTestService(snaps, placs, &fakeOrders{}, txm)

	author := entity.UserStub{ID: "user-1", Name: "Sam", Email: "sam@example.com"}
	snap, err := svc.Generate(context.Background(), "venue-1", author)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if txm.calls != 1 {
		t.Errorf("transaction count = %d, want 1", txm.calls)
	}
	if len(log) != 2 || log[0] != "snapshot_create" || log[1] != "placements_reset" {
		t.Errorf("operation order = %v, want [snapshot_create placements_reset]", log)
	}

	if snap.VenueID != "venue-1" || snap.CreatedBy.ID != "user-1" {
		t.Errorf("snapshot metadata wrong: %+v", snap)
	}
	if snap.Data == nil {
		t.Error("snapshot data is nil, want empty slice for empty venue")
	}
	if !snap.Stats.Total.Value.Equal(money.Zero()) {
		t.Errorf("empty venue stats value = %s, want 0", snap.Stats.Total.Value)
	}
}
