package placement

import (
	"context"
	"errors"
	"testing"
	"time"

	"barstock/internal/core/apperror"
	"barstock/internal/core/id"
	"barstock/internal/domain"
	"barstock/internal/domain/catalogs/item"
	"barstock/internal/domain/catalogs/section"
)

// --- fakes ---

type fakeTx struct {
	calls int
}

func (f *fakeTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeRepo struct {
	created   []*Placement
	conflicts []string
	applied   []Update
}

func (f *fakeRepo) Create(ctx context.Context, p *Placement) error {
	f.created = append(f.created, p)
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, venueID, placementID string) (*Placement, error) {
	return nil, apperror.NewNotFound("placement", placementID)
}

func (f *fakeRepo) Delete(ctx context.Context, venueID, placementID string) error { return nil }

func (f *fakeRepo) ListByVenue(ctx context.Context, venueID, areaID, sectionID string) ([]*Placement, error) {
	return nil, nil
}

func (f *fakeRepo) BulkApply(ctx context.Context, venueID string, updates []Update) ([]string, error) {
	f.applied = updates
	return f.conflicts, nil
}

func (f *fakeRepo) ResetVolumes(ctx context.Context, venueID string) error { return nil }

type fakeItems struct {
	existing map[string]bool
}

func (f *fakeItems) Create(ctx context.Context, i *item.Item) error { return nil }
func (f *fakeItems) Update(ctx context.Context, i *item.Item) error { return nil }
func (f *fakeItems) GetByID(ctx context.Context, venueID string, itemID id.ID) (*item.Item, error) {
	return nil, apperror.NewNotFound("inventory item", itemID.String())
}
func (f *fakeItems) List(ctx context.Context, flt domain.ListFilter) (domain.ListResult[*item.Item], error) {
	return domain.ListResult[*item.Item]{}, nil
}
func (f *fakeItems) SetDeleted(ctx context.Context, venueID string, itemID id.ID, deleted bool) error {
	return nil
}
func (f *fakeItems) Exists(ctx context.Context, venueID string, itemID id.ID) (bool, error) {
	return f.existing[itemID.String()], nil
}
func (f *fakeItems) FindByProduct(ctx context.Context, venueID, productID string) (*item.Item, error) {
	return nil, apperror.NewNotFound("inventory item", productID)
}
func (f *fakeItems) ListActive(ctx context.Context, venueID string) ([]*item.Item, error) {
	return nil, nil
}

type fakeSections struct {
	byID map[string]*section.Section
}

func (f *fakeSections) Create(ctx context.Context, s *section.Section) error { return nil }
func (f *fakeSections) Update(ctx context.Context, s *section.Section) error { return nil }
func (f *fakeSections) GetByID(ctx context.Context, venueID string, sectionID id.ID) (*section.Section, error) {
	s, ok := f.byID[sectionID.String()]
	if !ok {
		return nil, apperror.NewNotFound("section", sectionID.String())
	}
	return s, nil
}
func (f *fakeSections) List(ctx context.Context, flt domain.ListFilter) (domain.ListResult[*section.Section], error) {
	return domain.ListResult[*section.Section]{}, nil
}
func (f *fakeSections) SetDeleted(ctx context.Context, venueID string, sectionID id.ID, deleted bool) error {
	return nil
}
func (f *fakeSections) Exists(ctx context.Context, venueID string, sectionID id.ID) (bool, error) {
	_, ok := f.byID[sectionID.String()]
	return ok, nil
}
func (f *fakeSections) ListByArea(ctx context.Context, venueID, areaID string) ([]*section.Section, error) {
	return nil, nil
}

// --- tests ---

func TestService_Create_SectionAreaMismatch(t *testing.T) {
	venueID := id.New().String()
	itemID := id.New()
	areaID := id.New().String()
	otherAreaID := id.New().String()

	sec := section.NewSection(venueID, otherAreaID, "Back Shelf")

	items := &fakeItems{existing: map[string]bool{itemID.String(): true}}
	sections := &fakeSections{byID: map[string]*section.Section{sec.ID.String(): sec}}
	svc := NewService(&fakeRepo{}, items, sections, &fakeTx{})

	p := NewPlacement(venueID, itemID.String(), areaID, sec.ID.String())

	err := svc.Create(context.Background(), p)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperror.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_Create_UnknownItem(t *testing.T) {
	venueID := id.New().String()
	itemID := id.New()
	areaID := id.New().String()

	sec := section.NewSection(venueID, areaID, "Back Shelf")

	items := &fakeItems{existing: map[string]bool{}}
	sections := &fakeSections{byID: map[string]*section.Section{sec.ID.String(): sec}}
	svc := NewService(&fakeRepo{}, items, sections, &fakeTx{})

	p := NewPlacement(venueID, itemID.String(), areaID, sec.ID.String())

	err := svc.Create(context.Background(), p)
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperror.CodeNotFound {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestService_BulkUpdate_RejectsNegativeVolume(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, &fakeItems{}, &fakeSections{}, &fakeTx{})

	_, err := svc.BulkUpdate(context.Background(), id.New().String(), []Update{
		{ID: id.New().String(), Volume: -0.5, UpdatedAt: time.Now()},
	})
	var appErr *apperror.AppError
	if !errors.As(err, &appErr) || appErr.Code != apperror.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.applied != nil {
		t.Fatal("no updates should reach the repository")
	}
}

func TestService_BulkUpdate_ReturnsConflicts(t *testing.T) {
	conflictID := id.New().String()
	repo := &fakeRepo{conflicts: []string{conflictID}}
	txm := &fakeTx{}
	svc := NewService(repo, &fakeItems{}, &fakeSections{}, txm)

	updates := []Update{
		{ID: id.New().String(), Volume: 1.5, UpdatedAt: time.Now()},
		{ID: conflictID, Volume: 2.0, UpdatedAt: time.Now().Add(-time.Hour)},
	}

	conflicts, err := svc.BulkUpdate(context.Background(), id.New().String(), updates)
	if err != nil {
		t.Fatalf("BulkUpdate failed: %v", err)
	}
	if len(conflicts) != 1 || conflicts[0] != conflictID {
		t.Fatalf("expected conflicts [%s], got %v", conflictID, conflicts)
	}
	if txm.calls != 1 {
		t.Fatalf("expected one transaction, got %d", txm.calls)
	}
	if len(repo.applied) != 2 {
		t.Fatalf("expected 2 updates passed through, got %d", len(repo.applied))
	}
}
