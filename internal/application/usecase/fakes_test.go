package usecase_test

import (
	"github.com/tu-usuario/todo-barras/internal/domain"
	"github.com/tu-usuario/todo-barras/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria de los puertos de repositorio (sin write-through).
// ──────────────────────────────────────────────────────────────────────────────

type fakeCatalogRepo struct {
	items []entity.ProductDefinition
}

func (f *fakeCatalogRepo) List() ([]entity.ProductDefinition, error) {
	out := make([]entity.ProductDefinition, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeCatalogRepo) Replace(catalog []entity.ProductDefinition) error {
	f.items = make([]entity.ProductDefinition, len(catalog))
	copy(f.items, catalog)
	return nil
}

type fakeSheetRepo struct {
	sheets []*entity.StockSheet
}

func (f *fakeSheetRepo) Insert(sheet *entity.StockSheet) error {
	// la más reciente queda primera, como en el store real
	f.sheets = append([]*entity.StockSheet{cloneSheet(sheet)}, f.sheets...)
	return nil
}

func (f *fakeSheetRepo) GetByID(id string) (*entity.StockSheet, error) {
	for _, s := range f.sheets {
		if s.ID == id {
			return cloneSheet(s), nil
		}
	}
	return nil, nil
}

func (f *fakeSheetRepo) Update(sheet *entity.StockSheet) error {
	for i, s := range f.sheets {
		if s.ID == sheet.ID {
			f.sheets[i] = cloneSheet(sheet)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeSheetRepo) Delete(id string) error {
	for i, s := range f.sheets {
		if s.ID == id {
			f.sheets = append(f.sheets[:i], f.sheets[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeSheetRepo) List() ([]*entity.StockSheet, error) {
	out := make([]*entity.StockSheet, 0, len(f.sheets))
	for _, s := range f.sheets {
		out = append(out, cloneSheet(s))
	}
	return out, nil
}

type fakeVenueRepo struct {
	profile *entity.VenueProfile
}

func (f *fakeVenueRepo) Get() (*entity.VenueProfile, error) {
	if f.profile == nil {
		return nil, nil
	}
	v := *f.profile
	return &v, nil
}

func (f *fakeVenueRepo) Save(profile *entity.VenueProfile) error {
	v := *profile
	f.profile = &v
	return nil
}

func cloneSheet(s *entity.StockSheet) *entity.StockSheet {
	out := *s
	out.Rows = make([]entity.StockRow, len(s.Rows))
	copy(out.Rows, s.Rows)
	return &out
}
