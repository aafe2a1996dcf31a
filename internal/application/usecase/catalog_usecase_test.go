package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/todo-barras/internal/application/dto"
	"github.com/tu-usuario/todo-barras/internal/application/usecase"
	"github.com/tu-usuario/todo-barras/internal/domain"
	"github.com/tu-usuario/todo-barras/internal/domain/entity"
)

func TestCatalogAdd_NormalizaYOrdena(t *testing.T) {
	repo := &fakeCatalogRepo{items: []entity.ProductDefinition{
		{Name: "CAMPARI", UnitsPerCase: 6},
		{Name: "FERNET BRANCA", UnitsPerCase: 6},
	}}
	uc := usecase.NewCatalogUseCase(repo)

	out, err := uc.Add(dto.AddProductRequest{Name: "  aperol ", UnitsPerCase: 12})
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	assert.Equal(t, "APEROL", out.Items[0].Name, "el nombre se normaliza a mayúsculas y ordena primero")
	assert.Equal(t, 12, out.Items[0].UnitsPerCase)
	assert.Equal(t, "CAMPARI", out.Items[1].Name)
	assert.Equal(t, "FERNET BRANCA", out.Items[2].Name)
}

// TestCatalogAdd_ColacionEspanola: la eñe ordena entre N y O, como el
// selector de productos espera.
func TestCatalogAdd_ColacionEspanola(t *testing.T) {
	repo := &fakeCatalogRepo{items: []entity.ProductDefinition{
		{Name: "NARANJA", UnitsPerCase: 6},
		{Name: "OPORTO", UnitsPerCase: 6},
	}}
	uc := usecase.NewCatalogUseCase(repo)

	out, err := uc.Add(dto.AddProductRequest{Name: "ÑANDÚ GIN", UnitsPerCase: 6})
	require.NoError(t, err)

	require.Len(t, out.Items, 3)
	assert.Equal(t, []string{"NARANJA", "ÑANDÚ GIN", "OPORTO"},
		[]string{out.Items[0].Name, out.Items[1].Name, out.Items[2].Name})
}

func TestCatalogAdd_RechazaEntradaInvalida(t *testing.T) {
	repo := &fakeCatalogRepo{}
	uc := usecase.NewCatalogUseCase(repo)

	cases := []dto.AddProductRequest{
		{Name: "", UnitsPerCase: 6},
		{Name: "   ", UnitsPerCase: 6},
		{Name: "GANCIA", UnitsPerCase: 0},
		{Name: "GANCIA", UnitsPerCase: -3},
	}
	for _, in := range cases {
		_, err := uc.Add(in)
		assert.True(t, errors.Is(err, domain.ErrValidation),
			"agregar %+v debe fallar con ErrValidation", in)
	}
	assert.Empty(t, repo.items, "una entrada rechazada no muta el catálogo")
}

func TestCatalogAdd_RechazaNombreDuplicado(t *testing.T) {
	repo := &fakeCatalogRepo{items: []entity.ProductDefinition{{Name: "CAMPARI", UnitsPerCase: 6}}}
	uc := usecase.NewCatalogUseCase(repo)

	_, err := uc.Add(dto.AddProductRequest{Name: "campari", UnitsPerCase: 12})

	assert.True(t, errors.Is(err, domain.ErrDuplicate),
		"el mismo nombre con otra capitalización es duplicado")
	require.Len(t, repo.items, 1)
	assert.Equal(t, 6, repo.items[0].UnitsPerCase, "el duplicado rechazado no pisa la definición existente")
}

func TestCatalogRemove_PorPosicion(t *testing.T) {
	repo := &fakeCatalogRepo{items: []entity.ProductDefinition{
		{Name: "APEROL", UnitsPerCase: 12},
		{Name: "CAMPARI", UnitsPerCase: 6},
	}}
	uc := usecase.NewCatalogUseCase(repo)

	out, err := uc.Remove(0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "CAMPARI", out.Items[0].Name)

	_, err = uc.Remove(5)
	assert.True(t, errors.Is(err, domain.ErrNotFound), "posición fuera de rango → ErrNotFound")
	assert.Len(t, repo.items, 1, "el fuera de rango no muta nada")
}
