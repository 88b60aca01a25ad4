package usecase_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// fakeWarehouseRepo implementación en memoria del puerto, con la misma
// semántica de rutas que la implementación de PostgreSQL.
type fakeWarehouseRepo struct {
	byID map[string]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{byID: make(map[string]*entity.Warehouse)}
}

func (r *fakeWarehouseRepo) Create(w *entity.Warehouse) error {
	cp := *w
	r.byID[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	w, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r *fakeWarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	for _, w := range r.byID {
		if w.Name == name {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWarehouseRepo) List(limit, offset int) ([]*entity.Warehouse, error) {
	all, _ := r.Tree()
	if offset > len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *fakeWarehouseRepo) Tree() ([]*entity.Warehouse, error) {
	all := make([]*entity.Warehouse, 0, len(r.byID))
	for _, w := range r.byID {
		cp := *w
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Path < all[j].Path })
	return all, nil
}

func (r *fakeWarehouseRepo) Children(parentID string) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.byID {
		if w.ParentID == parentID {
			cp := *w
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (r *fakeWarehouseRepo) HasChildren(id string) (bool, error) {
	for _, w := range r.byID {
		if w.ParentID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeWarehouseRepo) Update(w *entity.Warehouse) error {
	cp := *w
	r.byID[w.ID] = &cp
	return nil
}

func (r *fakeWarehouseRepo) UpdateSubtreePaths(oldPath, newPath string) error {
	for _, w := range r.byID {
		if strings.HasPrefix(w.Path, oldPath+"/") {
			w.Path = newPath + w.Path[len(oldPath):]
			w.Depth = entity.PathDepth(w.Path)
		}
	}
	return nil
}

func (r *fakeWarehouseRepo) Delete(id string) error {
	delete(r.byID, id)
	return nil
}

func strPtr(s string) *string { return &s }

// seedTree crea Central > Zona A > Estante 3, más una raíz Auxiliar.
func seedTree(t *testing.T, uc *usecase.WarehouseUseCase) (central, zonaA, estante, aux dto.WarehouseResponse) {
	t.Helper()
	c, err := uc.Create(dto.CreateWarehouseRequest{Name: "Central"})
	require.NoError(t, err)
	z, err := uc.Create(dto.CreateWarehouseRequest{Name: "Zona A", ParentID: c.ID})
	require.NoError(t, err)
	e, err := uc.Create(dto.CreateWarehouseRequest{Name: "Estante 3", ParentID: z.ID})
	require.NoError(t, err)
	a, err := uc.Create(dto.CreateWarehouseRequest{Name: "Auxiliar"})
	require.NoError(t, err)
	return *c, *z, *e, *a
}

func TestWarehouseUseCase_Create_RutasYProfundidad(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())
	central, zonaA, estante, _ := seedTree(t, uc)

	assert.Equal(t, "/Central", central.Path)
	assert.Equal(t, 0, central.Depth)
	assert.Equal(t, "/Central/Zona A", zonaA.Path)
	assert.Equal(t, 1, zonaA.Depth)
	assert.Equal(t, "/Central/Zona A/Estante 3", estante.Path)
	assert.Equal(t, 2, estante.Depth)
}

func TestWarehouseUseCase_Create_NombreDuplicado(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())
	seedTree(t, uc)

	// El nombre es único en todo el árbol, no solo entre hermanos.
	_, err := uc.Create(dto.CreateWarehouseRequest{Name: "Zona A"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestWarehouseUseCase_Create_NombreInvalido(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())

	_, err := uc.Create(dto.CreateWarehouseRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateWarehouseRequest{Name: "con/barra"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el separador de ruta no se admite en nombres")
}

func TestWarehouseUseCase_Create_PadreInexistente(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())

	_, err := uc.Create(dto.CreateWarehouseRequest{Name: "Huérfano", ParentID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseUseCase_Update_RenombraSubarbol(t *testing.T) {
	repo := newFakeWarehouseRepo()
	uc := usecase.NewWarehouseUseCase(repo)
	central, zonaA, estante, _ := seedTree(t, uc)

	out, err := uc.Update(central.ID, dto.UpdateWarehouseRequest{Name: strPtr("Principal")})
	require.NoError(t, err)
	assert.Equal(t, "/Principal", out.Path)

	z, _ := repo.GetByID(zonaA.ID)
	e, _ := repo.GetByID(estante.ID)
	assert.Equal(t, "/Principal/Zona A", z.Path, "el rename debe reescribir las rutas de los descendientes")
	assert.Equal(t, "/Principal/Zona A/Estante 3", e.Path)
}

func TestWarehouseUseCase_Update_NombresConComodinesDeLike(t *testing.T) {
	repo := newFakeWarehouseRepo()
	uc := usecase.NewWarehouseUseCase(repo)

	// % y _ son legales en nombres y la reescritura de rutas debe tratarlos
	// como texto literal, nunca como comodines de patrón.
	bodega, err := uc.Create(dto.CreateWarehouseRequest{Name: "Bodega_1"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateWarehouseRequest{Name: "Cajas 100%", ParentID: bodega.ID})
	require.NoError(t, err)
	vecina, err := uc.Create(dto.CreateWarehouseRequest{Name: "BodegaX1"})
	require.NoError(t, err)
	ajena, err := uc.Create(dto.CreateWarehouseRequest{Name: "Estante", ParentID: vecina.ID})
	require.NoError(t, err)

	out, err := uc.Update(bodega.ID, dto.UpdateWarehouseRequest{Name: strPtr("Bodega Norte")})
	require.NoError(t, err)
	assert.Equal(t, "/Bodega Norte", out.Path)

	hijo, _ := repo.GetByName("Cajas 100%")
	assert.Equal(t, "/Bodega Norte/Cajas 100%", hijo.Path)

	// El subárbol de BodegaX1 no coincide con el prefijo y queda intacto.
	a, _ := repo.GetByID(ajena.ID)
	assert.Equal(t, "/BodegaX1/Estante", a.Path)
}

func TestWarehouseUseCase_Move_ReubicaSubarbol(t *testing.T) {
	repo := newFakeWarehouseRepo()
	uc := usecase.NewWarehouseUseCase(repo)
	_, zonaA, estante, aux := seedTree(t, uc)

	out, err := uc.Move(zonaA.ID, dto.MoveWarehouseRequest{ParentID: aux.ID})
	require.NoError(t, err)
	assert.Equal(t, "/Auxiliar/Zona A", out.Path)
	assert.Equal(t, 1, out.Depth)

	e, _ := repo.GetByID(estante.ID)
	assert.Equal(t, "/Auxiliar/Zona A/Estante 3", e.Path)
	assert.Equal(t, 2, e.Depth)
}

func TestWarehouseUseCase_Move_ARaiz(t *testing.T) {
	repo := newFakeWarehouseRepo()
	uc := usecase.NewWarehouseUseCase(repo)
	_, zonaA, estante, _ := seedTree(t, uc)

	out, err := uc.Move(zonaA.ID, dto.MoveWarehouseRequest{ParentID: ""})
	require.NoError(t, err)
	assert.Equal(t, "/Zona A", out.Path)
	assert.Equal(t, 0, out.Depth)

	e, _ := repo.GetByID(estante.ID)
	assert.Equal(t, "/Zona A/Estante 3", e.Path)
}

// Mover un nodo dentro de su propio subárbol crearía un ciclo.
func TestWarehouseUseCase_Move_DentroDelSubarbol(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())
	central, _, estante, _ := seedTree(t, uc)

	_, err := uc.Move(central.ID, dto.MoveWarehouseRequest{ParentID: estante.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = uc.Move(central.ID, dto.MoveWarehouseRequest{ParentID: central.ID})
	assert.ErrorIs(t, err, domain.ErrConflict, "un nodo no puede ser su propio padre")
}

func TestWarehouseUseCase_Tree_Anidado(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())
	central, zonaA, estante, aux := seedTree(t, uc)

	roots, err := uc.Tree()
	require.NoError(t, err)
	require.Len(t, roots, 2)

	// Orden por path: Auxiliar antes que Central.
	assert.Equal(t, aux.ID, roots[0].ID)
	assert.Equal(t, central.ID, roots[1].ID)
	require.Len(t, roots[1].Children, 1)
	assert.Equal(t, zonaA.ID, roots[1].Children[0].ID)
	require.Len(t, roots[1].Children[0].Children, 1)
	assert.Equal(t, estante.ID, roots[1].Children[0].Children[0].ID)
}

func TestWarehouseUseCase_Delete_ConHijos(t *testing.T) {
	uc := usecase.NewWarehouseUseCase(newFakeWarehouseRepo())
	central, _, estante, _ := seedTree(t, uc)

	err := uc.Delete(central.ID)
	assert.ErrorIs(t, err, domain.ErrConflict, "un almacén con hijos no se puede eliminar")

	assert.NoError(t, uc.Delete(estante.ID), "una hoja sí se puede eliminar")
}
