package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/colegios-api/internal/dto"
	"github.com/noah-isme/colegios-api/internal/models"
	appErrors "github.com/noah-isme/colegios-api/pkg/errors"
)

type mockDepartmentRepo struct {
	items   map[int64]*models.Department
	nextID  int64
	err     error
	creates int
	lists   int
}

func (m *mockDepartmentRepo) List(ctx context.Context) ([]models.Department, error) {
	m.lists++
	if m.err != nil {
		return nil, m.err
	}
	result := make([]models.Department, 0, len(m.items))
	for _, item := range m.items {
		result = append(result, *item)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockDepartmentRepo) FindByID(ctx context.Context, id int64) (*models.Department, error) {
	if m.err != nil {
		return nil, m.err
	}
	if item, ok := m.items[id]; ok {
		cp := *item
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockDepartmentRepo) Create(ctx context.Context, department *models.Department) error {
	m.creates++
	if m.err != nil {
		return m.err
	}
	if m.items == nil {
		m.items = make(map[int64]*models.Department)
	}
	m.nextID++
	department.ID = m.nextID
	cp := *department
	m.items[department.ID] = &cp
	return nil
}

func (m *mockDepartmentRepo) Update(ctx context.Context, department *models.Department) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[department.ID]; !ok {
		return sql.ErrNoRows
	}
	cp := *department
	m.items[department.ID] = &cp
	return nil
}

func (m *mockDepartmentRepo) Delete(ctx context.Context, id int64) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

func TestDepartmentServiceCreateAndGet(t *testing.T) {
	repo := &mockDepartmentRepo{}
	svc := NewDepartmentService(repo, NewValidator(), nil, zap.NewNop())

	created, err := svc.Create(context.Background(), dto.DepartmentRequest{Name: "Antioquia", Code: "05"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := svc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDepartmentServiceCreateValidationSkipsRepository(t *testing.T) {
	repo := &mockDepartmentRepo{}
	svc := NewDepartmentService(repo, nil, nil, nil)

	_, err := svc.Create(context.Background(), dto.DepartmentRequest{Name: "Antioquia"})
	requireValidationMessage(t, err, "Falta el campo requerido: codigo")
	assert.Zero(t, repo.creates)
}

func TestDepartmentServiceListEmptyIsNotNil(t *testing.T) {
	svc := NewDepartmentService(&mockDepartmentRepo{}, nil, nil, nil)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDepartmentServiceUpdate(t *testing.T) {
	repo := &mockDepartmentRepo{items: map[int64]*models.Department{7: {ID: 7, Name: "Antioquia", Code: "05"}}}
	svc := NewDepartmentService(repo, nil, nil, nil)

	updated, err := svc.Update(context.Background(), 7, dto.DepartmentRequest{Name: "Antioquia", Code: "005"})
	require.NoError(t, err)
	assert.Equal(t, models.Department{ID: 7, Name: "Antioquia", Code: "005"}, *updated)

	_, err = svc.Update(context.Background(), 99, dto.DepartmentRequest{Name: "X", Code: "Y"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Departamento no encontrado", appErr.Message)
}

func TestDepartmentServiceUpdateValidatesBeforeLookup(t *testing.T) {
	repo := &mockDepartmentRepo{items: map[int64]*models.Department{7: {ID: 7, Name: "Antioquia", Code: "05"}}}
	svc := NewDepartmentService(repo, nil, nil, nil)

	_, err := svc.Update(context.Background(), 99, dto.DepartmentRequest{Code: "05"})
	requireValidationMessage(t, err, "Falta el campo requerido: nombre")
	assert.Equal(t, "05", repo.items[7].Code)
}

func TestDepartmentServiceDeleteTwice(t *testing.T) {
	repo := &mockDepartmentRepo{items: map[int64]*models.Department{3: {ID: 3, Name: "Caldas", Code: "17"}}}
	svc := NewDepartmentService(repo, nil, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), 3))

	err := svc.Delete(context.Background(), 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
}

func TestDepartmentServiceStorageErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	fkErr := &pq.Error{Code: "23503", Constraint: "municipio_department_id_fkey", Message: "violates foreign key constraint"}
	repo := &mockDepartmentRepo{err: fmt.Errorf("delete department: %w", fkErr)}
	svc := NewDepartmentService(repo, nil, nil, zap.New(core))

	err := svc.Delete(context.Background(), 1)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Internal server error", appErr.Message)
	assert.Contains(t, appErr.Details(), "violates foreign key constraint")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "delete department", fields["op"])
	assert.Equal(t, "23503", fields["sqlstate"])
	assert.Equal(t, "foreign_key_violation", fields["sqlstate_name"])
	assert.Equal(t, "municipio_department_id_fkey", fields["constraint"])
}
