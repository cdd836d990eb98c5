package router

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/colegios-api/internal/service"
	"github.com/noah-isme/colegios-api/pkg/config"
	"github.com/noah-isme/colegios-api/pkg/response"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	metrics := service.NewMetricsService()
	handlers := NewHandlers(Dependencies{DB: sqlx.NewDb(db, "sqlmock"), Metrics: metrics})
	r := New(Options{Env: config.EnvProduction, Metrics: metrics, Handlers: handlers})
	return r, mock
}

func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.ErrorBody {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateDepartment(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery(`INSERT INTO departamento \(name, code\) VALUES \(\$1, \$2\) RETURNING id, name, code`).
		WithArgs("Antioquia", "05").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code"}).AddRow(1, "Antioquia", "05"))

	w := perform(r, http.MethodPost, "/api/departamentos", `{"name":"Antioquia","code":"05"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Antioquia","code":"05"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDepartmentMissingCode(t *testing.T) {
	r, mock := newTestRouter(t)

	w := perform(r, http.MethodPost, "/api/departamentos", `{"name":"Antioquia"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Falta el campo requerido: codigo"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsMalformedBodies(t *testing.T) {
	r, _ := newTestRouter(t)

	for _, body := range []string{`{"name":`, `{"name":"A","code":"B","id":9}`, `{"name":"A","code":"B","department_id":"5"}`, ``, `{"name":"A","code":"B"} junk`} {
		path := "/api/departamentos"
		if bytes.Contains([]byte(body), []byte("department_id")) {
			path = "/api/municipios"
		}
		w := perform(r, http.MethodPost, path, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "Cuerpo de la solicitud inválido", decodeError(t, w).Error, body)
	}
}

func TestCreateMunicipalityUnknownDepartment(t *testing.T) {
	r, mock := newTestRouter(t)
	fkErr := &pq.Error{
		Code:       "23503",
		Message:    `insert or update on table "municipio" violates foreign key constraint "municipio_department_id_fkey"`,
		Constraint: "municipio_department_id_fkey",
	}
	mock.ExpectQuery(`INSERT INTO municipio`).
		WithArgs("X", "Y", int64(999)).
		WillReturnError(fkErr)

	w := perform(r, http.MethodPost, "/api/municipios", `{"name":"X","code":"Y","department_id":999}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "Internal server error", body.Error)
	assert.Contains(t, body.Details, "violates foreign key constraint")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateMunicipalityZeroDepartmentReachesStore(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery(`INSERT INTO municipio`).
		WithArgs("X", "Y", int64(0)).
		WillReturnError(&pq.Error{Code: "23503", Message: "violates foreign key constraint"})

	w := perform(r, http.MethodPost, "/api/municipios", `{"name":"X","code":"Y","department_id":0}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserWithoutRole(t *testing.T) {
	r, mock := newTestRouter(t)

	w := perform(r, http.MethodPut, "/api/usuarios/42", `{"name":"Ana"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Falta el campo requerido: rol"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserInvalidRole(t *testing.T) {
	r, _ := newTestRouter(t)

	w := perform(r, http.MethodPut, "/api/usuarios/42", `{"name":"Ana","role":"root"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Valor inválido para el campo: rol", decodeError(t, w).Error)
}

func TestUpdateUnknownSite(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery(`UPDATE sede SET`).
		WithArgs("Principal", "S1", int64(3), int64(77)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "school_id"}))

	w := perform(r, http.MethodPut, "/api/sedes/77", `{"name":"Principal","code":"S1","school_id":3}`)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Sede no encontrada"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSchoolTwice(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectExec(`DELETE FROM colegio WHERE id = \$1`).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM colegio WHERE id = \$1`).WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))

	first := perform(r, http.MethodDelete, "/api/colegios/5", "")
	require.Equal(t, http.StatusOK, first.Code)
	assert.JSONEq(t, `{"message":"Colegio eliminado exitosamente"}`, first.Body.String())

	second := perform(r, http.MethodDelete, "/api/colegios/5", "")
	require.Equal(t, http.StatusNotFound, second.Code)
	assert.JSONEq(t, `{"error":"Colegio no encontrado"}`, second.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvalidIdentifier(t *testing.T) {
	r, mock := newTestRouter(t)

	for _, path := range []string{"/api/departamentos/abc", "/api/departamentos/0", "/api/departamentos/-4"} {
		w := perform(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "Identificador inválido", decodeError(t, w).Error, path)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEmptyIsArray(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery(`SELECT id, name, role FROM usuarios ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "role"}))

	w := perform(r, http.MethodGet, "/api/usuarios", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())
}

func TestListStorageFailure(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery(`SELECT id, name, code, municipality_id FROM colegio`).WillReturnError(errors.New("connection reset"))

	w := perform(r, http.MethodGet, "/api/colegios", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "Internal server error", body.Error)
	assert.Contains(t, body.Details, "connection reset")
}

func TestGetDepartment(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery(`SELECT id, name, code FROM departamento WHERE id = \$1`).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code"}).AddRow(2, "Caldas", "17"))

	w := perform(r, http.MethodGet, "/api/departamentos/2", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":2,"name":"Caldas","code":"17"}`, w.Body.String())
}

func TestUserRoles(t *testing.T) {
	r, _ := newTestRouter(t)

	w := perform(r, http.MethodGet, "/api/usuarios/roles", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"value":"admin","label":"Administrador"},{"value":"teacher","label":"Profesor"},{"value":"student","label":"Estudiante"}]`, w.Body.String())
}

func TestDatabaseCheck(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery(`SELECT NOW\(\)`).WillReturnRows(sqlmock.NewRows([]string{"now"}).AddRow(time.Now()))

	w := perform(r, http.MethodGet, "/api/test", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Database connection successful"}`, w.Body.String())
}

func TestDatabaseCheckFailure(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery(`SELECT NOW\(\)`).WillReturnError(errors.New("connection refused"))

	w := perform(r, http.MethodGet, "/api/test", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeError(t, w).Error)
}

func TestExportDepartmentsCSV(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery(`SELECT id, name, code FROM departamento ORDER BY id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code"}).AddRow(1, "Antioquia", "05"))

	w := perform(r, http.MethodGet, "/api/reportes/departamentos", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="departamentos.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "ID,Nombre,Código\n1,Antioquia,05\n", w.Body.String())
}

func TestExportUnknownResourceAndFormat(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodGet, "/api/reportes/alumnos", "").Code)
	assert.Equal(t, http.StatusBadRequest, perform(r, http.MethodGet, "/api/reportes/sedes?format=doc", "").Code)
}

func TestHealthAndMetrics(t *testing.T) {
	r, _ := newTestRouter(t)

	health := perform(r, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, health.Code)
	assert.JSONEq(t, `{"status":"ok"}`, health.Body.String())

	metrics := perform(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), `http_requests_total{method="GET",path="/health",status="200"} 1`)
}

func TestDocsHiddenInProduction(t *testing.T) {
	r, _ := newTestRouter(t)
	assert.Equal(t, http.StatusNotFound, perform(r, http.MethodGet, "/docs/index.html", "").Code)
}
