package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/colegios-api/internal/dto"
	appErrors "github.com/noah-isme/colegios-api/pkg/errors"
)

func newGinContext(method, path, body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	binding.EnableDecoderDisallowUnknownFields = true
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindJSON(t *testing.T) {
	c := newGinContext(http.MethodPost, "/api/sedes", `{"name":"Principal","code":"S1","school_id":0}`)
	var req dto.SiteRequest
	require.NoError(t, bindJSON(c, &req))
	require.NotNil(t, req.SchoolID)
	assert.Equal(t, int64(0), *req.SchoolID)

	for _, body := range []string{`{"name":"Principal","nope":1}`, `{"school_id":"3"}`, `[`, ``, `{"name":"Principal","code":"S1","school_id":1} junk`, `{"name":"a"}{"name":"b"}`} {
		c := newGinContext(http.MethodPost, "/api/sedes", body)
		err := bindJSON(c, &dto.SiteRequest{})
		require.Error(t, err, body)
		appErr := appErrors.FromError(err)
		assert.Equal(t, http.StatusBadRequest, appErr.Status)
		assert.Equal(t, "Cuerpo de la solicitud inválido", appErr.Message)
	}
}

func TestBindJSONNullForeignKeyIsAbsent(t *testing.T) {
	c := newGinContext(http.MethodPost, "/api/sedes", `{"name":"Principal","code":"S1","school_id":null}`)
	var req dto.SiteRequest
	require.NoError(t, bindJSON(c, &req))
	assert.Nil(t, req.SchoolID)
}

func TestPathID(t *testing.T) {
	c := newGinContext(http.MethodGet, "/api/sedes/12", "")
	c.Params = gin.Params{{Key: "id", Value: "12"}}
	id, err := pathID(c)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, raw := range []string{"", "abc", "0", "-1", "1.5", "99999999999999999999"} {
		c.Params = gin.Params{{Key: "id", Value: raw}}
		_, err := pathID(c)
		require.Error(t, err, raw)
		assert.Equal(t, "Identificador inválido", appErrors.FromError(err).Message)
	}
}
