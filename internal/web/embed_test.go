package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	e.POST("/analyze", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	require.NoError(t, RegisterStaticRoutes(e))
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHasEmbeddedFiles(t *testing.T) {
	assert.True(t, HasEmbeddedFiles())
}

func TestIndexServed(t *testing.T) {
	rec := get(newServer(t), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
	assert.Contains(t, rec.Body.String(), `<form id="upload-form">`)
	assert.Contains(t, rec.Body.String(), `name="file"`)
}

func TestAssetServed(t *testing.T) {
	rec := get(newServer(t), "/style.css")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/css")
}

func TestUnknownPathFallsBackToIndex(t *testing.T) {
	rec := get(newServer(t), "/about")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PostCritic")
}

func TestAPIPathsAreNotShadowed(t *testing.T) {
	e := newServer(t)

	assert.Equal(t, http.StatusNotFound, get(e, "/api/unknown").Code)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/analyze", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
