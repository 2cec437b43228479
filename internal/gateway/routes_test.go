package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/saransh1220/html-drop/internal/modules/files"
	"github.com/saransh1220/html-drop/internal/shared/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	m, err := files.NewModule(context.Background(), config.StorageConfig{
		Driver:    "local",
		FolderID:  "folder-1",
		LocalPath: t.TempDir(),
	}, "S")
	require.NoError(t, err)

	return SetupRoutes(RouterConfig{FileHandler: m.Handler()})
}

func TestSetupRoutes_HealthCheck(t *testing.T) {
	mux := newTestMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
}

func TestSetupRoutes_Metrics(t *testing.T) {
	mux := newTestMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSetupRoutes_UploadThenView(t *testing.T) {
	mux := newTestMux(t)

	form := url.Values{
		"scriptKey":   {"S"},
		"fileName":    {"a.html"},
		"fileContent": {"<b>hi</b>"},
	}
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "File uploaded successfully. File ID: ")

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/view?fileName=a.html", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<b>hi</b>")
	assert.Contains(t, w.Body.String(), "Dynamic HTML Viewer")
}

func TestSetupRoutes_MethodsEnforced(t *testing.T) {
	mux := newTestMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/view", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/upload", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
