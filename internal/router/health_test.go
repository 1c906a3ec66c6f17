package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"menuhub/internal/menu"
	"menuhub/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Deps{Log: zap.NewNop()})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(Deps{Log: zap.NewNop(), CORSOrigins: []string{"http://localhost:5173"}})

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestMenuRoutesMounted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	// no RowStore behind it; only the validation path is exercised
	svc := menu.NewService(menu.NewPostgresRepository(nil), storage.NewMemoryBridge(), log)
	r := NewRouter(Deps{Log: log, Menus: menu.NewHandler(svc, log)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menus/combine-info/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/word2story", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
