package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/chemaware/catalog/config"
	"github.com/chemaware/catalog/internal/domain"
	"github.com/chemaware/catalog/internal/infrastructure/kv"
	"github.com/chemaware/catalog/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain sets up test environment before running tests
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// stubSource serves n generated remote records
type stubSource struct{ n int }

func (s stubSource) FetchProducts(ctx context.Context) ([]domain.RemoteRecord, error) {
	out := make([]domain.RemoteRecord, s.n)
	for i := range out {
		out[i] = domain.RemoteRecord{ID: fmt.Sprintf("%d", i+1), Title: fmt.Sprintf("Remote %d", i+1)}
	}
	return out, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"http://localhost:*"},
		},
		RateLimit: config.RateLimitConfig{PerIP: 0},
	}
}

// setupTestRouter creates a router over the seed plus 12 remote products
func setupTestRouter(t *testing.T) (*gin.Engine, *usecase.Browser) {
	t.Helper()
	catalog := usecase.NewCatalogBuilder(stubSource{n: 30}, usecase.DefaultCatalogConfig()).
		Build(context.Background(), usecase.SeedProducts())
	browser := usecase.NewBrowser(catalog, kv.NewMemoryStore(), "")
	return SetupRouter(testConfig(), NewHandler(browser)), browser
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type pageBody struct {
	Items         []domain.Product `json:"items"`
	Page          int              `json:"page"`
	TotalPages    int              `json:"totalPages"`
	Total         int              `json:"total"`
	HasPrev       bool             `json:"hasPrev"`
	HasNext       bool             `json:"hasNext"`
	FavoriteCount int              `json:"favoriteCount"`
	CompareCount  int              `json:"compareCount"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}

func TestHealthCheckEndpoint(t *testing.T) {
	t.Run("returns healthy status", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(router, "GET", "/health", "")

		require.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]any](t, w)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "chemaware-catalog", body["service"])
		assert.EqualValues(t, 32, body["products"])
	})

	t.Run("accepts GET requests only", func(t *testing.T) {
		router, _ := setupTestRouter(t)
		for _, method := range []string{"POST", "PUT", "DELETE", "PATCH"} {
			w := doRequest(router, method, "/health", "")
			assert.Equal(t, http.StatusNotFound, w.Code, "method %s", method)
		}
	})
}

func TestListProductsEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	t.Run("first page by default", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/products", "")

		require.Equal(t, http.StatusOK, w.Code)
		page := decode[pageBody](t, w)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 32, page.Total)
		assert.Len(t, page.Items, 12)
		assert.True(t, page.HasNext)
	})

	t.Run("search, eco and sort", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/products?q=ACID&sort=name", "")

		require.Equal(t, http.StatusOK, w.Code)
		page := decode[pageBody](t, w)
		require.NotEmpty(t, page.Items)
		for _, p := range page.Items {
			assert.NotEqual(t, "Bleach (Sodium Hypochlorite)", p.Name)
		}

		w = doRequest(router, "GET", "/api/v1/products?eco=true&q=vinegar", "")
		page = decode[pageBody](t, w)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "local:p-03", page.Items[0].Identifier())
	})

	t.Run("page beyond range clamps", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/products?page=40", "")
		page := decode[pageBody](t, w)
		assert.Equal(t, 3, page.Page)
		assert.Len(t, page.Items, 8)
	})

	t.Run("empty result still has one page", func(t *testing.T) {
		w := doRequest(router, "GET", "/api/v1/products?q=zzzz", "")
		page := decode[pageBody](t, w)
		assert.Equal(t, 1, page.TotalPages)
		assert.NotNil(t, page.Items)
		assert.Empty(t, page.Items)
	})

	t.Run("rejects bad parameters", func(t *testing.T) {
		for _, query := range []string{"sort=price", "page=two", "eco=maybe"} {
			w := doRequest(router, "GET", "/api/v1/products?"+query, "")
			assert.Equal(t, http.StatusBadRequest, w.Code, "query %s", query)
		}
	})
}

func TestGetProductEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "GET", "/api/v1/products/local:p-03", "")
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[domain.ProductDetail](t, w)
	assert.Equal(t, "Vinegar (Acetic Acid)", detail.Product.Name)
	assert.False(t, detail.Favorite)

	w = doRequest(router, "GET", "/api/v1/products/local:missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestViewEndpoints(t *testing.T) {
	router, browser := setupTestRouter(t)

	w := doRequest(router, "PUT", "/api/v1/view", `{"searchText":"sodium","sort":"hazard","page":5}`)
	require.Equal(t, http.StatusOK, w.Code)

	state := browser.State()
	assert.Equal(t, "sodium", state.SearchText)
	assert.Equal(t, domain.SortHazard, state.Sort)
	assert.Equal(t, 1, state.Page)

	w = doRequest(router, "GET", "/api/v1/view", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[struct {
		State domain.ViewState `json:"state"`
		Page  pageBody         `json:"page"`
	}](t, w)
	assert.Equal(t, "sodium", body.State.SearchText)
	require.NotEmpty(t, body.Page.Items)
	assert.Equal(t, 5, body.Page.Items[0].Hazard)

	w = doRequest(router, "PUT", "/api/v1/view", `{"sort":"price"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, "PUT", "/api/v1/view", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFavoritesEndpoints(t *testing.T) {
	router, browser := setupTestRouter(t)

	w := doRequest(router, "POST", "/api/v1/favorites/local:p-07/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	assert.Equal(t, true, body["favorite"])
	assert.EqualValues(t, 1, body["count"])
	assert.True(t, browser.IsFavorite("local:p-07"))

	w = doRequest(router, "GET", "/api/v1/favorites", "")
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[struct {
		Items []domain.Product `json:"items"`
		Count int              `json:"count"`
	}](t, w)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "local:p-07", list.Items[0].Identifier())

	w = doRequest(router, "DELETE", "/api/v1/favorites/local:p-07", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, browser.IsFavorite("local:p-07"))

	w = doRequest(router, "POST", "/api/v1/favorites/local:nope/toggle", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCompareEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, "GET", "/api/v1/compare/pair", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	assert.Equal(t, http.StatusOK, doRequest(router, "POST", "/api/v1/compare/local:p-01", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(router, "POST", "/api/v1/compare/api:api-2", "").Code)

	w = doRequest(router, "POST", "/api/v1/compare/local:p-05", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doRequest(router, "GET", "/api/v1/compare/pair", "")
	require.Equal(t, http.StatusOK, w.Code)
	pair := decode[struct {
		Left  domain.Product `json:"left"`
		Right domain.Product `json:"right"`
	}](t, w)
	assert.Equal(t, "local:p-01", pair.Left.Identifier())
	assert.Equal(t, "api:api-2", pair.Right.Identifier())

	w = doRequest(router, "DELETE", "/api/v1/compare/local:p-01", "")
	require.Equal(t, http.StatusOK, w.Code)
	tray := decode[struct {
		Items []domain.Product `json:"items"`
	}](t, w)
	assert.Len(t, tray.Items, 1)

	w = doRequest(router, "DELETE", "/api/v1/compare", "")
	require.Equal(t, http.StatusOK, w.Code)
	tray = decode[struct {
		Items []domain.Product `json:"items"`
	}](t, w)
	assert.Empty(t, tray.Items)
}

func TestHandlerWithoutBrowser(t *testing.T) {
	router := SetupRouter(testConfig(), NewHandler(nil))

	w := doRequest(router, "GET", "/api/v1/products", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = doRequest(router, "GET", "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSIntegration(t *testing.T) {
	router, _ := setupTestRouter(t)

	req, _ := http.NewRequest("GET", "/api/v1/products", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestCORSPreflightForViewUpdate(t *testing.T) {
	router, browser := setupTestRouter(t)

	req, _ := http.NewRequest("OPTIONS", "/api/v1/view", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")
	assert.Equal(t, RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
	assert.Empty(t, w.Body.String())
	assert.Equal(t, domain.ViewState{Page: 1}, browser.State(), "preflight must not touch the view")

	req, _ = http.NewRequest("OPTIONS", "/api/v1/view", nil)
	req.Header.Set("Origin", "https://elsewhere.example.com")
	req.Header.Set("Access-Control-Request-Method", "PUT")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRecoveryMiddleware(t *testing.T) {
	router, _ := setupTestRouter(t)
	router.GET("/panic", func(c *gin.Context) {
		panic("test panic")
	})

	w := doRequest(router, "GET", "/panic", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
