package article

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	admin := api.Group("/admin")
	NewHandler(NewService(db, zap.NewNop())).RegisterRoutes(api, admin)
	return r
}

func TestCreateArticleEndpoint(t *testing.T) {
	r := newTestRouter(t, newTestDB(t))

	body := `{
		"title": "Severance pay in practice",
		"slug": "severance-pay-in-practice",
		"excerpt": "A short guide.",
		"content": "<p>Details.</p>",
		"category": "Employment Law",
		"author": "A. Yilmaz",
		"read_time": 4,
		"published": true
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Article struct {
			Slug      string `json:"slug"`
			Published bool   `json:"published"`
		} `json:"article"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "severance-pay-in-practice", resp.Article.Slug)
	assert.True(t, resp.Article.Published)
}

func TestCreateArticleEndpoint_ValidationErrors(t *testing.T) {
	r := newTestRouter(t, newTestDB(t))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/articles", strings.NewReader(`{"title":"Just a title"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string       `json:"message"`
		Details []FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Message)
	assert.Len(t, resp.Details, 6)
}

func TestCreateArticleEndpoint_UnconfiguredStore(t *testing.T) {
	r := newTestRouter(t, nil)

	body := `{
		"title": "T", "slug": "t", "excerpt": "e", "content": "c",
		"category": "Legal News", "author": "a", "read_time": 1
	}`
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/articles", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListArticlesEndpoint_UnconfiguredStore(t *testing.T) {
	r := newTestRouter(t, nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/articles", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}
