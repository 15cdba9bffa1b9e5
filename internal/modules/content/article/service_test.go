package article

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/lexofis/core/internal/database"
	"github.com/lexofis/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ArticleModel{}))
	return db
}

func validDTO() *CreateArticleDTO {
	return &CreateArticleDTO{
		Title:    "Non-compete clauses after the reform",
		Slug:     "non-compete-clauses-after-the-reform",
		Excerpt:  "What the new rules mean for employers.",
		Content:  "<p>Long form analysis.</p>",
		Category: "Employment Law",
		Author:   "A. Yilmaz",
		ReadTime: 6,
	}
}

func TestCreate_StoresInputFields(t *testing.T) {
	svc := NewService(newTestDB(t), zap.NewNop())

	before := time.Now()
	dto := validDTO()
	dto.Published = true

	a, err := svc.Create(dto)
	require.NoError(t, err)
	require.NotNil(t, a)

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, dto.Title, a.Title)
	assert.Equal(t, dto.Slug, a.Slug)
	assert.Equal(t, dto.Excerpt, a.Excerpt)
	assert.Equal(t, dto.Content, a.Content)
	assert.Equal(t, dto.Category, a.Category)
	assert.Equal(t, dto.Author, a.Author)
	assert.Equal(t, dto.ReadTime, a.ReadTime)
	assert.True(t, a.Published)
	require.NotNil(t, a.PublishedAt)
	assert.False(t, a.PublishedAt.Before(before))
}

func TestCreate_DuplicateSlug(t *testing.T) {
	svc := NewService(newTestDB(t), zap.NewNop())

	_, err := svc.Create(validDTO())
	require.NoError(t, err)

	_, err = svc.Create(validDTO())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "slug already exists")
}

func TestCreate_UnconfiguredStoreFailsLoudly(t *testing.T) {
	svc := NewService(nil, zap.NewNop())

	a, err := svc.Create(validDTO())
	assert.Nil(t, a)
	assert.ErrorIs(t, err, database.ErrUnconfigured)
}

func TestList_OrderedByPublicationDate(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, zap.NewNop())

	older := time.Now().Add(-48 * time.Hour)
	newer := time.Now().Add(-1 * time.Hour)
	seed := []models.ArticleModel{
		{Title: "Older", Slug: "older", PublishedAt: &older},
		{Title: "Newer", Slug: "newer", PublishedAt: &newer},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	articles := svc.List()
	require.Len(t, articles, 2)
	assert.Equal(t, "newer", articles[0].Slug)
	assert.Equal(t, "older", articles[1].Slug)
}

func TestListAdmin_OrderedByCreation(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, zap.NewNop())

	seed := []models.ArticleModel{
		{Base: models.Base{CreatedAt: time.Now().Add(-2 * time.Hour)}, Title: "First", Slug: "first"},
		{Base: models.Base{CreatedAt: time.Now().Add(-1 * time.Hour)}, Title: "Second", Slug: "second"},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	articles := svc.ListAdmin()
	require.Len(t, articles, 2)
	assert.Equal(t, "second", articles[0].Slug)
}

func TestList_UnconfiguredStoreDegrades(t *testing.T) {
	svc := NewService(nil, zap.NewNop())

	assert.NotNil(t, svc.List())
	assert.Empty(t, svc.List())
}

func TestGetBySlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewService(db, zap.NewNop())

	_, err := svc.Create(validDTO())
	require.NoError(t, err)

	found := svc.GetBySlug("non-compete-clauses-after-the-reform")
	require.NotNil(t, found)
	assert.Equal(t, "Employment Law", found.Category)

	assert.Nil(t, svc.GetBySlug("no-such-slug"))
	assert.Nil(t, NewService(nil, zap.NewNop()).GetBySlug("anything"))
}
