package blogs

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open test db")
	require.NoError(t, db.AutoMigrate(&Blog{}), "migrate")

	return NewRepository(db)
}

func strptr(s string) *string { return &s }

func seedBlog(t *testing.T, r *Repository, title string, createdAt time.Time) *Blog {
	t.Helper()
	b := &Blog{
		Title:     title,
		Author:    "Jane Doe",
		ShortDesc: strptr("short"),
		CreatedAt: createdAt,
	}
	require.NoError(t, r.Create(b))
	return b
}

func TestCreateAndGet(t *testing.T) {
	r := setupTestRepo(t)

	b := seedBlog(t, r, "A title long enough", time.Now())
	require.NotZero(t, b.ID, "id assigned on create")

	got, err := r.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "A title long enough", got.Title)
	assert.Equal(t, "Jane Doe", got.Author)
	assert.Nil(t, got.Image)
}

func TestGetNotFound(t *testing.T) {
	r := setupTestRepo(t)

	_, err := r.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOrdersByNewestFirst(t *testing.T) {
	r := setupTestRepo(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	seedBlog(t, r, "Oldest post of them all", base)
	seedBlog(t, r, "The one in the middle", base.Add(time.Hour))
	seedBlog(t, r, "Newest post of them all", base.Add(2*time.Hour))

	list, err := r.List("")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Newest post of them all", list[0].Title)
	assert.Equal(t, "The one in the middle", list[1].Title)
	assert.Equal(t, "Oldest post of them all", list[2].Title)
}

func TestListKeywordFilter(t *testing.T) {
	r := setupTestRepo(t)

	now := time.Now()
	seedBlog(t, r, "Cooking with cast iron", now)
	seedBlog(t, r, "Gardening for beginners", now.Add(time.Second))
	seedBlog(t, r, "Advanced cast iron care", now.Add(2*time.Second))

	list, err := r.List("cast iron")
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, b := range list {
		assert.Contains(t, b.Title, "cast iron")
	}

	// A keyword matching exactly one title returns just that record.
	single, err := r.List("Gardening")
	require.NoError(t, err)
	require.Len(t, single, 1)
	assert.Equal(t, "Gardening for beginners", single[0].Title)

	none, err := r.List("does-not-appear")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestUpdatePersistsChanges(t *testing.T) {
	r := setupTestRepo(t)

	b := seedBlog(t, r, "Original title right here", time.Now())
	b.Title = "Updated title right here"
	b.Description = strptr("<p>now with a body</p>")
	require.NoError(t, r.Update(b))

	got, err := r.Get(b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated title right here", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "<p>now with a body</p>", *got.Description)
}

func TestDelete(t *testing.T) {
	r := setupTestRepo(t)

	b := seedBlog(t, r, "Short-lived blog record", time.Now())
	require.NoError(t, r.Delete(b.ID))

	_, err := r.Get(b.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := r.List("")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteNotFound(t *testing.T) {
	r := setupTestRepo(t)
	assert.ErrorIs(t, r.Delete(42), ErrNotFound)
}
