package catalog

import (
	"context"
	"fmt"
	"testing"
	"time"

	mocket "github.com/Selvatico/go-mocket"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockDB opens a gorm connection backed by the go-mocket fake driver.
func setupMockDB(t *testing.T) *gorm.DB {
	mocket.Catcher.Register()
	mocket.Catcher.Logging = false
	db, err := gorm.Open(mocket.DRIVER_NAME, "mocked_db")
	require.NoError(t, err)
	mocket.Catcher.Reset()
	return db
}

// categoryMovieRows builds a category whose first movies carry no ordering
// prefix, followed by a pair of hand-numbered titles. The numbered pair is
// newer, so a newest-first sort would reverse it.
func categoryMovieRows() []map[string]interface{} {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]map[string]interface{}, 0, 7)
	for i := 0; i < 5; i++ {
		rows = append(rows, map[string]interface{}{
			"id":          fmt.Sprintf("%d", i+1),
			"title":       fmt.Sprintf("Filler %d", i+1),
			"category_id": "3",
			"created_at":  base.Add(time.Duration(i) * time.Hour),
		})
	}
	rows = append(rows,
		map[string]interface{}{
			"id": "6", "title": "1. Alpha Pilot", "category_id": "3",
			"created_at": base.Add(10 * time.Hour),
		},
		map[string]interface{}{
			"id": "7", "title": "2. Alpha Two", "category_id": "3",
			"created_at": base.Add(11 * time.Hour),
		},
	)
	return rows
}

// A search whose matches are hand-numbered keeps their explicit order even
// when unnumbered movies precede them in the category.
func TestCategoryDetailFiltersBeforeOrderingDecision(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()

	mocket.Catcher.NewMock().WithQuery(`SELECT * FROM "movies"  WHERE`).WithReply(categoryMovieRows())
	mocket.Catcher.NewMock().WithQuery(`SELECT * FROM "playlists"  WHERE`).WithReply(nil)

	svc := &Service{}
	page, em := svc.CategoryDetail(context.Background(), db, 3, "alpha", "1")
	require.Nil(t, em)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "1. Alpha Pilot", page.Items[0].Title())
	assert.Equal(t, "2. Alpha Two", page.Items[1].Title())
}

// Without a search the probe window sees the unnumbered leading movies, so
// the category stays newest-first.
func TestCategoryDetailUnfilteredStaysNewestFirst(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()

	mocket.Catcher.NewMock().WithQuery(`SELECT * FROM "movies"  WHERE`).WithReply(categoryMovieRows())
	mocket.Catcher.NewMock().WithQuery(`SELECT * FROM "playlists"  WHERE`).WithReply(nil)

	svc := &Service{}
	page, em := svc.CategoryDetail(context.Background(), db, 3, "", "1")
	require.Nil(t, em)
	require.Len(t, page.Items, 7)
	assert.Equal(t, "2. Alpha Two", page.Items[0].Title())
	assert.Equal(t, "Filler 1", page.Items[6].Title())
}
