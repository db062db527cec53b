package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	mocket "github.com/Selvatico/go-mocket"
	"github.com/movielane/catalog-server/bundles/catalog"
	"github.com/movielane/catalog-server/globals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gztest "github.com/gazebo-web/gz-go/v7/testhelpers"
)

// Tests for the home catalog route

// registerHomeListingMocks registers mock replies for the queries behind the
// home listing: every playlist plus the movies without a playlist.
func registerHomeListingMocks(playlistNames, movieTitles []string) {
	mocket.Catcher.Reset()

	playlistRows := []map[string]interface{}{}
	for i, name := range playlistNames {
		playlistRows = append(playlistRows, map[string]interface{}{
			"id": strconv.Itoa(i + 1), "name": name,
		})
	}
	movieRows := []map[string]interface{}{}
	for i, title := range movieTitles {
		movieRows = append(movieRows, map[string]interface{}{
			"id": strconv.Itoa(100 + i), "title": title,
		})
	}

	mocket.Catcher.Attach([]*mocket.FakeResponse{
		{
			Pattern:  "SELECT * FROM \"playlists\"",
			Response: playlistRows,
			Once:     false,
		},
		{
			Pattern:  "SELECT * FROM \"movies\"",
			Response: movieRows,
			Once:     false,
		},
	})
}

// getCatalogPage requests a catalog URL and decodes the returned page.
func getCatalogPage(t *testing.T, uri string) *catalog.Page {
	bslice, _ := gztest.AssertRouteMultipleArgs("GET", uri, nil, http.StatusOK, nil, ctJSON, t)
	var page catalog.Page
	require.NoError(t, json.Unmarshal(*bslice, &page), "Unable to decode catalog page: %s", string(*bslice))
	return &page
}

func TestCatalogHome(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())

	registerHomeListingMocks(
		[]string{"Season One", "Season Two"},
		[]string{"Alpha Heist", "Beta Run"},
	)

	page := getCatalogPage(t, "/1.0/catalog")
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, catalog.PageSize, page.PerPage)
	assert.Equal(t, 4, page.TotalItems)
	assert.Len(t, page.Items, 4)
}

func TestCatalogHomeSearch(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())

	registerHomeListingMocks(
		[]string{"Season One"},
		[]string{"Alpha Heist", "Beta Run"},
	)

	// Case-insensitive title search over movies and playlists
	page := getCatalogPage(t, "/1.0/catalog?q=ALPHA")
	assert.Equal(t, 1, page.TotalItems)
	require.Len(t, page.Items, 1)
	assert.Equal(t, catalog.TypeMovie, page.Items[0].Type)
	assert.Equal(t, "Alpha Heist", page.Items[0].Title())

	// No matches results in an empty first page, not an error
	page = getCatalogPage(t, "/1.0/catalog?q=zzzz")
	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 0)
}

func TestCatalogHomePagination(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())

	titles := make([]string, 30)
	for i := range titles {
		titles[i] = "Movie " + strconv.Itoa(i+1)
	}
	registerHomeListingMocks(nil, titles)

	// 30 items at 24 per page gives 2 pages
	page := getCatalogPage(t, "/1.0/catalog?page=2")
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 30, page.TotalItems)
	assert.Len(t, page.Items, 6)

	// A page beyond the end clamps to the last page
	page = getCatalogPage(t, "/1.0/catalog?page=999")
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Items, 6)

	// Garbage page arguments map to the first page
	for _, arg := range []string{"abc", "-2", "0", "1.5"} {
		page = getCatalogPage(t, "/1.0/catalog?page="+arg)
		assert.Equal(t, 1, page.Page, "page arg [%s] should map to the first page", arg)
		assert.Len(t, page.Items, 24)
	}
}
