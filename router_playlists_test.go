package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/movielane/catalog-server/bundles/playlists"
	"github.com/movielane/catalog-server/globals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocket "github.com/Selvatico/go-mocket"
	gztest "github.com/gazebo-web/gz-go/v7/testhelpers"
)

// Tests for playlist related routes

// TestPlaylistDetail checks that a playlist's movies are returned in watch
// order, not in DB order.
func TestPlaylistDetail(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())

	mocket.Catcher.Reset()
	mocket.Catcher.Attach([]*mocket.FakeResponse{
		{
			Pattern:  "SELECT * FROM \"playlists\"  WHERE",
			Response: []map[string]interface{}{{"id": "7", "name": "Season One"}},
			Once:     false,
		},
		{
			Pattern: "SELECT * FROM \"movies\"  WHERE",
			Response: []map[string]interface{}{
				{"id": "102", "title": "2. The Second", "playlist_id": "7"},
				{"id": "101", "title": "1. Pilot", "playlist_id": "7"},
			},
			Once: false,
		},
	})

	bslice, _ := gztest.AssertRouteMultipleArgs("GET", "/1.0/playlists/7", nil, http.StatusOK, nil, ctJSON, t)

	var detail playlists.Detail
	require.NoError(t, json.Unmarshal(*bslice, &detail), "Unable to decode playlist detail: %s", string(*bslice))
	require.NotNil(t, detail.Playlist)
	require.NotNil(t, detail.Playlist.Name)
	assert.Equal(t, "Season One", *detail.Playlist.Name)

	require.Len(t, detail.Movies, 2)
	assert.Equal(t, "1. Pilot", *detail.Movies[0].Title)
	assert.Equal(t, "2. The Second", *detail.Movies[1].Title)
}

func TestPlaylistDetailNotFound(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())
	mocket.Catcher.Reset()

	expErr := gz.ErrorMessage(gz.ErrorIDNotFound)
	bslice, _ := gztest.AssertRouteMultipleArgs("GET", "/1.0/playlists/12345", nil, expErr.StatusCode, nil, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, expErr.ErrCode, t)
}

// Playlist write operations require an authenticated staff user.
func TestPlaylistWriteRoutesNeedAuth(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())
	SetupCommonMockResponses("test-user")

	unauth := gz.NewErrorMessage(gz.ErrorUnauthorized)
	tests := []struct {
		uriTest
		method string
	}{
		{uriTest{"create no jwt", "/1.0/playlists", nil, unauth, true}, "POST"},
		{uriTest{"remove no jwt", "/1.0/playlists/7", nil, unauth, true}, "DELETE"},
	}

	for _, test := range tests {
		t.Run(test.testDesc, func(t *testing.T) {
			expEm, expCt := errMsgAndContentType(test.expErrMsg, ctJSON)
			gztest.AssertRouteMultipleArgs(test.method, test.URL, nil, expEm.StatusCode, test.jwt, expCt, t)
		})
	}
}
