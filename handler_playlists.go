package main

import (
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/playlists"
	dtos "github.com/movielane/catalog-server/bundles/playlists/dtos"
	"github.com/movielane/catalog-server/bundles/users"
)

// PlaylistDetail returns a playlist and its movies in watch order: by the
// explicit "N." title prefix when the playlist uses one, by season and
// episode otherwise.
// You can request this method with the following curl command:
//
//	curl -k -X GET http://localhost:8000/1.0/playlists/{id}
func PlaylistDetail(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	s := &playlists.Service{}
	return s.GetDetail(tx, id)
}

// PlaylistCreate creates a new playlist. Only staff users can create
// playlists.
// You can request this method with the following curl command:
//
//	curl -k -H "Content-Type: application/json" -X POST -d '{"name":"Season 1"}'
//	  http://localhost:8000/1.0/playlists
//	  --header 'private-token: <A_VALID_ACCESS_TOKEN>'
func PlaylistCreate(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	var createPlaylist dtos.CreatePlaylist
	if em := ParseStruct(&createPlaylist, r, false); em != nil {
		return nil, em
	}

	user, ok, errMsg := getUserFromJWT(tx, r)
	if !ok {
		return nil, &errMsg
	}

	s := &playlists.Service{}
	response, em := s.CreatePlaylist(r.Context(), tx, createPlaylist, user)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	return response, nil
}

// PlaylistRemove removes a playlist. Its movies stay in the catalog as
// standalone entries. Only staff users can remove playlists.
// You can request this method with the following curl command:
//
//	curl -k -X DELETE http://localhost:8000/1.0/playlists/{id}
//	  --header 'private-token: <A_VALID_ACCESS_TOKEN>'
func PlaylistRemove(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	s := &playlists.Service{}
	response, em := s.RemovePlaylist(r.Context(), tx, id, user)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	return response, nil
}
