package main

import (
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/movies"
	dtos "github.com/movielane/catalog-server/bundles/movies/dtos"
	"github.com/movielane/catalog-server/bundles/users"
)

// MovieList returns a paginated list of movies. The optional 'q' parameter
// searches titles through ElasticSearch when available, with a SQL fallback.
// You can request this method with the following curl command:
//
//	curl -k -X GET http://localhost:8000/1.0/movies?q=heist
func MovieList(p *gz.PaginationRequest, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.PaginationResult, *gz.ErrMsg) {

	s := &movies.Service{}
	return s.MovieList(r.Context(), p, tx, r.URL.Query().Get("q"))
}

// MovieDetail returns a single movie.
// You can request this method with the following curl command:
//
//	curl -k -X GET http://localhost:8000/1.0/movies/{id}
func MovieDetail(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	s := &movies.Service{}
	return s.GetMovie(tx, id)
}

// MovieDownload logs a download of a movie and redirects the client to the
// movie's external download link. The audit log records the client address,
// the User-Agent and, when a JWT resolves to a user, the user's email and
// username.
// You can request this method with the following curl command:
//
//	curl -k -L -X GET http://localhost:8000/1.0/movies/{id}/download
func MovieDownload(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	s := &movies.Service{}
	movie, em := s.Download(r.Context(), tx, id, getClientIP(r),
		r.UserAgent(), user)
	if em != nil {
		return nil, em
	}

	// Commit before redirecting. The log row and counter bump must survive
	// even if the client drops the redirect.
	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	http.Redirect(w, r, *movie.DownloadLink, http.StatusFound)
	return nil, nil
}

// MovieCreate creates a new movie. Only staff users can create movies.
// You can request this method with the following curl command:
//
//	curl -k -H "Content-Type: application/json" -X POST
//	  -d '{"title":"1. Pilot", "download_link":"https://cdn.example.org/pilot.mp4"}'
//	  http://localhost:8000/1.0/movies
//	  --header 'private-token: <A_VALID_ACCESS_TOKEN>'
func MovieCreate(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	var createMovie dtos.CreateMovie
	if em := ParseStruct(&createMovie, r, false); em != nil {
		return nil, em
	}

	user, ok, errMsg := getUserFromJWT(tx, r)
	if !ok {
		return nil, &errMsg
	}

	s := &movies.Service{}
	response, em := s.CreateMovie(r.Context(), tx, createMovie, user)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	return response, nil
}

// MovieUpdate updates an existing movie. Only staff users can update movies.
// You can request this method with the following curl command:
//
//	curl -k -H "Content-Type: application/json" -X PATCH -d '{"title":"NEW_TITLE"}'
//	  http://localhost:8000/1.0/movies/{id}
//	  --header 'private-token: <A_VALID_ACCESS_TOKEN>'
func MovieUpdate(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	var updateMovie dtos.UpdateMovie
	if em := ParseStruct(&updateMovie, r, false); em != nil {
		return nil, em
	}

	s := &movies.Service{}
	response, em := s.UpdateMovie(r.Context(), tx, id, updateMovie, user)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	return response, nil
}

// MovieRemove removes a movie. Only staff users can remove movies.
// Download logs of the movie are kept for auditing.
// You can request this method with the following curl command:
//
//	curl -k -X DELETE http://localhost:8000/1.0/movies/{id}
//	  --header 'private-token: <A_VALID_ACCESS_TOKEN>'
func MovieRemove(id uint, user *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	s := &movies.Service{}
	response, em := s.RemoveMovie(r.Context(), tx, id, user)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	return response, nil
}
