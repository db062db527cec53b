package main

import (
	"github.com/gazebo-web/gz-go/v7"
	"github.com/movielane/catalog-server/bundles/catalog"
	"github.com/movielane/catalog-server/bundles/category"
	dtos "github.com/movielane/catalog-server/bundles/installs/dtos"
	"github.com/movielane/catalog-server/bundles/movies"
	"github.com/movielane/catalog-server/bundles/playlists"
)

// This module contains swagger specifics related to doc generation.
// The are defined as private to avoid issues with linter and swagger
// requesting conflicting comments on types.

/////////////////////////////////////////////////
///////  swagger responses
/////////////////////////////////////////////////

// Catalog page
// swagger:response jsonCatalogPage
type jsonCatalogPage struct {
	// In: body
	Page catalog.Page
}

// Array of Movies
// swagger:response jsonMovies
type jsonMovies struct {
	// In: body
	Movies movies.Movies
}

// Playlist with its movies
// swagger:response jsonPlaylistDetail
type jsonPlaylistDetail struct {
	// In: body
	Detail playlists.Detail
}

// Array of Categories
// swagger:response jsonCategories
type jsonCategories struct {
	// In: body
	Categories category.Categories
}

// Install report response
// swagger:response jsonTrackResponse
type jsonTrackResponse struct {
	// In: body
	Response dtos.TrackResponse
}

// Uninstall report response
// swagger:response jsonUntrackResponse
type jsonUntrackResponse struct {
	// In: body
	Response dtos.UntrackResponse
}

// Staff dashboard
// swagger:response jsonDashboard
type jsonDashboard struct {
	// In: body
	Dashboard Dashboard
}

// Error response
// swagger:response catalogError
type catalogError struct {
	// In: body
	Error gz.ErrMsg
}

/////////////////////////////////////////////////
///////  swagger Parameters
/////////////////////////////////////////////////

// swagger:parameters singleUser deleteUser
type userInPath struct {
	// in: path
	Username string `json:"username"`
}

// swagger:parameters singleMovie movieUpdate deleteMovie downloadMovie
type movieInPath struct {
	// Movie id
	// in: path
	ID uint `json:"id"`
}

// swagger:parameters singlePlaylist deletePlaylist
type playlistInPath struct {
	// Playlist id
	// in: path
	ID uint `json:"id"`
}

// swagger:parameters categoryDetail categoryUpdate deleteCategory
type categoryInPath struct {
	// Category slug
	// in: path
	Slug string `json:"slug"`
}

// swagger:parameters catalogHome categoryDetail
type catalogPageInQuery struct {
	// Title search
	// in: query
	Q string `json:"q"`
	// Page number, clamped to the available pages
	// in: query
	Page string `json:"page"`
}

// swagger:parameters listMovies
type searchInQuery struct {
	// Title search
	// in: query
	Q string `json:"q"`
}
