package main

import (
	"github.com/gazebo-web/gz-go/v7"
)

// ///////////////////////////////////////////////
// / Declare the routes. See also router.go
var routes = gz.Routes{

	/////////////
	// Catalog //
	/////////////

	// Route for the home catalog listing
	gz.Route{
		"Catalog",
		"Home catalog listing with playlists and standalone movies",
		"/catalog",
		gz.AuthHeadersOptional,
		gz.Methods{
			// swagger:route GET /catalog catalog catalogHome
			//
			// Get the home catalog listing.
			//
			// Returns every playlist plus the movies that do not belong to a
			// playlist, newest first, paginated at 24 items per page. The 'q'
			// parameter filters by title and 'page' selects the page.
			// Out-of-range pages clamp to valid pages instead of failing.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: jsonCatalogPage
			gz.Method{
				"GET",
				"Get the home listing",
				gz.FormatHandlers{
					gz.FormatHandler{".json", gz.JSONResult(CatalogHome)},
					gz.FormatHandler{"", gz.JSONResult(CatalogHome)},
				},
			},
		},
		gz.SecureMethods{},
	},

	////////////
	// Movies //
	////////////

	// Route for all movies
	gz.Route{
		"Movies",
		"Information about all movies",
		"/movies",
		gz.AuthHeadersOptional,
		gz.Methods{
			// swagger:route GET /movies movies listMovies
			//
			// Get list of movies.
			//
			// Movies are returned paginated. The 'q' parameter performs a
			// title search through ElasticSearch when available, with a SQL
			// fallback.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: jsonMovies
			gz.Method{
				"GET",
				"Get all movies",
				gz.FormatHandlers{
					gz.FormatHandler{".json", gz.JSONListResult("Movies", PaginationHandler(MovieList))},
					gz.FormatHandler{"", gz.JSONListResult("Movies", PaginationHandler(MovieList))},
				},
			},
		},
		gz.SecureMethods{
			// swagger:route POST /movies movies createMovie
			//
			// Create movie
			//
			// Creates a new movie. Only staff users can create movies.
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: dbMovie
			gz.Method{
				"POST",
				"Create a new movie",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(MovieCreate)},
				},
			},
		},
	},

	// Route for a single movie
	gz.Route{
		"MovieIndex",
		"Information about a single movie",
		"/movies/{id}",
		gz.AuthHeadersOptional,
		gz.Methods{
			// swagger:route GET /movies/{id} movies singleMovie
			//
			// Get a movie
			//
			// Return a movie given its numeric ID.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: dbMovie
			gz.Method{
				"GET",
				"Get a movie",
				gz.FormatHandlers{
					gz.FormatHandler{".json", gz.JSONResult(IDHandler("id", false, MovieDetail))},
					gz.FormatHandler{"", gz.JSONResult(IDHandler("id", false, MovieDetail))},
				},
			},
		},
		gz.SecureMethods{
			// swagger:route PATCH /movies/{id} movies movieUpdate
			//
			// Update a movie
			//
			// Updates a movie. Only staff users can update movies.
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: dbMovie
			gz.Method{
				"PATCH",
				"Edit a movie",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(IDHandler("id", true, MovieUpdate))},
				},
			},
			// swagger:route DELETE /movies/{id} movies deleteMovie
			//
			// Delete a movie
			//
			// Deletes a movie. Only staff users can remove movies. Download
			// logs of the movie are kept.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: dbMovie
			gz.Method{
				"DELETE",
				"Remove a movie",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(IDHandler("id", true, MovieRemove))},
				},
			},
		},
	},

	// Route to download a movie
	gz.Route{
		"MovieDownload",
		"Download a movie through a redirect to its external link",
		"/movies/{id}/download",
		gz.AuthHeadersOptional,
		gz.Methods{
			// swagger:route GET /movies/{id}/download movies downloadMovie
			//
			// Download a movie.
			//
			// Records a download log entry, bumps the movie's download
			// counter and redirects (302) to the movie's external download
			// link.
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     302: description:Redirect to the download link
			gz.Method{
				"GET",
				"Download a movie",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.Handler(NoResult(IDHandler("id", false, MovieDownload)))},
				},
			},
		},
		gz.SecureMethods{},
	},

	///////////////
	// Playlists //
	///////////////

	// Route for all playlists
	gz.Route{
		"Playlists",
		"Information about all playlists",
		"/playlists",
		gz.AuthHeadersOptional,
		gz.Methods{},
		gz.SecureMethods{
			// swagger:route POST /playlists playlists createPlaylist
			//
			// Create playlist
			//
			// Creates a new playlist. Only staff users can create playlists.
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: dbPlaylist
			gz.Method{
				"POST",
				"Create a new playlist",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(PlaylistCreate)},
				},
			},
		},
	},

	// Route for a single playlist
	gz.Route{
		"PlaylistIndex",
		"Information about a single playlist",
		"/playlists/{id}",
		gz.AuthHeadersOptional,
		gz.Methods{
			// swagger:route GET /playlists/{id} playlists singlePlaylist
			//
			// Get a playlist
			//
			// Return a playlist and its movies in watch order: by explicit
			// "N." title prefix when present among the leading titles, by
			// (season, episode) otherwise.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: jsonPlaylistDetail
			gz.Method{
				"GET",
				"Get a playlist with its movies",
				gz.FormatHandlers{
					gz.FormatHandler{".json", gz.JSONResult(IDHandler("id", false, PlaylistDetail))},
					gz.FormatHandler{"", gz.JSONResult(IDHandler("id", false, PlaylistDetail))},
				},
			},
		},
		gz.SecureMethods{
			// swagger:route DELETE /playlists/{id} playlists deletePlaylist
			//
			// Delete a playlist
			//
			// Deletes a playlist. Its movies stay in the catalog as
			// standalone entries. Only staff users can remove playlists.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: dbPlaylist
			gz.Method{
				"DELETE",
				"Remove a playlist",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(IDHandler("id", true, PlaylistRemove))},
				},
			},
		},
	},

	////////////////
	// Categories //
	////////////////

	// Categories route
	gz.Route{
		"Categories",
		"Route for all categories",
		"/categories",
		gz.AuthHeadersOptional,
		gz.Methods{
			// swagger:route GET /categories categories listCategories
			//
			// Get list of categories.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: jsonCategories
			gz.Method{
				"GET",
				"Get all categories",
				gz.FormatHandlers{
					gz.FormatHandler{".json", gz.JSONResult(CategoryList)},
					gz.FormatHandler{"", gz.JSONResult(CategoryList)},
				},
			},
		},
		gz.SecureMethods{
			// swagger:route POST /categories categories createCategory
			//
			// Create category
			//
			// Creates a new category. Only staff users can create categories.
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: dbCategory
			gz.Method{
				"POST",
				"Create a new category",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(CategoryCreate)},
				},
			},
		},
	},

	// Categories route with slug
	gz.Route{
		"CategoryIndex",
		"Route for a category",
		"/categories/{slug}",
		gz.AuthHeadersOptional,
		gz.Methods{
			// swagger:route GET /categories/{slug} categories categoryDetail
			//
			// Get a category's movies and playlists.
			//
			// Returns one page of the category content. Hand-numbered
			// categories keep their explicit order, the rest are listed
			// newest first. Supports 'q' and 'page' parameters.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: jsonCatalogPage
			gz.Method{
				"GET",
				"Get a category listing",
				gz.FormatHandlers{
					gz.FormatHandler{".json", gz.JSONResult(CategoryIndex)},
					gz.FormatHandler{"", gz.JSONResult(CategoryIndex)},
				},
			},
		},
		gz.SecureMethods{
			// swagger:route PATCH /categories/{slug} categories categoryUpdate
			//
			// Update a category
			//
			// Updates a category. Only staff users can update categories.
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: dbCategory
			gz.Method{
				"PATCH",
				"Edit a category",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(CategoryUpdate)},
				},
			},
			// swagger:route DELETE /categories/{slug} categories deleteCategory
			//
			// Delete a category
			//
			// Deletes a category. Only staff users can remove categories.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: dbCategory
			gz.Method{
				"DELETE",
				"Remove a category",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(CategoryDelete)},
				},
			},
		},
	},

	//////////////
	// Installs //
	//////////////

	// Route for PWA install tracking
	gz.Route{
		"Installs",
		"PWA install and uninstall tracking",
		"/installs",
		gz.AuthHeadersOptional,
		gz.Methods{
			// swagger:route POST /installs installs trackInstall
			//
			// Report an install.
			//
			// Records an install report from a device. Unknown devices get a
			// new tracker, uninstalled devices are reactivated, active
			// devices are refreshed. The device name comes from the payload
			// or is detected from the User-Agent.
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: jsonTrackResponse
			gz.Method{
				"POST",
				"Report an install",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(InstallTrack)},
				},
			},
			// swagger:route DELETE /installs installs untrackInstall
			//
			// Report an uninstall.
			//
			// Records an uninstall report. Reports for unknown or already
			// inactive devices succeed without changes.
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: jsonUntrackResponse
			gz.Method{
				"DELETE",
				"Report an uninstall",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(InstallUntrack)},
				},
			},
		},
		gz.SecureMethods{},
	},

	///////////
	// Users //
	///////////

	// Route to get the logged in user
	gz.Route{
		"Login",
		"Login a user",
		"/login",
		gz.AuthHeadersRequired,
		gz.Methods{},
		gz.SecureMethods{
			// swagger:route GET /login users loginUser
			//
			// Login user
			//
			// Returns information about the user associated with the JWT.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: UserResponse
			gz.Method{
				"GET",
				"Login a user",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(Login)},
				},
			},
		},
	},

	// Route for all users
	gz.Route{
		"Users",
		"Route for all users",
		"/users",
		gz.AuthHeadersRequired,
		gz.Methods{},
		gz.SecureMethods{
			// swagger:route POST /users users createUser
			//
			// Create user
			//
			// Creates a new user. The user identity is retrieved from the
			// passed JWT.
			//
			//   Consumes:
			//   - application/json
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: UserResponse
			gz.Method{
				"POST",
				"Create a new user",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(UserCreate)},
				},
			},
		},
	},

	// Route for a single user
	gz.Route{
		"UserIndex",
		"Access information about a single user",
		"/users/{username}",
		gz.AuthHeadersOptional,
		gz.Methods{
			// swagger:route GET /users/{username} users singleUser
			//
			// Get a user
			//
			// Return public information of a user.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: UserResponse
			gz.Method{
				"GET",
				"Get user information",
				gz.FormatHandlers{
					gz.FormatHandler{".json", gz.JSONResult(NameHandler("username", false, UserIndex))},
					gz.FormatHandler{"", gz.JSONResult(NameHandler("username", false, UserIndex))},
				},
			},
		},
		gz.SecureMethods{
			// swagger:route DELETE /users/{username} users deleteUser
			//
			// Delete a user
			//
			// Deletes a user. Only the user itself or a system admin can do
			// it.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: UserResponse
			gz.Method{
				"DELETE",
				"Remove a user",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(NameHandler("username", true, UserRemove))},
				},
			},
		},
	},

	///////////
	// Admin //
	///////////

	// Route for the staff dashboard
	gz.Route{
		"AdminDashboard",
		"Staff dashboard with catalog totals and recent activity",
		"/admin/dashboard",
		gz.AuthHeadersRequired,
		gz.Methods{},
		gz.SecureMethods{
			// swagger:route GET /admin/dashboard admin adminDashboard
			//
			// Get the staff dashboard.
			//
			// Returns catalog totals, the most downloaded movies and the
			// latest install and download activity. Staff only.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: jsonDashboard
			gz.Method{
				"GET",
				"Get the staff dashboard",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(AdminDashboard)},
				},
			},
		},
	},

	// Route to reset install trackers
	gz.Route{
		"AdminInstalls",
		"Bulk reset of the install trackers",
		"/admin/installs",
		gz.AuthHeadersRequired,
		gz.Methods{},
		gz.SecureMethods{
			// swagger:route DELETE /admin/installs admin resetInstalls
			//
			// Reset the install trackers.
			//
			// Removes every install tracker. Staff only.
			//
			//   Produces:
			//   - application/json
			//
			//   Schemes: https
			//
			//   Responses:
			//     default: catalogError
			//     200: description:Reset summary
			gz.Method{
				"DELETE",
				"Reset the install trackers",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(AdminInstallsReset)},
				},
			},
		},
	},

	// Route to manage the ElasticSearch configs
	gz.Route{
		"AdminSearch",
		"Route to manage the ElasticSearch configs",
		"/admin/search",
		gz.AuthHeadersRequired,
		gz.Methods{},
		gz.SecureMethods{
			gz.Method{
				"GET",
				"List the ElasticSearch configs",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(ListElasticSearchHandler)},
				},
			},
			gz.Method{
				"POST",
				"Create an ElasticSearch config",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(CreateElasticSearchHandler)},
				},
			},
		},
	},

	// Route to reconnect to the primary ElasticSearch config
	gz.Route{
		"AdminSearchReconnect",
		"Route to reconnect to the primary ElasticSearch config",
		"/admin/search/reconnect",
		gz.AuthHeadersRequired,
		gz.Methods{},
		gz.SecureMethods{
			gz.Method{
				"GET",
				"Reconnect to the primary ElasticSearch",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(ReconnectElasticSearchHandler)},
				},
			},
		},
	},

	// Route to rebuild the ElasticSearch indices
	gz.Route{
		"AdminSearchRebuild",
		"Route to rebuild the ElasticSearch indices",
		"/admin/search/rebuild",
		gz.AuthHeadersRequired,
		gz.Methods{},
		gz.SecureMethods{
			gz.Method{
				"GET",
				"Rebuild the ElasticSearch indices",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(RebuildElasticSearchHandler)},
				},
			},
		},
	},

	// Route to update the ElasticSearch indices
	gz.Route{
		"AdminSearchUpdate",
		"Route to update the ElasticSearch indices",
		"/admin/search/update",
		gz.AuthHeadersRequired,
		gz.Methods{},
		gz.SecureMethods{
			gz.Method{
				"GET",
				"Update the ElasticSearch indices",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(UpdateElasticSearchHandler)},
				},
			},
		},
	},

	// Route to update or remove an ElasticSearch config.
	// Registered after the other /admin/search routes so that mux does not
	// capture them as config ids.
	gz.Route{
		"AdminSearchConfig",
		"Route to update or remove an ElasticSearch config",
		"/admin/search/{config_id}",
		gz.AuthHeadersRequired,
		gz.Methods{},
		gz.SecureMethods{
			gz.Method{
				"PATCH",
				"Modify an ElasticSearch config",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(ModifyElasticSearchHandler)},
				},
			},
			gz.Method{
				"DELETE",
				"Remove an ElasticSearch config",
				gz.FormatHandlers{
					gz.FormatHandler{"", gz.JSONResult(DeleteElasticSearchHandler)},
				},
			},
		},
	},
} // routes
