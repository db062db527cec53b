package globals

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gazebo-web/gz-go/v7"
	"github.com/go-playground/form"
	"github.com/movielane/catalog-server/permissions"
	"gopkg.in/go-playground/validator.v9"
)

/////////////////////////////////////////////////
/// Define global variables here

// Server encapsulates database, router, and auth0
var Server *gz.Server

// APIVersion is route api version.
// See also routes and routers
var APIVersion = "1.0"

// Validate references the global structs validator.
// See https://github.com/go-playground/validator.
// We use a single instance of validator, as it caches struct info
var Validate *validator.Validate

// FormDecoder holds a reference to the global Form Decoder.
// See https://github.com/go-playground/form.
// We use a single instance of Decoder, as it caches struct info
var FormDecoder *form.Decoder

// Permissions manages roles for users (staff, sysadmin).
var Permissions *permissions.Permissions

// ElasticSearch is a pointer to the Elastic Search client used to
// speed up movie title searches. It can be nil, in which case the
// catalog falls back to SQL based search.
var ElasticSearch *elasticsearch.Client

// QueryCache is used to store/cache results for common catalog queries.
var QueryCache *memcache.Client
