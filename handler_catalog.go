package main

import (
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/catalog"
)

// CatalogHome returns one page of the home listing: every playlist plus the
// movies that do not belong to any playlist, newest first. The optional 'q'
// parameter filters by title and 'page' selects the page. Out-of-range pages
// clamp instead of failing.
// You can request this method with the following curl command:
//
//	curl -k -X GET http://localhost:8000/1.0/catalog?q=drama&page=2
func CatalogHome(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	s := &catalog.Service{}
	return s.Home(r.Context(), tx, r.URL.Query().Get("q"),
		r.URL.Query().Get("page"))
}
