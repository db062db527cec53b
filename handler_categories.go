package main

import (
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/gorilla/mux"
	"github.com/gosimple/slug"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/catalog"
	"github.com/movielane/catalog-server/bundles/category"
	dtos "github.com/movielane/catalog-server/bundles/category/dtos"
	"github.com/movielane/catalog-server/globals"
)

// CategoryList returns a list with all available categories.
// You can request this method with the following curl command:
//
//	curl -k -X GET http://localhost:8000/1.0/categories
func CategoryList(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {
	s := &category.Service{}
	return s.List(tx)
}

// CategoryIndex returns one page of a category's movies and playlists.
// Hand-numbered categories keep their explicit order; the rest are listed
// newest first. The optional 'q' parameter filters by title and 'page'
// selects the page.
// You can request this method with the following curl command:
//
//	curl -k -X GET http://localhost:8000/1.0/categories/{slug}?q=thriller&page=2
func CategoryIndex(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	categorySlug, ok := mux.Vars(r)["slug"]
	if !ok || !slug.IsSlug(categorySlug) {
		return nil, gz.NewErrorMessage(gz.ErrorIDNotInRequest)
	}

	cat, err := category.BySlug(tx, categorySlug)
	if err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNameNotFound, err)
	}

	s := &catalog.Service{}
	return s.CategoryDetail(r.Context(), tx, cat.ID, r.URL.Query().Get("q"),
		r.URL.Query().Get("page"))
}

// CategoryCreate creates a new category. Only staff users can create
// a new category.
// You can request this method with the following curl command:
//
//	curl -k -H "Content-Type: application/json" -X POST -d '{"name":"CATEGORY"}'
//	  http://localhost:8000/1.0/categories
//	  --header 'private-token: <A_VALID_ACCESS_TOKEN>'
func CategoryCreate(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	// Parse the request.
	var createCategory dtos.CreateCategory
	if em := ParseStruct(&createCategory, r, false); em != nil {
		return nil, em
	}

	// Sanity check: Find the user and fail if the user is not staff.
	user, ok, errMsg := getUserFromJWT(tx, r)
	if !ok {
		return nil, &errMsg
	}

	if !globals.Permissions.IsStaff(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	// Create the new category.
	s := &category.Service{}
	response, em := s.Create(r.Context(), tx, createCategory)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	return response, nil
}

// CategoryDelete deletes an existing category. Only staff users can delete
// a category.
// You can request this method with the following curl command:
//
//	curl -k -H "Content-Type: application/json" -X DELETE
//	  https://localhost:4430/1.0/categories/{slug}
//	  --header 'private-token: <A_VALID_ACCESS_TOKEN>'
func CategoryDelete(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	categorySlug, ok := mux.Vars(r)["slug"]
	if !ok || !slug.IsSlug(categorySlug) {
		return nil, gz.NewErrorMessage(gz.ErrorIDNotInRequest)
	}

	// Sanity check: Find the user and fail if the user is not staff.
	user, ok, errMsg := getUserFromJWT(tx, r)
	if !ok {
		return nil, &errMsg
	}
	if !globals.Permissions.IsStaff(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	// Delete the category
	s := &category.Service{}
	response, em := s.Delete(r.Context(), tx, categorySlug)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	return response, nil
}

// CategoryUpdate updates an existing category. Only staff users can update
// a category.
// You can request this method with the following curl command:
//
//	curl -k -H "Content-Type: application/json" -X PATCH -d '{"name":"NEW_NAME"}'
//	  http://localhost:8000/1.0/categories/{slug}
//	  --header 'private-token: <A_VALID_ACCESS_TOKEN>'
func CategoryUpdate(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	categorySlug, ok := mux.Vars(r)["slug"]
	if !ok || !slug.IsSlug(categorySlug) {
		return nil, gz.NewErrorMessage(gz.ErrorIDNotInRequest)
	}
	var cat dtos.UpdateCategory
	if em := ParseStruct(&cat, r, false); em != nil {
		return nil, em
	}

	// Sanity check: Find the user and fail if the user is not staff.
	user, ok, errMsg := getUserFromJWT(tx, r)
	if !ok {
		return nil, &errMsg
	}

	if !globals.Permissions.IsStaff(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	// Update the category.
	s := &category.Service{}
	response, em := s.Update(r.Context(), tx, categorySlug, cat)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	return response, nil
}
