package main

import (
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/users"
)

// Login returns information about the user associated with a JWT
// You can request this method with the following cURL request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/login
//	  --header 'authorization: Bearer <A_VALID_AUTH0_JWT_TOKEN>'
func Login(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {
	// Sanity check: Make sure that we have a user with the identity contained
	// in the JWT.
	identity, ok := gz.GetUserIdentity(r)
	if !ok {
		return nil, gz.NewErrorMessage(gz.ErrorAuthJWTInvalid)
	}

	user, em := users.ByIdentity(tx, identity, false)
	if em != nil {
		return nil, em
	}
	response := users.NewUserResponse(user)
	return response, nil
}

// UserCreate creates a new user
// You can request this method with the following cURL request:
//
//	curl -k -H "Content-Type: application/json" -X POST -d '{"name":"John Doe",
//	  "username":"test-username", "email":"johndoe@example.com"}'
//	  https://localhost:4430/1.0/users
//	  --header 'authorization: Bearer <A_VALID_AUTH0_JWT_TOKEN>'
func UserCreate(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	var u users.User
	if em := ParseStruct(&u, r, false); em != nil {
		return nil, em
	}

	if identity, ok := gz.GetUserIdentity(r); ok {
		u.Identity = &identity
	} else {
		return nil, gz.NewErrorMessage(gz.ErrorAuthJWTInvalid)
	}

	user, em := users.CreateUser(r.Context(), tx, &u)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	response := users.NewUserResponse(user)
	return response, nil
}

// UserIndex returns a single user
// You can request this method with the following cURL request:
//
//	curl -k -X GET --url https://localhost:4430/1.0/users/{username}
func UserIndex(username string, jwtUser *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	user, em := users.ByUsername(tx, username, false)
	if em != nil {
		return nil, em
	}

	response := users.NewUserResponse(user)
	return response, nil
}

// UserRemove deletes a user.
// You can request this method with the following cURL request:
//
//	curl -k -X DELETE --url https://localhost:4430/1.0/users/{username}
//	  --header 'authorization: Bearer <A_VALID_AUTH0_JWT_TOKEN>'
func UserRemove(username string, jwtUser *users.User, tx *gorm.DB,
	w http.ResponseWriter, r *http.Request) (interface{}, *gz.ErrMsg) {

	user, em := users.RemoveUser(r.Context(), tx, username, jwtUser)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	response := users.NewUserResponse(user)
	return response, nil
}
