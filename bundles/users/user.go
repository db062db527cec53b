package users

import (
	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
)

// User information
//
// swagger:model
type User struct {
	gorm.Model

	// Identity is the JWT subject this user maps to.
	Identity *string `json:"identity,omitempty"`

	// Person name
	Name *string `json:"name,omitempty"`

	// Username is unique in the catalog community
	Username *string `gorm:"not null;unique" json:"username,omitempty" validate:"required,min=3,alphanum"`

	Email *string `json:"email,omitempty" validate:"required,email"`
}

// Users is an slice of User
type Users []User

// UserResponse stores user information used in REST responses.
//
// swagger:model
type UserResponse struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	ID       uint   `json:"id"`
	// True if the user can access staff-only routes
	Staff bool `json:"staff"`
	// True if the user is a system administrator
	SysAdmin bool `json:"sysAdmin"`
}

// ByUsername queries a user by username.
func ByUsername(tx *gorm.DB, username string, deleted bool) (*User, *gz.ErrMsg) {
	q := tx
	if deleted {
		// Allow to search in already deleted users
		q = q.Unscoped()
	}
	var user User
	if q.Where("username = ?", username).First(&user); q.Error != nil && !q.RecordNotFound() {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, q.Error)
	}
	if user.Username == nil {
		return nil, gz.NewErrorMessage(gz.ErrorUserUnknown)
	}
	return &user, nil
}

// ByIdentity queries a user by identity (JWT subject).
func ByIdentity(tx *gorm.DB, identity string, deleted bool) (*User, *gz.ErrMsg) {
	q := tx
	if deleted {
		q = q.Unscoped()
	}
	var user User
	if q.Where("identity = ?", identity).First(&user); q.Error != nil && !q.RecordNotFound() {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, q.Error)
	}
	if user.Username == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}
	return &user, nil
}

// Count returns the number of registered users.
func Count(tx *gorm.DB) (int, *gz.ErrMsg) {
	var count int
	if err := tx.Model(&User{}).Count(&count).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return count, nil
}
