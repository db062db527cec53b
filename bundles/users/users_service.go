package users

import (
	"context"
	"fmt"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/globals"
	"github.com/movielane/catalog-server/permissions"
)

// CreateUser creates a new user in the DB, after checking that the username
// is not already taken. The new user gets the Member role.
func CreateUser(ctx context.Context, tx *gorm.DB, u *User) (*User, *gz.ErrMsg) {

	// Sanity check: the username must be unique, including soft deleted users.
	if _, em := ByUsername(tx.Unscoped(), *u.Username, true); em == nil {
		return nil, gz.NewErrorMessageWithArgs(gz.ErrorResourceExists, nil,
			[]string{*u.Username})
	}

	if err := tx.Create(u).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	if _, em := globals.Permissions.AddRoleForUser(*u.Username,
		permissions.Member.String()); em != nil {
		return nil, em
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("User [%s] has been created.", *u.Username))
	return u, nil
}

// RemoveUser removes the given user. The requestor argument is the user that
// requested the operation; only the user itself or a system admin can do it.
func RemoveUser(ctx context.Context, tx *gorm.DB, username string,
	requestor *User) (*User, *gz.ErrMsg) {

	if requestor == nil {
		return nil, gz.NewErrorMessage(gz.ErrorAuthNoUser)
	}

	user, em := ByUsername(tx, username, false)
	if em != nil {
		return nil, em
	}

	if *requestor.Username != username &&
		!globals.Permissions.IsSystemAdmin(*requestor.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}

	if err := tx.Delete(user).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	// Drop all roles the user had.
	globals.Permissions.RemoveUser(username)

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("User [%s] has been removed.", username))
	return user, nil
}

// NewUserResponse creates a UserResponse from the given user.
func NewUserResponse(u *User) UserResponse {
	var r UserResponse
	r.ID = u.ID
	if u.Name != nil {
		r.Name = *u.Name
	}
	if u.Username != nil {
		r.Username = *u.Username
		r.Staff = globals.Permissions.IsStaff(r.Username)
		r.SysAdmin = globals.Permissions.IsSystemAdmin(r.Username)
	}
	if u.Email != nil {
		r.Email = *u.Email
	}
	return r
}
