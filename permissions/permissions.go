package permissions

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	gormadapter "github.com/casbin/gorm-adapter/v2"
	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
)

// Role - type int
type Role int

// A list of roles. The catalog only distinguishes between regular
// members, staff (dashboard access) and system admins.
const (
	// System admin role
	SystemAdmin Role = iota
	// Staff role. Grants access to the admin dashboard and reset endpoints.
	Staff
	// Member role
	Member
)

// Corresponding string value for a Role
var roleStr = []string{"sysadmin", "staff", "member"}

// String function will return the english name of the Role
func (r Role) String() string {
	return roleStr[r]
}

// RoleFrom returns the Role value corresponding to the given string. It will
// return an error if not found.
func RoleFrom(str string) (Role, *gz.ErrMsg) {
	for i, s := range roleStr {
		if s == str {
			return Role(i), nil
		}
	}
	return -1, gz.NewErrorMessageWithArgs(gz.ErrorNameNotFound, nil, []string{"role:", str})
}

// Permissions struct contains a data object for interfacing with the
// permissions db.
type Permissions struct {
	data *permissionsObj
}

// Private permission data objects
type permissionsObj struct {
	adapter  *gormadapter.Adapter
	enforcer *casbin.Enforcer
}

// Global permission object
var gPermissionsObj *permissionsObj

// Init initializes permissions with an existing database connection.
// sysAdmin argument can contain a list of usernames separated by comma.
func (p *Permissions) Init(db *gorm.DB, sysAdmin string) error {

	// check if db connection and permission policy has been initialized or not
	if gPermissionsObj != nil {
		return nil
	}

	adapter, _ := gormadapter.NewAdapterByDB(db)
	enforcer, _ := casbin.NewEnforcer("permissions/policy.conf", adapter)

	return p.InitWithEnforcerAndAdapter(enforcer, adapter, sysAdmin)
}

// InitWithEnforcerAndAdapter initializes permissions with a given pair of
// enforcer and adapter.
func (p *Permissions) InitWithEnforcerAndAdapter(e *casbin.Enforcer,
	a *gormadapter.Adapter, sysAdmin string) error {

	gPermissionsObj = &permissionsObj{
		enforcer: e,
		adapter:  a,
	}
	p.data = gPermissionsObj

	return p.Reload(sysAdmin)
}

// Reload reloads all casbin data.
// sysAdmin argument can contain a list of usernames separated by comma.
func (p *Permissions) Reload(sysAdmin string) error {
	// Load the policy from DB.
	p.data.enforcer.LoadPolicy()
	p.setSystemAdmin(sysAdmin)
	return nil
}

// setSystemAdmin configures the system admin(s).
// sysAdmin argument can contain a list of usernames separated by comma.
func (p *Permissions) setSystemAdmin(sysAdmin string) {
	saRole := SystemAdmin.String()
	p.data.enforcer.DeleteRole(saRole)
	if sysAdmin != "" {
		users := gz.StrToSlice(sysAdmin)
		for _, u := range users {
			p.AddRoleForUser(u, saRole)
		}
	}
}

// IsSystemAdmin returns a bool indicating if the given user is a system admin.
func (p *Permissions) IsSystemAdmin(user string) bool {
	result, _ := p.data.enforcer.HasRoleForUser(user, SystemAdmin.String())
	return result
}

// IsStaff returns a bool indicating if the given user can access staff-only
// routes. System admins are implicitly staff.
func (p *Permissions) IsStaff(user string) bool {
	if p.IsSystemAdmin(user) {
		return true
	}
	result, _ := p.data.enforcer.HasRoleForUser(user, Staff.String())
	return result
}

// AddRoleForUser adds a role for a user
func (p *Permissions) AddRoleForUser(user, role string) (bool, *gz.ErrMsg) {
	valid, _ := p.data.enforcer.HasRoleForUser(user, role)
	if valid {
		extra := fmt.Sprintf("Role [%s] exist for user [%s]", role, user)
		return false, gz.NewErrorMessageWithArgs(gz.ErrorResourceExists, nil, []string{extra})
	}

	added, _ := p.data.enforcer.AddRoleForUser(user, role)
	if !added {
		extra := fmt.Sprintf("Could not add role [%s] for user [%s]", role, user)
		return false, gz.NewErrorMessageWithArgs(gz.ErrorUnexpected, nil, []string{extra})
	}
	return true, nil
}

// RemoveRoleForUser removes a role from a user
func (p *Permissions) RemoveRoleForUser(user, role string) (bool, *gz.ErrMsg) {
	valid, err := p.data.enforcer.DeleteRoleForUser(user, role)
	if !valid || err != nil {
		return false, gz.NewErrorMessage(gz.ErrorUnexpected)
	}
	return true, nil
}

// RemoveUser removes all policies and roles involving the user.
func (p *Permissions) RemoveUser(user string) (bool, *gz.ErrMsg) {
	result, err := p.data.enforcer.DeleteUser(user)
	if !result || err != nil {
		return false, gz.NewErrorMessage(gz.ErrorUnexpected)
	}
	return true, nil
}

// DBTable returns the database table used by the casbin adapter, so it can
// be included in migrations.
func (p *Permissions) DBTable() interface{} {
	return &gormadapter.CasbinRule{}
}
