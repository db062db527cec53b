package main

import (
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/installs"
	"github.com/movielane/catalog-server/bundles/movies"
	"github.com/movielane/catalog-server/bundles/users"
	"github.com/movielane/catalog-server/globals"
)

// recentLimit caps the recent-activity lists on the dashboard.
const recentLimit = 5

// Dashboard aggregates catalog totals and recent activity for staff.
type Dashboard struct {
	TotalUsers          int `json:"total_users"`
	TotalMovies         int `json:"total_movies"`
	TotalDownloads      int `json:"total_downloads"`
	TotalActiveInstalls int `json:"total_active_installs"`

	TopMovies       movies.Movies            `json:"top_movies"`
	RecentInstalls  installs.InstallTrackers `json:"recent_installs"`
	RecentDownloads movies.DownloadLogs      `json:"recent_downloads"`
}

// requireStaff resolves the JWT user and fails unless it has the staff role.
func requireStaff(tx *gorm.DB, r *http.Request) (*users.User, *gz.ErrMsg) {
	user, ok, errMsg := getUserFromJWT(tx, r)
	if !ok {
		return nil, &errMsg
	}
	if !globals.Permissions.IsStaff(*user.Username) {
		return nil, gz.NewErrorMessage(gz.ErrorUnauthorized)
	}
	return user, nil
}

// AdminDashboard returns catalog totals, the most downloaded movies and the
// latest install and download activity. Only staff users can access it.
// You can request this method with the following curl command:
//
//	curl -k -X GET http://localhost:8000/1.0/admin/dashboard
//	  --header 'private-token: <A_VALID_ACCESS_TOKEN>'
func AdminDashboard(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	if _, em := requireStaff(tx, r); em != nil {
		return nil, em
	}

	var dashboard Dashboard
	var em *gz.ErrMsg

	if dashboard.TotalUsers, em = users.Count(tx); em != nil {
		return nil, em
	}
	if dashboard.TotalMovies, em = movies.Count(tx); em != nil {
		return nil, em
	}
	if dashboard.TotalDownloads, em = movies.CountDownloads(tx); em != nil {
		return nil, em
	}
	if dashboard.TotalActiveInstalls, em = installs.ActiveCount(tx); em != nil {
		return nil, em
	}

	if dashboard.TopMovies, em = movies.TopByDownloads(tx, recentLimit); em != nil {
		return nil, em
	}
	if dashboard.RecentInstalls, em = installs.Recent(tx, recentLimit); em != nil {
		return nil, em
	}
	if dashboard.RecentDownloads, em = movies.RecentDownloads(tx, recentLimit); em != nil {
		return nil, em
	}

	return &dashboard, nil
}

// AdminInstallsReset removes every install tracker. Only staff users can
// reset the trackers.
// You can request this method with the following curl command:
//
//	curl -k -X DELETE http://localhost:8000/1.0/admin/installs
//	  --header 'private-token: <A_VALID_ACCESS_TOKEN>'
func AdminInstallsReset(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	if _, em := requireStaff(tx, r); em != nil {
		return nil, em
	}

	s := &installs.Service{}
	removed, em := s.ResetAll(r.Context(), tx)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	response := map[string]interface{}{
		"success": true,
		"removed": removed,
	}
	return response, nil
}
