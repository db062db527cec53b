package main

import (
	"net/http"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/installs"
	dtos "github.com/movielane/catalog-server/bundles/installs/dtos"
)

// InstallTrack records an install report from a device. Unknown devices get
// a new tracker, previously uninstalled devices are reactivated and active
// devices are refreshed without touching counters.
// You can request this method with the following curl command:
//
//	curl -k -H "Content-Type: application/json" -X POST
//	  -d '{"device_id":"a1b2c3", "device_name":"Kitchen Tablet"}'
//	  http://localhost:8000/1.0/installs
func InstallTrack(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	var track dtos.TrackInstall
	if em := ParseStruct(&track, r, false); em != nil {
		return nil, em
	}

	s := &installs.Service{}
	response, em := s.Track(r.Context(), tx, track, r.UserAgent())
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	return response, nil
}

// InstallUntrack records an uninstall report from a device. Reports for
// unknown or already inactive devices succeed without changes, so clients
// can retry safely.
// You can request this method with the following curl command:
//
//	curl -k -H "Content-Type: application/json" -X DELETE
//	  -d '{"device_id":"a1b2c3"}' http://localhost:8000/1.0/installs
func InstallUntrack(tx *gorm.DB, w http.ResponseWriter,
	r *http.Request) (interface{}, *gz.ErrMsg) {

	var untrack dtos.UntrackInstall
	if em := ParseStruct(&untrack, r, false); em != nil {
		return nil, em
	}

	s := &installs.Service{}
	response, em := s.Untrack(r.Context(), tx, untrack)
	if em != nil {
		return nil, em
	}

	if err := tx.Commit().Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
	}

	return response, nil
}
