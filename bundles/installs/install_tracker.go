package installs

import (
	"time"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
)

// Last actions recorded on a tracker.
const (
	ActionInstall   = "install"
	ActionReinstall = "reinstall"
	ActionReopen    = "reopen"
	ActionUninstall = "uninstall"
)

// InstallTracker tracks the install state of the PWA on a single device.
//
// A device is active while InstallCount is 1 and inactive at 0.
// DeletedCount only grows; it survives reinstalls and counts how many times
// the app was removed from the device. Rows are only removed by the staff
// bulk reset, so there is no soft delete here.
type InstallTracker struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	CreatedAt time.Time `gorm:"type:timestamp(3) NULL" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Client-generated identifier of the device
	DeviceID *string `gorm:"not null;unique" json:"device_id"`

	// 1 while the app is installed on the device, 0 after uninstall
	InstallCount int `json:"install_count"`

	// Number of times the app was uninstalled from this device
	DeletedCount int `json:"deleted_count"`

	// Human readable device bucket (eg. "Android Device")
	DeviceName string `json:"device_name"`

	// Raw User-Agent of the last request from the device
	DeviceInfo string `gorm:"type:text" json:"-"`

	// Last state transition applied to this tracker
	LastAction string `json:"last_action"`
}

// InstallTrackers is a slice of InstallTracker
type InstallTrackers []InstallTracker

// ByDeviceID queries a tracker by its device identifier.
func ByDeviceID(tx *gorm.DB, deviceID string) (*InstallTracker, *gz.ErrMsg) {
	var tracker InstallTracker
	if err := tx.Where("device_id = ?", deviceID).First(&tracker).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorIDNotFound, err)
		}
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return &tracker, nil
}

// ActiveCount returns the number of devices with the app currently
// installed.
func ActiveCount(tx *gorm.DB) (int, *gz.ErrMsg) {
	var count int
	if err := tx.Model(&InstallTracker{}).Where("install_count > 0").Count(&count).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return count, nil
}

// Recent returns the most recently updated trackers.
func Recent(tx *gorm.DB, limit int) (InstallTrackers, *gz.ErrMsg) {
	var trackers InstallTrackers
	if err := tx.Model(&InstallTracker{}).Order("updated_at desc").Limit(limit).Find(&trackers).Error; err != nil {
		return nil, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	return trackers, nil
}
