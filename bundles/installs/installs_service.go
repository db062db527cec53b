package installs

import (
	"context"
	"fmt"

	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/installs/dtos"
)

// Service is the main struct exported by this installs Service.
type Service struct{}

// Track statuses reported to clients.
const (
	StatusInstalled   = "installed"
	StatusReinstalled = "reinstalled"
	StatusActive      = "active"
)

// Track applies an install report to the tracker of the given device.
//
// Unknown devices get a new active tracker. Inactive trackers are
// reactivated, keeping their uninstall history. Reports for devices that are
// already active are idempotent and only refresh the tracker.
// install_count is assigned its target state directly, so racing reports
// converge on the same value instead of compounding increments. Only the
// monotonic deleted_count uses an increment expression.
func (is *Service) Track(ctx context.Context, tx *gorm.DB, track dtos.TrackInstall,
	agent string) (*dtos.TrackResponse, *gz.ErrMsg) {

	deviceName := DetectDeviceName(agent)
	if track.DeviceName != nil && len(*track.DeviceName) > 0 {
		deviceName = *track.DeviceName
	}

	tracker, em := ByDeviceID(tx, track.DeviceID)

	var status, message string
	switch {
	case em != nil && em.ErrCode == gz.ErrorIDNotFound:
		tracker = &InstallTracker{
			DeviceID:     &track.DeviceID,
			InstallCount: 1,
			DeviceName:   deviceName,
			DeviceInfo:   agent,
			LastAction:   ActionInstall,
		}
		if err := tx.Create(tracker).Error; err != nil {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
		}
		status, message = StatusInstalled, "Installation tracked"

	case em != nil:
		return nil, em

	case tracker.InstallCount == 0:
		updates := map[string]interface{}{
			"install_count": 1,
			"device_name":   deviceName,
			"device_info":   agent,
			"last_action":   ActionReinstall,
		}
		if err := tx.Model(tracker).Updates(updates).Error; err != nil {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
		}
		status, message = StatusReinstalled, "Reinstallation tracked"

	default:
		// Already active. Refresh the tracker but do not touch counters.
		updates := map[string]interface{}{
			"device_info": agent,
			"last_action": ActionReopen,
		}
		if err := tx.Model(tracker).Updates(updates).Error; err != nil {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
		}
		status, message = StatusActive, "Installation already active"
	}

	active, em := ActiveCount(tx)
	if em != nil {
		return nil, em
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Install report [%s] device %s: %s", status, track.DeviceID, deviceName))

	return &dtos.TrackResponse{
		Status:              status,
		Message:             message,
		Device:              deviceName,
		TotalActiveInstalls: active,
	}, nil
}

// Untrack applies an uninstall report to the tracker of the given device.
//
// Active trackers are deactivated and their uninstall counter bumped.
// Inactive and unknown devices are acknowledged without changes, so clients
// can retry uninstall reports safely.
func (is *Service) Untrack(ctx context.Context, tx *gorm.DB,
	untrack dtos.UntrackInstall) (*dtos.UntrackResponse, *gz.ErrMsg) {

	tracker, em := ByDeviceID(tx, untrack.DeviceID)

	var message string
	switch {
	case em != nil && em.ErrCode == gz.ErrorIDNotFound:
		message = "Uninstall acknowledged"

	case em != nil:
		return nil, em

	case tracker.InstallCount == 0:
		message = "Already uninstalled"

	default:
		updates := map[string]interface{}{
			"install_count": 0,
			"deleted_count": gorm.Expr("deleted_count + ?", 1),
			"last_action":   ActionUninstall,
		}
		if err := tx.Model(tracker).Updates(updates).Error; err != nil {
			return nil, gz.NewErrorMessageWithBase(gz.ErrorDbSave, err)
		}
		message = "Uninstall tracked"
	}

	active, em := ActiveCount(tx)
	if em != nil {
		return nil, em
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Uninstall report for device %s: %s", untrack.DeviceID, message))

	return &dtos.UntrackResponse{
		Success:             true,
		Message:             message,
		TotalActiveInstalls: active,
	}, nil
}

// ResetAll removes every install tracker. Used by the staff dashboard reset.
func (is *Service) ResetAll(ctx context.Context, tx *gorm.DB) (int, *gz.ErrMsg) {
	var count int
	if err := tx.Model(&InstallTracker{}).Count(&count).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorNoDatabase, err)
	}
	if err := tx.Delete(&InstallTracker{}).Error; err != nil {
		return 0, gz.NewErrorMessageWithBase(gz.ErrorDbDelete, err)
	}

	gz.LoggerFromContext(ctx).Info(fmt.Sprintf("Install trackers reset. %d trackers removed.", count))

	return count, nil
}
