package installs

import (
	"context"
	"database/sql/driver"
	"testing"

	mocket "github.com/Selvatico/go-mocket"
	"github.com/gazebo-web/gz-go/v7"
	"github.com/jinzhu/gorm"
	"github.com/movielane/catalog-server/bundles/installs/dtos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMockDB opens a gorm connection backed by the go-mocket fake driver.
func setupMockDB(t *testing.T) *gorm.DB {
	mocket.Catcher.Register()
	mocket.Catcher.Logging = false
	db, err := gorm.Open(mocket.DRIVER_NAME, "mocked_db")
	require.NoError(t, err)
	mocket.Catcher.Reset()
	return db
}

func newTestContext() context.Context {
	logger := gz.NewLoggerNoRollbar("installs_test", gz.VerbosityWarning)
	return gz.NewContextWithLogger(context.Background(), logger)
}

func mockTrackerLookup(rows []map[string]interface{}) {
	mocket.Catcher.NewMock().WithQuery(`SELECT * FROM "install_trackers"  WHERE`).WithReply(rows)
}

func mockActiveCount(count string) {
	mocket.Catcher.NewMock().WithQuery(`SELECT count(*) FROM "install_trackers"`).WithReply(
		[]map[string]interface{}{{"count": count}})
}

// A report from an unknown device creates an active tracker.
func TestTrackNewDevice(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()

	mockTrackerLookup(nil)
	mockActiveCount("1")

	svc := &Service{}
	resp, em := svc.Track(newTestContext(), db, dtos.TrackInstall{DeviceID: "device-1"}, uaAndroid)
	require.Nil(t, em)
	assert.Equal(t, StatusInstalled, resp.Status)
	assert.Equal(t, DeviceAndroid, resp.Device)
	assert.Equal(t, 1, resp.TotalActiveInstalls)
}

// A device name sent by the client wins over User-Agent detection.
func TestTrackClientDeviceName(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()

	mockTrackerLookup(nil)
	mockActiveCount("1")

	name := "Kitchen Tablet"
	svc := &Service{}
	resp, em := svc.Track(newTestContext(), db,
		dtos.TrackInstall{DeviceID: "device-2", DeviceName: &name}, uaAndroid)
	require.Nil(t, em)
	assert.Equal(t, name, resp.Device)
}

// A report from an inactive device reactivates its tracker.
func TestTrackReinstall(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()

	mockTrackerLookup([]map[string]interface{}{
		{"id": "5", "device_id": "device-1", "install_count": "0", "deleted_count": "1"},
	})
	mockActiveCount("1")

	svc := &Service{}
	resp, em := svc.Track(newTestContext(), db, dtos.TrackInstall{DeviceID: "device-1"}, uaWindows)
	require.Nil(t, em)
	assert.Equal(t, StatusReinstalled, resp.Status)
}

// captureTrackerUpdate records the UPDATE statement issued against the
// trackers table.
func captureTrackerUpdate(query *string) {
	mocket.Catcher.NewMock().WithQuery(`UPDATE "install_trackers" SET`).WithCallback(
		func(q string, _ []driver.NamedValue) {
			*query = q
		})
}

// Reinstalling assigns the active state as a literal. Two racing reinstall
// reports must both leave the counter at 1, never push it to 2.
func TestTrackReinstallAssignsLiteralState(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()

	mockTrackerLookup([]map[string]interface{}{
		{"id": "5", "device_id": "device-1", "install_count": "0", "deleted_count": "1"},
	})
	var updateQuery string
	captureTrackerUpdate(&updateQuery)
	mockActiveCount("1")

	svc := &Service{}
	resp, em := svc.Track(newTestContext(), db, dtos.TrackInstall{DeviceID: "device-1"}, uaWindows)
	require.Nil(t, em)
	assert.Equal(t, StatusReinstalled, resp.Status)
	require.NotEmpty(t, updateQuery)
	assert.Contains(t, updateQuery, `"install_count" = ?`)
	assert.NotContains(t, updateQuery, "install_count + ")
}

// A full install, uninstall, reinstall sequence leaves the tracker active
// with exactly one recorded uninstall.
func TestInstallLifecycle(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()
	svc := &Service{}

	// A fresh device installs.
	mockTrackerLookup(nil)
	mockActiveCount("1")
	resp, em := svc.Track(newTestContext(), db, dtos.TrackInstall{DeviceID: "device-9"}, uaWindows)
	require.Nil(t, em)
	assert.Equal(t, StatusInstalled, resp.Status)

	// The uninstall deactivates the tracker and bumps the uninstall counter.
	mocket.Catcher.Reset()
	mockTrackerLookup([]map[string]interface{}{
		{"id": "9", "device_id": "device-9", "install_count": "1", "deleted_count": "0"},
	})
	var uninstallQuery string
	captureTrackerUpdate(&uninstallQuery)
	mockActiveCount("0")
	unresp, em := svc.Untrack(newTestContext(), db, dtos.UntrackInstall{DeviceID: "device-9"})
	require.Nil(t, em)
	assert.True(t, unresp.Success)
	assert.Contains(t, uninstallQuery, "deleted_count + ")

	// The reinstall reactivates the tracker without touching the uninstall
	// counter, so the device ends active with deleted_count 1.
	mocket.Catcher.Reset()
	mockTrackerLookup([]map[string]interface{}{
		{"id": "9", "device_id": "device-9", "install_count": "0", "deleted_count": "1"},
	})
	var reinstallQuery string
	captureTrackerUpdate(&reinstallQuery)
	mockActiveCount("1")
	resp, em = svc.Track(newTestContext(), db, dtos.TrackInstall{DeviceID: "device-9"}, uaWindows)
	require.Nil(t, em)
	assert.Equal(t, StatusReinstalled, resp.Status)
	assert.Equal(t, 1, resp.TotalActiveInstalls)
	assert.Contains(t, reinstallQuery, `"install_count" = ?`)
	assert.NotContains(t, reinstallQuery, "deleted_count")
}

// A report from an already active device is idempotent.
func TestTrackReopen(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()

	mockTrackerLookup([]map[string]interface{}{
		{"id": "5", "device_id": "device-1", "install_count": "1"},
	})
	mockActiveCount("1")

	svc := &Service{}
	resp, em := svc.Track(newTestContext(), db, dtos.TrackInstall{DeviceID: "device-1"}, uaWindows)
	require.Nil(t, em)
	assert.Equal(t, StatusActive, resp.Status)
}

// Uninstalling an active device deactivates the tracker.
func TestUntrackActiveDevice(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()

	mockTrackerLookup([]map[string]interface{}{
		{"id": "5", "device_id": "device-1", "install_count": "1"},
	})
	mockActiveCount("0")

	svc := &Service{}
	resp, em := svc.Untrack(newTestContext(), db, dtos.UntrackInstall{DeviceID: "device-1"})
	require.Nil(t, em)
	assert.True(t, resp.Success)
	assert.Equal(t, "Uninstall tracked", resp.Message)
	assert.Equal(t, 0, resp.TotalActiveInstalls)
}

// Uninstall reports for unknown devices are acknowledged, not rejected.
func TestUntrackUnknownDevice(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()

	mockTrackerLookup(nil)
	mockActiveCount("0")

	svc := &Service{}
	resp, em := svc.Untrack(newTestContext(), db, dtos.UntrackInstall{DeviceID: "ghost"})
	require.Nil(t, em)
	assert.True(t, resp.Success)
	assert.Equal(t, "Uninstall acknowledged", resp.Message)
}

// Repeated uninstall reports stay successful without touching counters.
func TestUntrackInactiveDevice(t *testing.T) {
	db := setupMockDB(t)
	defer db.Close()

	mockTrackerLookup([]map[string]interface{}{
		{"id": "5", "device_id": "device-1", "install_count": "0", "deleted_count": "1"},
	})
	mockActiveCount("0")

	svc := &Service{}
	resp, em := svc.Untrack(newTestContext(), db, dtos.UntrackInstall{DeviceID: "device-1"})
	require.Nil(t, em)
	assert.True(t, resp.Success)
	assert.Equal(t, "Already uninstalled", resp.Message)
}
