package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gazebo-web/gz-go/v7"
	dtos "github.com/movielane/catalog-server/bundles/installs/dtos"
	"github.com/movielane/catalog-server/globals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocket "github.com/Selvatico/go-mocket"
	gztest "github.com/gazebo-web/gz-go/v7/testhelpers"
)

// Tests for the install tracking routes

// trackerRow builds a mock install_trackers row.
func trackerRow(deviceID, installCount string) []map[string]interface{} {
	return []map[string]interface{}{{
		"id":            "1",
		"device_id":     deviceID,
		"install_count": installCount,
		"deleted_count": "0",
		"device_name":   "Windows Device",
	}}
}

// sendInstallReport posts an install or uninstall report and decodes the
// response into out.
func sendInstallReport(t *testing.T, method string, payload, out interface{}) {
	b := new(bytes.Buffer)
	require.NoError(t, json.NewEncoder(b).Encode(payload))
	bslice, _ := gztest.AssertRouteMultipleArgs(method, "/1.0/installs", b, http.StatusOK, nil, ctJSON, t)
	require.NoError(t, json.Unmarshal(*bslice, out), "Unable to decode install response: %s", string(*bslice))
}

func TestInstallTrackNewDevice(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())
	// The tracker lookup comes back empty, so a new tracker is created
	mocket.Catcher.Reset()
	SetupMockActiveInstalls("1")

	var response dtos.TrackResponse
	sendInstallReport(t, "POST", dtos.TrackInstall{DeviceID: "dev-1"}, &response)

	assert.Equal(t, "installed", response.Status)
	assert.Equal(t, "Installation tracked", response.Message)
	assert.Equal(t, 1, response.TotalActiveInstalls)
}

func TestInstallTrackReinstall(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())
	mocket.Catcher.Reset()
	// The device was uninstalled before
	mocket.Catcher.NewMock().WithQuery("SELECT * FROM \"install_trackers\"  WHERE").WithReply(trackerRow("dev-2", "0"))
	SetupMockActiveInstalls("3")

	var response dtos.TrackResponse
	sendInstallReport(t, "POST", dtos.TrackInstall{DeviceID: "dev-2"}, &response)

	assert.Equal(t, "reinstalled", response.Status)
	assert.Equal(t, "Reinstallation tracked", response.Message)
	assert.Equal(t, 3, response.TotalActiveInstalls)
}

func TestInstallTrackActiveDevice(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())
	mocket.Catcher.Reset()
	mocket.Catcher.NewMock().WithQuery("SELECT * FROM \"install_trackers\"  WHERE").WithReply(trackerRow("dev-3", "1"))
	SetupMockActiveInstalls("3")

	var response dtos.TrackResponse
	sendInstallReport(t, "POST", dtos.TrackInstall{DeviceID: "dev-3"}, &response)

	assert.Equal(t, "active", response.Status)
	assert.Equal(t, "Installation already active", response.Message)
}

func TestInstallTrackMissingDeviceID(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())
	mocket.Catcher.Reset()

	expErr := gz.ErrorMessage(gz.ErrorFormInvalidValue)
	b := new(bytes.Buffer)
	require.NoError(t, json.NewEncoder(b).Encode(map[string]string{"device_name": "No ID"}))
	bslice, _ := gztest.AssertRouteMultipleArgs("POST", "/1.0/installs", b, expErr.StatusCode, nil, ctTextPlain, t)
	gztest.AssertBackendErrorCode(t.Name(), bslice, expErr.ErrCode, t)
}

func TestInstallUntrackActiveDevice(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())
	mocket.Catcher.Reset()
	mocket.Catcher.NewMock().WithQuery("SELECT * FROM \"install_trackers\"  WHERE").WithReply(trackerRow("dev-4", "2"))
	SetupMockActiveInstalls("0")

	var response dtos.UntrackResponse
	sendInstallReport(t, "DELETE", dtos.UntrackInstall{DeviceID: "dev-4"}, &response)

	assert.True(t, response.Success)
	assert.Equal(t, "Uninstall tracked", response.Message)
	assert.Equal(t, 0, response.TotalActiveInstalls)
}

// Uninstall reports for unknown devices succeed, so clients can retry.
func TestInstallUntrackUnknownDevice(t *testing.T) {
	setup()
	origDb := globals.Server.Db
	defer SetGlobalDB(origDb)
	SetGlobalDB(SetupDbMockCatcher())
	mocket.Catcher.Reset()
	SetupMockActiveInstalls("5")

	var response dtos.UntrackResponse
	sendInstallReport(t, "DELETE", dtos.UntrackInstall{DeviceID: "ghost"}, &response)

	assert.True(t, response.Success)
	assert.Equal(t, "Uninstall acknowledged", response.Message)
	assert.Equal(t, 5, response.TotalActiveInstalls)
}
