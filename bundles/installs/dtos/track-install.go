package dtos

// TrackInstall encapsulates the payload of an install report
type TrackInstall struct {
	// Client-generated identifier of the device
	DeviceID string `json:"device_id" validate:"required" form:"device_id"`
	// Optional device name reported by the client
	DeviceName *string `json:"device_name" form:"device_name"`
}

// UntrackInstall encapsulates the payload of an uninstall report
type UntrackInstall struct {
	// Client-generated identifier of the device
	DeviceID string `json:"device_id" validate:"required" form:"device_id"`
}

// TrackResponse is returned by the install endpoint
type TrackResponse struct {
	Status              string `json:"status"`
	Message             string `json:"message"`
	Device              string `json:"device"`
	TotalActiveInstalls int    `json:"total_active_installs"`
}

// UntrackResponse is returned by the uninstall endpoint
type UntrackResponse struct {
	Success             bool   `json:"success"`
	Message             string `json:"message"`
	TotalActiveInstalls int    `json:"total_active_installs"`
}
