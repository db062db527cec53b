package installs

import (
	"strings"

	"github.com/mssola/user_agent"
)

// Device name buckets reported to the dashboard.
const (
	DeviceWindows = "Windows Device"
	DeviceAndroid = "Android Device"
	DeviceIOS     = "iOS Device"
	DeviceMac     = "Mac Device"
	DeviceUnknown = "Unknown Device"
)

// DetectDeviceName buckets a raw User-Agent into a coarse device name.
// Android is checked before the generic engine strings because Android
// agents also claim to be Linux, and iPhones claim to be "like Mac OS X".
func DetectDeviceName(agent string) string {
	if len(agent) == 0 {
		return DeviceUnknown
	}

	ua := user_agent.New(agent)
	osName := strings.ToLower(ua.OSInfo().Name)
	lowered := strings.ToLower(agent)

	switch {
	case strings.Contains(osName, "android") || strings.Contains(lowered, "android"):
		return DeviceAndroid
	case strings.Contains(lowered, "iphone") || strings.Contains(lowered, "ipad") ||
		strings.Contains(osName, "ios"):
		return DeviceIOS
	case strings.Contains(osName, "windows") || strings.Contains(lowered, "windows"):
		return DeviceWindows
	case strings.Contains(osName, "mac") || strings.Contains(lowered, "macintosh"):
		return DeviceMac
	default:
		return DeviceUnknown
	}
}
