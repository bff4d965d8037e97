package touchpoints

import "regexp"

// Device types recorded in touchpoint metadata.
const (
	DeviceTablet  = "tablet"
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
	DeviceOther   = "other"
)

var (
	tabletPattern = regexp.MustCompile(`(?i)ipad|tablet|kindle|silk|playbook`)
	mobilePattern = regexp.MustCompile(`(?i)mobile|android|iphone|ipod|blackberry|iemobile|opera mini|windows phone`)
)

// ClassifyDevice buckets a user-agent string. Tablet patterns are checked
// before mobile because tablet UAs usually also match the mobile pattern.
func ClassifyDevice(userAgent string) string {
	switch {
	case userAgent == "":
		return DeviceOther
	case tabletPattern.MatchString(userAgent):
		return DeviceTablet
	case mobilePattern.MatchString(userAgent):
		return DeviceMobile
	}
	return DeviceDesktop
}
