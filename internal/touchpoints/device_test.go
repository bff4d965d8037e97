package touchpoints

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyDevice(t *testing.T) {
	cases := []struct {
		name      string
		userAgent string
		want      string
	}{
		{"empty", "", DeviceOther},
		{"ipad", "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15", DeviceTablet},
		{"android tablet", "Mozilla/5.0 (Linux; Android 13; SM-X700) Tablet Safari", DeviceTablet},
		{"kindle", "Mozilla/5.0 (Linux; U; Android 4.4.3; KFTHWI) Silk/47.1", DeviceTablet},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0 like Mac OS X) Mobile/15E148", DeviceMobile},
		{"android phone", "Mozilla/5.0 (Linux; Android 13; Pixel 7) Mobile Safari/537.36", DeviceMobile},
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0", DeviceDesktop},
		{"desktop mac", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Safari/605.1.15", DeviceDesktop},
		{"curl", "curl/8.4.0", DeviceDesktop},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyDevice(tc.userAgent))
		})
	}
}

func TestValidType(t *testing.T) {
	assert.True(t, ValidType(TypeClaimPageLoaded))
	assert.True(t, ValidType(TypeGiftDonatedToCharity))
	assert.False(t, ValidType("claim_page_loaded"), "types are case-sensitive wire values")
	assert.False(t, ValidType(""))
}
