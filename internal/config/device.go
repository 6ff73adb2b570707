package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/chill-runner/internal/core"
)

// DeviceClass selects the device-specific parameter section.
type DeviceClass string

const (
	DeviceMobile  DeviceClass = core.DeviceMobile
	DeviceDesktop DeviceClass = core.DeviceDesktop
)

// MobileBreakpoint is the viewport width below which "auto" resolves to mobile.
const MobileBreakpoint = 768.0

// ParseDevice validates a device hint as given on the command line.
func ParseDevice(s string) (string, error) {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case "", core.DeviceAuto:
		return core.DeviceAuto, nil
	case core.DeviceMobile, core.DeviceDesktop:
		return v, nil
	default:
		return "", fmt.Errorf("config: unknown device %q (want auto, mobile or desktop)", s)
	}
}

// DetectDevice resolves a device hint against the viewport.
// An explicit hint wins; "auto" picks mobile for narrow viewports.
func DetectDevice(hint string, vp core.Viewport) DeviceClass {
	switch hint {
	case core.DeviceMobile:
		return DeviceMobile
	case core.DeviceDesktop:
		return DeviceDesktop
	}
	if vp.W > 0 && vp.W < MobileBreakpoint {
		return DeviceMobile
	}
	return DeviceDesktop
}
