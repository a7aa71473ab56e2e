package core

import "github.com/lixenwraith/antigravity/parameter"

// DeviceClass selects population size and connection drawing
type DeviceClass uint8

const (
	DeviceDesktop DeviceClass = iota
	DeviceMobile
)

// DeviceClassifier maps a viewport width to a device class
type DeviceClassifier func(width float64) DeviceClass

// ClassifyWidth is the default classifier: width at or below parameter.MobileMaxWidth is mobile
func ClassifyWidth(width float64) DeviceClass {
	if width <= parameter.MobileMaxWidth {
		return DeviceMobile
	}
	return DeviceDesktop
}

// ThresholdClassifier returns a classifier with a custom mobile cutoff
func ThresholdClassifier(mobileMaxWidth float64) DeviceClassifier {
	return func(width float64) DeviceClass {
		if width <= mobileMaxWidth {
			return DeviceMobile
		}
		return DeviceDesktop
	}
}

// String returns human-readable class name
func (c DeviceClass) String() string {
	if c == DeviceMobile {
		return "mobile"
	}
	return "desktop"
}
