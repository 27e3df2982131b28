package devicekit

import (
	"github.com/dmitrymomot/devicekit/pkg/version"
)

// System describes the running operating system.
type System struct {
	Version version.Version `json:"version"`
}

// UI describes how the interface is laid out.
type UI struct {
	IsIdiomIPad   bool `json:"is_idiom_ipad"`
	IsIdiomIPhone bool `json:"is_idiom_iphone"`
	// IsFlatMode is true on OS 7 and later, where the flat visual style applies.
	IsFlatMode bool `json:"is_flat_mode"`
}

// App identifies the running application.
type App struct {
	Version  version.Version `json:"version"`
	Name     string          `json:"name"`
	BundleID string          `json:"bundle_id"`
}

// Target is a build-time OS version: the deployment target or the base SDK.
type Target struct {
	Version version.Version `json:"version"`
}

// flatModeMajor is the first OS major version with the flat UI.
const flatModeMajor = 7
