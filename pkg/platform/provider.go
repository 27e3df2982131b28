package platform

// Provider supplies the raw facts about the running device. One
// implementation exists per source: a fixed Snapshot, environment variables,
// a YAML file, an embedded profile or the host operating system.
type Provider interface {
	// OSVersion returns the OS version string, for example "8.1.2".
	OSVersion() string
	// HardwareID returns the raw hardware identifier, for example "iPhone4,1".
	HardwareID() string
	// IsSimulator reports whether the process runs in the simulator.
	IsSimulator() bool
	Idiom() Idiom
	Screen() ScreenMetrics
	App() AppInfo
	// DeploymentTarget returns the minimum OS version the app was built for.
	DeploymentTarget() string
	// BaseSDK returns the OS SDK version the app was compiled against.
	BaseSDK() string
}

// ScreenMetrics is the main screen scale and its size in points.
type ScreenMetrics struct {
	Scale  float64
	Width  float64
	Height float64
}

// AppInfo identifies the running application bundle.
type AppInfo struct {
	ShortVersion string
	Name         string
	BundleID     string
}
